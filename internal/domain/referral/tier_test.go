package referral

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultTiers() []Tier {
	return []Tier{
		{Level: 0, Name: "Bronze", MinReferrals: 0, Multiplier: dec("1.0"), BonusReward: dec("0")},
		{Level: 1, Name: "Silver", MinReferrals: 5, Multiplier: dec("1.2"), BonusReward: dec("100")},
		{Level: 2, Name: "Gold", MinReferrals: 15, Multiplier: dec("1.5"), BonusReward: dec("300")},
		{Level: 3, Name: "Platinum", MinReferrals: 30, Multiplier: dec("2.0"), BonusReward: dec("500")},
	}
}

func TestNewTierTable(t *testing.T) {
	t.Run("valid table", func(t *testing.T) {
		table, err := NewTierTable(defaultTiers())
		require.NoError(t, err)
		require.NotNil(t, table)
	})

	t.Run("orders unsorted input", func(t *testing.T) {
		tiers := defaultTiers()
		tiers[0], tiers[3] = tiers[3], tiers[0]
		table, err := NewTierTable(tiers)
		require.NoError(t, err)
		assert.Equal(t, 0, table.Tiers()[0].MinReferrals)
		assert.Equal(t, 30, table.Tiers()[3].MinReferrals)
	})

	t.Run("empty table rejected", func(t *testing.T) {
		_, err := NewTierTable(nil)
		require.Error(t, err)
	})

	t.Run("missing zero threshold rejected", func(t *testing.T) {
		tiers := defaultTiers()[1:]
		_, err := NewTierTable(tiers)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "min_referrals 0")
	})

	t.Run("duplicate threshold rejected", func(t *testing.T) {
		tiers := defaultTiers()
		tiers[2].MinReferrals = 5
		_, err := NewTierTable(tiers)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("decreasing multiplier rejected", func(t *testing.T) {
		tiers := defaultTiers()
		tiers[3].Multiplier = dec("1.1")
		_, err := NewTierTable(tiers)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not decrease")
	})

	t.Run("non-positive multiplier rejected", func(t *testing.T) {
		tiers := []Tier{{MinReferrals: 0, Multiplier: decimal.Zero}}
		_, err := NewTierTable(tiers)
		require.Error(t, err)
	})
}

func TestTierTable_TierFor(t *testing.T) {
	table, err := NewTierTable(defaultTiers())
	require.NoError(t, err)

	tests := []struct {
		count        int
		wantMin      int
		wantMultiple string
	}{
		{0, 0, "1.0"},
		{4, 0, "1.0"},
		{5, 5, "1.2"},
		{6, 5, "1.2"},
		{14, 5, "1.2"},
		{15, 15, "1.5"},
		{30, 30, "2.0"},
		{100, 30, "2.0"},
	}

	for _, tc := range tests {
		tier := table.TierFor(tc.count)
		assert.Equal(t, tc.wantMin, tier.MinReferrals, "count %d", tc.count)
		assert.True(t, tier.Multiplier.Equal(dec(tc.wantMultiple)), "count %d", tc.count)
	}
}

func TestTierTable_Monotonicity(t *testing.T) {
	table, err := NewTierTable(defaultTiers())
	require.NoError(t, err)

	prev := table.TierFor(0).Multiplier
	for count := 1; count <= 40; count++ {
		cur := table.TierFor(count).Multiplier
		assert.True(t, cur.GreaterThanOrEqual(prev), "multiplier decreased at count %d", count)
		prev = cur
	}
}

func TestTierTable_Next(t *testing.T) {
	table, err := NewTierTable(defaultTiers())
	require.NoError(t, err)

	next, ok := table.Next(table.TierFor(0))
	require.True(t, ok)
	assert.Equal(t, 5, next.MinReferrals)

	_, ok = table.Next(table.TierFor(100))
	assert.False(t, ok, "highest tier has no successor")
}
