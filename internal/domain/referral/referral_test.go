package referral

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	t.Run("derived from address tail", func(t *testing.T) {
		code, err := GenerateCode("0xAbCdEf0123456789aBcDeF0123456789DeAdBeEf")
		require.NoError(t, err)
		require.NoError(t, ValidateCode(code))
		assert.True(t, strings.HasPrefix(code, "WAVEADBEEF"), "code %s carries the address tail", code)
	})

	t.Run("different addresses yield different codes", func(t *testing.T) {
		a, err := GenerateCode("0x1111111111111111111111111111111111111111")
		require.NoError(t, err)
		b, err := GenerateCode("0x2222222222222222222222222222222222222222")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("empty address rejected", func(t *testing.T) {
		_, err := GenerateCode("   ")
		require.Error(t, err)
	})
}

func TestValidateCode(t *testing.T) {
	tests := []struct {
		code    string
		wantErr bool
	}{
		{"WAVEABCD1234", false},
		{"WAVE00000000", false},
		{"waveabcd1234", true},
		{"WAVEABC123", true},
		{"WAVEABCD12345", true},
		{"XXXXABCD1234", true},
		{"", true},
		{"WAVEabcd1234", true},
	}

	for _, tc := range tests {
		err := ValidateCode(tc.code)
		if tc.wantErr {
			assert.Error(t, err, "code %q", tc.code)
		} else {
			assert.NoError(t, err, "code %q", tc.code)
		}
	}
}

func TestNewReferral(t *testing.T) {
	baseReward := decimal.NewFromInt(50)

	t.Run("valid", func(t *testing.T) {
		r, err := NewReferral("0xReferrer", "0xReferee", "WAVEABCD1234", baseReward)
		require.NoError(t, err)
		assert.Equal(t, "0xreferrer", r.ReferrerAddress())
		assert.Equal(t, "0xreferee", r.RefereeAddress())
		assert.Equal(t, ReferralStatusPending, r.Status())
		assert.Nil(t, r.CompletedAt())
	})

	t.Run("self referral rejected", func(t *testing.T) {
		_, err := NewReferral("0xSame", "0xsame", "WAVEABCD1234", baseReward)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "self-referral")
	})

	t.Run("bad code rejected", func(t *testing.T) {
		_, err := NewReferral("0xa", "0xb", "bogus", baseReward)
		require.Error(t, err)
	})
}

func TestReferral_Complete(t *testing.T) {
	r, err := NewReferral("0xa", "0xb", "WAVEABCD1234", decimal.NewFromInt(50))
	require.NoError(t, err)

	assert.True(t, r.Complete())
	assert.Equal(t, ReferralStatusCompleted, r.Status())
	require.NotNil(t, r.CompletedAt())
	first := *r.CompletedAt()

	// second completion is a no-op
	assert.False(t, r.Complete())
	assert.Equal(t, first, *r.CompletedAt())
}

func TestReferral_MarkRewarded(t *testing.T) {
	r, err := NewReferral("0xa", "0xb", "WAVEABCD1234", decimal.NewFromInt(50))
	require.NoError(t, err)

	require.Error(t, r.MarkRewarded(), "pending referral cannot be rewarded")

	r.Complete()
	require.NoError(t, r.MarkRewarded())
	assert.Equal(t, ReferralStatusRewarded, r.Status())
}

func TestReward_Claim(t *testing.T) {
	reward, err := NewReward(1, "0xa", decimal.NewFromInt(60), "USDC", 7*24*time.Hour)
	require.NoError(t, err)

	now := time.Now().UTC()
	assert.False(t, reward.IsClaimable(now), "inside delay window")
	require.Error(t, reward.Claim(now))

	after := reward.ClaimableAt().Add(time.Minute)
	assert.True(t, reward.IsClaimable(after))
	require.NoError(t, reward.Claim(after))
	assert.Equal(t, RewardStatusClaimed, reward.Status())
	require.NotNil(t, reward.ClaimedAt())

	require.Error(t, reward.Claim(after), "double claim rejected")
}

func TestProgram_Accrual(t *testing.T) {
	p, err := NewProgram("0xReferrer")
	require.NoError(t, err)
	require.NoError(t, ValidateCode(p.Code()))
	assert.True(t, p.IsActive())

	p.RecordCompletion(decimal.NewFromInt(60))
	p.RecordCompletion(decimal.NewFromInt(50))
	assert.Equal(t, 2, p.TotalReferrals())
	assert.True(t, p.TotalRewardsEarned().Equal(decimal.NewFromInt(110)))
	assert.True(t, p.PendingRewards().Equal(decimal.NewFromInt(110)))

	require.NoError(t, p.RecordClaim(decimal.NewFromInt(60)))
	assert.True(t, p.PendingRewards().Equal(decimal.NewFromInt(50)))
	assert.True(t, p.TotalRewardsClaimed().Equal(decimal.NewFromInt(60)))

	require.Error(t, p.RecordClaim(decimal.NewFromInt(100)), "claim above pending rejected")
}
