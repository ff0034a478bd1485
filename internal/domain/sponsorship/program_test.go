package sponsorship

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validProgram(t *testing.T) *Program {
	t.Helper()
	p, err := NewProgram("0xPayee", dec("1.0"), dec("0.01"))
	require.NoError(t, err)
	return p
}

func TestNewProgram(t *testing.T) {
	tests := []struct {
		name    string
		payee   string
		budget  decimal.Decimal
		cap     decimal.Decimal
		wantErr bool
	}{
		{"valid", "0xPayee", dec("1.0"), dec("0.01"), false},
		{"empty payee", "  ", dec("1.0"), dec("0.01"), true},
		{"zero budget", "0xpayee", decimal.Zero, dec("0.01"), true},
		{"negative budget", "0xpayee", dec("-1"), dec("0.01"), true},
		{"zero cap", "0xpayee", dec("1.0"), decimal.Zero, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewProgram(tc.payee, tc.budget, tc.cap)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "0xpayee", p.PayeeAddress(), "address normalized to lowercase")
			assert.True(t, p.IsActive())
			assert.True(t, p.RemainingBudget().Equal(tc.budget))
			assert.True(t, p.TotalBudget().Equal(tc.budget))
			assert.Equal(t, int64(0), p.SponsoredTxCount())
			assert.Equal(t, 0, p.Version())
		})
	}
}

func TestProgram_ClampDebit(t *testing.T) {
	tests := []struct {
		name      string
		remaining string
		programCap string
		clientCap string
		estimate  string
		want      string
	}{
		{
			// remaining=0.005, client cap=0.01, actual gas=0.003 -> 0.003
			name:      "estimate below all caps",
			remaining: "0.005",
			programCap: "0.01",
			clientCap: "0.01",
			estimate:  "0.003",
			want:      "0.003",
		},
		{
			name:      "remaining budget binds",
			remaining: "0.002",
			programCap: "0.01",
			clientCap: "0.01",
			estimate:  "0.003",
			want:      "0.002",
		},
		{
			name:      "client cap binds",
			remaining: "1.0",
			programCap: "0.01",
			clientCap: "0.001",
			estimate:  "0.003",
			want:      "0.001",
		},
		{
			name:      "program cap binds",
			remaining: "1.0",
			programCap: "0.002",
			clientCap: "0.01",
			estimate:  "0.003",
			want:      "0.002",
		},
		{
			name:      "zero client cap ignored",
			remaining: "1.0",
			programCap: "0.01",
			clientCap: "0",
			estimate:  "0.003",
			want:      "0.003",
		},
		{
			name:      "exhausted budget yields zero",
			remaining: "0",
			programCap: "0.01",
			clientCap: "0.01",
			estimate:  "0.003",
			want:      "0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewProgram("0xpayee", dec("10"), dec(tc.programCap))
			require.NoError(t, err)
			// drain down to the desired remaining balance
			drain := dec("10").Sub(dec(tc.remaining))
			if drain.IsPositive() {
				require.NoError(t, p.Debit(drain))
			}

			got := p.ClampDebit(dec(tc.estimate), dec(tc.clientCap))
			assert.True(t, got.Equal(dec(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestProgram_Debit(t *testing.T) {
	t.Run("reduces remaining and advances counters", func(t *testing.T) {
		p := validProgram(t)

		err := p.Debit(dec("0.003"))
		require.NoError(t, err)

		assert.True(t, p.RemainingBudget().Equal(dec("0.997")))
		assert.True(t, p.TotalBudget().Equal(dec("1.0")), "total budget unchanged by debit")
		assert.Equal(t, int64(1), p.SponsoredTxCount())
		assert.True(t, p.TotalSponsoredAmount().Equal(dec("0.003")))
		assert.Equal(t, 1, p.Version())
	})

	t.Run("rejects over-debit", func(t *testing.T) {
		p := validProgram(t)

		err := p.Debit(dec("1.5"))
		require.Error(t, err)
		assert.True(t, p.RemainingBudget().Equal(dec("1.0")), "remaining unchanged on rejection")
		assert.Equal(t, 0, p.Version())
	})

	t.Run("rejects zero and negative amounts", func(t *testing.T) {
		p := validProgram(t)
		require.Error(t, p.Debit(decimal.Zero))
		require.Error(t, p.Debit(dec("-0.001")))
	})

	t.Run("debit to exactly zero is allowed", func(t *testing.T) {
		p := validProgram(t)
		require.NoError(t, p.Debit(dec("1.0")))
		assert.True(t, p.RemainingBudget().IsZero())
		assert.False(t, p.CanSponsor())
	})
}

func TestProgram_Credit(t *testing.T) {
	p := validProgram(t)
	require.NoError(t, p.Debit(dec("0.4")))

	err := p.Credit(dec("0.5"))
	require.NoError(t, err)

	assert.True(t, p.TotalBudget().Equal(dec("1.5")))
	assert.True(t, p.RemainingBudget().Equal(dec("1.1")))

	require.Error(t, p.Credit(decimal.Zero))
}

func TestProgram_CanSponsor(t *testing.T) {
	p := validProgram(t)
	assert.True(t, p.CanSponsor())

	p.Deactivate()
	assert.False(t, p.CanSponsor())

	p.Activate()
	assert.True(t, p.CanSponsor())

	require.NoError(t, p.Debit(dec("1.0")))
	assert.False(t, p.CanSponsor(), "exhausted budget cannot sponsor")
}

func TestFavoriteClient_RecordPayment(t *testing.T) {
	fc, err := NewFavoriteClient("0xPayee", " Client@Example.COM ", "Acme", dec("0.01"), false)
	require.NoError(t, err)
	assert.Equal(t, "client@example.com", fc.ClientEmail())
	assert.Equal(t, "0xpayee", fc.PayeeAddress())
	assert.False(t, fc.GasSponsorshipEnabled())

	fc.RecordPayment(dec("100"), fc.CreatedAt())
	fc.RecordPayment(dec("50"), fc.CreatedAt())

	assert.Equal(t, int64(2), fc.InvoiceCount())
	assert.True(t, fc.TotalAmountPaid().Equal(dec("150")))
	require.NotNil(t, fc.FirstInvoiceAt())
	require.NotNil(t, fc.LastInvoiceAt())
}

func TestFavoriteClient_GasSponsorship(t *testing.T) {
	fc, err := NewFavoriteClient("0xpayee", "c@e.com", "", decimal.Zero, true)
	require.NoError(t, err)
	assert.True(t, fc.AutoAdded())

	require.Error(t, fc.EnableGasSponsorship(decimal.Zero))
	require.NoError(t, fc.EnableGasSponsorship(dec("0.005")))
	assert.True(t, fc.GasSponsorshipEnabled())
	assert.True(t, fc.MaxGasPerTx().Equal(dec("0.005")))

	fc.RecordSponsorship(dec("0.003"))
	assert.Equal(t, int64(1), fc.SponsoredTxCount())
	assert.True(t, fc.TotalGasSponsored().Equal(dec("0.003")))

	fc.DisableGasSponsorship()
	assert.False(t, fc.GasSponsorshipEnabled())
}
