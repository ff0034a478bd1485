package invoice

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/waveline-inc/waveline/internal/domain/invoice/valueobjects"
)

func strPtr(s string) *string { return &s }

func validInvoice(t *testing.T) *Invoice {
	t.Helper()
	inv, err := NewInvoice("0xABCDEF0123", decimal.NewFromInt(100), vo.TokenUSDC, strPtr("client@example.com"), "design work")
	require.NoError(t, err)
	return inv
}

func TestNewInvoice(t *testing.T) {
	tests := []struct {
		name        string
		payee       string
		amount      decimal.Decimal
		token       vo.Token
		payerEmail  *string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid USDC invoice",
			payee:      "0xAbCd1234",
			amount:     decimal.NewFromInt(100),
			token:      vo.TokenUSDC,
			payerEmail: strPtr("Client@Example.COM"),
		},
		{
			name:   "valid native invoice without payer email",
			payee:  "0xabcd1234",
			amount: decimal.RequireFromString("0.5"),
			token:  vo.TokenNative,
		},
		{
			name:        "missing payee address",
			payee:       "   ",
			amount:      decimal.NewFromInt(100),
			token:       vo.TokenUSDC,
			wantErr:     true,
			errContains: "payee address",
		},
		{
			name:        "zero amount",
			payee:       "0xabcd1234",
			amount:      decimal.Zero,
			token:       vo.TokenUSDC,
			wantErr:     true,
			errContains: "positive",
		},
		{
			name:        "negative amount",
			payee:       "0xabcd1234",
			amount:      decimal.NewFromInt(-5),
			token:       vo.TokenUSDC,
			wantErr:     true,
			errContains: "positive",
		},
		{
			name:        "unsupported token",
			payee:       "0xabcd1234",
			amount:      decimal.NewFromInt(100),
			token:       vo.Token("DOGE"),
			wantErr:     true,
			errContains: "unsupported token",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv, err := NewInvoice(tc.payee, tc.amount, tc.token, tc.payerEmail, "")
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, inv)

			assert.Equal(t, uint(0), inv.ID())
			assert.True(t, strings.HasPrefix(inv.SID(), "inv_"))
			assert.Equal(t, strings.ToLower(strings.TrimSpace(tc.payee)), inv.PayeeAddress())
			assert.Equal(t, vo.InvoiceStatusPending, inv.Status())
			assert.Nil(t, inv.TxHash())
			assert.Nil(t, inv.PaidAt())
			assert.Equal(t, 0, inv.Version())
			if tc.payerEmail != nil {
				require.NotNil(t, inv.PayerEmail())
				assert.Equal(t, strings.ToLower(strings.TrimSpace(*tc.payerEmail)), *inv.PayerEmail())
			}
		})
	}
}

func TestInvoice_MarkAsPaid(t *testing.T) {
	t.Run("pending to paid", func(t *testing.T) {
		inv := validInvoice(t)

		err := inv.MarkAsPaid("0xhash1")
		require.NoError(t, err)

		assert.Equal(t, vo.InvoiceStatusPaid, inv.Status())
		require.NotNil(t, inv.TxHash())
		assert.Equal(t, "0xhash1", *inv.TxHash())
		require.NotNil(t, inv.PaidAt())
		assert.Equal(t, 1, inv.Version())
	})

	t.Run("idempotent when already paid", func(t *testing.T) {
		inv := validInvoice(t)
		require.NoError(t, inv.MarkAsPaid("0xhash1"))

		err := inv.MarkAsPaid("0xhash2")
		require.NoError(t, err)

		// the first settlement hash wins
		assert.Equal(t, "0xhash1", *inv.TxHash())
		assert.Equal(t, 1, inv.Version())
	})

	t.Run("rejects empty hash", func(t *testing.T) {
		inv := validInvoice(t)
		err := inv.MarkAsPaid("")
		require.Error(t, err)
	})

	t.Run("rejects paid transition from failed", func(t *testing.T) {
		inv := validInvoice(t)
		require.NoError(t, inv.MarkAsFailed())

		err := inv.MarkAsPaid("0xhash1")
		require.Error(t, err)
	})
}

func TestInvoice_MarkAsFailed(t *testing.T) {
	inv := validInvoice(t)
	require.NoError(t, inv.MarkAsFailed())
	assert.Equal(t, vo.InvoiceStatusFailed, inv.Status())

	err := inv.MarkAsFailed()
	require.Error(t, err, "failed is final")
}

func TestInvoice_SetPayerEmail(t *testing.T) {
	t.Run("sets normalized email when absent", func(t *testing.T) {
		inv, err := NewInvoice("0xabc", decimal.NewFromInt(10), vo.TokenUSDT, nil, "")
		require.NoError(t, err)

		inv.SetPayerEmail("  Payer@Example.COM ")
		require.NotNil(t, inv.PayerEmail())
		assert.Equal(t, "payer@example.com", *inv.PayerEmail())
	})

	t.Run("does not overwrite existing email", func(t *testing.T) {
		inv := validInvoice(t)
		inv.SetPayerEmail("other@example.com")
		assert.Equal(t, "client@example.com", *inv.PayerEmail())
	})

	t.Run("ignores blank email", func(t *testing.T) {
		inv, err := NewInvoice("0xabc", decimal.NewFromInt(10), vo.TokenUSDT, nil, "")
		require.NoError(t, err)

		inv.SetPayerEmail("   ")
		assert.Nil(t, inv.PayerEmail())
	})
}

func TestInvoice_DueDateAndOverdueAge(t *testing.T) {
	t.Run("no due date means never overdue", func(t *testing.T) {
		inv := validInvoice(t)
		assert.Equal(t, 0, inv.DaysOverdue(time.Now().UTC()))
	})

	t.Run("counts whole days past due", func(t *testing.T) {
		inv := validInvoice(t)
		due := time.Now().UTC().Add(-8 * 24 * time.Hour)
		require.NoError(t, inv.SetDueDate(due))

		assert.Equal(t, 8, inv.DaysOverdue(time.Now().UTC()))
		assert.Equal(t, 0, inv.DaysOverdue(due.Add(-time.Hour)), "not overdue before the deadline")
	})

	t.Run("settled invoice cannot change its deadline", func(t *testing.T) {
		inv := validInvoice(t)
		require.NoError(t, inv.MarkAsPaid("0xhash"))

		err := inv.SetDueDate(time.Now().UTC())
		require.Error(t, err)
	})
}
