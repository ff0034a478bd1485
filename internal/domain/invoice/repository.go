package invoice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *Invoice) error
	Update(ctx context.Context, inv *Invoice) error
	GetByID(ctx context.Context, id uint) (*Invoice, error)
	GetBySID(ctx context.Context, sid string) (*Invoice, error)
	ListByPayee(ctx context.Context, payeeAddress string, page, pageSize int) ([]*Invoice, int64, error)
	// SumPaidAmountByPayee returns the lifetime paid-invoice total for a payee,
	// used as the activity basis for referral completion.
	SumPaidAmountByPayee(ctx context.Context, payeeAddress string) (decimal.Decimal, error)
	// CountPaidByPayeeAndPayerEmail returns how many invoices a given client has
	// paid to a payee, used for the automatic favorite-client threshold.
	CountPaidByPayeeAndPayerEmail(ctx context.Context, payeeAddress, payerEmail string) (int64, error)
	// ListPaidPayerEmailStats returns per-client paid stats for a payee:
	// email, paid count, total amount. Used by the auto-favorite sweep.
	ListPaidPayerEmailStats(ctx context.Context, payeeAddress string) ([]PayerStats, error)
	// ListOverduePending returns pending invoices whose due date has passed,
	// oldest first, capped at limit. Used by the payment-reminder sweep.
	ListOverduePending(ctx context.Context, asOf time.Time, limit int) ([]*Invoice, error)
}

// PayerStats is an aggregate row of a client's paid activity toward one payee.
type PayerStats struct {
	PayerEmail  string
	PaidCount   int64
	TotalAmount decimal.Decimal
	FirstPaidAt time.Time
	LastPaidAt  time.Time
}
