package invoice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "github.com/waveline-inc/waveline/internal/domain/invoice/valueobjects"
	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/biztime"
	"github.com/waveline-inc/waveline/internal/shared/id"
)

// Invoice is the settlement record for a single freelance engagement.
// It is created at issuance time and transitions to paid exactly once,
// carrying the transaction hash of the principal on-chain transfer.
type Invoice struct {
	id  uint
	sid string

	payeeAddress string
	payerEmail   *string
	amount       decimal.Decimal
	token        vo.Token
	description  string
	dueDate      *time.Time

	status vo.InvoiceStatus
	txHash *string
	paidAt *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewInvoice(payeeAddress string, amount decimal.Decimal, token vo.Token, payerEmail *string, description string) (*Invoice, error) {
	payeeAddress = normalize.Address(payeeAddress)
	if payeeAddress == "" {
		return nil, fmt.Errorf("payee address is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}
	if !token.IsValid() {
		return nil, fmt.Errorf("unsupported token %s", token)
	}
	if payerEmail != nil {
		email := normalize.Email(*payerEmail)
		if email == "" {
			payerEmail = nil
		} else {
			payerEmail = &email
		}
	}

	now := biztime.NowUTC()
	return &Invoice{
		sid:          id.MustGenerateWithPrefix(id.PrefixInvoice, id.DefaultLength),
		payeeAddress: payeeAddress,
		payerEmail:   payerEmail,
		amount:       amount,
		token:        token,
		description:  description,
		status:       vo.InvoiceStatusPending,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// MarkAsPaid records the settlement hash of the principal transfer.
// Calling it again on an already-paid invoice is a no-op.
func (i *Invoice) MarkAsPaid(txHash string) error {
	if i.status == vo.InvoiceStatusPaid {
		return nil
	}
	if i.status != vo.InvoiceStatusPending {
		return fmt.Errorf("cannot mark invoice as paid with status %s", i.status)
	}
	if txHash == "" {
		return fmt.Errorf("transaction hash is required")
	}

	now := biztime.NowUTC()
	i.status = vo.InvoiceStatusPaid
	i.txHash = &txHash
	i.paidAt = &now
	i.updatedAt = now
	i.version++

	return nil
}

func (i *Invoice) MarkAsFailed() error {
	if i.status.IsFinal() {
		return fmt.Errorf("cannot mark invoice as failed with final status %s", i.status)
	}

	i.status = vo.InvoiceStatusFailed
	i.updatedAt = biztime.NowUTC()
	i.version++

	return nil
}

// SetDueDate attaches the payment deadline used by the reminder sweep.
// Only a pending invoice can have its deadline changed.
func (i *Invoice) SetDueDate(dueDate time.Time) error {
	if i.status != vo.InvoiceStatusPending {
		return fmt.Errorf("cannot set due date with status %s", i.status)
	}
	i.dueDate = &dueDate
	i.updatedAt = biztime.NowUTC()
	return nil
}

// DaysOverdue reports how many whole days past due the invoice is at the
// given instant. Zero when no due date is set or the deadline has not passed.
func (i *Invoice) DaysOverdue(now time.Time) int {
	if i.dueDate == nil || now.Before(*i.dueDate) {
		return 0
	}
	return int(now.Sub(*i.dueDate).Hours() / 24)
}

// SetPayerEmail attaches the payer identity supplied at payment time.
// An email already present at issuance is not overwritten.
func (i *Invoice) SetPayerEmail(email string) {
	if i.payerEmail != nil {
		return
	}
	normalized := normalize.Email(email)
	if normalized == "" {
		return
	}
	i.payerEmail = &normalized
	i.updatedAt = biztime.NowUTC()
}

func (i *Invoice) ID() uint                  { return i.id }
func (i *Invoice) SID() string               { return i.sid }
func (i *Invoice) PayeeAddress() string      { return i.payeeAddress }
func (i *Invoice) PayerEmail() *string       { return i.payerEmail }
func (i *Invoice) Amount() decimal.Decimal   { return i.amount }
func (i *Invoice) Token() vo.Token           { return i.token }
func (i *Invoice) Description() string       { return i.description }
func (i *Invoice) DueDate() *time.Time       { return i.dueDate }
func (i *Invoice) Status() vo.InvoiceStatus  { return i.status }
func (i *Invoice) TxHash() *string           { return i.txHash }
func (i *Invoice) PaidAt() *time.Time        { return i.paidAt }
func (i *Invoice) Version() int              { return i.version }
func (i *Invoice) CreatedAt() time.Time      { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time      { return i.updatedAt }

// SetID sets the invoice ID after persistence (used by repository after Create)
func (i *Invoice) SetID(id uint) {
	i.id = id
}

func ReconstructInvoice(
	id uint,
	sid string,
	payeeAddress string,
	payerEmail *string,
	amount decimal.Decimal,
	token vo.Token,
	description string,
	dueDate *time.Time,
	status vo.InvoiceStatus,
	txHash *string,
	paidAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) *Invoice {
	return &Invoice{
		id:           id,
		sid:          sid,
		payeeAddress: payeeAddress,
		payerEmail:   payerEmail,
		amount:       amount,
		token:        token,
		description:  description,
		dueDate:      dueDate,
		status:       status,
		txHash:       txHash,
		paidAt:       paidAt,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}
