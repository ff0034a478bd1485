package sponsorship

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/biztime"
	"github.com/waveline-inc/waveline/internal/shared/id"
)

// SponsoredTxStatus is the outcome recorded on an audit entry.
type SponsoredTxStatus string

const (
	SponsoredTxStatusCompleted SponsoredTxStatus = "completed"
	SponsoredTxStatusFailed    SponsoredTxStatus = "failed"
)

// SponsoredTransaction is an append-only audit record of a single
// sponsorship debit. It is never updated after creation.
type SponsoredTransaction struct {
	id  uint
	sid string

	payeeAddress string
	clientEmail  string
	txHash       string

	originalGasFee  decimal.Decimal
	sponsoredAmount decimal.Decimal
	token           string
	invoiceID       *uint

	status    SponsoredTxStatus
	createdAt time.Time
}

func NewSponsoredTransaction(
	payeeAddress, clientEmail, txHash string,
	originalGasFee, sponsoredAmount decimal.Decimal,
	token string,
	invoiceID *uint,
) (*SponsoredTransaction, error) {
	payeeAddress = normalize.Address(payeeAddress)
	clientEmail = normalize.Email(clientEmail)
	if payeeAddress == "" {
		return nil, fmt.Errorf("payee address is required")
	}
	if txHash == "" {
		return nil, fmt.Errorf("transaction hash is required")
	}
	if !sponsoredAmount.IsPositive() {
		return nil, fmt.Errorf("sponsored amount must be positive")
	}

	return &SponsoredTransaction{
		sid:             id.MustGenerateWithPrefix(id.PrefixSponsoredTx, id.DefaultLength),
		payeeAddress:    payeeAddress,
		clientEmail:     clientEmail,
		txHash:          txHash,
		originalGasFee:  originalGasFee,
		sponsoredAmount: sponsoredAmount,
		token:           token,
		invoiceID:       invoiceID,
		status:          SponsoredTxStatusCompleted,
		createdAt:       biztime.NowUTC(),
	}, nil
}

func (s *SponsoredTransaction) ID() uint                         { return s.id }
func (s *SponsoredTransaction) SID() string                      { return s.sid }
func (s *SponsoredTransaction) PayeeAddress() string             { return s.payeeAddress }
func (s *SponsoredTransaction) ClientEmail() string              { return s.clientEmail }
func (s *SponsoredTransaction) TxHash() string                   { return s.txHash }
func (s *SponsoredTransaction) OriginalGasFee() decimal.Decimal  { return s.originalGasFee }
func (s *SponsoredTransaction) SponsoredAmount() decimal.Decimal { return s.sponsoredAmount }
func (s *SponsoredTransaction) Token() string                    { return s.token }
func (s *SponsoredTransaction) InvoiceID() *uint                 { return s.invoiceID }
func (s *SponsoredTransaction) Status() SponsoredTxStatus        { return s.status }
func (s *SponsoredTransaction) CreatedAt() time.Time             { return s.createdAt }

// SetID sets the record ID after persistence (used by repository after Create)
func (s *SponsoredTransaction) SetID(id uint) {
	s.id = id
}

func ReconstructSponsoredTransaction(
	id uint,
	sid string,
	payeeAddress, clientEmail, txHash string,
	originalGasFee, sponsoredAmount decimal.Decimal,
	token string,
	invoiceID *uint,
	status SponsoredTxStatus,
	createdAt time.Time,
) *SponsoredTransaction {
	return &SponsoredTransaction{
		id:              id,
		sid:             sid,
		payeeAddress:    payeeAddress,
		clientEmail:     clientEmail,
		txHash:          txHash,
		originalGasFee:  originalGasFee,
		sponsoredAmount: sponsoredAmount,
		token:           token,
		invoiceID:       invoiceID,
		status:          status,
		createdAt:       createdAt,
	}
}
