package sponsorship

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/biztime"
)

// FavoriteClient marks a (payee, client-email) pair for platform-fee waiver
// and, when enabled, gas sponsorship. The email is the durable client
// identity: clients may pay from different wallets across invoices.
type FavoriteClient struct {
	id           uint
	payeeAddress string
	clientEmail  string
	clientName   string

	gasSponsorshipEnabled bool
	maxGasPerTx           decimal.Decimal

	invoiceCount    int64
	totalAmountPaid decimal.Decimal
	firstInvoiceAt  *time.Time
	lastInvoiceAt   *time.Time

	sponsoredTxCount  int64
	totalGasSponsored decimal.Decimal

	autoAdded bool

	createdAt time.Time
	updatedAt time.Time
}

func NewFavoriteClient(payeeAddress, clientEmail, clientName string, maxGasPerTx decimal.Decimal, autoAdded bool) (*FavoriteClient, error) {
	payeeAddress = normalize.Address(payeeAddress)
	clientEmail = normalize.Email(clientEmail)
	if payeeAddress == "" {
		return nil, fmt.Errorf("payee address is required")
	}
	if clientEmail == "" {
		return nil, fmt.Errorf("client email is required")
	}
	if maxGasPerTx.IsNegative() {
		return nil, fmt.Errorf("per-transaction cap cannot be negative")
	}

	now := biztime.NowUTC()
	return &FavoriteClient{
		payeeAddress:      payeeAddress,
		clientEmail:       clientEmail,
		clientName:        clientName,
		maxGasPerTx:       maxGasPerTx,
		totalAmountPaid:   decimal.Zero,
		totalGasSponsored: decimal.Zero,
		autoAdded:         autoAdded,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// RecordPayment advances the cumulative paid-invoice stats.
func (f *FavoriteClient) RecordPayment(amount decimal.Decimal, paidAt time.Time) {
	f.invoiceCount++
	f.totalAmountPaid = f.totalAmountPaid.Add(amount)
	if f.firstInvoiceAt == nil {
		f.firstInvoiceAt = &paidAt
	}
	f.lastInvoiceAt = &paidAt
	f.updatedAt = biztime.NowUTC()
}

// SeedPaymentStats backfills the paid-invoice stats when a client is
// promoted to favorite from historical invoice data.
func (f *FavoriteClient) SeedPaymentStats(count int64, totalAmount decimal.Decimal, firstPaidAt, lastPaidAt time.Time) {
	f.invoiceCount = count
	f.totalAmountPaid = totalAmount
	f.firstInvoiceAt = &firstPaidAt
	f.lastInvoiceAt = &lastPaidAt
	f.updatedAt = biztime.NowUTC()
}

// RecordSponsorship advances the cumulative sponsored-gas stats.
func (f *FavoriteClient) RecordSponsorship(gasAmount decimal.Decimal) {
	f.sponsoredTxCount++
	f.totalGasSponsored = f.totalGasSponsored.Add(gasAmount)
	f.updatedAt = biztime.NowUTC()
}

func (f *FavoriteClient) EnableGasSponsorship(maxGasPerTx decimal.Decimal) error {
	if !maxGasPerTx.IsPositive() {
		return fmt.Errorf("per-transaction cap must be positive")
	}
	f.gasSponsorshipEnabled = true
	f.maxGasPerTx = maxGasPerTx
	f.updatedAt = biztime.NowUTC()
	return nil
}

func (f *FavoriteClient) DisableGasSponsorship() {
	f.gasSponsorshipEnabled = false
	f.updatedAt = biztime.NowUTC()
}

func (f *FavoriteClient) ID() uint                            { return f.id }
func (f *FavoriteClient) PayeeAddress() string                { return f.payeeAddress }
func (f *FavoriteClient) ClientEmail() string                 { return f.clientEmail }
func (f *FavoriteClient) ClientName() string                  { return f.clientName }
func (f *FavoriteClient) GasSponsorshipEnabled() bool         { return f.gasSponsorshipEnabled }
func (f *FavoriteClient) MaxGasPerTx() decimal.Decimal        { return f.maxGasPerTx }
func (f *FavoriteClient) InvoiceCount() int64                 { return f.invoiceCount }
func (f *FavoriteClient) TotalAmountPaid() decimal.Decimal    { return f.totalAmountPaid }
func (f *FavoriteClient) FirstInvoiceAt() *time.Time          { return f.firstInvoiceAt }
func (f *FavoriteClient) LastInvoiceAt() *time.Time           { return f.lastInvoiceAt }
func (f *FavoriteClient) SponsoredTxCount() int64             { return f.sponsoredTxCount }
func (f *FavoriteClient) TotalGasSponsored() decimal.Decimal  { return f.totalGasSponsored }
func (f *FavoriteClient) AutoAdded() bool                     { return f.autoAdded }
func (f *FavoriteClient) CreatedAt() time.Time                { return f.createdAt }
func (f *FavoriteClient) UpdatedAt() time.Time                { return f.updatedAt }

// SetID sets the record ID after persistence (used by repository after Create)
func (f *FavoriteClient) SetID(id uint) {
	f.id = id
}

func ReconstructFavoriteClient(
	id uint,
	payeeAddress, clientEmail, clientName string,
	gasSponsorshipEnabled bool,
	maxGasPerTx decimal.Decimal,
	invoiceCount int64,
	totalAmountPaid decimal.Decimal,
	firstInvoiceAt, lastInvoiceAt *time.Time,
	sponsoredTxCount int64,
	totalGasSponsored decimal.Decimal,
	autoAdded bool,
	createdAt, updatedAt time.Time,
) *FavoriteClient {
	return &FavoriteClient{
		id:                    id,
		payeeAddress:          payeeAddress,
		clientEmail:           clientEmail,
		clientName:            clientName,
		gasSponsorshipEnabled: gasSponsorshipEnabled,
		maxGasPerTx:           maxGasPerTx,
		invoiceCount:          invoiceCount,
		totalAmountPaid:       totalAmountPaid,
		firstInvoiceAt:        firstInvoiceAt,
		lastInvoiceAt:         lastInvoiceAt,
		sponsoredTxCount:      sponsoredTxCount,
		totalGasSponsored:     totalGasSponsored,
		autoAdded:             autoAdded,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}
