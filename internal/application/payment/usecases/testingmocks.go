package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	appnotification "github.com/waveline-inc/waveline/internal/application/notification"
	"github.com/waveline-inc/waveline/internal/application/payment/chain"
	"github.com/waveline-inc/waveline/internal/domain/invoice"
	vo "github.com/waveline-inc/waveline/internal/domain/invoice/valueobjects"
	"github.com/waveline-inc/waveline/internal/domain/referral"
	"github.com/waveline-inc/waveline/internal/domain/sponsorship"
)

type mockInvoiceRepo struct {
	mock.Mock
}

func (m *mockInvoiceRepo) Create(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *mockInvoiceRepo) Update(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *mockInvoiceRepo) GetByID(ctx context.Context, id uint) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) GetBySID(ctx context.Context, sid string) (*invoice.Invoice, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) ListByPayee(ctx context.Context, payeeAddress string, page, pageSize int) ([]*invoice.Invoice, int64, error) {
	args := m.Called(ctx, payeeAddress, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*invoice.Invoice), args.Get(1).(int64), args.Error(2)
}

func (m *mockInvoiceRepo) ListOverduePending(ctx context.Context, asOf time.Time, limit int) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, asOf, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) SumPaidAmountByPayee(ctx context.Context, payeeAddress string) (decimal.Decimal, error) {
	args := m.Called(ctx, payeeAddress)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockInvoiceRepo) CountPaidByPayeeAndPayerEmail(ctx context.Context, payeeAddress, payerEmail string) (int64, error) {
	args := m.Called(ctx, payeeAddress, payerEmail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockInvoiceRepo) ListPaidPayerEmailStats(ctx context.Context, payeeAddress string) ([]invoice.PayerStats, error) {
	args := m.Called(ctx, payeeAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]invoice.PayerStats), args.Error(1)
}

type mockSponsorshipProgramRepo struct {
	mock.Mock
}

func (m *mockSponsorshipProgramRepo) Create(ctx context.Context, program *sponsorship.Program) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *mockSponsorshipProgramRepo) Update(ctx context.Context, program *sponsorship.Program) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *mockSponsorshipProgramRepo) GetByPayeeAddress(ctx context.Context, payeeAddress string) (*sponsorship.Program, error) {
	args := m.Called(ctx, payeeAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sponsorship.Program), args.Error(1)
}

func (m *mockSponsorshipProgramRepo) ListActivePayeeAddresses(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockFavoriteClientRepo struct {
	mock.Mock
}

func (m *mockFavoriteClientRepo) Create(ctx context.Context, client *sponsorship.FavoriteClient) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *mockFavoriteClientRepo) Update(ctx context.Context, client *sponsorship.FavoriteClient) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *mockFavoriteClientRepo) GetByPayeeAndEmail(ctx context.Context, payeeAddress, clientEmail string) (*sponsorship.FavoriteClient, error) {
	args := m.Called(ctx, payeeAddress, clientEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sponsorship.FavoriteClient), args.Error(1)
}

func (m *mockFavoriteClientRepo) ListByPayee(ctx context.Context, payeeAddress string) ([]*sponsorship.FavoriteClient, error) {
	args := m.Called(ctx, payeeAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sponsorship.FavoriteClient), args.Error(1)
}

type mockSponsoredTxRepo struct {
	mock.Mock
}

func (m *mockSponsoredTxRepo) Create(ctx context.Context, tx *sponsorship.SponsoredTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *mockSponsoredTxRepo) ListByPayee(ctx context.Context, payeeAddress string, page, pageSize int) ([]*sponsorship.SponsoredTransaction, int64, error) {
	args := m.Called(ctx, payeeAddress, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*sponsorship.SponsoredTransaction), args.Get(1).(int64), args.Error(2)
}

type mockReferralRepo struct {
	mock.Mock
}

func (m *mockReferralRepo) Create(ctx context.Context, rec *referral.Referral) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockReferralRepo) Update(ctx context.Context, rec *referral.Referral) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockReferralRepo) GetByRefereeAddress(ctx context.Context, refereeAddress string) (*referral.Referral, error) {
	args := m.Called(ctx, refereeAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*referral.Referral), args.Error(1)
}

func (m *mockReferralRepo) ListPendingByReferee(ctx context.Context, refereeAddress string) ([]*referral.Referral, error) {
	args := m.Called(ctx, refereeAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*referral.Referral), args.Error(1)
}

func (m *mockReferralRepo) ListByReferrer(ctx context.Context, referrerAddress string) ([]*referral.Referral, error) {
	args := m.Called(ctx, referrerAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*referral.Referral), args.Error(1)
}

func (m *mockReferralRepo) CountCompletedByReferrer(ctx context.Context, referrerAddress string) (int64, error) {
	args := m.Called(ctx, referrerAddress)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReferralRepo) ListPendingRefereeAddresses(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockReferralProgramRepo struct {
	mock.Mock
}

func (m *mockReferralProgramRepo) Create(ctx context.Context, program *referral.Program) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *mockReferralProgramRepo) Update(ctx context.Context, program *referral.Program) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *mockReferralProgramRepo) GetByReferrerAddress(ctx context.Context, referrerAddress string) (*referral.Program, error) {
	args := m.Called(ctx, referrerAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*referral.Program), args.Error(1)
}

func (m *mockReferralProgramRepo) GetByCode(ctx context.Context, code string) (*referral.Program, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*referral.Program), args.Error(1)
}

type mockRewardRepo struct {
	mock.Mock
}

func (m *mockRewardRepo) Create(ctx context.Context, reward *referral.Reward) error {
	args := m.Called(ctx, reward)
	return args.Error(0)
}

func (m *mockRewardRepo) Update(ctx context.Context, reward *referral.Reward) error {
	args := m.Called(ctx, reward)
	return args.Error(0)
}

func (m *mockRewardRepo) GetByReferralID(ctx context.Context, referralID uint) (*referral.Reward, error) {
	args := m.Called(ctx, referralID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*referral.Reward), args.Error(1)
}

func (m *mockRewardRepo) ListByReferrer(ctx context.Context, referrerAddress string) ([]*referral.Reward, error) {
	args := m.Called(ctx, referrerAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*referral.Reward), args.Error(1)
}

func (m *mockRewardRepo) ListPendingByReferrer(ctx context.Context, referrerAddress string) ([]*referral.Reward, error) {
	args := m.Called(ctx, referrerAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*referral.Reward), args.Error(1)
}

type mockChainClient struct {
	mock.Mock
}

func (m *mockChainClient) GetBalance(ctx context.Context, address string, token vo.Token) (decimal.Decimal, error) {
	args := m.Called(ctx, address, token)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockChainClient) Transfer(ctx context.Context, req chain.TransferRequest) (*chain.TransferResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chain.TransferResult), args.Error(1)
}

func (m *mockChainClient) SponsoredTransfer(ctx context.Context, req chain.TransferRequest) (*chain.TransferResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chain.TransferResult), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) PaymentReceived(ctx context.Context, notice appnotification.PaymentNotice) {
	m.Called(ctx, notice)
}
