package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apppayment "github.com/waveline-inc/waveline/internal/application/payment"
	"github.com/waveline-inc/waveline/internal/application/payment/chain"
	referralusecases "github.com/waveline-inc/waveline/internal/application/referral/usecases"
	appsponsorship "github.com/waveline-inc/waveline/internal/application/sponsorship"
	"github.com/waveline-inc/waveline/internal/domain/invoice"
	vo "github.com/waveline-inc/waveline/internal/domain/invoice/valueobjects"
	"github.com/waveline-inc/waveline/internal/domain/referral"
	"github.com/waveline-inc/waveline/internal/domain/sponsorship"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string { return &s }

type paymentFixture struct {
	invoiceRepo     *mockInvoiceRepo
	programRepo     *mockSponsorshipProgramRepo
	favoriteRepo    *mockFavoriteClientRepo
	sponsoredTxRepo *mockSponsoredTxRepo
	referralRepo    *mockReferralRepo
	refProgramRepo  *mockReferralProgramRepo
	rewardRepo      *mockRewardRepo
	chainClient     *mockChainClient
	notifier        *mockNotifier

	uc *ExecutePaymentUseCase
}

func newPaymentFixture(t *testing.T, cfg ExecutePaymentConfig) *paymentFixture {
	t.Helper()

	f := &paymentFixture{
		invoiceRepo:     &mockInvoiceRepo{},
		programRepo:     &mockSponsorshipProgramRepo{},
		favoriteRepo:    &mockFavoriteClientRepo{},
		sponsoredTxRepo: &mockSponsoredTxRepo{},
		referralRepo:    &mockReferralRepo{},
		refProgramRepo:  &mockReferralProgramRepo{},
		rewardRepo:      &mockRewardRepo{},
		chainClient:     &mockChainClient{},
		notifier:        &mockNotifier{},
	}

	log := logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))

	tiers, err := referral.NewTierTable([]referral.Tier{
		{Level: 0, Name: "Bronze", MinReferrals: 0, Multiplier: dec("1.0")},
		{Level: 1, Name: "Silver", MinReferrals: 5, Multiplier: dec("1.2")},
	})
	require.NoError(t, err)

	resolver := apppayment.NewEligibilityResolver(f.favoriteRepo, f.programRepo, log)
	ledger := appsponsorship.NewLedger(f.programRepo, f.favoriteRepo, f.sponsoredTxRepo, log)
	checker := referralusecases.NewCheckAndCompleteUseCase(
		f.referralRepo, f.refProgramRepo, f.rewardRepo, f.invoiceRepo,
		referralusecases.Config{
			BaseReward:           dec("50"),
			RewardToken:          "USDC",
			MinActivityThreshold: dec("100"),
			RewardDelay:          7 * 24 * time.Hour,
			Tiers:                tiers,
		},
		log,
	)

	f.uc = NewExecutePaymentUseCase(
		f.invoiceRepo, resolver, f.chainClient, ledger, checker, f.notifier, cfg, log,
	)
	return f
}

func defaultConfig() ExecutePaymentConfig {
	return ExecutePaymentConfig{
		PlatformWallet:       "0xplatform",
		PlatformFee:          dec("0.2"),
		NativeGasEstimate:    dec("0.001"),
		SponsoredGasEstimate: dec("0.001"),
	}
}

func pendingInvoice(t *testing.T, token vo.Token, amount string) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewInvoice("0xpayee", dec(amount), token, strPtr("client@example.com"), "work")
	require.NoError(t, err)
	inv.SetID(1)
	return inv
}

func toPayee(amount string) interface{} {
	return mock.MatchedBy(func(req chain.TransferRequest) bool {
		return req.To == "0xpayee" && req.Amount.Equal(dec(amount))
	})
}

func toPlatform(amount string) interface{} {
	return mock.MatchedBy(func(req chain.TransferRequest) bool {
		return req.To == "0xplatform" && req.Amount.Equal(dec(amount))
	})
}

func TestExecutePayment_RegularPath(t *testing.T) {
	f := newPaymentFixture(t, defaultConfig())
	inv := pendingInvoice(t, vo.TokenUSDC, "100")

	f.invoiceRepo.On("GetBySID", mock.Anything, inv.SID()).Return(inv, nil)
	f.favoriteRepo.On("GetByPayeeAndEmail", mock.Anything, "0xpayee", "client@example.com").Return(nil, nil)
	// required = 100 principal + 0.2 fee
	f.chainClient.On("GetBalance", mock.Anything, "0xpayer", vo.TokenUSDC).Return(dec("100.2"), nil)
	f.chainClient.On("Transfer", mock.Anything, toPayee("100")).Return(&chain.TransferResult{TxHash: "0xprincipal"}, nil)
	f.chainClient.On("Transfer", mock.Anything, toPlatform("0.2")).Return(&chain.TransferResult{TxHash: "0xfee"}, nil)
	f.invoiceRepo.On("Update", mock.Anything, inv).Return(nil)
	f.referralRepo.On("ListPendingByReferee", mock.Anything, "0xpayee").Return([]*referral.Referral{}, nil)
	f.notifier.On("PaymentReceived", mock.Anything, mock.Anything).Return()

	result, err := f.uc.Execute(context.Background(), ExecutePaymentCommand{
		InvoiceSID:   inv.SID(),
		PayerAddress: "0xPayer",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "0xprincipal", result.TransactionHash, "settlement hash is the principal leg, not the fee leg")
	assert.False(t, result.FeeWaived)
	assert.False(t, result.GasSponsorshipUsed)

	assert.Equal(t, vo.InvoiceStatusPaid, inv.Status())
	require.NotNil(t, inv.TxHash())
	assert.Equal(t, "0xprincipal", *inv.TxHash())

	f.chainClient.AssertNotCalled(t, "SponsoredTransfer", mock.Anything, mock.Anything)
	f.chainClient.AssertNumberOfCalls(t, "Transfer", 2)
	f.notifier.AssertNumberOfCalls(t, "PaymentReceived", 1)
}

func TestExecutePayment_FeeWaived(t *testing.T) {
	f := newPaymentFixture(t, defaultConfig())
	inv := pendingInvoice(t, vo.TokenUSDC, "100")

	favorite, err := sponsorship.NewFavoriteClient("0xpayee", "client@example.com", "Acme", dec("0.01"), false)
	require.NoError(t, err)

	f.invoiceRepo.On("GetBySID", mock.Anything, inv.SID()).Return(inv, nil)
	f.favoriteRepo.On("GetByPayeeAndEmail", mock.Anything, "0xpayee", "client@example.com").Return(favorite, nil)
	// fee waived, so exactly the invoice amount is required
	f.chainClient.On("GetBalance", mock.Anything, "0xpayer", vo.TokenUSDC).Return(dec("100"), nil)
	f.chainClient.On("Transfer", mock.Anything, toPayee("100")).Return(&chain.TransferResult{TxHash: "0xprincipal"}, nil)
	f.invoiceRepo.On("Update", mock.Anything, inv).Return(nil)
	f.favoriteRepo.On("Update", mock.Anything, favorite).Return(nil)
	f.referralRepo.On("ListPendingByReferee", mock.Anything, "0xpayee").Return([]*referral.Referral{}, nil)
	f.notifier.On("PaymentReceived", mock.Anything, mock.Anything).Return()

	result, err := f.uc.Execute(context.Background(), ExecutePaymentCommand{
		InvoiceSID:   inv.SID(),
		PayerAddress: "0xpayer",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.FeeWaived)
	assert.False(t, result.GasSponsorshipUsed, "favorite without enablement gets no sponsorship")

	// the fee leg must never be submitted for a waived payment
	f.chainClient.AssertNumberOfCalls(t, "Transfer", 1)
	assert.Equal(t, int64(1), favorite.InvoiceCount())
	assert.True(t, favorite.TotalAmountPaid().Equal(dec("100")))
}

func TestExecutePayment_SponsoredPath(t *testing.T) {
	cfg := defaultConfig()
	cfg.SponsoredGasEstimate = dec("0.003")
	f := newPaymentFixture(t, cfg)
	inv := pendingInvoice(t, vo.TokenUSDC, "100")

	favorite, err := sponsorship.NewFavoriteClient("0xpayee", "client@example.com", "Acme", dec("0.01"), false)
	require.NoError(t, err)
	require.NoError(t, favorite.EnableGasSponsorship(dec("0.01")))

	program, err := sponsorship.NewProgram("0xpayee", dec("1"), dec("0.01"))
	require.NoError(t, err)
	// drain so 0.005 remains: debit should clamp to the 0.003 estimate
	require.NoError(t, program.Debit(dec("0.995")))

	f.invoiceRepo.On("GetBySID", mock.Anything, inv.SID()).Return(inv, nil)
	f.favoriteRepo.On("GetByPayeeAndEmail", mock.Anything, "0xpayee", "client@example.com").Return(favorite, nil)
	f.programRepo.On("GetByPayeeAddress", mock.Anything, "0xpayee").Return(program, nil)
	f.chainClient.On("GetBalance", mock.Anything, "0xpayer", vo.TokenUSDC).Return(dec("500"), nil)
	f.chainClient.On("SponsoredTransfer", mock.Anything, toPayee("100")).Return(&chain.TransferResult{TxHash: "0xsponsored"}, nil)
	f.invoiceRepo.On("Update", mock.Anything, inv).Return(nil)
	f.programRepo.On("Update", mock.Anything, program).Return(nil)
	f.sponsoredTxRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.favoriteRepo.On("Update", mock.Anything, favorite).Return(nil)
	f.referralRepo.On("ListPendingByReferee", mock.Anything, "0xpayee").Return([]*referral.Referral{}, nil)
	f.notifier.On("PaymentReceived", mock.Anything, mock.Anything).Return()

	result, err := f.uc.Execute(context.Background(), ExecutePaymentCommand{
		InvoiceSID:   inv.SID(),
		PayerAddress: "0xpayer",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.FeeWaived)
	assert.True(t, result.GasSponsorshipUsed)
	assert.Equal(t, "0xsponsored", result.TransactionHash)

	// debited the 0.003 estimate, leaving 0.002 of the 0.005 budget
	assert.True(t, program.RemainingBudget().Equal(dec("0.002")),
		"remaining = %s", program.RemainingBudget())
	assert.Equal(t, int64(1), favorite.SponsoredTxCount())
	assert.True(t, favorite.TotalGasSponsored().Equal(dec("0.003")))

	f.chainClient.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything)
	f.sponsoredTxRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestExecutePayment_SponsoredFallback(t *testing.T) {
	f := newPaymentFixture(t, defaultConfig())
	inv := pendingInvoice(t, vo.TokenUSDC, "100")

	favorite, err := sponsorship.NewFavoriteClient("0xpayee", "client@example.com", "", dec("0.01"), false)
	require.NoError(t, err)
	require.NoError(t, favorite.EnableGasSponsorship(dec("0.01")))

	program, err := sponsorship.NewProgram("0xpayee", dec("1"), dec("0.01"))
	require.NoError(t, err)

	f.invoiceRepo.On("GetBySID", mock.Anything, inv.SID()).Return(inv, nil)
	f.favoriteRepo.On("GetByPayeeAndEmail", mock.Anything, "0xpayee", "client@example.com").Return(favorite, nil)
	f.programRepo.On("GetByPayeeAddress", mock.Anything, "0xpayee").Return(program, nil)
	f.chainClient.On("GetBalance", mock.Anything, "0xpayer", vo.TokenUSDC).Return(dec("500"), nil)
	f.chainClient.On("SponsoredTransfer", mock.Anything, toPayee("100")).Return(nil, fmt.Errorf("relay unavailable"))
	f.chainClient.On("Transfer", mock.Anything, toPayee("100")).Return(&chain.TransferResult{TxHash: "0xfallback"}, nil)
	f.invoiceRepo.On("Update", mock.Anything, inv).Return(nil)
	f.favoriteRepo.On("Update", mock.Anything, favorite).Return(nil)
	f.referralRepo.On("ListPendingByReferee", mock.Anything, "0xpayee").Return([]*referral.Referral{}, nil)
	f.notifier.On("PaymentReceived", mock.Anything, mock.Anything).Return()

	result, err := f.uc.Execute(context.Background(), ExecutePaymentCommand{
		InvoiceSID:   inv.SID(),
		PayerAddress: "0xpayer",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.GasSponsorshipUsed, "fallback settlement is not a sponsored one")
	assert.Equal(t, "0xfallback", result.TransactionHash)

	// exactly one principal transfer, and no budget debit for a fallback
	f.chainClient.AssertNumberOfCalls(t, "Transfer", 1)
	f.programRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.sponsoredTxRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.True(t, program.RemainingBudget().Equal(dec("1")), "budget untouched on fallback")
}

func TestExecutePayment_InsufficientBalance(t *testing.T) {
	f := newPaymentFixture(t, defaultConfig())
	inv := pendingInvoice(t, vo.TokenUSDC, "100")

	f.invoiceRepo.On("GetBySID", mock.Anything, inv.SID()).Return(inv, nil)
	f.favoriteRepo.On("GetByPayeeAndEmail", mock.Anything, "0xpayee", "client@example.com").Return(nil, nil)
	f.chainClient.On("GetBalance", mock.Anything, "0xpayer", vo.TokenUSDC).Return(dec("100.1"), nil)

	_, err := f.uc.Execute(context.Background(), ExecutePaymentCommand{
		InvoiceSID:   inv.SID(),
		PayerAddress: "0xpayer",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient")

	// nothing was submitted on-chain and no ledger was touched
	f.chainClient.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything)
	f.chainClient.AssertNotCalled(t, "SponsoredTransfer", mock.Anything, mock.Anything)
	f.invoiceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, vo.InvoiceStatusPending, inv.Status())
}

func TestExecutePayment_NativeTokenGasPadding(t *testing.T) {
	f := newPaymentFixture(t, defaultConfig())
	inv := pendingInvoice(t, vo.TokenNative, "10")

	f.invoiceRepo.On("GetBySID", mock.Anything, inv.SID()).Return(inv, nil)
	f.favoriteRepo.On("GetByPayeeAndEmail", mock.Anything, "0xpayee", "client@example.com").Return(nil, nil)
	// 10 principal + 0.2 fee + 0.001 native gas = 10.201, so 10.2 is short
	f.chainClient.On("GetBalance", mock.Anything, "0xpayer", vo.TokenNative).Return(dec("10.2"), nil)

	_, err := f.uc.Execute(context.Background(), ExecutePaymentCommand{
		InvoiceSID:   inv.SID(),
		PayerAddress: "0xpayer",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10.201")
}

func TestExecutePayment_BothTransfersFail(t *testing.T) {
	f := newPaymentFixture(t, defaultConfig())
	inv := pendingInvoice(t, vo.TokenUSDC, "100")

	favorite, err := sponsorship.NewFavoriteClient("0xpayee", "client@example.com", "", dec("0.01"), false)
	require.NoError(t, err)
	require.NoError(t, favorite.EnableGasSponsorship(dec("0.01")))
	program, err := sponsorship.NewProgram("0xpayee", dec("1"), dec("0.01"))
	require.NoError(t, err)

	f.invoiceRepo.On("GetBySID", mock.Anything, inv.SID()).Return(inv, nil)
	f.favoriteRepo.On("GetByPayeeAndEmail", mock.Anything, "0xpayee", "client@example.com").Return(favorite, nil)
	f.programRepo.On("GetByPayeeAddress", mock.Anything, "0xpayee").Return(program, nil)
	f.chainClient.On("GetBalance", mock.Anything, "0xpayer", vo.TokenUSDC).Return(dec("500"), nil)
	f.chainClient.On("SponsoredTransfer", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("relay unavailable"))
	f.chainClient.On("Transfer", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("rpc timeout"))

	result, err := f.uc.Execute(context.Background(), ExecutePaymentCommand{
		InvoiceSID:   inv.SID(),
		PayerAddress: "0xpayer",
	})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.ErrorMessage)
	assert.Empty(t, result.TransactionHash)

	// nothing is reconciled when settlement never happened
	f.invoiceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.programRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "PaymentReceived", mock.Anything, mock.Anything)
	assert.Equal(t, vo.InvoiceStatusPending, inv.Status())
	assert.True(t, program.RemainingBudget().Equal(dec("1")))
}

func TestExecutePayment_NoPayerEmail(t *testing.T) {
	f := newPaymentFixture(t, defaultConfig())
	inv, err := invoice.NewInvoice("0xpayee", dec("100"), vo.TokenUSDC, nil, "")
	require.NoError(t, err)
	inv.SetID(2)

	f.invoiceRepo.On("GetBySID", mock.Anything, inv.SID()).Return(inv, nil)
	f.chainClient.On("GetBalance", mock.Anything, "0xpayer", vo.TokenUSDC).Return(dec("200"), nil)
	f.chainClient.On("Transfer", mock.Anything, toPayee("100")).Return(&chain.TransferResult{TxHash: "0xprincipal"}, nil)
	f.chainClient.On("Transfer", mock.Anything, toPlatform("0.2")).Return(&chain.TransferResult{TxHash: "0xfee"}, nil)
	f.invoiceRepo.On("Update", mock.Anything, inv).Return(nil)
	f.referralRepo.On("ListPendingByReferee", mock.Anything, "0xpayee").Return([]*referral.Referral{}, nil)
	f.notifier.On("PaymentReceived", mock.Anything, mock.Anything).Return()

	result, err := f.uc.Execute(context.Background(), ExecutePaymentCommand{
		InvoiceSID:   inv.SID(),
		PayerAddress: "0xpayer",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.FeeWaived, "no email means no favorite lookup and no waiver")
	// no email, so the favorite lookup must never run
	f.favoriteRepo.AssertNotCalled(t, "GetByPayeeAndEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecutePayment_NotPending(t *testing.T) {
	f := newPaymentFixture(t, defaultConfig())
	inv := pendingInvoice(t, vo.TokenUSDC, "100")
	require.NoError(t, inv.MarkAsPaid("0xearlier"))

	f.invoiceRepo.On("GetBySID", mock.Anything, inv.SID()).Return(inv, nil)

	_, err := f.uc.Execute(context.Background(), ExecutePaymentCommand{
		InvoiceSID:   inv.SID(),
		PayerAddress: "0xpayer",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not payable")
}

// favoriteStore emulates database row semantics for favorite clients: every
// read returns a fresh copy of the stored row and every update replaces all
// columns, so a stale copy persisted late wipes out interim counter updates.
type favoriteStore struct {
	row *sponsorship.FavoriteClient
}

func (s *favoriteStore) copyRow() *sponsorship.FavoriteClient {
	f := s.row
	return sponsorship.ReconstructFavoriteClient(
		f.ID(), f.PayeeAddress(), f.ClientEmail(), f.ClientName(),
		f.GasSponsorshipEnabled(), f.MaxGasPerTx(),
		f.InvoiceCount(), f.TotalAmountPaid(), f.FirstInvoiceAt(), f.LastInvoiceAt(),
		f.SponsoredTxCount(), f.TotalGasSponsored(), f.AutoAdded(),
		f.CreatedAt(), f.UpdatedAt(),
	)
}

func (s *favoriteStore) Create(ctx context.Context, client *sponsorship.FavoriteClient) error {
	s.row = client
	return nil
}

func (s *favoriteStore) Update(ctx context.Context, client *sponsorship.FavoriteClient) error {
	s.row = client
	return nil
}

func (s *favoriteStore) GetByPayeeAndEmail(ctx context.Context, payeeAddress, clientEmail string) (*sponsorship.FavoriteClient, error) {
	if s.row == nil || s.row.PayeeAddress() != payeeAddress || s.row.ClientEmail() != clientEmail {
		return nil, nil
	}
	return s.copyRow(), nil
}

func (s *favoriteStore) ListByPayee(ctx context.Context, payeeAddress string) ([]*sponsorship.FavoriteClient, error) {
	if s.row == nil {
		return nil, nil
	}
	return []*sponsorship.FavoriteClient{s.copyRow()}, nil
}

func TestExecutePayment_SponsoredCountersSurviveStatsUpdate(t *testing.T) {
	cfg := defaultConfig()
	cfg.SponsoredGasEstimate = dec("0.003")

	favorite, err := sponsorship.NewFavoriteClient("0xpayee", "client@example.com", "Acme", dec("0.01"), false)
	require.NoError(t, err)
	require.NoError(t, favorite.EnableGasSponsorship(dec("0.01")))
	favorite.SetID(5)
	store := &favoriteStore{row: favorite}

	program, err := sponsorship.NewProgram("0xpayee", dec("1"), dec("0.01"))
	require.NoError(t, err)

	invoiceRepo := &mockInvoiceRepo{}
	programRepo := &mockSponsorshipProgramRepo{}
	sponsoredTxRepo := &mockSponsoredTxRepo{}
	referralRepo := &mockReferralRepo{}
	chainClient := &mockChainClient{}
	notifier := &mockNotifier{}
	log := logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))

	tiers, err := referral.NewTierTable([]referral.Tier{
		{Level: 0, Name: "Bronze", MinReferrals: 0, Multiplier: dec("1.0")},
	})
	require.NoError(t, err)

	uc := NewExecutePaymentUseCase(
		invoiceRepo,
		apppayment.NewEligibilityResolver(store, programRepo, log),
		chainClient,
		appsponsorship.NewLedger(programRepo, store, sponsoredTxRepo, log),
		referralusecases.NewCheckAndCompleteUseCase(
			referralRepo, &mockReferralProgramRepo{}, &mockRewardRepo{}, invoiceRepo,
			referralusecases.Config{
				BaseReward:           dec("50"),
				RewardToken:          "USDC",
				MinActivityThreshold: dec("100"),
				RewardDelay:          7 * 24 * time.Hour,
				Tiers:                tiers,
			},
			log,
		),
		notifier,
		cfg,
		log,
	)

	inv := pendingInvoice(t, vo.TokenUSDC, "100")
	invoiceRepo.On("GetBySID", mock.Anything, inv.SID()).Return(inv, nil)
	invoiceRepo.On("Update", mock.Anything, inv).Return(nil)
	programRepo.On("GetByPayeeAddress", mock.Anything, "0xpayee").Return(program, nil)
	programRepo.On("Update", mock.Anything, program).Return(nil)
	chainClient.On("GetBalance", mock.Anything, "0xpayer", vo.TokenUSDC).Return(dec("500"), nil)
	chainClient.On("SponsoredTransfer", mock.Anything, toPayee("100")).Return(&chain.TransferResult{TxHash: "0xsponsored"}, nil)
	sponsoredTxRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	referralRepo.On("ListPendingByReferee", mock.Anything, "0xpayee").Return([]*referral.Referral{}, nil)
	notifier.On("PaymentReceived", mock.Anything, mock.Anything).Return()

	result, err := uc.Execute(context.Background(), ExecutePaymentCommand{
		InvoiceSID:   inv.SID(),
		PayerAddress: "0xpayer",
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	require.True(t, result.GasSponsorshipUsed)

	// the final row must carry both the debit counters and the payment stats
	assert.Equal(t, int64(1), store.row.SponsoredTxCount())
	assert.True(t, store.row.TotalGasSponsored().Equal(dec("0.003")),
		"gas sponsored = %s", store.row.TotalGasSponsored())
	assert.Equal(t, int64(1), store.row.InvoiceCount())
	assert.True(t, store.row.TotalAmountPaid().Equal(dec("100")))
}
