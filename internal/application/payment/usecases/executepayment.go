package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	appnotification "github.com/waveline-inc/waveline/internal/application/notification"
	apppayment "github.com/waveline-inc/waveline/internal/application/payment"
	"github.com/waveline-inc/waveline/internal/application/payment/chain"
	referralusecases "github.com/waveline-inc/waveline/internal/application/referral/usecases"
	appsponsorship "github.com/waveline-inc/waveline/internal/application/sponsorship"
	"github.com/waveline-inc/waveline/internal/domain/invoice"
	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/biztime"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// ExecutePaymentConfig carries the fee and gas parameters of a payment run.
type ExecutePaymentConfig struct {
	// PlatformWallet receives the platform fee leg.
	PlatformWallet string
	// PlatformFee is the flat fee charged per invoice unless waived.
	PlatformFee decimal.Decimal
	// NativeGasEstimate pads the balance check when settling in the native token.
	NativeGasEstimate decimal.Decimal
	// SponsoredGasEstimate is the debit basis for sponsored transfers.
	SponsoredGasEstimate decimal.Decimal
}

// ExecutePaymentUseCase settles an invoice on-chain and reconciles the
// bookkeeping. The run is committed once the principal transfer confirms:
// everything after that point is best-effort and can never turn a settled
// payment into a failure.
type ExecutePaymentUseCase struct {
	invoiceRepo invoice.InvoiceRepository
	eligibility *apppayment.EligibilityResolver
	chainClient chain.Client
	ledger      *appsponsorship.Ledger
	referral    *referralusecases.CheckAndCompleteUseCase
	notifier    appnotification.Notifier
	cfg         ExecutePaymentConfig
	logger      logger.Interface
}

func NewExecutePaymentUseCase(
	invoiceRepo invoice.InvoiceRepository,
	eligibility *apppayment.EligibilityResolver,
	chainClient chain.Client,
	ledger *appsponsorship.Ledger,
	referral *referralusecases.CheckAndCompleteUseCase,
	notifier appnotification.Notifier,
	cfg ExecutePaymentConfig,
	logger logger.Interface,
) *ExecutePaymentUseCase {
	return &ExecutePaymentUseCase{
		invoiceRepo: invoiceRepo,
		eligibility: eligibility,
		chainClient: chainClient,
		ledger:      ledger,
		referral:    referral,
		notifier:    notifier,
		cfg:         cfg,
		logger:      logger,
	}
}

type ExecutePaymentCommand struct {
	InvoiceSID   string
	PayerAddress string
	// PayerEmail supplements the invoice when it was issued without one.
	PayerEmail *string
}

type ExecutePaymentResult struct {
	Success            bool
	TransactionHash    string
	FeeWaived          bool
	GasSponsorshipUsed bool
	ErrorMessage       string
}

// Execute runs the payment state machine: eligibility, advisory balance
// check, sponsored-first transfer with regular fallback, then the three
// independent ledger updates and the notification.
func (uc *ExecutePaymentUseCase) Execute(ctx context.Context, cmd ExecutePaymentCommand) (*ExecutePaymentResult, error) {
	inv, err := uc.invoiceRepo.GetBySID(ctx, cmd.InvoiceSID)
	if err != nil {
		return nil, err
	}
	if !inv.Status().IsPending() {
		return nil, errors.NewConflictError(fmt.Sprintf("invoice %s is %s, not payable", inv.SID(), inv.Status()))
	}

	payerAddress := normalize.Address(cmd.PayerAddress)
	if payerAddress == "" {
		return nil, errors.NewValidationError("payer address is required")
	}

	payerEmail := inv.PayerEmail()
	if payerEmail == nil && cmd.PayerEmail != nil {
		email := normalize.Email(*cmd.PayerEmail)
		if email != "" {
			payerEmail = &email
		}
	}

	eligibility := uc.eligibility.Resolve(ctx, inv.PayeeAddress(), payerEmail)

	uc.logger.Infow("payment started",
		"invoice", inv.SID(),
		"payer", payerAddress,
		"amount", inv.Amount(),
		"token", inv.Token(),
		"fee_waived", eligibility.FeeWaived,
		"gas_sponsored", eligibility.GasSponsored,
	)

	if err := uc.checkBalance(ctx, payerAddress, inv, eligibility.FeeWaived); err != nil {
		return nil, err
	}

	txHash, sponsoredUsed, err := uc.transfer(ctx, payerAddress, inv, eligibility)
	if err != nil {
		return &ExecutePaymentResult{
			Success:      false,
			FeeWaived:    eligibility.FeeWaived,
			ErrorMessage: err.Error(),
		}, nil
	}

	uc.reconcile(ctx, inv, payerEmail, eligibility, txHash, sponsoredUsed)

	uc.notifier.PaymentReceived(ctx, appnotification.PaymentNotice{
		PayeeAddress: inv.PayeeAddress(),
		PayerEmail:   payerEmail,
		InvoiceSID:   inv.SID(),
		Amount:       inv.Amount(),
		Token:        inv.Token().String(),
		TxHash:       txHash,
		FeeWaived:    eligibility.FeeWaived,
		GasSponsored: sponsoredUsed,
	})

	uc.logger.Infow("payment settled",
		"invoice", inv.SID(),
		"tx_hash", txHash,
		"fee_waived", eligibility.FeeWaived,
		"sponsored", sponsoredUsed,
	)

	return &ExecutePaymentResult{
		Success:            true,
		TransactionHash:    txHash,
		FeeWaived:          eligibility.FeeWaived,
		GasSponsorshipUsed: sponsoredUsed,
	}, nil
}

// checkBalance verifies the payer can cover principal, fee and gas. The
// check is advisory: it prevents the common shortfall, not a race with
// other spends from the same wallet.
func (uc *ExecutePaymentUseCase) checkBalance(ctx context.Context, payerAddress string, inv *invoice.Invoice, feeWaived bool) error {
	required := inv.Amount()
	if !feeWaived {
		required = required.Add(uc.cfg.PlatformFee)
	}
	if inv.Token().IsNative() {
		required = required.Add(uc.cfg.NativeGasEstimate)
	}

	balance, err := uc.chainClient.GetBalance(ctx, payerAddress, inv.Token())
	if err != nil {
		return fmt.Errorf("failed to query balance: %w", err)
	}
	if balance.LessThan(required) {
		return errors.NewValidationError(fmt.Sprintf(
			"insufficient %s balance: have %s, need %s", inv.Token(), balance, required))
	}
	return nil
}

// transfer executes the principal transfer, sponsored-first when eligible,
// and then the fee leg. The fallback reuses the already-built request so the
// principal amount is derived exactly once. The returned hash is the
// settlement hash: always the principal leg, never the fee leg.
func (uc *ExecutePaymentUseCase) transfer(ctx context.Context, payerAddress string, inv *invoice.Invoice, eligibility apppayment.Eligibility) (string, bool, error) {
	principal := chain.TransferRequest{
		From:   payerAddress,
		To:     inv.PayeeAddress(),
		Amount: inv.Amount(),
		Token:  inv.Token(),
	}

	var result *chain.TransferResult
	var err error
	sponsoredUsed := false

	if eligibility.GasSponsored {
		result, err = uc.chainClient.SponsoredTransfer(ctx, principal)
		if err == nil {
			sponsoredUsed = true
		} else {
			uc.logger.Warnw("sponsored transfer failed, falling back to regular transfer",
				"invoice", inv.SID(),
				"error", err,
			)
			result, err = uc.chainClient.Transfer(ctx, principal)
		}
	} else {
		result, err = uc.chainClient.Transfer(ctx, principal)
	}
	if err != nil {
		return "", false, fmt.Errorf("transfer failed: %w", err)
	}

	if !eligibility.FeeWaived {
		fee := chain.TransferRequest{
			From:   payerAddress,
			To:     normalize.Address(uc.cfg.PlatformWallet),
			Amount: uc.cfg.PlatformFee,
			Token:  inv.Token(),
		}
		if _, feeErr := uc.chainClient.Transfer(ctx, fee); feeErr != nil {
			// principal already settled; the fee leg cannot fail the payment
			uc.logger.Errorw("platform fee transfer failed after settlement",
				"invoice", inv.SID(),
				"fee", uc.cfg.PlatformFee,
				"error", feeErr,
			)
		}
	}

	return result.TxHash, sponsoredUsed, nil
}

// reconcile drives the three ledgers to their post-payment state. Each step
// is independent: one failing is logged and must not stop the others.
func (uc *ExecutePaymentUseCase) reconcile(ctx context.Context, inv *invoice.Invoice, payerEmail *string, eligibility apppayment.Eligibility, txHash string, sponsoredUsed bool) {
	if err := inv.MarkAsPaid(txHash); err != nil {
		uc.logger.Errorw("failed to mark invoice paid",
			"invoice", inv.SID(),
			"error", err,
		)
	} else if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		uc.logger.Errorw("failed to persist paid invoice",
			"invoice", inv.SID(),
			"tx_hash", txHash,
			"error", err,
		)
	}

	if sponsoredUsed && eligibility.Favorite != nil {
		invoiceID := inv.ID()
		_, err := uc.ledger.Debit(ctx, appsponsorship.DebitRequest{
			PayeeAddress:    inv.PayeeAddress(),
			ClientEmail:     eligibility.Favorite.ClientEmail(),
			TxHash:          txHash,
			EstimatedGasFee: uc.cfg.SponsoredGasEstimate,
			ClientCap:       eligibility.Favorite.MaxGasPerTx(),
			Token:           inv.Token().String(),
			InvoiceID:       &invoiceID,
		})
		if err != nil {
			uc.logger.Errorw("sponsorship debit failed after settlement",
				"invoice", inv.SID(),
				"payee", inv.PayeeAddress(),
				"error", err,
			)
		}
	}

	if eligibility.Favorite != nil {
		if err := uc.ledger.RecordClientPayment(ctx, inv.PayeeAddress(), eligibility.Favorite.ClientEmail(), inv.Amount(), biztime.NowUTC()); err != nil {
			uc.logger.Warnw("failed to update favorite client payment stats",
				"invoice", inv.SID(),
				"error", err,
			)
		}
	}

	if _, err := uc.referral.Execute(ctx, inv.PayeeAddress()); err != nil {
		uc.logger.Errorw("referral re-check failed after settlement",
			"invoice", inv.SID(),
			"payee", inv.PayeeAddress(),
			"error", err,
		)
	}
}
