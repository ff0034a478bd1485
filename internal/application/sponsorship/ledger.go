// Package sponsorship drives the gas-sponsorship budget ledger: budget
// debits and credits, favorite-client management and sponsorship stats.
package sponsorship

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/domain/sponsorship"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// maxDebitAttempts bounds the optimistic-lock retry loop. Contention on one
// payee's budget is short-lived; three attempts cover concurrent payments.
const maxDebitAttempts = 3

// Ledger owns every mutation of sponsorship budgets. Debits go through an
// optimistic-lock loop: the program is re-read and the amount re-clamped on
// every version conflict, so concurrent payments can never jointly overdraw
// a budget off a stale read.
type Ledger struct {
	programRepo     sponsorship.ProgramRepository
	favoriteRepo    sponsorship.FavoriteClientRepository
	sponsoredTxRepo sponsorship.SponsoredTransactionRepository
	logger          logger.Interface
}

func NewLedger(
	programRepo sponsorship.ProgramRepository,
	favoriteRepo sponsorship.FavoriteClientRepository,
	sponsoredTxRepo sponsorship.SponsoredTransactionRepository,
	logger logger.Interface,
) *Ledger {
	return &Ledger{
		programRepo:     programRepo,
		favoriteRepo:    favoriteRepo,
		sponsoredTxRepo: sponsoredTxRepo,
		logger:          logger,
	}
}

// DebitRequest describes one sponsorship debit after a sponsored transfer.
type DebitRequest struct {
	PayeeAddress    string
	ClientEmail     string
	TxHash          string
	EstimatedGasFee decimal.Decimal
	ClientCap       decimal.Decimal
	Token           string
	InvoiceID       *uint
}

// DebitResult reports what was actually debited. A zero DebitedAmount with
// Skipped=true means the clamped amount was not positive and no debit ran.
type DebitResult struct {
	DebitedAmount decimal.Decimal
	Skipped       bool
}

// Debit clamps the requested gas fee to the program's limits and applies it.
// The clamp runs inside the retry loop so a concurrent debit that shrinks
// the remaining budget is reflected before this one commits.
func (l *Ledger) Debit(ctx context.Context, req DebitRequest) (*DebitResult, error) {
	payee := normalize.Address(req.PayeeAddress)

	for attempt := 0; attempt < maxDebitAttempts; attempt++ {
		program, err := l.programRepo.GetByPayeeAddress(ctx, payee)
		if err != nil {
			return nil, fmt.Errorf("failed to load sponsorship program: %w", err)
		}
		if program == nil {
			return nil, errors.NewNotFoundError("sponsorship program not found")
		}
		if !program.IsActive() {
			return &DebitResult{DebitedAmount: decimal.Zero, Skipped: true}, nil
		}

		amount := program.ClampDebit(req.EstimatedGasFee, req.ClientCap)
		if !amount.IsPositive() {
			return &DebitResult{DebitedAmount: decimal.Zero, Skipped: true}, nil
		}

		if err := program.Debit(amount); err != nil {
			return nil, err
		}
		if err := l.programRepo.Update(ctx, program); err != nil {
			if errors.IsConflictError(err) {
				l.logger.Debugw("sponsorship debit version conflict, retrying",
					"payee", payee,
					"attempt", attempt+1,
				)
				continue
			}
			return nil, fmt.Errorf("failed to persist sponsorship debit: %w", err)
		}

		l.recordDebit(ctx, req, amount)

		l.logger.Infow("sponsorship budget debited",
			"payee", payee,
			"amount", amount,
			"remaining", program.RemainingBudget(),
		)
		return &DebitResult{DebitedAmount: amount}, nil
	}

	return nil, errors.NewConflictError(fmt.Sprintf("sponsorship debit contention for payee %s", payee))
}

// recordDebit appends the audit row and advances the favorite-client
// counters. Both are best-effort: the budget debit already committed.
func (l *Ledger) recordDebit(ctx context.Context, req DebitRequest, amount decimal.Decimal) {
	audit, err := sponsorship.NewSponsoredTransaction(
		req.PayeeAddress, req.ClientEmail, req.TxHash,
		req.EstimatedGasFee, amount, req.Token, req.InvoiceID,
	)
	if err != nil {
		l.logger.Warnw("failed to build sponsored transaction record",
			"tx_hash", req.TxHash,
			"error", err,
		)
	} else if err := l.sponsoredTxRepo.Create(ctx, audit); err != nil {
		l.logger.Warnw("failed to store sponsored transaction record",
			"tx_hash", req.TxHash,
			"error", err,
		)
	}

	favorite, err := l.favoriteRepo.GetByPayeeAndEmail(ctx, normalize.Address(req.PayeeAddress), normalize.Email(req.ClientEmail))
	if err != nil || favorite == nil {
		l.logger.Warnw("favorite client not found for sponsorship counters",
			"payee", req.PayeeAddress,
			"error", err,
		)
		return
	}
	favorite.RecordSponsorship(amount)
	if err := l.favoriteRepo.Update(ctx, favorite); err != nil {
		l.logger.Warnw("failed to update favorite client sponsorship counters",
			"payee", req.PayeeAddress,
			"error", err,
		)
	}
}

// RecordClientPayment advances a favorite client's cumulative paid-invoice
// stats. The favorite is re-read before the mutation: a debit for the same
// payment may have just persisted sponsored counters, and updating a copy
// read before the debit would write them back stale.
func (l *Ledger) RecordClientPayment(ctx context.Context, payeeAddress, clientEmail string, amount decimal.Decimal, paidAt time.Time) error {
	favorite, err := l.favoriteRepo.GetByPayeeAndEmail(ctx, normalize.Address(payeeAddress), normalize.Email(clientEmail))
	if err != nil {
		return fmt.Errorf("failed to load favorite client: %w", err)
	}
	if favorite == nil {
		return errors.NewNotFoundError("favorite client not found")
	}

	favorite.RecordPayment(amount, paidAt)
	if err := l.favoriteRepo.Update(ctx, favorite); err != nil {
		return fmt.Errorf("failed to persist favorite client payment stats: %w", err)
	}
	return nil
}

// Credit tops up a payee's budget.
func (l *Ledger) Credit(ctx context.Context, payeeAddress string, amount decimal.Decimal) (*sponsorship.Program, error) {
	payee := normalize.Address(payeeAddress)

	for attempt := 0; attempt < maxDebitAttempts; attempt++ {
		program, err := l.programRepo.GetByPayeeAddress(ctx, payee)
		if err != nil {
			return nil, fmt.Errorf("failed to load sponsorship program: %w", err)
		}
		if program == nil {
			return nil, errors.NewNotFoundError("sponsorship program not found")
		}

		if err := program.Credit(amount); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := l.programRepo.Update(ctx, program); err != nil {
			if errors.IsConflictError(err) {
				continue
			}
			return nil, fmt.Errorf("failed to persist budget credit: %w", err)
		}
		return program, nil
	}

	return nil, errors.NewConflictError(fmt.Sprintf("sponsorship credit contention for payee %s", payee))
}

// GetRemaining returns the remaining budget, zero when no program exists.
func (l *Ledger) GetRemaining(ctx context.Context, payeeAddress string) (decimal.Decimal, error) {
	program, err := l.programRepo.GetByPayeeAddress(ctx, normalize.Address(payeeAddress))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load sponsorship program: %w", err)
	}
	if program == nil {
		return decimal.Zero, nil
	}
	return program.RemainingBudget(), nil
}
