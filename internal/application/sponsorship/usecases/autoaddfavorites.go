package usecases

import (
	"context"
	"fmt"

	"github.com/waveline-inc/waveline/internal/domain/invoice"
	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/domain/sponsorship"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// AutoAddFavoritesUseCase promotes repeat clients to favorites once their
// paid-invoice count crosses the configured threshold. It runs per payee
// and is safe to re-run: existing favorites are left untouched.
type AutoAddFavoritesUseCase struct {
	favoriteRepo sponsorship.FavoriteClientRepository
	invoiceRepo  invoice.InvoiceRepository
	cfg          Config
	logger       logger.Interface
}

func NewAutoAddFavoritesUseCase(
	favoriteRepo sponsorship.FavoriteClientRepository,
	invoiceRepo invoice.InvoiceRepository,
	cfg Config,
	logger logger.Interface,
) *AutoAddFavoritesUseCase {
	return &AutoAddFavoritesUseCase{
		favoriteRepo: favoriteRepo,
		invoiceRepo:  invoiceRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

type AutoAddFavoritesResult struct {
	Added int
}

func (uc *AutoAddFavoritesUseCase) Execute(ctx context.Context, payeeAddress string) (*AutoAddFavoritesResult, error) {
	payee := normalize.Address(payeeAddress)

	stats, err := uc.invoiceRepo.ListPaidPayerEmailStats(ctx, payee)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payer stats: %w", err)
	}

	result := &AutoAddFavoritesResult{}
	for _, stat := range stats {
		if stat.PaidCount < int64(uc.cfg.AutoFavoriteThreshold) {
			continue
		}

		existing, err := uc.favoriteRepo.GetByPayeeAndEmail(ctx, payee, stat.PayerEmail)
		if err != nil {
			uc.logger.Warnw("favorite lookup failed during auto-add",
				"payee", payee,
				"client", stat.PayerEmail,
				"error", err,
			)
			continue
		}
		if existing != nil {
			continue
		}

		favorite, err := sponsorship.NewFavoriteClient(payee, stat.PayerEmail, "", uc.cfg.DefaultMaxGasPerTx, true)
		if err != nil {
			continue
		}
		favorite.SeedPaymentStats(stat.PaidCount, stat.TotalAmount, stat.FirstPaidAt, stat.LastPaidAt)

		if err := uc.favoriteRepo.Create(ctx, favorite); err != nil {
			if !errors.IsDuplicateError(err) {
				uc.logger.Warnw("failed to auto-add favorite client",
					"payee", payee,
					"client", stat.PayerEmail,
					"error", err,
				)
			}
			continue
		}
		result.Added++
	}

	if result.Added > 0 {
		uc.logger.Infow("clients auto-added as favorites",
			"payee", payee,
			"count", result.Added,
		)
	}
	return result, nil
}
