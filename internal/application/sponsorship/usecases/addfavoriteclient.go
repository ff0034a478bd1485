package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/domain/sponsorship"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// AddFavoriteClientUseCase marks a client as a payee's favorite, waiving the
// platform fee for them and optionally enabling gas sponsorship.
type AddFavoriteClientUseCase struct {
	favoriteRepo sponsorship.FavoriteClientRepository
	cfg          Config
	logger       logger.Interface
}

func NewAddFavoriteClientUseCase(favoriteRepo sponsorship.FavoriteClientRepository, cfg Config, logger logger.Interface) *AddFavoriteClientUseCase {
	return &AddFavoriteClientUseCase{favoriteRepo: favoriteRepo, cfg: cfg, logger: logger}
}

type AddFavoriteClientCommand struct {
	PayeeAddress string
	ClientEmail  string
	ClientName   string

	EnableGasSponsorship bool
	// MaxGasPerTx defaults to the configured cap when zero.
	MaxGasPerTx decimal.Decimal
}

func (uc *AddFavoriteClientUseCase) Execute(ctx context.Context, cmd AddFavoriteClientCommand) (*sponsorship.FavoriteClient, error) {
	payee := normalize.Address(cmd.PayeeAddress)
	email := normalize.Email(cmd.ClientEmail)

	existing, err := uc.favoriteRepo.GetByPayeeAndEmail(ctx, payee, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up favorite client: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("client is already a favorite")
	}

	perTxCap, err := uc.cfg.ValidateCap(cmd.MaxGasPerTx)
	if err != nil {
		return nil, err
	}

	favorite, err := sponsorship.NewFavoriteClient(payee, email, cmd.ClientName, perTxCap, false)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.EnableGasSponsorship {
		if err := favorite.EnableGasSponsorship(perTxCap); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.favoriteRepo.Create(ctx, favorite); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("client is already a favorite")
		}
		return nil, fmt.Errorf("failed to create favorite client: %w", err)
	}

	uc.logger.Infow("favorite client added",
		"payee", payee,
		"client", email,
		"gas_sponsorship", cmd.EnableGasSponsorship,
	)
	return favorite, nil
}
