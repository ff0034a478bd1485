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

// UpdateClientSettingsUseCase toggles gas sponsorship and adjusts the
// per-transaction cap for an existing favorite client.
type UpdateClientSettingsUseCase struct {
	favoriteRepo sponsorship.FavoriteClientRepository
	cfg          Config
	logger       logger.Interface
}

func NewUpdateClientSettingsUseCase(favoriteRepo sponsorship.FavoriteClientRepository, cfg Config, logger logger.Interface) *UpdateClientSettingsUseCase {
	return &UpdateClientSettingsUseCase{favoriteRepo: favoriteRepo, cfg: cfg, logger: logger}
}

type UpdateClientSettingsCommand struct {
	PayeeAddress string
	ClientEmail  string

	GasSponsorshipEnabled *bool
	// MaxGasPerTx is applied when positive.
	MaxGasPerTx decimal.Decimal
}

func (uc *UpdateClientSettingsUseCase) Execute(ctx context.Context, cmd UpdateClientSettingsCommand) (*sponsorship.FavoriteClient, error) {
	payee := normalize.Address(cmd.PayeeAddress)
	email := normalize.Email(cmd.ClientEmail)

	favorite, err := uc.favoriteRepo.GetByPayeeAndEmail(ctx, payee, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up favorite client: %w", err)
	}
	if favorite == nil {
		return nil, errors.NewNotFoundError("favorite client not found")
	}

	perTxCap := favorite.MaxGasPerTx()
	if cmd.MaxGasPerTx.IsPositive() {
		if perTxCap, err = uc.cfg.ValidateCap(cmd.MaxGasPerTx); err != nil {
			return nil, err
		}
	} else if !perTxCap.IsPositive() {
		perTxCap = uc.cfg.DefaultMaxGasPerTx
	}

	enabled := favorite.GasSponsorshipEnabled()
	if cmd.GasSponsorshipEnabled != nil {
		enabled = *cmd.GasSponsorshipEnabled
	}

	if enabled {
		if err := favorite.EnableGasSponsorship(perTxCap); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	} else {
		favorite.DisableGasSponsorship()
	}

	if err := uc.favoriteRepo.Update(ctx, favorite); err != nil {
		return nil, fmt.Errorf("failed to update favorite client: %w", err)
	}

	uc.logger.Infow("favorite client settings updated",
		"payee", payee,
		"client", email,
		"gas_sponsorship", favorite.GasSponsorshipEnabled(),
		"max_gas_per_tx", favorite.MaxGasPerTx(),
	)
	return favorite, nil
}
