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

// GetStatsUseCase assembles a payee's sponsorship dashboard: budget state,
// cumulative usage and favorite-client breakdown.
type GetStatsUseCase struct {
	programRepo  sponsorship.ProgramRepository
	favoriteRepo sponsorship.FavoriteClientRepository
	logger       logger.Interface
}

func NewGetStatsUseCase(
	programRepo sponsorship.ProgramRepository,
	favoriteRepo sponsorship.FavoriteClientRepository,
	logger logger.Interface,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		programRepo:  programRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

type GetStatsResult struct {
	TotalBudget     decimal.Decimal
	RemainingBudget decimal.Decimal
	UsedBudget      decimal.Decimal
	MaxGasPerTx     decimal.Decimal
	IsActive        bool

	SponsoredTxCount     int64
	TotalSponsoredAmount decimal.Decimal

	FavoriteClients       int
	SponsorshipEnabledFor int
}

func (uc *GetStatsUseCase) Execute(ctx context.Context, payeeAddress string) (*GetStatsResult, error) {
	payee := normalize.Address(payeeAddress)

	program, err := uc.programRepo.GetByPayeeAddress(ctx, payee)
	if err != nil {
		return nil, fmt.Errorf("failed to load sponsorship program: %w", err)
	}
	if program == nil {
		return nil, errors.NewNotFoundError("sponsorship program not found")
	}

	favorites, err := uc.favoriteRepo.ListByPayee(ctx, payee)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite clients: %w", err)
	}

	enabledCount := 0
	for _, favorite := range favorites {
		if favorite.GasSponsorshipEnabled() {
			enabledCount++
		}
	}

	return &GetStatsResult{
		TotalBudget:           program.TotalBudget(),
		RemainingBudget:       program.RemainingBudget(),
		UsedBudget:            program.TotalBudget().Sub(program.RemainingBudget()),
		MaxGasPerTx:           program.MaxGasPerTx(),
		IsActive:              program.IsActive(),
		SponsoredTxCount:      program.SponsoredTxCount(),
		TotalSponsoredAmount:  program.TotalSponsoredAmount(),
		FavoriteClients:       len(favorites),
		SponsorshipEnabledFor: enabledCount,
	}, nil
}
