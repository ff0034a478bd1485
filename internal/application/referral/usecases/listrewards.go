package usecases

import (
	"context"
	"fmt"

	"github.com/waveline-inc/waveline/internal/domain/referral"
	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// ListRewardsUseCase returns every reward accrued by a referrer.
type ListRewardsUseCase struct {
	rewardRepo referral.RewardRepository
	logger     logger.Interface
}

func NewListRewardsUseCase(rewardRepo referral.RewardRepository, logger logger.Interface) *ListRewardsUseCase {
	return &ListRewardsUseCase{rewardRepo: rewardRepo, logger: logger}
}

func (uc *ListRewardsUseCase) Execute(ctx context.Context, referrerAddress string) ([]*referral.Reward, error) {
	referrerAddress = normalize.Address(referrerAddress)
	if referrerAddress == "" {
		return nil, errors.NewValidationError("referrer address is required")
	}

	rewards, err := uc.rewardRepo.ListByReferrer(ctx, referrerAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	return rewards, nil
}
