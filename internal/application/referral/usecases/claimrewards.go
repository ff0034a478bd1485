package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/domain/referral"
	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/biztime"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// ClaimRewardsUseCase claims every reward of a referrer whose delay window
// has elapsed. Rewards still inside the window stay pending.
type ClaimRewardsUseCase struct {
	rewardRepo  referral.RewardRepository
	programRepo referral.ProgramRepository
	logger      logger.Interface
}

func NewClaimRewardsUseCase(
	rewardRepo referral.RewardRepository,
	programRepo referral.ProgramRepository,
	logger logger.Interface,
) *ClaimRewardsUseCase {
	return &ClaimRewardsUseCase{
		rewardRepo:  rewardRepo,
		programRepo: programRepo,
		logger:      logger,
	}
}

type ClaimRewardsResult struct {
	ClaimedCount int
	TotalAmount  decimal.Decimal
}

func (uc *ClaimRewardsUseCase) Execute(ctx context.Context, referrerAddress string) (*ClaimRewardsResult, error) {
	referrerAddress = normalize.Address(referrerAddress)
	if referrerAddress == "" {
		return nil, errors.NewValidationError("referrer address is required")
	}

	pending, err := uc.rewardRepo.ListPendingByReferrer(ctx, referrerAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending rewards: %w", err)
	}

	now := biztime.NowUTC()
	result := &ClaimRewardsResult{TotalAmount: decimal.Zero}

	for _, reward := range pending {
		if !reward.IsClaimable(now) {
			continue
		}
		if err := reward.Claim(now); err != nil {
			continue
		}
		if err := uc.rewardRepo.Update(ctx, reward); err != nil {
			uc.logger.Errorw("failed to persist reward claim",
				"reward_id", reward.ID(),
				"error", err,
			)
			continue
		}
		result.ClaimedCount++
		result.TotalAmount = result.TotalAmount.Add(reward.Amount())
	}

	if result.ClaimedCount == 0 {
		return result, nil
	}

	program, err := uc.programRepo.GetByReferrerAddress(ctx, referrerAddress)
	if err == nil && program != nil {
		if err := program.RecordClaim(result.TotalAmount); err == nil {
			if err := uc.programRepo.Update(ctx, program); err != nil {
				uc.logger.Warnw("failed to update program claim totals",
					"referrer", referrerAddress,
					"error", err,
				)
			}
		}
	}

	uc.logger.Infow("referral rewards claimed",
		"referrer", referrerAddress,
		"count", result.ClaimedCount,
		"total", result.TotalAmount,
	)

	return result, nil
}
