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

// GetStatsUseCase assembles a referrer's dashboard view: code, counts,
// reward totals and tier progress.
type GetStatsUseCase struct {
	programRepo  referral.ProgramRepository
	referralRepo referral.ReferralRepository
	rewardRepo   referral.RewardRepository
	cfg          Config
	logger       logger.Interface
}

func NewGetStatsUseCase(
	programRepo referral.ProgramRepository,
	referralRepo referral.ReferralRepository,
	rewardRepo referral.RewardRepository,
	cfg Config,
	logger logger.Interface,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		programRepo:  programRepo,
		referralRepo: referralRepo,
		rewardRepo:   rewardRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

type TierInfo struct {
	Level        int
	Name         string
	MinReferrals int
	Multiplier   decimal.Decimal
	BonusReward  decimal.Decimal
}

type GetStatsResult struct {
	Code string

	TotalReferrals     int
	PendingReferrals   int
	CompletedReferrals int

	TotalRewardsEarned  decimal.Decimal
	TotalRewardsClaimed decimal.Decimal
	PendingRewards      decimal.Decimal
	ClaimableRewards    decimal.Decimal

	CurrentTier TierInfo
	NextTier    *TierInfo
	// ReferralsToNextTier is 0 when the referrer is at the top tier.
	ReferralsToNextTier int
}

func (uc *GetStatsUseCase) Execute(ctx context.Context, referrerAddress string) (*GetStatsResult, error) {
	referrerAddress = normalize.Address(referrerAddress)
	if referrerAddress == "" {
		return nil, errors.NewValidationError("referrer address is required")
	}

	program, err := uc.programRepo.GetByReferrerAddress(ctx, referrerAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to look up referral program: %w", err)
	}
	if program == nil {
		return nil, errors.NewNotFoundError("referral program not found")
	}

	referrals, err := uc.referralRepo.ListByReferrer(ctx, referrerAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}

	completedCount := 0
	pendingCount := 0
	for _, rec := range referrals {
		if rec.Status().IsPending() {
			pendingCount++
		} else {
			completedCount++
		}
	}

	claimable := decimal.Zero
	now := biztime.NowUTC()
	pendingRewards, err := uc.rewardRepo.ListPendingByReferrer(ctx, referrerAddress)
	if err != nil {
		uc.logger.Warnw("failed to list pending rewards for stats",
			"referrer", referrerAddress,
			"error", err,
		)
	} else {
		for _, reward := range pendingRewards {
			if reward.IsClaimable(now) {
				claimable = claimable.Add(reward.Amount())
			}
		}
	}

	current := uc.cfg.Tiers.TierFor(completedCount)
	result := &GetStatsResult{
		Code:                program.Code(),
		TotalReferrals:      len(referrals),
		PendingReferrals:    pendingCount,
		CompletedReferrals:  completedCount,
		TotalRewardsEarned:  program.TotalRewardsEarned(),
		TotalRewardsClaimed: program.TotalRewardsClaimed(),
		PendingRewards:      program.PendingRewards(),
		ClaimableRewards:    claimable,
		CurrentTier:         tierInfo(current),
	}

	if next, ok := uc.cfg.Tiers.Next(current); ok {
		info := tierInfo(next)
		result.NextTier = &info
		result.ReferralsToNextTier = next.MinReferrals - completedCount
	}

	return result, nil
}

func tierInfo(t referral.Tier) TierInfo {
	return TierInfo{
		Level:        t.Level,
		Name:         t.Name,
		MinReferrals: t.MinReferrals,
		Multiplier:   t.Multiplier,
		BonusReward:  t.BonusReward,
	}
}
