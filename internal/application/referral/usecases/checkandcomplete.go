package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/domain/invoice"
	"github.com/waveline-inc/waveline/internal/domain/referral"
	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// CheckAndCompleteUseCase re-evaluates a referee's pending referrals against
// their lifetime paid-invoice activity. It runs after every successful
// payment and from the periodic sweep, so it must be idempotent: an
// already-completed referral is never completed or rewarded twice.
type CheckAndCompleteUseCase struct {
	referralRepo referral.ReferralRepository
	programRepo  referral.ProgramRepository
	rewardRepo   referral.RewardRepository
	invoiceRepo  invoice.InvoiceRepository
	cfg          Config
	logger       logger.Interface
}

func NewCheckAndCompleteUseCase(
	referralRepo referral.ReferralRepository,
	programRepo referral.ProgramRepository,
	rewardRepo referral.RewardRepository,
	invoiceRepo invoice.InvoiceRepository,
	cfg Config,
	logger logger.Interface,
) *CheckAndCompleteUseCase {
	return &CheckAndCompleteUseCase{
		referralRepo: referralRepo,
		programRepo:  programRepo,
		rewardRepo:   rewardRepo,
		invoiceRepo:  invoiceRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

type CheckAndCompleteResult struct {
	Completed     int
	TotalActivity decimal.Decimal
}

func (uc *CheckAndCompleteUseCase) Execute(ctx context.Context, refereeAddress string) (*CheckAndCompleteResult, error) {
	refereeAddress = normalize.Address(refereeAddress)

	pending, err := uc.referralRepo.ListPendingByReferee(ctx, refereeAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending referrals: %w", err)
	}
	if len(pending) == 0 {
		return &CheckAndCompleteResult{TotalActivity: decimal.Zero}, nil
	}

	activity, err := uc.invoiceRepo.SumPaidAmountByPayee(ctx, refereeAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to sum paid activity: %w", err)
	}

	result := &CheckAndCompleteResult{TotalActivity: activity}
	if activity.LessThan(uc.cfg.MinActivityThreshold) {
		return result, nil
	}

	for _, rec := range pending {
		if !rec.Complete() {
			continue
		}
		if err := uc.referralRepo.Update(ctx, rec); err != nil {
			uc.logger.Errorw("failed to persist referral completion",
				"referral_id", rec.ID(),
				"error", err,
			)
			continue
		}

		if err := uc.accrueReward(ctx, rec); err != nil {
			uc.logger.Errorw("failed to accrue referral reward",
				"referral_id", rec.ID(),
				"referrer", rec.ReferrerAddress(),
				"error", err,
			)
			continue
		}
		result.Completed++
	}

	if result.Completed > 0 {
		uc.logger.Infow("referrals completed",
			"referee", refereeAddress,
			"count", result.Completed,
			"activity", activity,
		)
	}

	return result, nil
}

// accrueReward creates the reward row for a freshly completed referral using
// the referrer's tier multiplier at this instant. The multiplier is fixed at
// creation and never recomputed when the referrer later climbs a tier.
func (uc *CheckAndCompleteUseCase) accrueReward(ctx context.Context, rec *referral.Referral) error {
	if existing, err := uc.rewardRepo.GetByReferralID(ctx, rec.ID()); err != nil {
		return fmt.Errorf("failed to check existing reward: %w", err)
	} else if existing != nil {
		return nil
	}

	completedCount, err := uc.referralRepo.CountCompletedByReferrer(ctx, rec.ReferrerAddress())
	if err != nil {
		return fmt.Errorf("failed to count completed referrals: %w", err)
	}

	tier := uc.cfg.Tiers.TierFor(int(completedCount))
	amount := rec.RewardAmount().Mul(tier.Multiplier)

	reward, err := referral.NewReward(rec.ID(), rec.ReferrerAddress(), amount, uc.cfg.RewardToken, uc.cfg.RewardDelay)
	if err != nil {
		return err
	}
	if err := uc.rewardRepo.Create(ctx, reward); err != nil {
		return fmt.Errorf("failed to create reward: %w", err)
	}

	if err := rec.MarkRewarded(); err == nil {
		if err := uc.referralRepo.Update(ctx, rec); err != nil {
			uc.logger.Warnw("failed to mark referral rewarded",
				"referral_id", rec.ID(),
				"error", err,
			)
		}
	}

	program, err := uc.programRepo.GetByReferrerAddress(ctx, rec.ReferrerAddress())
	if err != nil || program == nil {
		uc.logger.Warnw("referrer program not found for accrual",
			"referrer", rec.ReferrerAddress(),
			"error", err,
		)
		return nil
	}
	program.RecordCompletion(amount)
	if err := uc.programRepo.Update(ctx, program); err != nil {
		uc.logger.Warnw("failed to update referrer program totals",
			"referrer", rec.ReferrerAddress(),
			"error", err,
		)
	}

	uc.logger.Infow("referral reward accrued",
		"referral_id", rec.ID(),
		"referrer", rec.ReferrerAddress(),
		"amount", amount,
		"tier", tier.Name,
		"multiplier", tier.Multiplier,
	)

	return nil
}
