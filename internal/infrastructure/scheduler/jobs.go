package scheduler

import (
	"context"

	appreminder "github.com/waveline-inc/waveline/internal/application/reminder"
	referralusecases "github.com/waveline-inc/waveline/internal/application/referral/usecases"
	sponsorshipusecases "github.com/waveline-inc/waveline/internal/application/sponsorship/usecases"
	"github.com/waveline-inc/waveline/internal/domain/referral"
	"github.com/waveline-inc/waveline/internal/domain/sponsorship"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

const defaultSweepBatchSize = 200

// ReferralSweepJob scans referees with pending referrals and runs the
// completion check for each one. It implements BatchJob and returns the
// number of referrals completed in this batch.
type ReferralSweepJob struct {
	referralRepo referral.ReferralRepository
	checkUC      *referralusecases.CheckAndCompleteUseCase
	batchSize    int
	logger       logger.Interface
}

func NewReferralSweepJob(
	referralRepo referral.ReferralRepository,
	checkUC *referralusecases.CheckAndCompleteUseCase,
	log logger.Interface,
) *ReferralSweepJob {
	return &ReferralSweepJob{
		referralRepo: referralRepo,
		checkUC:      checkUC,
		batchSize:    defaultSweepBatchSize,
		logger:       log,
	}
}

func (j *ReferralSweepJob) Execute(ctx context.Context) (int, error) {
	addresses, err := j.referralRepo.ListPendingRefereeAddresses(ctx, j.batchSize)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, addr := range addresses {
		if ctx.Err() != nil {
			return completed, ctx.Err()
		}

		result, err := j.checkUC.Execute(ctx, addr)
		if err != nil {
			// One failing referee must not block the rest of the batch.
			j.logger.Warnw("referral completion check failed",
				"referee", addr,
				"error", err,
			)
			continue
		}
		completed += result.Completed
	}

	return completed, nil
}

// ReminderSweepJob sends the stage-appropriate reminder email for pending
// invoices past their due date. It implements BatchJob and returns the
// number of reminders sent in this batch.
type ReminderSweepJob struct {
	service *appreminder.Service
}

func NewReminderSweepJob(service *appreminder.Service) *ReminderSweepJob {
	return &ReminderSweepJob{service: service}
}

func (j *ReminderSweepJob) Execute(ctx context.Context) (int, error) {
	return j.service.SweepOverdue(ctx)
}

// AutoFavoriteJob runs the auto-favorite promotion for every payee with
// an active sponsorship program. It implements BatchJob and returns the
// number of clients promoted in this batch.
type AutoFavoriteJob struct {
	programRepo sponsorship.ProgramRepository
	autoAddUC   *sponsorshipusecases.AutoAddFavoritesUseCase
	batchSize   int
	logger      logger.Interface
}

func NewAutoFavoriteJob(
	programRepo sponsorship.ProgramRepository,
	autoAddUC *sponsorshipusecases.AutoAddFavoritesUseCase,
	log logger.Interface,
) *AutoFavoriteJob {
	return &AutoFavoriteJob{
		programRepo: programRepo,
		autoAddUC:   autoAddUC,
		batchSize:   defaultSweepBatchSize,
		logger:      log,
	}
}

func (j *AutoFavoriteJob) Execute(ctx context.Context) (int, error) {
	payees, err := j.programRepo.ListActivePayeeAddresses(ctx, j.batchSize)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, payee := range payees {
		if ctx.Err() != nil {
			return added, ctx.Err()
		}

		result, err := j.autoAddUC.Execute(ctx, payee)
		if err != nil {
			j.logger.Warnw("auto-favorite promotion failed",
				"payee", payee,
				"error", err,
			)
			continue
		}
		added += result.Added
	}

	return added, nil
}
