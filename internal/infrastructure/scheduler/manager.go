// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/waveline-inc/waveline/internal/shared/biztime"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager manages all scheduled jobs using gocron v2.
// A single scheduler instance owns every recurring job so lifecycle and
// shutdown are handled in one place.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	// Track whether the scheduler has been started
	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
// It initializes gocron with the business timezone for cron expressions.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// ========================================
// Referral Jobs (10 min interval, start immediately)
// ========================================

// RegisterReferralJobs registers the referral completion sweep:
// pending referrals whose referee has crossed the activity threshold are
// completed and their rewards accrued.
func (m *SchedulerManager) RegisterReferralJobs(sweepJob BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			m.processReferralSweep(ctx, sweepJob)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("referral", "completion-sweep"),
		gocron.WithName("referral-completion-sweep"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered referral jobs", "interval", "10m")
	return nil
}

func (m *SchedulerManager) processReferralSweep(ctx context.Context, sweepJob BatchJob) {
	m.logger.Debugw("referral completion sweep started")

	startTime := biztime.NowUTC()

	completedCount, err := sweepJob.Execute(ctx)
	if err != nil {
		// Don't log error if context was cancelled (graceful shutdown)
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("referral completion sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if completedCount > 0 {
		m.logger.Infow("referrals completed",
			"count", completedCount,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no referrals ready for completion",
			"duration", time.Since(startTime),
		)
	}
}

// ========================================
// Sponsorship Jobs (1h interval, start immediately)
// ========================================

// RegisterSponsorshipJobs registers the auto-favorite sweep:
// repeat clients of payees with active sponsorship programs are promoted
// to favorites once their paid-invoice count crosses the threshold.
func (m *SchedulerManager) RegisterSponsorshipJobs(autoFavoriteJob BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.processAutoFavorites(ctx, autoFavoriteJob)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("sponsorship", "auto-favorite"),
		gocron.WithName("sponsorship-auto-favorite"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered sponsorship jobs", "interval", "1h")
	return nil
}

func (m *SchedulerManager) processAutoFavorites(ctx context.Context, autoFavoriteJob BatchJob) {
	m.logger.Debugw("auto-favorite sweep started")

	startTime := biztime.NowUTC()

	addedCount, err := autoFavoriteJob.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("auto-favorite sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if addedCount > 0 {
		m.logger.Infow("clients promoted to favorites",
			"count", addedCount,
			"duration", time.Since(startTime),
		)
	}
}

// ========================================
// Reminder Jobs (daily at 09:00 business time)
// ========================================

// RegisterReminderJobs registers the overdue-payment reminder sweep:
// pending invoices past their due date get the reminder email for the
// escalation stage their age has reached.
func (m *SchedulerManager) RegisterReminderJobs(sweepJob BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(9, 0, 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.processReminderSweep(ctx, sweepJob)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("reminder", "overdue-sweep"),
		gocron.WithName("payment-reminder-sweep"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered reminder jobs", "schedule", "daily 09:00")
	return nil
}

func (m *SchedulerManager) processReminderSweep(ctx context.Context, sweepJob BatchJob) {
	m.logger.Debugw("payment reminder sweep started")

	startTime := biztime.NowUTC()

	sentCount, err := sweepJob.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("payment reminder sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if sentCount > 0 {
		m.logger.Infow("payment reminders sent",
			"count", sentCount,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no overdue invoices needed reminding",
			"duration", time.Since(startTime),
		)
	}
}

// ========================================
// Scheduler Lifecycle Methods
// ========================================

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	// Shutdown scheduler and wait for running jobs
	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
