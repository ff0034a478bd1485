// Package reminder drives overdue-payment follow-ups: a periodic sweep that
// escalates reminder emails as invoices age past due, a manual send for
// payees who want to nudge a client immediately, and per-payee preferences.
package reminder

import (
	"context"
	"fmt"

	appnotification "github.com/waveline-inc/waveline/internal/application/notification"
	"github.com/waveline-inc/waveline/internal/domain/invoice"
	"github.com/waveline-inc/waveline/internal/domain/reminder"
	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/biztime"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// Config carries the reminder parameters.
type Config struct {
	// BaseURL builds the invoice link embedded in reminder emails.
	BaseURL string
	// SweepBatchSize caps how many overdue invoices one sweep processes.
	SweepBatchSize int
}

type Service struct {
	invoiceRepo  invoice.InvoiceRepository
	reminderRepo reminder.ReminderRepository
	prefsRepo    reminder.PreferencesRepository
	email        appnotification.EmailSender
	cfg          Config
	logger       logger.Interface
}

func NewService(
	invoiceRepo invoice.InvoiceRepository,
	reminderRepo reminder.ReminderRepository,
	prefsRepo reminder.PreferencesRepository,
	email appnotification.EmailSender,
	cfg Config,
	logger logger.Interface,
) *Service {
	return &Service{
		invoiceRepo:  invoiceRepo,
		reminderRepo: reminderRepo,
		prefsRepo:    prefsRepo,
		email:        email,
		cfg:          cfg,
		logger:       logger,
	}
}

// SweepOverdue scans pending invoices past their due date and sends the
// stage-appropriate reminder to each payer, at most once per invoice and
// stage. Per-invoice failures are logged and do not stop the sweep.
func (s *Service) SweepOverdue(ctx context.Context) (int, error) {
	now := biztime.NowUTC()

	overdue, err := s.invoiceRepo.ListOverduePending(ctx, now, s.cfg.SweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list overdue invoices: %w", err)
	}

	sent := 0
	for _, inv := range overdue {
		if inv.PayerEmail() == nil {
			continue
		}

		stage, ok := reminder.StageForOverdue(inv.DaysOverdue(now))
		if !ok {
			continue
		}

		prefs, err := s.prefsRepo.GetByPayeeAddress(ctx, inv.PayeeAddress())
		if err != nil {
			s.logger.Warnw("failed to load reminder preferences, skipping invoice",
				"invoice", inv.SID(),
				"error", err,
			)
			continue
		}
		if prefs != nil && (!prefs.Enabled() || prefs.IsExcluded(*inv.PayerEmail())) {
			continue
		}

		exists, err := s.reminderRepo.ExistsForStage(ctx, inv.ID(), stage)
		if err != nil {
			s.logger.Warnw("failed to check reminder history, skipping invoice",
				"invoice", inv.SID(),
				"error", err,
			)
			continue
		}
		if exists {
			continue
		}

		if err := s.send(ctx, inv, stage, inv.DaysOverdue(now), false); err != nil {
			s.logger.Errorw("failed to send payment reminder",
				"invoice", inv.SID(),
				"stage", stage,
				"error", err,
			)
			continue
		}
		sent++
	}

	return sent, nil
}

// SendManual sends a reminder for one invoice immediately, regardless of
// per-stage deduplication or payee preferences.
func (s *Service) SendManual(ctx context.Context, invoiceSID string) (*reminder.Reminder, error) {
	inv, err := s.invoiceRepo.GetBySID(ctx, invoiceSID)
	if err != nil {
		return nil, err
	}
	if !inv.Status().IsPending() {
		return nil, errors.NewConflictError(fmt.Sprintf("invoice %s is %s, nothing to remind", inv.SID(), inv.Status()))
	}
	if inv.PayerEmail() == nil {
		return nil, errors.NewValidationError("invoice has no payer email to remind")
	}

	days := inv.DaysOverdue(biztime.NowUTC())
	stage, ok := reminder.StageForOverdue(days)
	if !ok {
		// manual sends are allowed before the first automatic stage
		stage = reminder.StageFirst
	}

	rem, err := s.sendRecorded(ctx, inv, stage, days, true)
	if err != nil {
		return nil, err
	}
	return rem, nil
}

// History returns the reminders sent for an invoice, newest first.
func (s *Service) History(ctx context.Context, invoiceSID string) ([]*reminder.Reminder, error) {
	inv, err := s.invoiceRepo.GetBySID(ctx, invoiceSID)
	if err != nil {
		return nil, err
	}
	return s.reminderRepo.ListByInvoiceID(ctx, inv.ID())
}

// UpdatePreferencesCommand replaces a payee's reminder preferences.
type UpdatePreferencesCommand struct {
	PayeeAddress string
	Enabled      *bool
	// ExcludedClients replaces the exclusion list when non-nil.
	ExcludedClients []string
}

func (s *Service) UpdatePreferences(ctx context.Context, cmd UpdatePreferencesCommand) (*reminder.Preferences, error) {
	payee := normalize.Address(cmd.PayeeAddress)
	if payee == "" {
		return nil, errors.NewValidationError("payee address is required")
	}

	prefs, err := s.prefsRepo.GetByPayeeAddress(ctx, payee)
	if err != nil {
		return nil, fmt.Errorf("failed to load reminder preferences: %w", err)
	}
	if prefs == nil {
		if prefs, err = reminder.NewPreferences(payee); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Enabled != nil {
		prefs.SetEnabled(*cmd.Enabled)
	}
	if cmd.ExcludedClients != nil {
		prefs.SetExcludedClients(cmd.ExcludedClients)
	}

	if err := s.prefsRepo.Upsert(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save reminder preferences: %w", err)
	}
	return prefs, nil
}

// GetPreferences returns a payee's preferences, defaults when none are stored.
func (s *Service) GetPreferences(ctx context.Context, payeeAddress string) (*reminder.Preferences, error) {
	payee := normalize.Address(payeeAddress)
	prefs, err := s.prefsRepo.GetByPayeeAddress(ctx, payee)
	if err != nil {
		return nil, fmt.Errorf("failed to load reminder preferences: %w", err)
	}
	if prefs == nil {
		return reminder.NewPreferences(payee)
	}
	return prefs, nil
}

func (s *Service) send(ctx context.Context, inv *invoice.Invoice, stage reminder.Stage, daysOverdue int, manual bool) error {
	_, err := s.sendRecorded(ctx, inv, stage, daysOverdue, manual)
	return err
}

func (s *Service) sendRecorded(ctx context.Context, inv *invoice.Invoice, stage reminder.Stage, daysOverdue int, manual bool) (*reminder.Reminder, error) {
	subject := reminderSubject(stage, inv, daysOverdue)
	body := s.reminderBody(inv, daysOverdue)

	if err := s.email.Send(*inv.PayerEmail(), subject, body); err != nil {
		return nil, fmt.Errorf("failed to send reminder email: %w", err)
	}

	rem, err := reminder.NewReminder(inv.ID(), inv.PayeeAddress(), *inv.PayerEmail(), stage, subject, manual)
	if err != nil {
		return nil, err
	}
	if err := s.reminderRepo.Create(ctx, rem); err != nil {
		// the email went out; the missing history row only risks a duplicate
		s.logger.Warnw("failed to record sent reminder",
			"invoice", inv.SID(),
			"stage", stage,
			"error", err,
		)
	}

	s.logger.Infow("payment reminder sent",
		"invoice", inv.SID(),
		"stage", stage,
		"manual", manual,
		"days_overdue", daysOverdue,
	)
	return rem, nil
}

func reminderSubject(stage reminder.Stage, inv *invoice.Invoice, daysOverdue int) string {
	name := inv.Description()
	if name == "" {
		name = inv.SID()
	}
	switch stage {
	case reminder.StageSecond:
		return fmt.Sprintf("Payment Follow-up: %q (%d days overdue)", name, daysOverdue)
	case reminder.StageFinal:
		return fmt.Sprintf("FINAL NOTICE: Overdue Payment for %q (%d days overdue)", name, daysOverdue)
	default:
		return fmt.Sprintf("Friendly Reminder: Payment for %q (%d days overdue)", name, daysOverdue)
	}
}

func (s *Service) reminderBody(inv *invoice.Invoice, daysOverdue int) string {
	due := ""
	if inv.DueDate() != nil {
		due = inv.DueDate().Format("2006-01-02")
	}
	return fmt.Sprintf(
		`<p>This is a reminder that invoice <strong>%s</strong> for %s %s is %d day(s) past its due date (%s).</p>
<p><a href="%s/invoice/%s">View and pay the invoice</a></p>`,
		inv.SID(), inv.Amount(), inv.Token(), daysOverdue, due, s.cfg.BaseURL, inv.SID(),
	)
}
