package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/waveline-inc/waveline/internal/domain/reminder"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/models"
)

func ReminderToModel(r *reminder.Reminder) *models.PaymentReminderModel {
	return &models.PaymentReminderModel{
		ID:           r.ID(),
		InvoiceID:    r.InvoiceID(),
		PayeeAddress: r.PayeeAddress(),
		SentTo:       r.SentTo(),
		Stage:        r.Stage().String(),
		Subject:      r.Subject(),
		Manual:       r.Manual(),
		SentAt:       r.SentAt(),
		CreatedAt:    r.CreatedAt(),
	}
}

func ReminderToDomain(model *models.PaymentReminderModel) (*reminder.Reminder, error) {
	stage := reminder.Stage(model.Stage)
	if !stage.IsValid() {
		return nil, fmt.Errorf("invalid reminder stage: %s", model.Stage)
	}

	return reminder.ReconstructReminder(
		model.ID,
		model.InvoiceID,
		model.PayeeAddress,
		model.SentTo,
		stage,
		model.Subject,
		model.Manual,
		model.SentAt,
		model.CreatedAt,
	), nil
}

func ReminderPreferencesToModel(p *reminder.Preferences) (*models.ReminderPreferencesModel, error) {
	excluded, err := json.Marshal(p.ExcludedClients())
	if err != nil {
		return nil, fmt.Errorf("failed to encode excluded clients: %w", err)
	}

	return &models.ReminderPreferencesModel{
		ID:              p.ID(),
		PayeeAddress:    p.PayeeAddress(),
		Enabled:         p.Enabled(),
		ExcludedClients: string(excluded),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}, nil
}

func ReminderPreferencesToDomain(model *models.ReminderPreferencesModel) (*reminder.Preferences, error) {
	var excluded []string
	if model.ExcludedClients != "" {
		if err := json.Unmarshal([]byte(model.ExcludedClients), &excluded); err != nil {
			return nil, fmt.Errorf("failed to decode excluded clients: %w", err)
		}
	}

	return reminder.ReconstructPreferences(
		model.ID,
		model.PayeeAddress,
		model.Enabled,
		excluded,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
