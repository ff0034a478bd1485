package dto

import (
	"time"

	"github.com/waveline-inc/waveline/internal/domain/reminder"
)

// UpdateReminderPreferencesRequest replaces a payee's reminder settings.
// Omitted fields keep their current values.
type UpdateReminderPreferencesRequest struct {
	PayeeAddress    string   `json:"payee_address" binding:"required"`
	Enabled         *bool    `json:"enabled"`
	ExcludedClients []string `json:"excluded_clients" binding:"omitempty,dive,email"`
}

// ReminderResponse is the public representation of a sent reminder.
type ReminderResponse struct {
	SentTo  string    `json:"sent_to"`
	Stage   string    `json:"stage"`
	Subject string    `json:"subject"`
	Manual  bool      `json:"manual"`
	SentAt  time.Time `json:"sent_at"`
}

func ReminderToResponse(r *reminder.Reminder) ReminderResponse {
	return ReminderResponse{
		SentTo:  r.SentTo(),
		Stage:   r.Stage().String(),
		Subject: r.Subject(),
		Manual:  r.Manual(),
		SentAt:  r.SentAt(),
	}
}

func RemindersToResponses(reminders []*reminder.Reminder) []ReminderResponse {
	out := make([]ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, ReminderToResponse(r))
	}
	return out
}

// ReminderPreferencesResponse is the public representation of a payee's settings.
type ReminderPreferencesResponse struct {
	PayeeAddress    string   `json:"payee_address"`
	Enabled         bool     `json:"enabled"`
	ExcludedClients []string `json:"excluded_clients"`
}

func ReminderPreferencesToResponse(p *reminder.Preferences) ReminderPreferencesResponse {
	excluded := p.ExcludedClients()
	if excluded == nil {
		excluded = []string{}
	}
	return ReminderPreferencesResponse{
		PayeeAddress:    p.PayeeAddress(),
		Enabled:         p.Enabled(),
		ExcludedClients: excluded,
	}
}
