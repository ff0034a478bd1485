package reminder

import (
	"fmt"
	"time"

	"github.com/waveline-inc/waveline/internal/shared/biztime"
)

// Stage is the escalation level of a payment reminder.
type Stage string

const (
	StageFirst  Stage = "first"
	StageSecond Stage = "second"
	StageFinal  Stage = "final"
)

func (s Stage) String() string { return string(s) }

func (s Stage) IsValid() bool {
	switch s {
	case StageFirst, StageSecond, StageFinal:
		return true
	}
	return false
}

// Stage escalation thresholds in whole days overdue.
const (
	firstStageDays  = 7
	secondStageDays = 14
	finalStageDays  = 30
)

// StageForOverdue maps days overdue to the automatic reminder stage.
// Invoices less than a week overdue get no automatic reminder.
func StageForOverdue(daysOverdue int) (Stage, bool) {
	switch {
	case daysOverdue >= finalStageDays:
		return StageFinal, true
	case daysOverdue >= secondStageDays:
		return StageSecond, true
	case daysOverdue >= firstStageDays:
		return StageFirst, true
	}
	return "", false
}

// Reminder is the immutable record of one reminder email sent for an
// invoice. At most one automatic reminder exists per invoice and stage.
type Reminder struct {
	id uint

	invoiceID    uint
	payeeAddress string
	sentTo       string
	stage        Stage
	subject      string
	manual       bool

	sentAt    time.Time
	createdAt time.Time
}

func NewReminder(invoiceID uint, payeeAddress, sentTo string, stage Stage, subject string, manual bool) (*Reminder, error) {
	if invoiceID == 0 {
		return nil, fmt.Errorf("invoice ID is required")
	}
	if sentTo == "" {
		return nil, fmt.Errorf("recipient email is required")
	}
	if !stage.IsValid() {
		return nil, fmt.Errorf("invalid reminder stage %q", stage)
	}

	now := biztime.NowUTC()
	return &Reminder{
		invoiceID:    invoiceID,
		payeeAddress: payeeAddress,
		sentTo:       sentTo,
		stage:        stage,
		subject:      subject,
		manual:       manual,
		sentAt:       now,
		createdAt:    now,
	}, nil
}

func (r *Reminder) ID() uint             { return r.id }
func (r *Reminder) InvoiceID() uint      { return r.invoiceID }
func (r *Reminder) PayeeAddress() string { return r.payeeAddress }
func (r *Reminder) SentTo() string       { return r.sentTo }
func (r *Reminder) Stage() Stage         { return r.stage }
func (r *Reminder) Subject() string      { return r.subject }
func (r *Reminder) Manual() bool         { return r.manual }
func (r *Reminder) SentAt() time.Time    { return r.sentAt }
func (r *Reminder) CreatedAt() time.Time { return r.createdAt }

// SetID sets the reminder ID after persistence (used by repository after Create)
func (r *Reminder) SetID(id uint) {
	r.id = id
}

func ReconstructReminder(
	id, invoiceID uint,
	payeeAddress, sentTo string,
	stage Stage,
	subject string,
	manual bool,
	sentAt, createdAt time.Time,
) *Reminder {
	return &Reminder{
		id:           id,
		invoiceID:    invoiceID,
		payeeAddress: payeeAddress,
		sentTo:       sentTo,
		stage:        stage,
		subject:      subject,
		manual:       manual,
		sentAt:       sentAt,
		createdAt:    createdAt,
	}
}
