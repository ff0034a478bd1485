package reminder

import "context"

type ReminderRepository interface {
	Create(ctx context.Context, rem *Reminder) error
	// ExistsForStage reports whether an automatic reminder was already sent
	// for the invoice at the given stage. Manual reminders do not count.
	ExistsForStage(ctx context.Context, invoiceID uint, stage Stage) (bool, error)
	ListByInvoiceID(ctx context.Context, invoiceID uint) ([]*Reminder, error)
}

type PreferencesRepository interface {
	// GetByPayeeAddress returns (nil, nil) when the payee has no preferences.
	GetByPayeeAddress(ctx context.Context, payeeAddress string) (*Preferences, error)
	Upsert(ctx context.Context, prefs *Preferences) error
}
