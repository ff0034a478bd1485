package models

import "time"

type PaymentReminderModel struct {
	ID           uint   `gorm:"primaryKey"`
	InvoiceID    uint   `gorm:"index;not null"`
	PayeeAddress string `gorm:"index;size:128;not null"`
	SentTo       string `gorm:"size:255;not null"`
	Stage        string `gorm:"size:16;not null"`
	Subject      string `gorm:"size:255;not null"`
	Manual       bool   `gorm:"not null;default:false"`
	SentAt       time.Time
	CreatedAt    time.Time
}

func (PaymentReminderModel) TableName() string {
	return "payment_reminders"
}

type ReminderPreferencesModel struct {
	ID           uint   `gorm:"primaryKey"`
	PayeeAddress string `gorm:"uniqueIndex;size:128;not null"`
	Enabled      bool   `gorm:"not null;default:true"`
	// ExcludedClients holds a JSON array of lowercased client emails.
	ExcludedClients string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ReminderPreferencesModel) TableName() string {
	return "reminder_preferences"
}
