package models

import "time"

type NotificationModel struct {
	ID               uint   `gorm:"primaryKey"`
	RecipientAddress string `gorm:"index;size:128;not null"`
	Type             string `gorm:"size:32;not null"`
	Title            string `gorm:"size:255;not null"`
	Message          string `gorm:"type:text"`
	Read             bool   `gorm:"not null;default:false"`
	CreatedAt        time.Time
}

func (NotificationModel) TableName() string {
	return "notifications"
}
