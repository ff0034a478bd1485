package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReferralModel struct {
	ID              uint            `gorm:"primaryKey"`
	ReferrerAddress string          `gorm:"index;size:128;not null"`
	RefereeAddress  string          `gorm:"uniqueIndex;size:128;not null"`
	Code            string          `gorm:"index;size:16;not null"`
	Status          string          `gorm:"size:20;not null;index"`
	RewardAmount    decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ReferralModel) TableName() string {
	return "referrals"
}
