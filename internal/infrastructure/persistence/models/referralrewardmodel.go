package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReferralRewardModel struct {
	ID              uint            `gorm:"primaryKey"`
	ReferralID      uint            `gorm:"uniqueIndex;not null"`
	ReferrerAddress string          `gorm:"index;size:128;not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	Token           string          `gorm:"size:16;not null"`
	Status          string          `gorm:"size:20;not null;index"`
	ClaimableAt     time.Time       `gorm:"not null"`
	ClaimedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ReferralRewardModel) TableName() string {
	return "referral_rewards"
}
