package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReferralProgramModel struct {
	ID                  uint            `gorm:"primaryKey"`
	ReferrerAddress     string          `gorm:"uniqueIndex;size:128;not null"`
	Code                string          `gorm:"uniqueIndex;size:16;not null"`
	TotalReferrals      int             `gorm:"not null;default:0"`
	TotalRewardsEarned  decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	TotalRewardsClaimed decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	PendingRewards      decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	IsActive            bool            `gorm:"not null;default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (ReferralProgramModel) TableName() string {
	return "referral_programs"
}
