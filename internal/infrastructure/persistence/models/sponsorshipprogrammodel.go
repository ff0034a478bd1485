package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SponsorshipProgramModel struct {
	ID                   uint            `gorm:"primaryKey"`
	PayeeAddress         string          `gorm:"uniqueIndex;size:128;not null"`
	TotalBudget          decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	RemainingBudget      decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	MaxGasPerTx          decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	IsActive             bool            `gorm:"not null;default:true"`
	SponsoredTxCount     int64           `gorm:"not null;default:0"`
	TotalSponsoredAmount decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	Version              int             `gorm:"default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (SponsorshipProgramModel) TableName() string {
	return "sponsorship_programs"
}
