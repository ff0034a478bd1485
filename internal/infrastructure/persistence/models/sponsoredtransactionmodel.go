package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SponsoredTransactionModel struct {
	ID              uint            `gorm:"primaryKey"`
	SID             string          `gorm:"column:sid;uniqueIndex;size:32;not null"`
	PayeeAddress    string          `gorm:"index;size:128;not null"`
	ClientEmail     string          `gorm:"size:255;not null"`
	TxHash          string          `gorm:"size:128;not null"`
	OriginalGasFee  decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	SponsoredAmount decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	Token           string          `gorm:"size:16;not null"`
	InvoiceID       *uint           `gorm:"index"`
	Status          string          `gorm:"size:20;not null"`
	CreatedAt       time.Time
}

func (SponsoredTransactionModel) TableName() string {
	return "sponsored_transactions"
}
