package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceModel struct {
	ID           uint            `gorm:"primaryKey"`
	SID          string          `gorm:"column:sid;uniqueIndex;size:32;not null"`
	PayeeAddress string          `gorm:"index;size:128;not null"`
	PayerEmail   *string         `gorm:"index;size:255"`
	Amount       decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	Token        string          `gorm:"size:16;not null"`
	Description  string          `gorm:"type:text"`
	DueDate      *time.Time      `gorm:"index"`
	Status       string          `gorm:"size:20;not null;index"`
	TxHash       *string         `gorm:"size:128;index"`
	PaidAt       *time.Time
	Version      int `gorm:"default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (InvoiceModel) TableName() string {
	return "invoices"
}
