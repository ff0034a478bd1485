package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type FavoriteClientModel struct {
	ID                    uint            `gorm:"primaryKey"`
	PayeeAddress          string          `gorm:"size:128;not null;uniqueIndex:idx_payee_client"`
	ClientEmail           string          `gorm:"size:255;not null;uniqueIndex:idx_payee_client"`
	ClientName            string          `gorm:"size:255"`
	GasSponsorshipEnabled bool            `gorm:"not null;default:false"`
	MaxGasPerTx           decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	InvoiceCount          int64           `gorm:"not null;default:0"`
	TotalAmountPaid       decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	FirstInvoiceAt        *time.Time
	LastInvoiceAt         *time.Time
	SponsoredTxCount      int64           `gorm:"not null;default:0"`
	TotalGasSponsored     decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	AutoAdded             bool            `gorm:"not null;default:false"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (FavoriteClientModel) TableName() string {
	return "favorite_clients"
}
