package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/waveline-inc/waveline/internal/domain/invoice"
	vo "github.com/waveline-inc/waveline/internal/domain/invoice/valueobjects"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/mappers"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/models"
	"github.com/waveline-inc/waveline/internal/shared/db"
	"github.com/waveline-inc/waveline/internal/shared/errors"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	model := mappers.InvoiceToModel(inv)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	inv.SetID(model.ID)

	return nil
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	model := mappers.InvoiceToModel(inv)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.InvoiceModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"payer_email": model.PayerEmail,
			"status":      model.Status,
			"tx_hash":     model.TxHash,
			"paid_at":     model.PaidAt,
			"version":     model.Version,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update invoice: %w", result.Error)
	}

	return nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id uint) (*invoice.Invoice, error) {
	var model models.InvoiceModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("invoice not found")
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return mappers.InvoiceToDomain(&model)
}

func (r *InvoiceRepository) GetBySID(ctx context.Context, sid string) (*invoice.Invoice, error) {
	var model models.InvoiceModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("invoice not found")
		}
		return nil, fmt.Errorf("failed to get invoice by sid: %w", err)
	}

	return mappers.InvoiceToDomain(&model)
}

func (r *InvoiceRepository) ListByPayee(ctx context.Context, payeeAddress string, page, pageSize int) ([]*invoice.Invoice, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.InvoiceModel{}).
		Where("payee_address = ?", payeeAddress)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	var invoiceModels []models.InvoiceModel
	if err := tx.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&invoiceModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	invoices := make([]*invoice.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		inv, err := mappers.InvoiceToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		invoices[i] = inv
	}

	return invoices, total, nil
}

func (r *InvoiceRepository) ListOverduePending(ctx context.Context, asOf time.Time, limit int) ([]*invoice.Invoice, error) {
	var invoiceModels []models.InvoiceModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ? AND due_date IS NOT NULL AND due_date < ?", vo.InvoiceStatusPending, asOf).
		Order("due_date ASC").
		Limit(limit).
		Find(&invoiceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list overdue invoices: %w", err)
	}

	invoices := make([]*invoice.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		inv, err := mappers.InvoiceToDomain(&model)
		if err != nil {
			return nil, err
		}
		invoices[i] = inv
	}

	return invoices, nil
}

func (r *InvoiceRepository) SumPaidAmountByPayee(ctx context.Context, payeeAddress string) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.InvoiceModel{}).
		Select("SUM(amount)").
		Where("payee_address = ? AND status = ?", payeeAddress, vo.InvoiceStatusPaid).
		Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum paid amount: %w", err)
	}

	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *InvoiceRepository) CountPaidByPayeeAndPayerEmail(ctx context.Context, payeeAddress, payerEmail string) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.InvoiceModel{}).
		Where("payee_address = ? AND payer_email = ? AND status = ?",
			payeeAddress, payerEmail, vo.InvoiceStatusPaid).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count paid invoices: %w", err)
	}

	return count, nil
}

func (r *InvoiceRepository) ListPaidPayerEmailStats(ctx context.Context, payeeAddress string) ([]invoice.PayerStats, error) {
	var rows []struct {
		PayerEmail  string
		PaidCount   int64
		TotalAmount decimal.Decimal
		FirstPaidAt time.Time
		LastPaidAt  time.Time
	}

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.InvoiceModel{}).
		Select("payer_email, COUNT(*) AS paid_count, SUM(amount) AS total_amount, MIN(paid_at) AS first_paid_at, MAX(paid_at) AS last_paid_at").
		Where("payee_address = ? AND status = ? AND payer_email IS NOT NULL", payeeAddress, vo.InvoiceStatusPaid).
		Group("payer_email").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate payer stats: %w", err)
	}

	stats := make([]invoice.PayerStats, len(rows))
	for i, row := range rows {
		stats[i] = invoice.PayerStats{
			PayerEmail:  row.PayerEmail,
			PaidCount:   row.PaidCount,
			TotalAmount: row.TotalAmount,
			FirstPaidAt: row.FirstPaidAt,
			LastPaidAt:  row.LastPaidAt,
		}
	}

	return stats, nil
}
