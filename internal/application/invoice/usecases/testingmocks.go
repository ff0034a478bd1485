package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/waveline-inc/waveline/internal/domain/invoice"
)

type mockInvoiceRepo struct {
	mock.Mock
}

func (m *mockInvoiceRepo) Create(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *mockInvoiceRepo) Update(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *mockInvoiceRepo) GetByID(ctx context.Context, id uint) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) GetBySID(ctx context.Context, sid string) (*invoice.Invoice, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) ListByPayee(ctx context.Context, payeeAddress string, page, pageSize int) ([]*invoice.Invoice, int64, error) {
	args := m.Called(ctx, payeeAddress, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*invoice.Invoice), args.Get(1).(int64), args.Error(2)
}

func (m *mockInvoiceRepo) ListOverduePending(ctx context.Context, asOf time.Time, limit int) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, asOf, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) SumPaidAmountByPayee(ctx context.Context, payeeAddress string) (decimal.Decimal, error) {
	args := m.Called(ctx, payeeAddress)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockInvoiceRepo) CountPaidByPayeeAndPayerEmail(ctx context.Context, payeeAddress, payerEmail string) (int64, error) {
	args := m.Called(ctx, payeeAddress, payerEmail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockInvoiceRepo) ListPaidPayerEmailStats(ctx context.Context, payeeAddress string) ([]invoice.PayerStats, error) {
	args := m.Called(ctx, payeeAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]invoice.PayerStats), args.Error(1)
}
