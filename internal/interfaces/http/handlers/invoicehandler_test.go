package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	invoiceUsecases "github.com/waveline-inc/waveline/internal/application/invoice/usecases"
	"github.com/waveline-inc/waveline/internal/domain/invoice"
	vo "github.com/waveline-inc/waveline/internal/domain/invoice/valueobjects"
	"github.com/waveline-inc/waveline/internal/interfaces/dto"
	"github.com/waveline-inc/waveline/internal/interfaces/http/handlers/testutil"
	"github.com/waveline-inc/waveline/internal/shared/errors"
)

type mockInvoiceRepo struct{ mock.Mock }

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

func newInvoiceHandler(repo *mockInvoiceRepo) *InvoiceHandler {
	log := testutil.NewMockLogger()
	return NewInvoiceHandler(
		invoiceUsecases.NewCreateInvoiceUseCase(repo, log),
		invoiceUsecases.NewGetInvoiceUseCase(repo, log),
		invoiceUsecases.NewListInvoicesUseCase(repo, log),
		log,
	)
}

func testInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewInvoice("0xpayee", decimal.RequireFromString("120.50"), vo.Token("USDC"), nil, "August retainer")
	require.NoError(t, err)
	inv.SetID(1)
	return inv
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	repo := &mockInvoiceRepo{}
	handler := newInvoiceHandler(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).Return(nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/invoices", dto.CreateInvoiceRequest{
		PayeeAddress: "0xPayee",
		Amount:       "120.50",
		Token:        "USDC",
		Description:  "August retainer",
	})
	handler.CreateInvoice(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var invResp dto.InvoiceResponse
	require.NoError(t, json.Unmarshal(resp.Data, &invResp))
	assert.Equal(t, "0xpayee", invResp.PayeeAddress)
	assert.Equal(t, "120.5", invResp.Amount)
	assert.Equal(t, "pending", invResp.Status)
	assert.Contains(t, invResp.SID, "inv_")
}

func TestInvoiceHandler_CreateInvoice_InvalidAmount(t *testing.T) {
	repo := &mockInvoiceRepo{}
	handler := newInvoiceHandler(repo)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/invoices", dto.CreateInvoiceRequest{
		PayeeAddress: "0xpayee",
		Amount:       "not-a-number",
		Token:        "USDC",
	})
	handler.CreateInvoice(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceHandler_GetInvoice_NotFound(t *testing.T) {
	repo := &mockInvoiceRepo{}
	handler := newInvoiceHandler(repo)

	repo.On("GetBySID", mock.Anything, "inv_missing").Return(nil, errors.NewNotFoundError("invoice not found"))

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/invoices/inv_missing", nil)
	testutil.SetURLParam(c, "id", "inv_missing")
	handler.GetInvoice(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestInvoiceHandler_GetInvoice_RejectsForeignPrefix(t *testing.T) {
	repo := &mockInvoiceRepo{}
	handler := newInvoiceHandler(repo)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/invoices/stx_123", nil)
	testutil.SetURLParam(c, "id", "stx_123")
	handler.GetInvoice(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "GetBySID", mock.Anything, mock.Anything)
}

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	repo := &mockInvoiceRepo{}
	handler := newInvoiceHandler(repo)

	repo.On("ListByPayee", mock.Anything, "0xpayee", 1, 20).
		Return([]*invoice.Invoice{testInvoice(t)}, int64(1), nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/invoices", nil)
	testutil.SetQueryParams(c, map[string]string{"payee_address": "0xPayee"})
	handler.ListInvoices(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Items []dto.InvoiceResponse `json:"items"`
			Total int64                 `json:"total"`
			Page  int                   `json:"page"`
		} `json:"data"`
	}
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(1), resp.Data.Total)
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, "0xpayee", resp.Data.Items[0].PayeeAddress)
}

func TestInvoiceHandler_ListInvoices_MissingPayee(t *testing.T) {
	repo := &mockInvoiceRepo{}
	handler := newInvoiceHandler(repo)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/invoices", nil)
	handler.ListInvoices(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
