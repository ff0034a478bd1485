package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/waveline-inc/waveline/internal/domain/invoice"
)

func TestListInvoices_DefaultsAndClampsPaging(t *testing.T) {
	repo := &mockInvoiceRepo{}
	uc := NewListInvoicesUseCase(repo, testLogger())

	repo.On("ListByPayee", mock.Anything, "0xpayee", 1, 20).
		Return([]*invoice.Invoice{}, int64(0), nil).Once()
	repo.On("ListByPayee", mock.Anything, "0xpayee", 3, 100).
		Return([]*invoice.Invoice{}, int64(250), nil).Once()

	// zero values fall back to the first page and the default size
	result, err := uc.Execute(context.Background(), ListInvoicesQuery{PayeeAddress: "0xPayee"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.PageSize)

	// oversized requests clamp to the maximum page size
	result, err = uc.Execute(context.Background(), ListInvoicesQuery{
		PayeeAddress: "0xpayee",
		Page:         3,
		PageSize:     500,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, result.PageSize)
	assert.Equal(t, int64(250), result.Total)
}

func TestListInvoices_ReturnsRepositoryError(t *testing.T) {
	repo := &mockInvoiceRepo{}
	uc := NewListInvoicesUseCase(repo, testLogger())

	repo.On("ListByPayee", mock.Anything, "0xpayee", 1, 20).
		Return(nil, int64(0), assert.AnError)

	_, err := uc.Execute(context.Background(), ListInvoicesQuery{PayeeAddress: "0xpayee"})
	require.Error(t, err)
}
