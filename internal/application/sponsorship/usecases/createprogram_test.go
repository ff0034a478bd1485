package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/waveline-inc/waveline/internal/domain/sponsorship"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

func testSponsorshipConfig() Config {
	return Config{
		DefaultMaxGasPerTx:    dec("0.01"),
		MinGasPerTx:           dec("0.001"),
		MaxGasPerTx:           dec("0.1"),
		AutoFavoriteThreshold: 3,
	}
}

func TestCreateProgram_DefaultsCapWhenZero(t *testing.T) {
	repo := &mockProgramRepo{}
	uc := NewCreateProgramUseCase(repo, testSponsorshipConfig(), testLogger())

	repo.On("GetByPayeeAddress", mock.Anything, "0xpayee").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*sponsorship.Program")).Return(nil)

	program, err := uc.Execute(context.Background(), CreateProgramCommand{
		PayeeAddress: "0xPayee",
		TotalBudget:  dec("5"),
	})
	require.NoError(t, err)

	assert.Equal(t, "0xpayee", program.PayeeAddress())
	assert.True(t, program.MaxGasPerTx().Equal(dec("0.01")))
	assert.True(t, program.RemainingBudget().Equal(dec("5")))
	assert.True(t, program.IsActive())
}

func TestCreateProgram_RejectsCapOutsideBounds(t *testing.T) {
	repo := &mockProgramRepo{}
	uc := NewCreateProgramUseCase(repo, testSponsorshipConfig(), testLogger())

	repo.On("GetByPayeeAddress", mock.Anything, "0xpayee").Return(nil, nil)

	_, err := uc.Execute(context.Background(), CreateProgramCommand{
		PayeeAddress: "0xpayee",
		TotalBudget:  dec("5"),
		MaxGasPerTx:  dec("0.5"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProgram_ConflictWhenProgramExists(t *testing.T) {
	repo := &mockProgramRepo{}
	uc := NewCreateProgramUseCase(repo, testSponsorshipConfig(), testLogger())

	existing, err := sponsorship.NewProgram("0xpayee", dec("5"), dec("0.01"))
	require.NoError(t, err)
	repo.On("GetByPayeeAddress", mock.Anything, "0xpayee").Return(existing, nil)

	_, err = uc.Execute(context.Background(), CreateProgramCommand{
		PayeeAddress: "0xpayee",
		TotalBudget:  dec("5"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProgram_ConflictOnDuplicateInsert(t *testing.T) {
	repo := &mockProgramRepo{}
	uc := NewCreateProgramUseCase(repo, testSponsorshipConfig(), testLogger())

	// the existence check and the insert can race with a concurrent request
	repo.On("GetByPayeeAddress", mock.Anything, "0xpayee").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*sponsorship.Program")).
		Return(fmt.Errorf("UNIQUE constraint failed: sponsorship_programs.payee_address"))

	_, err := uc.Execute(context.Background(), CreateProgramCommand{
		PayeeAddress: "0xpayee",
		TotalBudget:  dec("5"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}
