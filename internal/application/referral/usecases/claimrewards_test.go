package usecases

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/waveline-inc/waveline/internal/domain/referral"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

func TestClaimRewards_NothingToClaim(t *testing.T) {
	log := logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
	rewardRepo := &mockRewardRepo{}
	programRepo := &mockProgramRepo{}
	uc := NewClaimRewardsUseCase(rewardRepo, programRepo, log)

	rewardRepo.On("ListPendingByReferrer", mock.Anything, "0xreferrer").Return([]*referral.Reward{}, nil)

	result, err := uc.Execute(context.Background(), "0xreferrer")
	require.NoError(t, err)

	assert.Equal(t, 0, result.ClaimedCount)
	assert.True(t, result.TotalAmount.IsZero())
	// program totals are untouched when no reward matured
	programRepo.AssertNotCalled(t, "GetByReferrerAddress", mock.Anything, mock.Anything)
}

func TestClaimRewards_EmptyAddress(t *testing.T) {
	log := logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
	uc := NewClaimRewardsUseCase(&mockRewardRepo{}, &mockProgramRepo{}, log)

	_, err := uc.Execute(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
