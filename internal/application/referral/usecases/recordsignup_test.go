package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/waveline-inc/waveline/internal/domain/referral"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

func TestRecordSignup_InvalidCodeFormat(t *testing.T) {
	log := logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
	programRepo := &mockProgramRepo{}
	referralRepo := &mockReferralRepo{}
	uc := NewRecordSignupUseCase(programRepo, referralRepo, testConfig(t), log)

	_, err := uc.Execute(context.Background(), RecordSignupCommand{
		RefereeAddress: "0xreferee",
		Code:           "NOTWAVE",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	referralRepo.AssertNotCalled(t, "GetByRefereeAddress", mock.Anything, mock.Anything)
}

func TestRecordSignup_ConcurrentSignupLosesRaceGracefully(t *testing.T) {
	log := logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
	programRepo := &mockProgramRepo{}
	referralRepo := &mockReferralRepo{}
	uc := NewRecordSignupUseCase(programRepo, referralRepo, testConfig(t), log)

	program, err := referral.NewProgram("0xreferrer")
	require.NoError(t, err)
	winner := pendingReferral(t, "0xreferrer", "0xreferee")

	// the existence check and the insert race with a concurrent signup
	referralRepo.On("GetByRefereeAddress", mock.Anything, "0xreferee").Return(nil, nil).Once()
	programRepo.On("GetByCode", mock.Anything, program.Code()).Return(program, nil)
	referralRepo.On("Create", mock.Anything, mock.AnythingOfType("*referral.Referral")).
		Return(fmt.Errorf("UNIQUE constraint failed: referrals.referee_address"))
	referralRepo.On("GetByRefereeAddress", mock.Anything, "0xreferee").Return(winner, nil).Once()

	got, err := uc.Execute(context.Background(), RecordSignupCommand{
		RefereeAddress: "0xreferee",
		Code:           program.Code(),
	})
	require.NoError(t, err)
	assert.Same(t, winner, got)
}
