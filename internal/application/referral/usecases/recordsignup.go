package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/waveline-inc/waveline/internal/domain/referral"
	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// RecordSignupUseCase links a new address to the referrer whose code they
// signed up with. Replays are no-ops: a referee keeps the first referral
// regardless of how many codes they present later.
type RecordSignupUseCase struct {
	programRepo  referral.ProgramRepository
	referralRepo referral.ReferralRepository
	cfg          Config
	logger       logger.Interface
}

func NewRecordSignupUseCase(
	programRepo referral.ProgramRepository,
	referralRepo referral.ReferralRepository,
	cfg Config,
	logger logger.Interface,
) *RecordSignupUseCase {
	return &RecordSignupUseCase{
		programRepo:  programRepo,
		referralRepo: referralRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

type RecordSignupCommand struct {
	RefereeAddress string
	Code           string
}

func (uc *RecordSignupUseCase) Execute(ctx context.Context, cmd RecordSignupCommand) (*referral.Referral, error) {
	refereeAddress := normalize.Address(cmd.RefereeAddress)
	if refereeAddress == "" {
		return nil, errors.NewValidationError("referee address is required")
	}
	code := strings.ToUpper(strings.TrimSpace(cmd.Code))
	if err := referral.ValidateCode(code); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.referralRepo.GetByRefereeAddress(ctx, refereeAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to look up referral: %w", err)
	}
	if existing != nil {
		// first referral wins; replaying a signup is not an error
		return existing, nil
	}

	program, err := uc.programRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve referral code: %w", err)
	}
	if program == nil || !program.IsActive() {
		return nil, errors.NewValidationError("referral code does not resolve to an active program")
	}

	rec, err := referral.NewReferral(program.ReferrerAddress(), refereeAddress, code, uc.cfg.BaseReward)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.referralRepo.Create(ctx, rec); err != nil {
		if errors.IsDuplicateError(err) {
			// lost a race with a concurrent signup for the same referee
			if again, readErr := uc.referralRepo.GetByRefereeAddress(ctx, refereeAddress); readErr == nil && again != nil {
				return again, nil
			}
		}
		return nil, fmt.Errorf("failed to create referral: %w", err)
	}

	uc.logger.Infow("referral signup recorded",
		"referrer", rec.ReferrerAddress(),
		"referee", refereeAddress,
		"code", code,
	)

	return rec, nil
}
