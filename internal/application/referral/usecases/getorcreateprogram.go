package usecases

import (
	"context"
	"fmt"

	"github.com/waveline-inc/waveline/internal/domain/referral"
	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// GetOrCreateProgramUseCase returns an address's referral program, creating
// it with a fresh code on first use.
type GetOrCreateProgramUseCase struct {
	programRepo referral.ProgramRepository
	logger      logger.Interface
}

func NewGetOrCreateProgramUseCase(programRepo referral.ProgramRepository, logger logger.Interface) *GetOrCreateProgramUseCase {
	return &GetOrCreateProgramUseCase{programRepo: programRepo, logger: logger}
}

// maxCodeAttempts bounds retries when a generated code collides with an
// existing one. Collisions are rare with an 8-character suffix.
const maxCodeAttempts = 3

func (uc *GetOrCreateProgramUseCase) Execute(ctx context.Context, referrerAddress string) (*referral.Program, error) {
	referrerAddress = normalize.Address(referrerAddress)
	if referrerAddress == "" {
		return nil, errors.NewValidationError("referrer address is required")
	}

	existing, err := uc.programRepo.GetByReferrerAddress(ctx, referrerAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to look up referral program: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		program, err := referral.NewProgram(referrerAddress)
		if err != nil {
			return nil, err
		}

		if err := uc.programRepo.Create(ctx, program); err != nil {
			if errors.IsDuplicateError(err) {
				// either a concurrent create for the same address, or a code
				// collision; re-read and retry with a fresh code
				if again, readErr := uc.programRepo.GetByReferrerAddress(ctx, referrerAddress); readErr == nil && again != nil {
					return again, nil
				}
				continue
			}
			return nil, fmt.Errorf("failed to create referral program: %w", err)
		}

		uc.logger.Infow("referral program created",
			"referrer", referrerAddress,
			"code", program.Code(),
		)
		return program, nil
	}

	return nil, fmt.Errorf("failed to create referral program after %d attempts", maxCodeAttempts)
}
