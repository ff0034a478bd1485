package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/domain/sponsorship"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// Config carries the sponsorship guardrails applied when payees create or
// reconfigure programs and client caps.
type Config struct {
	DefaultMaxGasPerTx decimal.Decimal
	MinGasPerTx        decimal.Decimal
	MaxGasPerTx        decimal.Decimal
	// AutoFavoriteThreshold is the paid-invoice count after which a client is
	// added as a favorite automatically.
	AutoFavoriteThreshold int
}

// ValidateCap checks a per-transaction cap against the configured bounds,
// substituting the default when the cap is zero.
func (c Config) ValidateCap(perTxCap decimal.Decimal) (decimal.Decimal, error) {
	if perTxCap.IsZero() {
		return c.DefaultMaxGasPerTx, nil
	}
	if perTxCap.LessThan(c.MinGasPerTx) || perTxCap.GreaterThan(c.MaxGasPerTx) {
		return decimal.Zero, errors.NewValidationError(fmt.Sprintf(
			"per-transaction cap must be between %s and %s", c.MinGasPerTx, c.MaxGasPerTx))
	}
	return perTxCap, nil
}

// CreateProgramUseCase opts a payee into gas sponsorship with an initial budget.
type CreateProgramUseCase struct {
	programRepo sponsorship.ProgramRepository
	cfg         Config
	logger      logger.Interface
}

func NewCreateProgramUseCase(programRepo sponsorship.ProgramRepository, cfg Config, logger logger.Interface) *CreateProgramUseCase {
	return &CreateProgramUseCase{programRepo: programRepo, cfg: cfg, logger: logger}
}

type CreateProgramCommand struct {
	PayeeAddress string
	TotalBudget  decimal.Decimal
	// MaxGasPerTx defaults to the configured cap when zero.
	MaxGasPerTx decimal.Decimal
}

func (uc *CreateProgramUseCase) Execute(ctx context.Context, cmd CreateProgramCommand) (*sponsorship.Program, error) {
	payee := normalize.Address(cmd.PayeeAddress)

	existing, err := uc.programRepo.GetByPayeeAddress(ctx, payee)
	if err != nil {
		return nil, fmt.Errorf("failed to look up sponsorship program: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("payee already has a sponsorship program")
	}

	perTxCap, err := uc.cfg.ValidateCap(cmd.MaxGasPerTx)
	if err != nil {
		return nil, err
	}

	program, err := sponsorship.NewProgram(payee, cmd.TotalBudget, perTxCap)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.programRepo.Create(ctx, program); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("payee already has a sponsorship program")
		}
		return nil, fmt.Errorf("failed to create sponsorship program: %w", err)
	}

	uc.logger.Infow("sponsorship program created",
		"payee", payee,
		"budget", program.TotalBudget(),
		"max_gas_per_tx", program.MaxGasPerTx(),
	)
	return program, nil
}
