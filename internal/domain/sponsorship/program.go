// Package sponsorship holds the gas-sponsorship budget ledger: a per-payee
// program with a finite budget, per-client favorite records, and the
// append-only audit trail of sponsored transactions.
package sponsorship

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/biztime"
)

// Program is a payee's gas-sponsorship budget. The remaining balance is
// mutated only through Debit and Credit, and a debit larger than the
// remaining balance is rejected rather than clamped. Callers clamp the
// requested amount with ClampDebit before attempting the debit.
type Program struct {
	id           uint
	payeeAddress string

	totalBudget     decimal.Decimal
	remainingBudget decimal.Decimal
	maxGasPerTx     decimal.Decimal
	isActive        bool

	sponsoredTxCount     int64
	totalSponsoredAmount decimal.Decimal

	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewProgram(payeeAddress string, totalBudget, maxGasPerTx decimal.Decimal) (*Program, error) {
	payeeAddress = normalize.Address(payeeAddress)
	if payeeAddress == "" {
		return nil, fmt.Errorf("payee address is required")
	}
	if !totalBudget.IsPositive() {
		return nil, fmt.Errorf("total budget must be positive")
	}
	if !maxGasPerTx.IsPositive() {
		return nil, fmt.Errorf("per-transaction cap must be positive")
	}

	now := biztime.NowUTC()
	return &Program{
		payeeAddress:         payeeAddress,
		totalBudget:          totalBudget,
		remainingBudget:      totalBudget,
		maxGasPerTx:          maxGasPerTx,
		isActive:             true,
		totalSponsoredAmount: decimal.Zero,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

// CanSponsor reports whether the program can fund at least part of a transaction.
func (p *Program) CanSponsor() bool {
	return p.isActive && p.remainingBudget.IsPositive()
}

// ClampDebit returns the amount the program is willing to fund for a
// transaction with the given cost estimate: the minimum of the per-client
// cap, the program's own cap, the remaining budget and the estimate itself.
// A zero or negative result means no debit should be attempted.
func (p *Program) ClampDebit(estimatedCost, clientCap decimal.Decimal) decimal.Decimal {
	amount := estimatedCost
	if clientCap.IsPositive() && clientCap.LessThan(amount) {
		amount = clientCap
	}
	if p.maxGasPerTx.LessThan(amount) {
		amount = p.maxGasPerTx
	}
	if p.remainingBudget.LessThan(amount) {
		amount = p.remainingBudget
	}
	return amount
}

// Debit reduces the remaining budget and advances the cumulative counters.
// The amount must have been clamped beforehand; over-debits are rejected.
func (p *Program) Debit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("debit amount must be positive")
	}
	if amount.GreaterThan(p.remainingBudget) {
		return fmt.Errorf("debit %s exceeds remaining budget %s", amount, p.remainingBudget)
	}

	p.remainingBudget = p.remainingBudget.Sub(amount)
	p.sponsoredTxCount++
	p.totalSponsoredAmount = p.totalSponsoredAmount.Add(amount)
	p.updatedAt = biztime.NowUTC()
	p.version++

	return nil
}

// Credit tops up the budget.
func (p *Program) Credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("credit amount must be positive")
	}

	p.totalBudget = p.totalBudget.Add(amount)
	p.remainingBudget = p.remainingBudget.Add(amount)
	p.updatedAt = biztime.NowUTC()
	p.version++

	return nil
}

func (p *Program) Activate() {
	if p.isActive {
		return
	}
	p.isActive = true
	p.updatedAt = biztime.NowUTC()
	p.version++
}

func (p *Program) Deactivate() {
	if !p.isActive {
		return
	}
	p.isActive = false
	p.updatedAt = biztime.NowUTC()
	p.version++
}

// SetMaxGasPerTx updates the per-transaction cap.
func (p *Program) SetMaxGasPerTx(cap decimal.Decimal) error {
	if !cap.IsPositive() {
		return fmt.Errorf("per-transaction cap must be positive")
	}
	p.maxGasPerTx = cap
	p.updatedAt = biztime.NowUTC()
	p.version++
	return nil
}

func (p *Program) ID() uint                              { return p.id }
func (p *Program) PayeeAddress() string                  { return p.payeeAddress }
func (p *Program) TotalBudget() decimal.Decimal          { return p.totalBudget }
func (p *Program) RemainingBudget() decimal.Decimal      { return p.remainingBudget }
func (p *Program) MaxGasPerTx() decimal.Decimal          { return p.maxGasPerTx }
func (p *Program) IsActive() bool                        { return p.isActive }
func (p *Program) SponsoredTxCount() int64               { return p.sponsoredTxCount }
func (p *Program) TotalSponsoredAmount() decimal.Decimal { return p.totalSponsoredAmount }
func (p *Program) Version() int                          { return p.version }
func (p *Program) CreatedAt() time.Time                  { return p.createdAt }
func (p *Program) UpdatedAt() time.Time                  { return p.updatedAt }

// SetID sets the program ID after persistence (used by repository after Create)
func (p *Program) SetID(id uint) {
	p.id = id
}

func ReconstructProgram(
	id uint,
	payeeAddress string,
	totalBudget, remainingBudget, maxGasPerTx decimal.Decimal,
	isActive bool,
	sponsoredTxCount int64,
	totalSponsoredAmount decimal.Decimal,
	version int,
	createdAt, updatedAt time.Time,
) *Program {
	return &Program{
		id:                   id,
		payeeAddress:         payeeAddress,
		totalBudget:          totalBudget,
		remainingBudget:      remainingBudget,
		maxGasPerTx:          maxGasPerTx,
		isActive:             isActive,
		sponsoredTxCount:     sponsoredTxCount,
		totalSponsoredAmount: totalSponsoredAmount,
		version:              version,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}
