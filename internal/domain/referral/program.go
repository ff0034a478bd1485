package referral

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/biztime"
)

// Program is a referrer's accrual account, created lazily the first time an
// address requests a code. The cumulative totals mirror the reward rows and
// exist for cheap display.
type Program struct {
	id              uint
	referrerAddress string
	code            string

	totalReferrals      int
	totalRewardsEarned  decimal.Decimal
	totalRewardsClaimed decimal.Decimal
	pendingRewards      decimal.Decimal

	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewProgram(referrerAddress string) (*Program, error) {
	referrerAddress = normalize.Address(referrerAddress)
	if referrerAddress == "" {
		return nil, fmt.Errorf("referrer address is required")
	}

	code, err := GenerateCode(referrerAddress)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Program{
		referrerAddress:     referrerAddress,
		code:                code,
		totalRewardsEarned:  decimal.Zero,
		totalRewardsClaimed: decimal.Zero,
		pendingRewards:      decimal.Zero,
		isActive:            true,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// RecordCompletion advances the referral count and accrues a pending reward.
func (p *Program) RecordCompletion(reward decimal.Decimal) {
	p.totalReferrals++
	p.totalRewardsEarned = p.totalRewardsEarned.Add(reward)
	p.pendingRewards = p.pendingRewards.Add(reward)
	p.updatedAt = biztime.NowUTC()
}

// RecordClaim moves an amount from pending to claimed.
func (p *Program) RecordClaim(amount decimal.Decimal) error {
	if amount.GreaterThan(p.pendingRewards) {
		return fmt.Errorf("claim %s exceeds pending rewards %s", amount, p.pendingRewards)
	}
	p.pendingRewards = p.pendingRewards.Sub(amount)
	p.totalRewardsClaimed = p.totalRewardsClaimed.Add(amount)
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Program) Deactivate() {
	p.isActive = false
	p.updatedAt = biztime.NowUTC()
}

func (p *Program) ID() uint                             { return p.id }
func (p *Program) ReferrerAddress() string              { return p.referrerAddress }
func (p *Program) Code() string                         { return p.code }
func (p *Program) TotalReferrals() int                  { return p.totalReferrals }
func (p *Program) TotalRewardsEarned() decimal.Decimal  { return p.totalRewardsEarned }
func (p *Program) TotalRewardsClaimed() decimal.Decimal { return p.totalRewardsClaimed }
func (p *Program) PendingRewards() decimal.Decimal      { return p.pendingRewards }
func (p *Program) IsActive() bool                       { return p.isActive }
func (p *Program) CreatedAt() time.Time                 { return p.createdAt }
func (p *Program) UpdatedAt() time.Time                 { return p.updatedAt }

// SetID sets the program ID after persistence (used by repository after Create)
func (p *Program) SetID(id uint) {
	p.id = id
}

func ReconstructProgram(
	id uint,
	referrerAddress, code string,
	totalReferrals int,
	totalRewardsEarned, totalRewardsClaimed, pendingRewards decimal.Decimal,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Program {
	return &Program{
		id:                  id,
		referrerAddress:     referrerAddress,
		code:                code,
		totalReferrals:      totalReferrals,
		totalRewardsEarned:  totalRewardsEarned,
		totalRewardsClaimed: totalRewardsClaimed,
		pendingRewards:      pendingRewards,
		isActive:            isActive,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}
