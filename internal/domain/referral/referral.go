package referral

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/biztime"
)

type ReferralStatus string

const (
	ReferralStatusPending   ReferralStatus = "pending"
	ReferralStatusCompleted ReferralStatus = "completed"
	ReferralStatusRewarded  ReferralStatus = "rewarded"
)

func (s ReferralStatus) IsPending() bool { return s == ReferralStatusPending }
func (s ReferralStatus) String() string  { return string(s) }

func (s ReferralStatus) IsValid() bool {
	switch s {
	case ReferralStatusPending, ReferralStatusCompleted, ReferralStatusRewarded:
		return true
	}
	return false
}

// Referral links a referee to the referrer whose code they signed up with.
// A referee has at most one referral row; the first code used wins.
type Referral struct {
	id              uint
	referrerAddress string
	refereeAddress  string
	code            string

	status       ReferralStatus
	rewardAmount decimal.Decimal
	completedAt  *time.Time

	createdAt time.Time
	updatedAt time.Time
}

func NewReferral(referrerAddress, refereeAddress, code string, baseReward decimal.Decimal) (*Referral, error) {
	referrerAddress = normalize.Address(referrerAddress)
	refereeAddress = normalize.Address(refereeAddress)
	if referrerAddress == "" {
		return nil, fmt.Errorf("referrer address is required")
	}
	if refereeAddress == "" {
		return nil, fmt.Errorf("referee address is required")
	}
	if referrerAddress == refereeAddress {
		return nil, fmt.Errorf("self-referral is not allowed")
	}
	if err := ValidateCode(code); err != nil {
		return nil, err
	}
	if !baseReward.IsPositive() {
		return nil, fmt.Errorf("base reward must be positive")
	}

	now := biztime.NowUTC()
	return &Referral{
		referrerAddress: referrerAddress,
		refereeAddress:  refereeAddress,
		code:            code,
		status:          ReferralStatusPending,
		rewardAmount:    baseReward,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// Complete transitions a pending referral to completed. Completing an
// already-completed referral is a no-op so activity sweeps stay idempotent.
func (r *Referral) Complete() bool {
	if r.status != ReferralStatusPending {
		return false
	}
	now := biztime.NowUTC()
	r.status = ReferralStatusCompleted
	r.completedAt = &now
	r.updatedAt = now
	return true
}

// MarkRewarded records that a reward row exists for this referral.
func (r *Referral) MarkRewarded() error {
	if r.status != ReferralStatusCompleted {
		return fmt.Errorf("cannot reward referral with status %s", r.status)
	}
	r.status = ReferralStatusRewarded
	r.updatedAt = biztime.NowUTC()
	return nil
}

func (r *Referral) ID() uint                      { return r.id }
func (r *Referral) ReferrerAddress() string       { return r.referrerAddress }
func (r *Referral) RefereeAddress() string        { return r.refereeAddress }
func (r *Referral) Code() string                  { return r.code }
func (r *Referral) Status() ReferralStatus        { return r.status }
func (r *Referral) RewardAmount() decimal.Decimal { return r.rewardAmount }
func (r *Referral) CompletedAt() *time.Time       { return r.completedAt }
func (r *Referral) CreatedAt() time.Time          { return r.createdAt }
func (r *Referral) UpdatedAt() time.Time          { return r.updatedAt }

// SetID sets the referral ID after persistence (used by repository after Create)
func (r *Referral) SetID(id uint) {
	r.id = id
}

func ReconstructReferral(
	id uint,
	referrerAddress, refereeAddress, code string,
	status ReferralStatus,
	rewardAmount decimal.Decimal,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Referral {
	return &Referral{
		id:              id,
		referrerAddress: referrerAddress,
		refereeAddress:  refereeAddress,
		code:            code,
		status:          status,
		rewardAmount:    rewardAmount,
		completedAt:     completedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}
