package referral

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/shared/biztime"
)

type RewardStatus string

const (
	RewardStatusPending RewardStatus = "pending"
	RewardStatusClaimed RewardStatus = "claimed"
)

func (s RewardStatus) String() string { return string(s) }

func (s RewardStatus) IsValid() bool {
	return s == RewardStatusPending || s == RewardStatusClaimed
}

// Reward is created when a referral completes. The amount is fixed at
// completion time using the referrer's tier multiplier then current; it is
// never recomputed if the referrer later climbs a tier.
type Reward struct {
	id              uint
	referralID      uint
	referrerAddress string

	amount decimal.Decimal
	token  string

	status      RewardStatus
	claimableAt time.Time
	claimedAt   *time.Time

	createdAt time.Time
	updatedAt time.Time
}

func NewReward(referralID uint, referrerAddress string, amount decimal.Decimal, token string, claimDelay time.Duration) (*Reward, error) {
	if referralID == 0 {
		return nil, fmt.Errorf("referral ID is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("reward amount must be positive")
	}

	now := biztime.NowUTC()
	return &Reward{
		referralID:      referralID,
		referrerAddress: referrerAddress,
		amount:          amount,
		token:           token,
		status:          RewardStatusPending,
		claimableAt:     now.Add(claimDelay),
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// IsClaimable reports whether the claim delay has elapsed.
func (r *Reward) IsClaimable(now time.Time) bool {
	return r.status == RewardStatusPending && !now.Before(r.claimableAt)
}

// Claim marks the reward claimed. The delay must have elapsed.
func (r *Reward) Claim(now time.Time) error {
	if r.status == RewardStatusClaimed {
		return fmt.Errorf("reward already claimed")
	}
	if now.Before(r.claimableAt) {
		return fmt.Errorf("reward not claimable until %s", r.claimableAt.Format(time.RFC3339))
	}

	r.status = RewardStatusClaimed
	r.claimedAt = &now
	r.updatedAt = biztime.NowUTC()
	return nil
}

func (r *Reward) ID() uint                { return r.id }
func (r *Reward) ReferralID() uint        { return r.referralID }
func (r *Reward) ReferrerAddress() string { return r.referrerAddress }
func (r *Reward) Amount() decimal.Decimal { return r.amount }
func (r *Reward) Token() string           { return r.token }
func (r *Reward) Status() RewardStatus    { return r.status }
func (r *Reward) ClaimableAt() time.Time  { return r.claimableAt }
func (r *Reward) ClaimedAt() *time.Time   { return r.claimedAt }
func (r *Reward) CreatedAt() time.Time    { return r.createdAt }
func (r *Reward) UpdatedAt() time.Time    { return r.updatedAt }

// SetID sets the reward ID after persistence (used by repository after Create)
func (r *Reward) SetID(id uint) {
	r.id = id
}

func ReconstructReward(
	id, referralID uint,
	referrerAddress string,
	amount decimal.Decimal,
	token string,
	status RewardStatus,
	claimableAt time.Time,
	claimedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Reward {
	return &Reward{
		id:              id,
		referralID:      referralID,
		referrerAddress: referrerAddress,
		amount:          amount,
		token:           token,
		status:          status,
		claimableAt:     claimableAt,
		claimedAt:       claimedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}
