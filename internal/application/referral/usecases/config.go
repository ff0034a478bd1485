package usecases

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/domain/referral"
)

// Config carries the referral program parameters shared by the usecases.
type Config struct {
	// BaseReward is the reward amount before the tier multiplier.
	BaseReward decimal.Decimal
	// RewardToken denominates reward amounts.
	RewardToken string
	// MinActivityThreshold is the lifetime paid-invoice total a referee must
	// reach before their referral completes.
	MinActivityThreshold decimal.Decimal
	// RewardDelay is how long after completion a reward stays locked.
	RewardDelay time.Duration

	Tiers *referral.TierTable
}
