// Package referral holds the referral accrual ledger: per-referrer programs
// with unique codes, per-referee referral records, tiered reward multipliers
// and delayed-claim reward entries.
package referral

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier is one level of the reward-multiplier staircase.
type Tier struct {
	Level        int
	Name         string
	MinReferrals int
	Multiplier   decimal.Decimal
	BonusReward  decimal.Decimal
}

// TierTable is an ordered set of tiers with strictly increasing thresholds.
// Construct it once at startup; TierFor is safe for concurrent use.
type TierTable struct {
	tiers []Tier
}

// NewTierTable validates and orders the configured tiers. Thresholds must be
// strictly increasing, the lowest must be 0 so every referrer has a tier, and
// multipliers must not decrease as thresholds grow.
func NewTierTable(tiers []Tier) (*TierTable, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("at least one tier is required")
	}

	ordered := make([]Tier, len(tiers))
	copy(ordered, tiers)
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j].MinReferrals < ordered[j-1].MinReferrals; j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}

	if ordered[0].MinReferrals != 0 {
		return nil, fmt.Errorf("lowest tier must have min_referrals 0, got %d", ordered[0].MinReferrals)
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i].MinReferrals == ordered[i-1].MinReferrals {
			return nil, fmt.Errorf("duplicate tier threshold %d", ordered[i].MinReferrals)
		}
		if ordered[i].Multiplier.LessThan(ordered[i-1].Multiplier) {
			return nil, fmt.Errorf("tier multiplier must not decrease: threshold %d has %s, threshold %d has %s",
				ordered[i-1].MinReferrals, ordered[i-1].Multiplier, ordered[i].MinReferrals, ordered[i].Multiplier)
		}
	}
	for _, tier := range ordered {
		if !tier.Multiplier.IsPositive() {
			return nil, fmt.Errorf("tier multiplier must be positive, got %s for threshold %d", tier.Multiplier, tier.MinReferrals)
		}
		if tier.BonusReward.IsNegative() {
			return nil, fmt.Errorf("tier bonus cannot be negative, got %s for threshold %d", tier.BonusReward, tier.MinReferrals)
		}
	}

	return &TierTable{tiers: ordered}, nil
}

// TierFor returns the highest tier whose threshold the referral count meets.
func (t *TierTable) TierFor(referralCount int) Tier {
	current := t.tiers[0]
	for _, tier := range t.tiers {
		if referralCount >= tier.MinReferrals {
			current = tier
		}
	}
	return current
}

// Next returns the tier above the given one, or false when it is the highest.
func (t *TierTable) Next(tier Tier) (Tier, bool) {
	for i, candidate := range t.tiers {
		if candidate.MinReferrals == tier.MinReferrals && i+1 < len(t.tiers) {
			return t.tiers[i+1], true
		}
	}
	return Tier{}, false
}

// Tiers returns the ordered tier list.
func (t *TierTable) Tiers() []Tier {
	out := make([]Tier, len(t.tiers))
	copy(out, t.tiers)
	return out
}
