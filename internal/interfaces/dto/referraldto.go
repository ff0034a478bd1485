package dto

import (
	"time"

	"github.com/waveline-inc/waveline/internal/application/referral/usecases"
	"github.com/waveline-inc/waveline/internal/domain/referral"
)

// ReferralSignupRequest records that a new address signed up with a code.
type ReferralSignupRequest struct {
	RefereeAddress string `json:"referee_address" binding:"required"`
	Code           string `json:"code" binding:"required"`
}

// ClaimRewardsRequest releases every claimable reward for a referrer.
type ClaimRewardsRequest struct {
	ReferrerAddress string `json:"referrer_address" binding:"required"`
}

type ReferralResponse struct {
	ReferrerAddress string     `json:"referrer_address"`
	RefereeAddress  string     `json:"referee_address"`
	Code            string     `json:"code"`
	Status          string     `json:"status"`
	RewardAmount    string     `json:"reward_amount"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func ReferralToResponse(ref *referral.Referral) ReferralResponse {
	return ReferralResponse{
		ReferrerAddress: ref.ReferrerAddress(),
		RefereeAddress:  ref.RefereeAddress(),
		Code:            ref.Code(),
		Status:          string(ref.Status()),
		RewardAmount:    ref.RewardAmount().String(),
		CompletedAt:     ref.CompletedAt(),
		CreatedAt:       ref.CreatedAt(),
	}
}

type RewardResponse struct {
	ID          uint       `json:"id"`
	Amount      string     `json:"amount"`
	Token       string     `json:"token"`
	Status      string     `json:"status"`
	ClaimableAt time.Time  `json:"claimable_at"`
	ClaimedAt   *time.Time `json:"claimed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func RewardsToResponses(rewards []*referral.Reward) []RewardResponse {
	out := make([]RewardResponse, 0, len(rewards))
	for _, reward := range rewards {
		out = append(out, RewardResponse{
			ID:          reward.ID(),
			Amount:      reward.Amount().String(),
			Token:       reward.Token(),
			Status:      string(reward.Status()),
			ClaimableAt: reward.ClaimableAt(),
			ClaimedAt:   reward.ClaimedAt(),
			CreatedAt:   reward.CreatedAt(),
		})
	}
	return out
}

type ClaimRewardsResponse struct {
	ClaimedCount int    `json:"claimed_count"`
	TotalAmount  string `json:"total_amount"`
}

type TierResponse struct {
	Level        int    `json:"level"`
	Name         string `json:"name"`
	MinReferrals int    `json:"min_referrals"`
	Multiplier   string `json:"multiplier"`
	BonusReward  string `json:"bonus_reward"`
}

type ReferralStatsResponse struct {
	Code string `json:"code"`

	TotalReferrals     int `json:"total_referrals"`
	PendingReferrals   int `json:"pending_referrals"`
	CompletedReferrals int `json:"completed_referrals"`

	TotalRewardsEarned  string `json:"total_rewards_earned"`
	TotalRewardsClaimed string `json:"total_rewards_claimed"`
	PendingRewards      string `json:"pending_rewards"`
	ClaimableRewards    string `json:"claimable_rewards"`

	CurrentTier         TierResponse  `json:"current_tier"`
	NextTier            *TierResponse `json:"next_tier,omitempty"`
	ReferralsToNextTier int           `json:"referrals_to_next_tier"`
}

func tierToResponse(tier usecases.TierInfo) TierResponse {
	return TierResponse{
		Level:        tier.Level,
		Name:         tier.Name,
		MinReferrals: tier.MinReferrals,
		Multiplier:   tier.Multiplier.String(),
		BonusReward:  tier.BonusReward.String(),
	}
}

func ReferralStatsToResponse(stats *usecases.GetStatsResult) ReferralStatsResponse {
	resp := ReferralStatsResponse{
		Code:                stats.Code,
		TotalReferrals:      stats.TotalReferrals,
		PendingReferrals:    stats.PendingReferrals,
		CompletedReferrals:  stats.CompletedReferrals,
		TotalRewardsEarned:  stats.TotalRewardsEarned.String(),
		TotalRewardsClaimed: stats.TotalRewardsClaimed.String(),
		PendingRewards:      stats.PendingRewards.String(),
		ClaimableRewards:    stats.ClaimableRewards.String(),
		CurrentTier:         tierToResponse(stats.CurrentTier),
		ReferralsToNextTier: stats.ReferralsToNextTier,
	}
	if stats.NextTier != nil {
		next := tierToResponse(*stats.NextTier)
		resp.NextTier = &next
	}
	return resp
}
