package mappers

import (
	"fmt"

	"github.com/waveline-inc/waveline/internal/domain/referral"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/models"
)

func ReferralProgramToModel(p *referral.Program) *models.ReferralProgramModel {
	return &models.ReferralProgramModel{
		ID:                  p.ID(),
		ReferrerAddress:     p.ReferrerAddress(),
		Code:                p.Code(),
		TotalReferrals:      p.TotalReferrals(),
		TotalRewardsEarned:  p.TotalRewardsEarned(),
		TotalRewardsClaimed: p.TotalRewardsClaimed(),
		PendingRewards:      p.PendingRewards(),
		IsActive:            p.IsActive(),
		CreatedAt:           p.CreatedAt(),
		UpdatedAt:           p.UpdatedAt(),
	}
}

func ReferralProgramToDomain(model *models.ReferralProgramModel) *referral.Program {
	return referral.ReconstructProgram(
		model.ID,
		model.ReferrerAddress,
		model.Code,
		model.TotalReferrals,
		model.TotalRewardsEarned,
		model.TotalRewardsClaimed,
		model.PendingRewards,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func ReferralToModel(r *referral.Referral) *models.ReferralModel {
	return &models.ReferralModel{
		ID:              r.ID(),
		ReferrerAddress: r.ReferrerAddress(),
		RefereeAddress:  r.RefereeAddress(),
		Code:            r.Code(),
		Status:          string(r.Status()),
		RewardAmount:    r.RewardAmount(),
		CompletedAt:     r.CompletedAt(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}

func ReferralToDomain(model *models.ReferralModel) (*referral.Referral, error) {
	status := referral.ReferralStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid referral status: %s", model.Status)
	}

	return referral.ReconstructReferral(
		model.ID,
		model.ReferrerAddress,
		model.RefereeAddress,
		model.Code,
		status,
		model.RewardAmount,
		model.CompletedAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func RewardToModel(r *referral.Reward) *models.ReferralRewardModel {
	return &models.ReferralRewardModel{
		ID:              r.ID(),
		ReferralID:      r.ReferralID(),
		ReferrerAddress: r.ReferrerAddress(),
		Amount:          r.Amount(),
		Token:           r.Token(),
		Status:          string(r.Status()),
		ClaimableAt:     r.ClaimableAt(),
		ClaimedAt:       r.ClaimedAt(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}

func RewardToDomain(model *models.ReferralRewardModel) (*referral.Reward, error) {
	status := referral.RewardStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid reward status: %s", model.Status)
	}

	return referral.ReconstructReward(
		model.ID,
		model.ReferralID,
		model.ReferrerAddress,
		model.Amount,
		model.Token,
		status,
		model.ClaimableAt,
		model.ClaimedAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
