package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	referralUsecases "github.com/waveline-inc/waveline/internal/application/referral/usecases"
	"github.com/waveline-inc/waveline/internal/interfaces/dto"
	"github.com/waveline-inc/waveline/internal/shared/logger"
	"github.com/waveline-inc/waveline/internal/shared/utils"
)

type ReferralHandler struct {
	getOrCreateProgramUC *referralUsecases.GetOrCreateProgramUseCase
	recordSignupUC       *referralUsecases.RecordSignupUseCase
	getStatsUC           *referralUsecases.GetStatsUseCase
	claimRewardsUC       *referralUsecases.ClaimRewardsUseCase
	listRewardsUC        *referralUsecases.ListRewardsUseCase
	logger               logger.Interface
}

func NewReferralHandler(
	getOrCreateProgramUC *referralUsecases.GetOrCreateProgramUseCase,
	recordSignupUC *referralUsecases.RecordSignupUseCase,
	getStatsUC *referralUsecases.GetStatsUseCase,
	claimRewardsUC *referralUsecases.ClaimRewardsUseCase,
	listRewardsUC *referralUsecases.ListRewardsUseCase,
	logger logger.Interface,
) *ReferralHandler {
	return &ReferralHandler{
		getOrCreateProgramUC: getOrCreateProgramUC,
		recordSignupUC:       recordSignupUC,
		getStatsUC:           getStatsUC,
		claimRewardsUC:       claimRewardsUC,
		listRewardsUC:        listRewardsUC,
		logger:               logger,
	}
}

// @Summary		Get referral code
// @Description	Get a referrer's code, creating their program on first use
// @Tags			referrals
// @Produce		json
// @Param			address	path		string				true	"Referrer wallet address"
// @Success		200		{object}	utils.APIResponse	"Referral code retrieved successfully"
// @Failure		400		{object}	utils.APIResponse	"Bad request"
// @Router			/referrals/{address}/code [get]
func (h *ReferralHandler) GetCode(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "referrer address is required")
		return
	}

	program, err := h.getOrCreateProgramUC.Execute(c.Request.Context(), address)
	if err != nil {
		h.logger.Errorw("failed to get referral program", "error", err, "referrer", address)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "referral code retrieved successfully", gin.H{
		"code":             program.Code(),
		"referrer_address": program.ReferrerAddress(),
	})
}

// @Summary		Record referral signup
// @Description	Link a new address to a referrer via a referral code
// @Tags			referrals
// @Accept			json
// @Produce		json
// @Param			signup	body		dto.ReferralSignupRequest						true	"Signup data"
// @Success		201		{object}	utils.APIResponse{data=dto.ReferralResponse}	"Referral recorded successfully"
// @Failure		400		{object}	utils.APIResponse								"Bad request"
// @Failure		404		{object}	utils.APIResponse								"Referral code not found"
// @Failure		409		{object}	utils.APIResponse								"Address already referred"
// @Router			/referrals/signup [post]
func (h *ReferralHandler) RecordSignup(c *gin.Context) {
	var req dto.ReferralSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	cmd := referralUsecases.RecordSignupCommand{
		RefereeAddress: req.RefereeAddress,
		Code:           req.Code,
	}

	ref, err := h.recordSignupUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to record referral signup", "error", err, "referee", req.RefereeAddress)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ReferralToResponse(ref), "referral recorded successfully")
}

// @Summary		Get referral stats
// @Description	Get a referrer's referral counts, reward totals, and tier standing
// @Tags			referrals
// @Produce		json
// @Param			address	path		string												true	"Referrer wallet address"
// @Success		200		{object}	utils.APIResponse{data=dto.ReferralStatsResponse}	"Stats retrieved successfully"
// @Failure		400		{object}	utils.APIResponse									"Bad request"
// @Router			/referrals/{address}/stats [get]
func (h *ReferralHandler) GetStats(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "referrer address is required")
		return
	}

	stats, err := h.getStatsUC.Execute(c.Request.Context(), address)
	if err != nil {
		h.logger.Errorw("failed to get referral stats", "error", err, "referrer", address)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "referral stats retrieved successfully", dto.ReferralStatsToResponse(stats))
}

// @Summary		List referral rewards
// @Description	List every reward accrued for a referrer
// @Tags			referrals
// @Produce		json
// @Param			address	path		string											true	"Referrer wallet address"
// @Success		200		{object}	utils.APIResponse{data=[]dto.RewardResponse}	"Rewards retrieved successfully"
// @Router			/referrals/{address}/rewards [get]
func (h *ReferralHandler) ListRewards(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "referrer address is required")
		return
	}

	rewards, err := h.listRewardsUC.Execute(c.Request.Context(), address)
	if err != nil {
		h.logger.Errorw("failed to list referral rewards", "error", err, "referrer", address)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "referral rewards retrieved successfully", dto.RewardsToResponses(rewards))
}

// @Summary		Claim referral rewards
// @Description	Release every claimable reward for a referrer
// @Tags			referrals
// @Accept			json
// @Produce		json
// @Param			claim	body		dto.ClaimRewardsRequest								true	"Claim data"
// @Success		200		{object}	utils.APIResponse{data=dto.ClaimRewardsResponse}	"Rewards claimed successfully"
// @Failure		400		{object}	utils.APIResponse									"Bad request"
// @Router			/referrals/claim [post]
func (h *ReferralHandler) ClaimRewards(c *gin.Context) {
	var req dto.ClaimRewardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.claimRewardsUC.Execute(c.Request.Context(), req.ReferrerAddress)
	if err != nil {
		h.logger.Errorw("failed to claim referral rewards", "error", err, "referrer", req.ReferrerAddress)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "referral rewards claimed successfully", dto.ClaimRewardsResponse{
		ClaimedCount: result.ClaimedCount,
		TotalAmount:  result.TotalAmount.String(),
	})
}
