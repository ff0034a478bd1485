package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/application/swap"
	vo "github.com/waveline-inc/waveline/internal/domain/invoice/valueobjects"
	"github.com/waveline-inc/waveline/internal/interfaces/dto"
	"github.com/waveline-inc/waveline/internal/shared/logger"
	"github.com/waveline-inc/waveline/internal/shared/utils"
)

type SwapHandler struct {
	quoteService *swap.QuoteService
	logger       logger.Interface
}

func NewSwapHandler(quoteService *swap.QuoteService, logger logger.Interface) *SwapHandler {
	return &SwapHandler{
		quoteService: quoteService,
		logger:       logger,
	}
}

// @Summary		Get swap quote
// @Description	Quote a token swap with price impact and a slippage-bounded minimum out
// @Tags			swap
// @Produce		json
// @Param			from_token	query		string										true	"Source token symbol"
// @Param			to_token	query		string										true	"Destination token symbol"
// @Param			amount		query		string										true	"Amount of source token"
// @Param			slippage	query		string										false	"Slippage tolerance fraction"
// @Success		200			{object}	utils.APIResponse{data=dto.SwapQuoteResponse}	"Quote retrieved successfully"
// @Failure		400			{object}	utils.APIResponse							"Bad request"
// @Router			/swap/quote [get]
func (h *SwapHandler) GetQuote(c *gin.Context) {
	var req dto.SwapQuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	fromToken := vo.NewToken(req.FromToken)
	if !fromToken.IsValid() {
		utils.ErrorResponse(c, http.StatusBadRequest, "unsupported from_token: "+req.FromToken)
		return
	}
	toToken := vo.NewToken(req.ToToken)
	if !toToken.IsValid() {
		utils.ErrorResponse(c, http.StatusBadRequest, "unsupported to_token: "+req.ToToken)
		return
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid amount: "+req.Amount)
		return
	}

	slippage := decimal.Zero
	if req.Slippage != "" {
		if slippage, err = dto.ParseAmount(req.Slippage); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid slippage: "+req.Slippage)
			return
		}
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), fromToken, toToken, amount, slippage)
	if err != nil {
		h.logger.Errorw("failed to get swap quote", "error", err,
			"from", req.FromToken, "to", req.ToToken)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "swap quote retrieved successfully", dto.SwapQuoteToResponse(quote))
}
