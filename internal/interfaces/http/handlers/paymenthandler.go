package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	paymentUsecases "github.com/waveline-inc/waveline/internal/application/payment/usecases"
	"github.com/waveline-inc/waveline/internal/interfaces/dto"
	"github.com/waveline-inc/waveline/internal/shared/id"
	"github.com/waveline-inc/waveline/internal/shared/logger"
	"github.com/waveline-inc/waveline/internal/shared/utils"
)

type PaymentHandler struct {
	executePaymentUC *paymentUsecases.ExecutePaymentUseCase
	logger           logger.Interface
}

func NewPaymentHandler(executePaymentUC *paymentUsecases.ExecutePaymentUseCase, logger logger.Interface) *PaymentHandler {
	return &PaymentHandler{
		executePaymentUC: executePaymentUC,
		logger:           logger,
	}
}

// @Summary		Execute payment
// @Description	Settle a pending invoice on-chain, applying fee waivers and gas sponsorship
// @Tags			payments
// @Accept			json
// @Produce		json
// @Param			payment	body		dto.ExecutePaymentRequest								true	"Payment data"
// @Success		200		{object}	utils.APIResponse{data=dto.ExecutePaymentResponse}		"Payment executed"
// @Failure		400		{object}	utils.APIResponse										"Bad request"
// @Failure		404		{object}	utils.APIResponse										"Invoice not found"
// @Failure		409		{object}	utils.APIResponse										"Invoice not payable"
// @Failure		500		{object}	utils.APIResponse										"Internal server error"
// @Router			/payments/execute [post]
func (h *PaymentHandler) ExecutePayment(c *gin.Context) {
	var req dto.ExecutePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := id.ValidatePrefix(req.InvoiceID, id.PrefixInvoice); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid invoice ID format, expected inv_xxxxx")
		return
	}

	cmd := paymentUsecases.ExecutePaymentCommand{
		InvoiceSID:   req.InvoiceID,
		PayerAddress: req.PayerAddress,
		PayerEmail:   req.PayerEmail,
	}

	result, err := h.executePaymentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to execute payment", "error", err, "invoice", req.InvoiceID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment executed", dto.ExecutePaymentResultToResponse(result))
}
