package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	invoiceUsecases "github.com/waveline-inc/waveline/internal/application/invoice/usecases"
	"github.com/waveline-inc/waveline/internal/interfaces/dto"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/id"
	"github.com/waveline-inc/waveline/internal/shared/logger"
	"github.com/waveline-inc/waveline/internal/shared/utils"
)

type InvoiceHandler struct {
	createInvoiceUC *invoiceUsecases.CreateInvoiceUseCase
	getInvoiceUC    *invoiceUsecases.GetInvoiceUseCase
	listInvoicesUC  *invoiceUsecases.ListInvoicesUseCase
	logger          logger.Interface
}

func NewInvoiceHandler(
	createInvoiceUC *invoiceUsecases.CreateInvoiceUseCase,
	getInvoiceUC *invoiceUsecases.GetInvoiceUseCase,
	listInvoicesUC *invoiceUsecases.ListInvoicesUseCase,
	logger logger.Interface,
) *InvoiceHandler {
	return &InvoiceHandler{
		createInvoiceUC: createInvoiceUC,
		getInvoiceUC:    getInvoiceUC,
		listInvoicesUC:  listInvoicesUC,
		logger:          logger,
	}
}

// @Summary		Create invoice
// @Description	Issue a new invoice for a payee
// @Tags			invoices
// @Accept			json
// @Produce		json
// @Param			invoice	body		dto.CreateInvoiceRequest						true	"Invoice data"
// @Success		201		{object}	utils.APIResponse{data=dto.InvoiceResponse}		"Invoice created successfully"
// @Failure		400		{object}	utils.APIResponse								"Bad request"
// @Failure		500		{object}	utils.APIResponse								"Internal server error"
// @Router			/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid amount: "+req.Amount)
		return
	}

	cmd := invoiceUsecases.CreateInvoiceCommand{
		PayeeAddress: req.PayeeAddress,
		Amount:       amount,
		Token:        req.Token,
		PayerEmail:   req.PayerEmail,
		Description:  req.Description,
		DueDate:      req.DueDate,
	}

	inv, err := h.createInvoiceUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to create invoice", "error", err, "payee", req.PayeeAddress)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.InvoiceToResponse(inv), "invoice created successfully")
}

// @Summary		Get invoice
// @Description	Get a single invoice by its public ID
// @Tags			invoices
// @Produce		json
// @Param			id	path		string										true	"Invoice ID"
// @Success		200	{object}	utils.APIResponse{data=dto.InvoiceResponse}	"Invoice retrieved successfully"
// @Failure		400	{object}	utils.APIResponse							"Bad request"
// @Failure		404	{object}	utils.APIResponse							"Invoice not found"
// @Router			/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixInvoice, "invoice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	inv, err := h.getInvoiceUC.Execute(c.Request.Context(), sid)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			h.logger.Errorw("failed to get invoice", "error", err, "sid", sid)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "invoice retrieved successfully", dto.InvoiceToResponse(inv))
}

// @Summary		List invoices
// @Description	List a payee's invoices, newest first
// @Tags			invoices
// @Produce		json
// @Param			payee_address	query		string										true	"Payee wallet address"
// @Param			page			query		int											false	"Page number"
// @Param			page_size		query		int											false	"Page size"
// @Success		200				{object}	utils.APIResponse{data=[]dto.InvoiceResponse}	"Invoices retrieved successfully"
// @Failure		400				{object}	utils.APIResponse							"Bad request"
// @Router			/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	payeeAddress := c.Query("payee_address")
	if payeeAddress == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "payee_address is required")
		return
	}

	pagination := utils.ParsePagination(c)
	query := invoiceUsecases.ListInvoicesQuery{
		PayeeAddress: payeeAddress,
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	}

	result, err := h.listInvoicesUC.Execute(c.Request.Context(), query)
	if err != nil {
		h.logger.Errorw("failed to list invoices", "error", err, "payee", payeeAddress)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.InvoicesToResponses(result.Invoices), result.Total, result.Page, result.PageSize)
}
