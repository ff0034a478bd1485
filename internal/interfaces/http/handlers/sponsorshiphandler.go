package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/application/sponsorship"
	sponsorshipUsecases "github.com/waveline-inc/waveline/internal/application/sponsorship/usecases"
	sponsorshipDomain "github.com/waveline-inc/waveline/internal/domain/sponsorship"
	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/interfaces/dto"
	"github.com/waveline-inc/waveline/internal/shared/logger"
	"github.com/waveline-inc/waveline/internal/shared/utils"
)

type SponsorshipHandler struct {
	createProgramUC  *sponsorshipUsecases.CreateProgramUseCase
	getStatsUC       *sponsorshipUsecases.GetStatsUseCase
	addFavoriteUC    *sponsorshipUsecases.AddFavoriteClientUseCase
	updateSettingsUC *sponsorshipUsecases.UpdateClientSettingsUseCase
	ledger           *sponsorship.Ledger
	favoriteRepo     sponsorshipDomain.FavoriteClientRepository
	sponsoredTxRepo  sponsorshipDomain.SponsoredTransactionRepository
	logger           logger.Interface
}

func NewSponsorshipHandler(
	createProgramUC *sponsorshipUsecases.CreateProgramUseCase,
	getStatsUC *sponsorshipUsecases.GetStatsUseCase,
	addFavoriteUC *sponsorshipUsecases.AddFavoriteClientUseCase,
	updateSettingsUC *sponsorshipUsecases.UpdateClientSettingsUseCase,
	ledger *sponsorship.Ledger,
	favoriteRepo sponsorshipDomain.FavoriteClientRepository,
	sponsoredTxRepo sponsorshipDomain.SponsoredTransactionRepository,
	logger logger.Interface,
) *SponsorshipHandler {
	return &SponsorshipHandler{
		createProgramUC:  createProgramUC,
		getStatsUC:       getStatsUC,
		addFavoriteUC:    addFavoriteUC,
		updateSettingsUC: updateSettingsUC,
		ledger:           ledger,
		favoriteRepo:     favoriteRepo,
		sponsoredTxRepo:  sponsoredTxRepo,
		logger:           logger,
	}
}

// parseOptionalAmount parses a decimal request field, treating empty as zero.
func parseOptionalAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return dto.ParseAmount(raw)
}

// @Summary		Create sponsorship program
// @Description	Opt a payee into gas sponsorship with an initial budget
// @Tags			sponsorship
// @Accept			json
// @Produce		json
// @Param			program	body		dto.CreateProgramRequest						true	"Program data"
// @Success		201		{object}	utils.APIResponse{data=dto.ProgramResponse}		"Program created successfully"
// @Failure		400		{object}	utils.APIResponse								"Bad request"
// @Failure		409		{object}	utils.APIResponse								"Program already exists"
// @Router			/sponsorship/programs [post]
func (h *SponsorshipHandler) CreateProgram(c *gin.Context) {
	var req dto.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	budget, err := dto.ParseAmount(req.TotalBudget)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid total_budget: "+req.TotalBudget)
		return
	}
	maxGasPerTx, err := parseOptionalAmount(req.MaxGasPerTx)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid max_gas_per_tx: "+req.MaxGasPerTx)
		return
	}

	cmd := sponsorshipUsecases.CreateProgramCommand{
		PayeeAddress: req.PayeeAddress,
		TotalBudget:  budget,
		MaxGasPerTx:  maxGasPerTx,
	}

	program, err := h.createProgramUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to create sponsorship program", "error", err, "payee", req.PayeeAddress)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ProgramToResponse(program), "sponsorship program created successfully")
}

// @Summary		Top up sponsorship program
// @Description	Add budget to an existing sponsorship program
// @Tags			sponsorship
// @Accept			json
// @Produce		json
// @Param			topup	body		dto.TopUpProgramRequest							true	"Top-up data"
// @Success		200		{object}	utils.APIResponse{data=dto.ProgramResponse}		"Program topped up successfully"
// @Failure		400		{object}	utils.APIResponse								"Bad request"
// @Failure		404		{object}	utils.APIResponse								"Program not found"
// @Router			/sponsorship/programs/topup [post]
func (h *SponsorshipHandler) TopUpProgram(c *gin.Context) {
	var req dto.TopUpProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid amount: "+req.Amount)
		return
	}

	program, err := h.ledger.Credit(c.Request.Context(), req.PayeeAddress, amount)
	if err != nil {
		h.logger.Errorw("failed to top up sponsorship program", "error", err, "payee", req.PayeeAddress)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "sponsorship program topped up successfully", dto.ProgramToResponse(program))
}

// @Summary		Get sponsorship stats
// @Description	Get a payee's sponsorship program and favorite-client summary
// @Tags			sponsorship
// @Produce		json
// @Param			address	path		string												true	"Payee wallet address"
// @Success		200		{object}	utils.APIResponse{data=dto.SponsorshipStatsResponse}	"Stats retrieved successfully"
// @Failure		404		{object}	utils.APIResponse									"Program not found"
// @Router			/sponsorship/programs/{address} [get]
func (h *SponsorshipHandler) GetStats(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "payee address is required")
		return
	}

	stats, err := h.getStatsUC.Execute(c.Request.Context(), address)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "sponsorship stats retrieved successfully", dto.SponsorshipStatsToResponse(stats))
}

// @Summary		List sponsored transactions
// @Description	List a payee's sponsored transactions, newest first
// @Tags			sponsorship
// @Produce		json
// @Param			address		path		string													true	"Payee wallet address"
// @Param			page		query		int														false	"Page number"
// @Param			page_size	query		int														false	"Page size"
// @Success		200			{object}	utils.APIResponse{data=[]dto.SponsoredTransactionResponse}	"Transactions retrieved successfully"
// @Router			/sponsorship/programs/{address}/transactions [get]
func (h *SponsorshipHandler) ListSponsoredTransactions(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "payee address is required")
		return
	}

	pagination := utils.ParsePagination(c)
	txs, total, err := h.sponsoredTxRepo.ListByPayee(c.Request.Context(), normalize.Address(address), pagination.Page, pagination.PageSize)
	if err != nil {
		h.logger.Errorw("failed to list sponsored transactions", "error", err, "payee", address)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.SponsoredTransactionsToResponses(txs), total, pagination.Page, pagination.PageSize)
}

// @Summary		Add favorite client
// @Description	Mark a client as a payee's favorite, waiving their platform fee
// @Tags			sponsorship
// @Accept			json
// @Produce		json
// @Param			favorite	body		dto.AddFavoriteClientRequest						true	"Favorite client data"
// @Success		201			{object}	utils.APIResponse{data=dto.FavoriteClientResponse}	"Favorite added successfully"
// @Failure		400			{object}	utils.APIResponse									"Bad request"
// @Failure		409			{object}	utils.APIResponse									"Client is already a favorite"
// @Router			/sponsorship/favorites [post]
func (h *SponsorshipHandler) AddFavoriteClient(c *gin.Context) {
	var req dto.AddFavoriteClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	maxGasPerTx, err := parseOptionalAmount(req.MaxGasPerTx)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid max_gas_per_tx: "+req.MaxGasPerTx)
		return
	}

	cmd := sponsorshipUsecases.AddFavoriteClientCommand{
		PayeeAddress:         req.PayeeAddress,
		ClientEmail:          req.ClientEmail,
		ClientName:           req.ClientName,
		EnableGasSponsorship: req.EnableGasSponsorship,
		MaxGasPerTx:          maxGasPerTx,
	}

	favorite, err := h.addFavoriteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to add favorite client", "error", err, "payee", req.PayeeAddress)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.FavoriteClientToResponse(favorite), "favorite client added successfully")
}

// @Summary		List favorite clients
// @Description	List a payee's favorite clients
// @Tags			sponsorship
// @Produce		json
// @Param			address	path		string												true	"Payee wallet address"
// @Success		200		{object}	utils.APIResponse{data=[]dto.FavoriteClientResponse}	"Favorites retrieved successfully"
// @Router			/sponsorship/favorites/{address} [get]
func (h *SponsorshipHandler) ListFavoriteClients(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "payee address is required")
		return
	}

	favorites, err := h.favoriteRepo.ListByPayee(c.Request.Context(), normalize.Address(address))
	if err != nil {
		h.logger.Errorw("failed to list favorite clients", "error", err, "payee", address)
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]dto.FavoriteClientResponse, 0, len(favorites))
	for _, favorite := range favorites {
		responses = append(responses, dto.FavoriteClientToResponse(favorite))
	}
	utils.SuccessResponse(c, http.StatusOK, "favorite clients retrieved successfully", responses)
}

// @Summary		Update favorite client settings
// @Description	Toggle gas sponsorship or adjust the per-transaction cap for a favorite client
// @Tags			sponsorship
// @Accept			json
// @Produce		json
// @Param			settings	body		dto.UpdateClientSettingsRequest						true	"Settings data"
// @Success		200			{object}	utils.APIResponse{data=dto.FavoriteClientResponse}	"Settings updated successfully"
// @Failure		400			{object}	utils.APIResponse									"Bad request"
// @Failure		404			{object}	utils.APIResponse									"Favorite client not found"
// @Router			/sponsorship/favorites/settings [put]
func (h *SponsorshipHandler) UpdateClientSettings(c *gin.Context) {
	var req dto.UpdateClientSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	maxGasPerTx, err := parseOptionalAmount(req.MaxGasPerTx)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid max_gas_per_tx: "+req.MaxGasPerTx)
		return
	}

	cmd := sponsorshipUsecases.UpdateClientSettingsCommand{
		PayeeAddress:          req.PayeeAddress,
		ClientEmail:           req.ClientEmail,
		GasSponsorshipEnabled: req.GasSponsorshipEnabled,
		MaxGasPerTx:           maxGasPerTx,
	}

	favorite, err := h.updateSettingsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to update client settings", "error", err, "payee", req.PayeeAddress)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "client settings updated successfully", dto.FavoriteClientToResponse(favorite))
}
