package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appreminder "github.com/waveline-inc/waveline/internal/application/reminder"
	"github.com/waveline-inc/waveline/internal/interfaces/dto"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/id"
	"github.com/waveline-inc/waveline/internal/shared/logger"
	"github.com/waveline-inc/waveline/internal/shared/utils"
)

type ReminderHandler struct {
	service *appreminder.Service
	logger  logger.Interface
}

func NewReminderHandler(service *appreminder.Service, logger logger.Interface) *ReminderHandler {
	return &ReminderHandler{service: service, logger: logger}
}

// @Summary		Send reminder
// @Description	Send a payment reminder for an invoice immediately
// @Tags			reminders
// @Produce		json
// @Param			id	path		string											true	"Invoice ID"
// @Success		201	{object}	utils.APIResponse{data=dto.ReminderResponse}	"Reminder sent successfully"
// @Failure		400	{object}	utils.APIResponse								"Bad request"
// @Failure		404	{object}	utils.APIResponse								"Invoice not found"
// @Failure		409	{object}	utils.APIResponse								"Invoice is not pending"
// @Router			/invoices/{id}/reminders [post]
func (h *ReminderHandler) SendReminder(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixInvoice, "invoice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rem, err := h.service.SendManual(c.Request.Context(), sid)
	if err != nil {
		if !errors.IsNotFoundError(err) && !errors.IsConflictError(err) && !errors.IsValidationError(err) {
			h.logger.Errorw("failed to send reminder", "error", err, "sid", sid)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ReminderToResponse(rem), "reminder sent successfully")
}

// @Summary		Reminder history
// @Description	List reminders sent for an invoice, newest first
// @Tags			reminders
// @Produce		json
// @Param			id	path		string											true	"Invoice ID"
// @Success		200	{object}	utils.APIResponse{data=[]dto.ReminderResponse}	"Reminders retrieved successfully"
// @Failure		404	{object}	utils.APIResponse								"Invoice not found"
// @Router			/invoices/{id}/reminders [get]
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixInvoice, "invoice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	reminders, err := h.service.History(c.Request.Context(), sid)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			h.logger.Errorw("failed to list reminders", "error", err, "sid", sid)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "reminders retrieved successfully", dto.RemindersToResponses(reminders))
}

// @Summary		Get reminder preferences
// @Description	Get a payee's reminder preferences, defaults when none are stored
// @Tags			reminders
// @Produce		json
// @Param			address	path		string														true	"Payee wallet address"
// @Success		200		{object}	utils.APIResponse{data=dto.ReminderPreferencesResponse}		"Preferences retrieved successfully"
// @Router			/reminders/preferences/{address} [get]
func (h *ReminderHandler) GetPreferences(c *gin.Context) {
	address := c.Param("address")

	prefs, err := h.service.GetPreferences(c.Request.Context(), address)
	if err != nil {
		h.logger.Errorw("failed to get reminder preferences", "error", err, "address", address)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "preferences retrieved successfully", dto.ReminderPreferencesToResponse(prefs))
}

// @Summary		Update reminder preferences
// @Description	Update a payee's reminder preferences
// @Tags			reminders
// @Accept			json
// @Produce		json
// @Param			preferences	body		dto.UpdateReminderPreferencesRequest						true	"Preference changes"
// @Success		200			{object}	utils.APIResponse{data=dto.ReminderPreferencesResponse}		"Preferences updated successfully"
// @Failure		400			{object}	utils.APIResponse											"Bad request"
// @Router			/reminders/preferences [put]
func (h *ReminderHandler) UpdatePreferences(c *gin.Context) {
	var req dto.UpdateReminderPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	prefs, err := h.service.UpdatePreferences(c.Request.Context(), appreminder.UpdatePreferencesCommand{
		PayeeAddress:    req.PayeeAddress,
		Enabled:         req.Enabled,
		ExcludedClients: req.ExcludedClients,
	})
	if err != nil {
		if !errors.IsValidationError(err) {
			h.logger.Errorw("failed to update reminder preferences", "error", err, "address", req.PayeeAddress)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "preferences updated successfully", dto.ReminderPreferencesToResponse(prefs))
}
