package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/waveline-inc/waveline/internal/application/notification"
	"github.com/waveline-inc/waveline/internal/interfaces/dto"
	"github.com/waveline-inc/waveline/internal/shared/logger"
	"github.com/waveline-inc/waveline/internal/shared/utils"
)

type NotificationHandler struct {
	service *notification.Service
	logger  logger.Interface
}

func NewNotificationHandler(service *notification.Service, logger logger.Interface) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary		List notifications
// @Description	List a recipient's in-app notifications, newest first
// @Tags			notifications
// @Produce		json
// @Param			address		path		string												true	"Recipient wallet address"
// @Param			page		query		int													false	"Page number"
// @Param			page_size	query		int													false	"Page size"
// @Success		200			{object}	utils.APIResponse{data=[]dto.NotificationResponse}	"Notifications retrieved successfully"
// @Router			/notifications/{address} [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "recipient address is required")
		return
	}

	pagination := utils.ParsePagination(c)
	notifications, total, err := h.service.ListForRecipient(c.Request.Context(), address, pagination.Page, pagination.PageSize)
	if err != nil {
		h.logger.Errorw("failed to list notifications", "error", err, "recipient", address)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NotificationsToResponses(notifications), total, pagination.Page, pagination.PageSize)
}

// @Summary		Mark notification read
// @Description	Mark a single notification as read
// @Tags			notifications
// @Produce		json
// @Param			id	path		int					true	"Notification ID"
// @Success		204	{object}	nil					"Notification marked read"
// @Failure		400	{object}	utils.APIResponse	"Bad request"
// @Router			/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || notificationID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid notification ID")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), uint(notificationID)); err != nil {
		h.logger.Errorw("failed to mark notification read", "error", err, "id", notificationID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
