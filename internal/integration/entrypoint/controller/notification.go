package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/iuran-warga/backend/internal/application/usecase/notification"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
	"github.com/iuran-warga/backend/internal/integration/entrypoint/dto"
	"github.com/iuran-warga/backend/internal/integration/entrypoint/middleware"
)

// NotificationController handles the resident notification inbox.
type NotificationController struct {
	listUseCase    *notification.ListNotificationsUseCase
	dismissUseCase *notification.DismissNotificationUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	listUseCase *notification.ListNotificationsUseCase,
	dismissUseCase *notification.DismissNotificationUseCase,
) *NotificationController {
	return &NotificationController{
		listUseCase:    listUseCase,
		dismissUseCase: dismissUseCase,
	}
}

// List handles GET /notifications requests.
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Invalid or expired token",
			Code:  string(domainerror.ErrCodeInvalidToken),
		})
		return
	}

	notifications, err := c.listUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"notifications": dto.ToNotificationResponses(notifications)})
}

// Dismiss handles DELETE /notifications/:id requests. The record itself is
// kept; only this user's view of it is hidden.
func (c *NotificationController) Dismiss(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Invalid or expired token",
			Code:  string(domainerror.ErrCodeInvalidToken),
		})
		return
	}

	notificationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid id",
			Code:  string(domainerror.ErrCodeNotificationNotFound),
		})
		return
	}

	if err := c.dismissUseCase.Execute(ctx.Request.Context(), userID, notificationID); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "notification dismissed"})
}
