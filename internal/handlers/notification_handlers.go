package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"supreme_fitness_backend/internal/middleware"
	"supreme_fitness_backend/internal/services"
	"supreme_fitness_backend/pkg/utils"
)

// NotificationHandler holds the notification service.
type NotificationHandler struct {
	notificationService services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(ns services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: ns}
}

// ListNotifications handles fetching the caller's notifications, newest first.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required.", ""))
		return
	}

	notifications, err := h.notificationService.ListForUser(principal)
	if err != nil {
		utils.LogError(err, "ListNotifications: Error from notificationService.ListForUser")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch notifications.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead flips the read flag on the caller's own notification.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required.", ""))
		return
	}

	if err := h.notificationService.MarkRead(principal, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Notification not found.", ""))
		} else {
			utils.LogError(err, "MarkNotificationRead: Error from notificationService.MarkRead")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to mark notification read.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
