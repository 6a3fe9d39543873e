package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestionpro/backend/internal/integration/notification"
)

// NotificationController exposes the in-app notice feed.
type NotificationController struct {
	service *notification.Service
}

// NotificationListResponse represents the notice feed response.
type NotificationListResponse struct {
	Notifications []notification.Notice `json:"notifications"`
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(service *notification.Service) *NotificationController {
	return &NotificationController{
		service: service,
	}
}

// List handles GET /notifications requests, most recent first.
func (c *NotificationController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, NotificationListResponse{
		Notifications: c.service.Notices(),
	})
}
