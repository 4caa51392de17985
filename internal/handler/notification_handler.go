package handler

import (
	"net/http"

	"pos-service/internal/model"
	"pos-service/pkg/logger"
	"pos-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NotificationRequest defines the structure for direct notification injection
type NotificationRequest struct {
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"required"`
}

// ListNotifications handles retrieving all notifications, newest first
func (h *Handler) ListNotifications(c echo.Context) error {
	log := logger.FromContext(c)

	notifications := h.engine.Notifications()
	log.Info("Notifications retrieved successfully", zap.Int("count", len(notifications)))
	return c.JSON(http.StatusOK, notifications)
}

// CreateNotification injects a notification directly. Error and warning
// injections still trigger the email echo.
func (h *Handler) CreateNotification(c echo.Context) error {
	log := logger.FromContext(c)

	var req NotificationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	typ := model.NotificationType(req.Type)
	if req.Message == "" || !typ.Valid() {
		log.Warn("Invalid notification payload",
			zap.String("type", req.Type))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "message and a valid type (info, warning, error, success) are required",
		})
	}

	h.engine.AddNotification(req.Message, typ)
	prometheus.RecordNotification(req.Type)

	log.Info("Notification injected", zap.String("type", req.Type))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Notification created",
	})
}
