package handler

import (
	"net/http"

	"pos-service/internal/model"
	"pos-service/pkg/logger"
	"pos-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SettingsRequest defines the structure for settings update requests
type SettingsRequest struct {
	NotificationEmail string `json:"notificationEmail"`
}

// GetSettings returns the current settings record
func (h *Handler) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.engine.Settings())
}

// UpdateSettings replaces the settings record wholesale
func (h *Handler) UpdateSettings(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Updating settings")

	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	settings := model.Settings{NotificationEmail: req.NotificationEmail}
	h.engine.UpdateSettings(settings)
	prometheus.RecordEngineOperation("update_settings", "success")

	log.Info("Settings updated successfully",
		zap.String("notification_email", settings.NotificationEmail))
	return c.JSON(http.StatusOK, settings)
}
