// Package handler is the HTTP presentation boundary. Handlers hold no
// state of their own: they bind requests, call the state engine, and map
// engine errors to status codes.
package handler

import (
	"errors"
	"net/http"

	"pos-service/internal/engine"

	"github.com/labstack/echo/v4"
)

// Handler dispatches HTTP requests into the state engine.
type Handler struct {
	engine *engine.Engine
}

// New returns a handler bound to the given engine.
func New(e *engine.Engine) *Handler {
	return &Handler{engine: e}
}

// errorStatus maps engine errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, engine.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrCategoryInUse), errors.Is(err, engine.ErrInsufficientStock):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Health reports service liveness.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
