package handler

import (
	"net/http"

	"pos-service/pkg/currency"
	"pos-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DashboardResponse carries the aggregate figures plus display-ready
// gourde strings for the money fields.
type DashboardResponse struct {
	Revenue          float64 `json:"revenue"`
	RevenueFormatted string  `json:"revenueFormatted"`
	Profit           float64 `json:"profit"`
	ProfitFormatted  string  `json:"profitFormatted"`
	SaleCount        int     `json:"saleCount"`
	ProductCount     int     `json:"productCount"`
	LowStock         int     `json:"lowStock"`
	OutOfStock       int     `json:"outOfStock"`
}

// Dashboard returns the aggregate summary of the current state
func (h *Handler) Dashboard(c echo.Context) error {
	log := logger.FromContext(c)

	s := h.engine.Summarize()
	log.Info("Dashboard summary computed",
		zap.Float64("revenue", s.Revenue),
		zap.Int("sale_count", s.SaleCount))

	return c.JSON(http.StatusOK, DashboardResponse{
		Revenue:          s.Revenue,
		RevenueFormatted: currency.FormatGourdes(s.Revenue),
		Profit:           s.Profit,
		ProfitFormatted:  currency.FormatGourdes(s.Profit),
		SaleCount:        s.SaleCount,
		ProductCount:     s.ProductCount,
		LowStock:         s.LowStock,
		OutOfStock:       s.OutOfStock,
	})
}
