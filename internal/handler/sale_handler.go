package handler

import (
	"net/http"

	"pos-service/pkg/logger"
	"pos-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SaleRequest defines the structure for sale creation requests
type SaleRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// ListSales handles retrieving all sales, newest first
func (h *Handler) ListSales(c echo.Context) error {
	log := logger.FromContext(c)

	sales := h.engine.Sales()
	log.Info("Sales retrieved successfully", zap.Int("count", len(sales)))
	return c.JSON(http.StatusOK, sales)
}

// CreateSale handles recording a sale transaction
func (h *Handler) CreateSale(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Recording new sale")

	var req SaleRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.ProductID == "" || req.Quantity < 1 {
		log.Warn("Invalid sale payload",
			zap.String("product_id", req.ProductID),
			zap.Int("quantity", req.Quantity))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "productId and a positive quantity are required",
		})
	}

	sale, err := h.engine.AddSale(req.ProductID, req.Quantity)
	if err != nil {
		prometheus.RecordEngineOperation("add_sale", "rejected")
		log.Warn("Sale rejected",
			zap.String("product_id", req.ProductID),
			zap.Int("quantity", req.Quantity),
			zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{
			"error": err.Error(),
		})
	}
	prometheus.RecordEngineOperation("add_sale", "success")
	prometheus.RecordSale(sale.Quantity, sale.Total, sale.Profit)
	for _, p := range h.engine.Products() {
		if p.ID == sale.ProductID {
			prometheus.UpdateProductStock(p.ID, p.Name, float64(p.Stock))
			break
		}
	}

	log.Info("Sale recorded successfully",
		zap.String("sale_id", sale.ID),
		zap.String("product_id", sale.ProductID),
		zap.Int("quantity", sale.Quantity),
		zap.Float64("total", sale.Total))
	return c.JSON(http.StatusCreated, sale)
}
