package handler

import (
	"net/http"

	"pos-service/internal/engine"
	"pos-service/internal/model"
	"pos-service/pkg/logger"
	"pos-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductRequest defines the structure for product creation/update requests
type ProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	CategoryID    string  `json:"categoryId"`
	Stock         int     `json:"stock" validate:"gte=0"`
	SalePrice     float64 `json:"salePrice" validate:"gte=0"`
	PurchasePrice float64 `json:"purchasePrice" validate:"gte=0"`
}

func (r *ProductRequest) validate() string {
	switch {
	case r.Name == "":
		return "name is required"
	case r.Stock < 0:
		return "stock must not be negative"
	case r.SalePrice < 0 || r.PurchasePrice < 0:
		return "prices must not be negative"
	}
	return ""
}

// ListProducts handles retrieving all products
func (h *Handler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	products := h.engine.Products()
	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// CreateProduct handles creating a new product
func (h *Handler) CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new product")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if msg := req.validate(); msg != "" {
		log.Warn("Invalid product payload", zap.String("reason", msg))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	product := h.engine.AddProduct(engine.ProductInput{
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		Stock:         req.Stock,
		SalePrice:     req.SalePrice,
		PurchasePrice: req.PurchasePrice,
	})
	prometheus.RecordEngineOperation("add_product", "success")
	prometheus.UpdateProductStock(product.ID, product.Name, float64(product.Stock))

	log.Info("Product created successfully",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Float64("sale_price", product.SalePrice))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles replacing an existing product wholesale
func (h *Handler) UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Updating product", zap.String("product_id", id))

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data",
			zap.String("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if msg := req.validate(); msg != "" {
		log.Warn("Invalid product payload",
			zap.String("product_id", id),
			zap.String("reason", msg))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	// Carry the cumulative sales counter over from the current record;
	// it is engine-owned and not part of the request payload.
	var totalSales int
	for _, p := range h.engine.Products() {
		if p.ID == id {
			totalSales = p.TotalSales
			break
		}
	}

	product := model.Product{
		ID:            id,
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		Stock:         req.Stock,
		SalePrice:     req.SalePrice,
		PurchasePrice: req.PurchasePrice,
		TotalSales:    totalSales,
	}
	if err := h.engine.UpdateProduct(product); err != nil {
		prometheus.RecordEngineOperation("update_product", "rejected")
		log.Warn("Product update rejected",
			zap.String("product_id", id),
			zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{
			"error": err.Error(),
		})
	}
	prometheus.RecordEngineOperation("update_product", "success")
	prometheus.UpdateProductStock(product.ID, product.Name, float64(product.Stock))

	log.Info("Product updated successfully",
		zap.String("product_id", id),
		zap.String("name", product.Name))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles deleting a product
func (h *Handler) DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Deleting product", zap.String("product_id", id))

	if !h.engine.DeleteProduct(id) {
		prometheus.RecordEngineOperation("delete_product", "rejected")
		log.Warn("Product not found for deletion", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}
	prometheus.RecordEngineOperation("delete_product", "success")

	log.Info("Product deleted successfully", zap.String("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product deleted successfully",
	})
}
