package handler

import (
	"net/http"

	"pos-service/internal/model"
	"pos-service/pkg/logger"
	"pos-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CategoryRequest defines the structure for category creation requests
type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Icon string `json:"icon"`
}

// ListCategories retrieves all categories
func (h *Handler) ListCategories(c echo.Context) error {
	log := logger.FromContext(c)

	categories := h.engine.Categories()
	log.Info("Categories retrieved successfully", zap.Int("count", len(categories)))
	return c.JSON(http.StatusOK, categories)
}

// ListCategoryIcons returns the icon palette offered for new categories
func (h *Handler) ListCategoryIcons(c echo.Context) error {
	return c.JSON(http.StatusOK, model.EmojiOptions)
}

// CreateCategory adds a new category
func (h *Handler) CreateCategory(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new category")

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.Name == "" {
		log.Warn("Missing category name")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "name is required",
		})
	}

	category := h.engine.AddCategory(req.Name, req.Icon)
	prometheus.RecordEngineOperation("add_category", "success")

	log.Info("Category created successfully",
		zap.String("category_id", category.ID),
		zap.String("name", category.Name))
	return c.JSON(http.StatusCreated, category)
}

// DeleteCategory removes a category unless products still reference it
func (h *Handler) DeleteCategory(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Deleting category", zap.String("category_id", id))

	if err := h.engine.DeleteCategory(id); err != nil {
		prometheus.RecordEngineOperation("delete_category", "rejected")
		log.Warn("Category deletion rejected",
			zap.String("category_id", id),
			zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{
			"error": err.Error(),
		})
	}
	prometheus.RecordEngineOperation("delete_category", "success")

	log.Info("Category deleted successfully", zap.String("category_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Category deleted successfully",
	})
}
