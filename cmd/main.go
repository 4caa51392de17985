package main

import (
	"pos-service/internal/engine"
	"pos-service/internal/handler"
	mid "pos-service/internal/middleware"
	"pos-service/pkg/config"
	"pos-service/pkg/logger"
	"pos-service/pkg/store"
	"pos-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (reads .env when present)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting pos-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Open the durable state store
	adapter, err := store.Open(appConfig)
	if err != nil {
		log.Fatal("Failed to open state store",
			zap.String("driver", appConfig.Store.Driver),
			zap.Error(err))
	}
	log.Info("State store opened", zap.String("driver", appConfig.Store.Driver))

	// Load state and build the engine
	eng := engine.New(adapter, log)
	h := handler.New(eng)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Routes
	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", h.Health)

	// Dashboard summary
	e.GET("/api/dashboard", h.Dashboard)

	// Category API routes
	categoryAPI := e.Group("/api/categories")
	categoryAPI.GET("", h.ListCategories)
	categoryAPI.GET("/icons", h.ListCategoryIcons)
	categoryAPI.POST("", h.CreateCategory)
	categoryAPI.DELETE("/:id", h.DeleteCategory)

	// Product API routes
	productAPI := e.Group("/api/products")
	productAPI.GET("", h.ListProducts)
	productAPI.POST("", h.CreateProduct)
	productAPI.PUT("/:id", h.UpdateProduct)
	productAPI.DELETE("/:id", h.DeleteProduct)

	// Sale API routes
	saleAPI := e.Group("/api/sales")
	saleAPI.GET("", h.ListSales)
	saleAPI.POST("", h.CreateSale)

	// Notification API routes
	notificationAPI := e.Group("/api/notifications")
	notificationAPI.GET("", h.ListNotifications)
	notificationAPI.POST("", h.CreateNotification)

	// Settings API routes
	settingsAPI := e.Group("/api/settings")
	settingsAPI.GET("", h.GetSettings)
	settingsAPI.PUT("", h.UpdateSettings)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
