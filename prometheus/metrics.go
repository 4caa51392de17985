package prometheus

import (
	"pos-service/pkg/config"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Engine operation metrics
	EngineOperationsCounter prometheus.CounterVec

	// Notification metrics
	NotificationsCounter prometheus.CounterVec

	// Sale metrics
	SaleUnitsCounter   prometheus.Counter
	SaleRevenueCounter prometheus.Counter
	SaleProfitCounter  prometheus.Counter

	// Inventory metrics
	ProductStockGauge prometheus.GaugeVec

	// Store operation metrics
	StoreSaveDuration prometheus.HistogramVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Engine operation metrics
	EngineOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_engine_operations_total",
			Help: "Total number of state engine operations",
		},
		[]string{"operation", "outcome"},
	)

	// Notification metrics
	NotificationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_notifications_total",
			Help: "Total number of notifications emitted",
		},
		[]string{"type"},
	)

	// Sale metrics
	SaleUnitsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_sale_units_total",
			Help: "Total number of units sold",
		},
	)

	SaleRevenueCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_sale_revenue_gourdes_total",
			Help: "Total sale revenue in gourdes",
		},
	)

	SaleProfitCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_sale_profit_gourdes_total",
			Help: "Total sale profit in gourdes",
		},
	)

	// Product inventory metrics
	ProductStockGauge = *promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_product_stock",
			Help: "Current stock level for products",
		},
		[]string{"product_id", "product_name"},
	)

	// Store operation metrics
	StoreSaveDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_store_save_duration_seconds",
			Help:    "Duration of state store saves in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"slot"},
	)
}

// RecordEngineOperation increments the counter for engine operations
func RecordEngineOperation(operation string, outcome string) {
	EngineOperationsCounter.WithLabelValues(operation, outcome).Inc()
}

// RecordNotification increments the counter for emitted notifications
func RecordNotification(notificationType string) {
	NotificationsCounter.WithLabelValues(notificationType).Inc()
}

// RecordSale adds a completed sale to the sale counters
func RecordSale(units int, revenue float64, profit float64) {
	SaleUnitsCounter.Add(float64(units))
	SaleRevenueCounter.Add(revenue)
	SaleProfitCounter.Add(profit)
}

// UpdateProductStock updates the gauge for a product's stock level
func UpdateProductStock(productID string, productName string, stock float64) {
	ProductStockGauge.WithLabelValues(productID, productName).Set(stock)
}

// TrackStoreSave returns a function that records the duration of a store save
func TrackStoreSave(slot string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		StoreSaveDuration.WithLabelValues(slot).Observe(duration)
	}
}
