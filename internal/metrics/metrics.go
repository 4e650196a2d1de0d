package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_total",
			Help: "Total number of bookings created, by payment method",
		},
		[]string{"payment_method"},
	)

	RevenueTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_revenue_total",
			Help: "Cumulative billed amount across created bookings",
		},
	)

	SessionsAutoCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_auto_completed_total",
			Help: "Total number of sessions closed by the background watcher",
		},
	)

	UnpricedSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unpriced_sessions_total",
			Help: "Sessions quoted with no matching rate table entry",
		},
		[]string{"console"},
	)

	NotificationQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notification_queue_depth",
			Help: "Number of notifications waiting in the queue",
		},
	)

	LowStockItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_low_stock_items",
			Help: "Number of inventory items at or below their reorder level",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(paymentMethod string) {
	BookingsTotal.WithLabelValues(paymentMethod).Inc()
}

func RecordRevenue(amount float64) {
	if amount > 0 {
		RevenueTotal.Add(amount)
	}
}

func RecordAutoCompleted(count int) {
	SessionsAutoCompleted.Add(float64(count))
}

func RecordUnpricedSession(console string) {
	UnpricedSessionsTotal.WithLabelValues(console).Inc()
}

func SetNotificationQueueDepth(depth int64) {
	NotificationQueueDepth.Set(float64(depth))
}

func SetLowStockItems(count int) {
	LowStockItems.Set(float64(count))
}
