package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер prometheus-коллекторов сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	storeOpsTotal   *prometheus.CounterVec
	storeOpDuration *prometheus.HistogramVec

	reservationOutcomes *prometheus.CounterVec
}

// New регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		storeOpsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "document_store_operations_total",
			Help:        "Total number of document store load/store operations",
			ConstLabels: constLabels,
		}, []string{"store", "operation", "result"}),

		storeOpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "document_store_operation_duration_seconds",
			Help:        "Document store operation duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"store", "operation"}),

		reservationOutcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_attempts_total",
			Help:        "Reservation attempts by outcome (created, conflict, rejected, error)",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}

// ObserveHTTPRequest учитывает завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveStoreOperation учитывает операцию Load/Store над документом
func (m *Metrics) ObserveStoreOperation(store, operation string, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.storeOpsTotal.WithLabelValues(store, operation, result).Inc()
	m.storeOpDuration.WithLabelValues(store, operation).Observe(duration.Seconds())
}

// IncReservationOutcome учитывает исход попытки бронирования
func (m *Metrics) IncReservationOutcome(outcome string) {
	m.reservationOutcomes.WithLabelValues(outcome).Inc()
}
