package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketsync_api_requests_total",
			Help: "Total number of marketplace API requests.",
		},
		[]string{"channel", "method", "endpoint", "status"},
	)
	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketsync_api_request_duration_seconds",
			Help:    "Histogram of marketplace API request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"channel", "method", "endpoint", "status"},
	)
	updatesSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketsync_updates_submitted_total",
			Help: "Total number of stock/price updates submitted per channel.",
		},
		[]string{"channel", "operation"},
	)
)

func init() {
	prometheus.MustRegister(apiRequestsTotal)
	prometheus.MustRegister(apiRequestDuration)
	prometheus.MustRegister(updatesSubmitted)
}

// RecordRequest записывает метрики для запроса к API маркетплейса.
func RecordRequest(channel, method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	apiRequestsTotal.WithLabelValues(channel, method, endpoint, status).Inc()
	apiRequestDuration.WithLabelValues(channel, method, endpoint, status).Observe(duration.Seconds())
}

// RecordUpdates записывает число отправленных обновлений ("stocks"/"prices").
func RecordUpdates(channel, operation string, count int) {
	updatesSubmitted.WithLabelValues(channel, operation).Add(float64(count))
}

// classifyStatus классифицирует HTTP-статус код в строку.
func classifyStatus(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "2xx"
	} else if statusCode >= 300 && statusCode < 400 {
		return "3xx"
	} else if statusCode >= 400 && statusCode < 500 {
		return "4xx"
	} else if statusCode >= 500 && statusCode < 600 {
		return "5xx"
	}
	return "unknown"
}

// PushAll выталкивает накопленные метрики в Pushgateway по завершении прогона.
func PushAll(gatewayURL, job string) error {
	return push.New(gatewayURL, job).Gatherer(prometheus.DefaultGatherer).Push()
}
