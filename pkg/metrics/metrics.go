package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	NotificationsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glg_notifications_created_total",
			Help: "Notifications recorded, by type.",
		},
		[]string{"type"},
	)
	ExpiredCodesCleared = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "glg_kyc_expired_codes_cleared_total",
			Help: "E-mail verification codes cleared after expiry.",
		},
	)
)

func Register(registry *prometheus.Registry) {
	registry.MustRegister(RequestCount, RequestDuration, NotificationsCreated, ExpiredCodesCleared)
}

func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
