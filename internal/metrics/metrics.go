package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsTotal  *prometheus.CounterVec
	RequestSeconds *prometheus.HistogramVec
	StopsServed    prometheus.Counter
	StorageErrors  prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled by the route API.",
		}, []string{"method", "route", "status"}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests handled by the route API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		StopsServed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "planned_stops_served_total",
			Help: "Total number of planned route stops returned to clients.",
		}),
		StorageErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "planned_routes_storage_errors_total",
			Help: "Total number of failed planned route lookups.",
		}),
	}
}
