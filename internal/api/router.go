package api

import (
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/rutas/internal/metrics"
	"github.com/UnknownOlympus/rutas/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterOptions carries the dependencies of the route API.
type RouterOptions struct {
	Repo         repository.Interface // Repo serves planned routes and storage health.
	Log          *slog.Logger         // Log receives one line per request.
	Metrics      *metrics.Metrics     // Metrics records request counters and latencies.
	Gatherer     prometheus.Gatherer  // Gatherer is exposed on /metrics when set.
	DefaultLimit int                  // DefaultLimit applies when a request has no limit.
	MaxLimit     int                  // MaxLimit is the largest accepted limit.
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
func NewRouter(opts RouterOptions) http.Handler {
	mux := http.NewServeMux()

	handler := &Handler{
		repo:         opts.Repo,
		log:          opts.Log,
		metrics:      opts.Metrics,
		defaultLimit: opts.DefaultLimit,
		maxLimit:     opts.MaxLimit,
	}

	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /healthz", handler.Health)
	mux.HandleFunc("GET /rutas-planificadas", handler.PlannedRoutes)
	mux.HandleFunc("GET /rutas-planificadas/{$}", handler.PlannedRoutes)
	if opts.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	return observe(opts.Log, opts.Metrics, mux)
}
