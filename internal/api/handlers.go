package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/rutas/internal/metrics"
	"github.com/UnknownOlympus/rutas/internal/repository"
)

// Handler serves the route API endpoints.
type Handler struct {
	repo         repository.Interface
	log          *slog.Logger
	metrics      *metrics.Metrics
	defaultLimit int
	maxLimit     int
}

// Root is the liveness endpoint of the API.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok", "service": "rutas"})
}

// Health reports whether the route storage is reachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.log.DebugContext(r.Context(), "Performing health checks...")

	status, body := http.StatusOK, "OK"
	if err := h.repo.Ping(r.Context()); err != nil {
		h.log.WarnContext(r.Context(), "Health check failed", "error", err)
		status, body = http.StatusServiceUnavailable, "DB ping failed"
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write reply", "error", err)
	}
}

// PlannedRoutes lists planned route stops, bounded by the optional limit query parameter.
func (h *Handler) PlannedRoutes(w http.ResponseWriter, r *http.Request) {
	limit, err := h.parseLimit(r)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	stops, err := h.repo.FetchPlannedRoutes(r.Context(), limit)
	if err != nil {
		h.metrics.StorageErrors.Inc()
		h.log.ErrorContext(r.Context(), "Failed to fetch planned routes", "limit", limit, "error", err)
		h.writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	h.metrics.StopsServed.Add(float64(len(stops)))
	h.writeJSON(w, r, http.StatusOK, stops)
}

func (h *Handler) parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return h.defaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > h.maxLimit {
		return 0, fmt.Errorf("limit must be an integer between 1 and %d", h.maxLimit)
	}

	return limit, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.ErrorContext(r.Context(), "encode failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, map[string]string{"error": msg})
}
