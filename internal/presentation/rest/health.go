package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/telelink/customer-analytics/pkg/postgres"
)

// HealthHandler provides HTTP health check endpoints for the analytics service.
type HealthHandler struct {
	logger      *slog.Logger
	pool        *pgxpool.Pool
	specVersion string
	startTime   time.Time
}

// NewHealthHandler creates a new health check handler. The feature spec
// version is reported so operators can confirm which model set is live.
func NewHealthHandler(logger *slog.Logger, pool *pgxpool.Pool, specVersion string) *HealthHandler {
	return &HealthHandler{
		logger:      logger,
		pool:        pool,
		specVersion: specVersion,
		startTime:   time.Now(),
	}
}

// HealthResponse is the JSON response for health checks.
type HealthResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	SpecVersion string `json:"feature_spec_version"`
	Uptime      string `json:"uptime"`
}

// ReadinessResponse is the JSON response for readiness checks.
type ReadinessResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks"`
}

// RegisterRoutes registers health endpoints on the provided ServeMux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)
}

// Healthz handles liveness probe requests. Models are loaded before the
// server starts, so a live process always has a complete model set.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:      "healthy",
		Service:     "customer-analytics",
		SpecVersion: h.specVersion,
		Uptime:      time.Since(h.startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Readyz handles readiness probe requests.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	checks := map[string]string{
		"models":   "loaded",
		"database": "ok",
	}

	if h.pool != nil {
		if err := postgres.HealthCheck(r.Context(), h.pool); err != nil {
			h.logger.Warn("readiness database check failed", slog.String("error", err.Error()))
			checks["database"] = "unavailable"
			status = http.StatusServiceUnavailable
		}
	}

	resp := ReadinessResponse{
		Status:  "ready",
		Service: "customer-analytics",
		Checks:  checks,
	}
	if status != http.StatusOK {
		resp.Status = "degraded"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
