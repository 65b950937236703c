package rest

import (
	"log/slog"
	"net/http"
	"time"
)

// HealthHandler provides HTTP health check endpoints for the service.
type HealthHandler struct {
	logger       *slog.Logger
	startTime    time.Time
	kafkaEnabled bool
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(logger *slog.Logger, kafkaEnabled bool) *HealthHandler {
	return &HealthHandler{
		logger:       logger,
		startTime:    time.Now(),
		kafkaEnabled: kafkaEnabled,
	}
}

// HealthResponse is the JSON response for health checks.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
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

// Healthz handles liveness probe requests.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "property-risk-service",
		Uptime:  time.Since(h.startTime).String(),
	})
}

// Readyz handles readiness probe requests. The engine has no external
// dependencies; the only check reports whether event publishing is
// wired to a broker or running log-only.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	events := "log-only"
	if h.kafkaEnabled {
		events = "kafka"
	}

	writeJSON(w, http.StatusOK, ReadinessResponse{
		Status:  "ready",
		Service: "property-risk-service",
		Checks:  map[string]string{"events": events},
	})
}
