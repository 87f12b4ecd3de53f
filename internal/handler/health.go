package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/EmojiKombat_Go/internal/logger"
	"github.com/osse101/EmojiKombat_Go/internal/repository"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status string            `json:"status"`
	Uptime string            `json:"uptime,omitempty"`
	Checks map[string]string `json:"checks,omitempty"`
}

const (
	healthOK          = "ok"
	healthUnavailable = "unavailable"
	readinessTimeout  = 2 * time.Second
)

// HealthChecker serves the liveness and readiness probes
type HealthChecker struct {
	store   repository.Pinger // nil for the in-memory store
	started time.Time
}

// NewHealthChecker creates a checker; uptime counts from now
func NewHealthChecker(store repository.Pinger) *HealthChecker {
	return &HealthChecker{store: store, started: time.Now()}
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *HealthChecker) HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{
			Status: healthOK,
			Uptime: time.Since(h.started).Truncate(time.Second).String(),
		})
	}
}

// HandleReadyz reports whether the snapshot store answers within the timeout
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic (storage reachable)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func (h *HealthChecker) HandleReadyz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{"storage": healthOK}
		if h.store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
			err := h.store.Ping(ctx)
			cancel()
			if err != nil {
				logger.FromContext(r.Context()).Error("Readiness check failed", "error", err)
				checks["storage"] = healthUnavailable
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: healthUnavailable, Checks: checks})
				return
			}
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: healthOK, Checks: checks})
	}
}
