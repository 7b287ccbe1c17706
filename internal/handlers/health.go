package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/monastery360/api/internal/platform/httpx"
)

// ReadinessCheck reports whether a backing dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// HealthHandlers serves the liveness and readiness probes.
type HealthHandlers struct {
	started time.Time
	checks  []ReadinessCheck
}

// NewHealthHandlers builds the probe handlers. Readiness checks are optional;
// with none registered, /readyz mirrors /healthz.
func NewHealthHandlers(checks ...ReadinessCheck) *HealthHandlers {
	return &HealthHandlers{started: time.Now(), checks: checks}
}

// Healthz reports process liveness and uptime.
func (h *HealthHandlers) Healthz(w http.ResponseWriter, r *http.Request) {
	httpx.WriteData(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"uptime":    time.Since(h.started).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Readyz runs every registered readiness check and fails on the first error.
func (h *HealthHandlers) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	for _, check := range h.checks {
		if check == nil {
			continue
		}
		if err := check(ctx); err != nil {
			httpx.WriteError(ctx, w, httpx.NewError("not_ready", "service not ready", http.StatusServiceUnavailable).WithStack(err.Error()))
			return
		}
	}
	httpx.WriteData(w, http.StatusOK, map[string]any{"status": "ready"})
}
