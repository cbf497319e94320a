package jobs

import (
	"context"
	"log/slog"
	"time"

	"symptomcheck/internal/metrics"
)

// Checker is a backend that can report its own health.
type Checker interface {
	Health(ctx context.Context) error
}

// HealthChecker polls the model server in the background, keeping the
// up gauge current and logging when availability changes.
type HealthChecker struct {
	backend  Checker
	interval time.Duration
	timeout  time.Duration

	// healthy is only touched by the Start goroutine.
	healthy bool
}

// NewHealthChecker creates a new health checker.
func NewHealthChecker(backend Checker, interval, timeout time.Duration) *HealthChecker {
	return &HealthChecker{
		backend:  backend,
		interval: interval,
		timeout:  timeout,
		// Artifacts are only served once the backend passed a check at load.
		healthy: true,
	}
}

// Start begins the background health check loop. It returns when ctx is done.
func (h *HealthChecker) Start(ctx context.Context) {
	slog.Info("model server health checker started", "interval", h.interval)

	// Run immediately on start
	h.check(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("model server health checker stopped")
			return
		case <-ticker.C:
			h.check(ctx)
		}
	}
}

// check runs one health check and records the result.
func (h *HealthChecker) check(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	err := h.backend.Health(checkCtx)
	up := err == nil
	metrics.SetModelServerUp(up)

	switch {
	case !up && h.healthy:
		slog.Warn("model server became unavailable", "error", err)
	case up && !h.healthy:
		slog.Info("model server available again")
	}
	h.healthy = up
}
