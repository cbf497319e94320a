package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"
)

// HealthChecker is implemented by backends that depend on an external
// service, such as the remote model server.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	backend HealthChecker
}

// NewProbeHandler creates a new probe handler. backend may be nil when the
// classifier runs in-process.
func NewProbeHandler(backend HealthChecker) *ProbeHandler {
	return &ProbeHandler{backend: backend}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Artifacts are loaded before the server listens, so only the model server
// can make the application unready.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.backend != nil {
		if err := h.backend.Health(c.Context()); err != nil {
			slog.Warn("readiness check failed", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "model server unavailable",
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
