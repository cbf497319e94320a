package api

import (
	"net/url"

	"github.com/gofiber/fiber/v3"

	"symptomcheck/internal/advisory"
	"symptomcheck/internal/models"
)

// AdviceHandler serves first-aid guidance without a prediction.
type AdviceHandler struct {
	table *advisory.Table
}

// NewAdviceHandler creates a new API advice handler.
func NewAdviceHandler(table *advisory.Table) *AdviceHandler {
	return &AdviceHandler{table: table}
}

// Get returns the advice for a single symptom, ignoring case.
func (h *AdviceHandler) Get(c fiber.Ctx) error {
	symptom, err := url.PathUnescape(c.Params("symptom"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid symptom")
	}

	blocks := h.table.Resolve([]string{symptom})
	if len(blocks) == 0 {
		return jsonError(c, fiber.StatusNotFound, "no advice for symptom")
	}

	return jsonSuccess(c, models.NewAdviceResponse(blocks[0]))
}
