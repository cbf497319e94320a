package api

import (
	"github.com/gofiber/fiber/v3"

	"symptomcheck/internal/catalog"
	"symptomcheck/internal/models"
)

// CatalogHandler exposes the selectable animals and symptoms.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new API catalog handler.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// List returns every animal and symptom in first-appearance order.
func (h *CatalogHandler) List(c fiber.Ctx) error {
	return jsonSuccess(c, models.CatalogResponse{
		Animals:  h.catalog.Animals,
		Symptoms: h.catalog.Symptoms,
	})
}
