package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"symptomcheck/internal/catalog"
	"symptomcheck/internal/config"
	"symptomcheck/internal/inference"
	"symptomcheck/internal/models"
	"symptomcheck/internal/validation"
)

// Submitter processes one prediction submission.
type Submitter interface {
	Submit(ctx context.Context, animal string, picks []string) (*inference.Result, error)
}

// PredictHandler serves the predictor page.
type PredictHandler struct {
	catalog *catalog.Catalog
	service Submitter
	cfg     *config.Config
}

// NewPredictHandler creates a new predictor page handler.
func NewPredictHandler(cat *catalog.Catalog, service Submitter, cfg *config.Config) *PredictHandler {
	return &PredictHandler{catalog: cat, service: service, cfg: cfg}
}

// Index renders the empty form.
func (h *PredictHandler) Index(c fiber.Ctx) error {
	return c.Render("index", h.form("", [models.SymptomSlots]string{}))
}

// Predict handles a form submission. The form keeps its selections and the
// result area shows either the validation message, a failure notice or the
// prediction with its advice.
func (h *PredictHandler) Predict(c fiber.Ctx) error {
	animal := c.FormValue("animal")
	var picks [models.SymptomSlots]string
	for i := range picks {
		picks[i] = c.FormValue("symptom" + strconv.Itoa(i+1))
	}

	page := h.form(strings.TrimSpace(animal), picks)

	res, err := h.service.Submit(c.Context(), animal, picks[:])
	if err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			if isHTMX(c) {
				return htmxError(c, "alert-warning", verr.Error())
			}
			page.Error = verr.Error()
			return c.Render("index", page)
		}

		if isHTMX(c) {
			return htmxError(c, "alert-error", inference.FailureMessage)
		}
		page.Failure = inference.FailureMessage
		return c.Render("index", page)
	}

	page.Prediction = &res.Prediction
	page.Advice = res.Advice

	if isHTMX(c) {
		return c.Render("partials/result", page, "")
	}
	return c.Render("index", page)
}

// form returns the page with the catalog options and the current selections.
func (h *PredictHandler) form(animal string, picks [models.SymptomSlots]string) Page {
	page := NewPage(h.cfg)
	page.Animals = h.catalog.Animals
	page.Symptoms = h.catalog.Symptoms
	page.Animal = animal
	page.Slots = make([]SlotView, models.SymptomSlots)
	for i := range page.Slots {
		page.Slots[i] = SlotView{Index: i + 1, Value: strings.TrimSpace(picks[i])}
	}
	return page
}
