package api

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"symptomcheck/internal/inference"
	"symptomcheck/internal/models"
	"symptomcheck/internal/validation"
)

// Submitter processes one prediction submission.
type Submitter interface {
	Submit(ctx context.Context, animal string, picks []string) (*inference.Result, error)
}

// PredictHandler handles predictions via JSON API.
type PredictHandler struct {
	service Submitter
}

// NewPredictHandler creates a new API predict handler.
func NewPredictHandler(service Submitter) *PredictHandler {
	return &PredictHandler{service: service}
}

// Predict classifies one animal and symptom selection.
func (h *PredictHandler) Predict(c fiber.Ctx) error {
	var body models.PredictRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	res, err := h.service.Submit(c.Context(), body.Animal, body.Symptoms)
	if err != nil {
		var verr *validation.ValidationError
		switch {
		case errors.As(err, &verr):
			return jsonError(c, fiber.StatusUnprocessableEntity, verr.Error())
		case errors.Is(err, validation.ErrTooManySymptoms):
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return jsonError(c, fiber.StatusInternalServerError, inference.FailureMessage)
		}
	}

	advice := make([]models.AdviceResponse, 0, len(res.Advice))
	for _, a := range res.Advice {
		advice = append(advice, models.NewAdviceResponse(a))
	}

	return jsonSuccess(c, models.PredictResponse{
		ID:        res.Prediction.ID,
		Animal:    res.Submission.Animal,
		Symptoms:  res.Submission.Selected,
		Label:     res.Prediction.Label,
		Dangerous: res.Prediction.IsDangerous(),
		Result:    res.Prediction.ResultText(),
		Probabilities: models.ProbabilitiesResponse{
			NotDangerous: res.Prediction.ProbNotDangerous,
			Dangerous:    res.Prediction.ProbDangerous,
		},
		Advice: advice,
	})
}
