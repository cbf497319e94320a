package inference

import (
	"context"
	"errors"
	"log/slog"

	"symptomcheck/internal/advisory"
	"symptomcheck/internal/metrics"
	"symptomcheck/internal/models"
	"symptomcheck/internal/validation"
)

// Runner runs one record through encoder and classifier.
type Runner interface {
	Run(ctx context.Context, rec models.SymptomRecord) (models.Prediction, error)
}

// FailureMessage is shown to the user when inference fails.
const FailureMessage = "Prediction failed for this input. Please try a different combination of symptoms."

// Result is everything rendered for an accepted submission.
type Result struct {
	Submission models.Submission
	Prediction models.Prediction
	// Advice is empty unless the prediction is dangerous.
	Advice []models.AdviceBlock
}

// Service handles one submission at a time: validate, infer, then resolve
// advice for dangerous predictions. It holds only read-only dependencies.
type Service struct {
	runner Runner
	advice *advisory.Table
}

// NewService creates a submission service.
func NewService(runner Runner, advice *advisory.Table) *Service {
	return &Service{runner: runner, advice: advice}
}

// Submit processes one submission. A *validation.ValidationError means no
// inference was attempted; an *InferenceError means the pipeline failed for
// this submission only.
func (s *Service) Submit(ctx context.Context, animal string, picks []string) (*Result, error) {
	sub, err := validation.ValidateSubmission(animal, picks)
	if err != nil {
		metrics.RecordSubmission(models.OutcomeRejected)
		return nil, err
	}

	pred, err := s.runner.Run(ctx, sub.Record())
	if err != nil {
		metrics.RecordSubmission(models.OutcomeFailed)
		var infErr *InferenceError
		if errors.As(err, &infErr) {
			slog.Error("inference failed", "stage", infErr.Stage, "animal", sub.Animal, "error", infErr.Err)
		} else {
			slog.Error("inference failed", "animal", sub.Animal, "error", err)
		}
		return nil, err
	}

	res := &Result{Submission: sub, Prediction: pred}
	if pred.IsDangerous() {
		res.Advice = s.advice.Resolve(sub.Selected)
	}

	metrics.RecordSubmission(pred.Outcome())
	slog.Info("prediction complete",
		"id", pred.ID,
		"animal", sub.Animal,
		"symptoms", len(sub.Selected),
		"outcome", pred.Outcome(),
		"p_dangerous", pred.ProbDangerous,
		"advice", len(res.Advice),
	)
	return res, nil
}
