// Package inference runs a symptom record through the encoder and classifier.
package inference

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"symptomcheck/internal/metrics"
	"symptomcheck/internal/model"
	"symptomcheck/internal/models"
)

// Pipeline stages reported in InferenceError.
const (
	StageEncode       = "encode"
	StagePredict      = "predict"
	StagePredictProba = "predict_proba"
	StageOutput       = "output"
)

// probabilityTolerance bounds how far the class probabilities may sum from 1.
const probabilityTolerance = 1e-6

var ErrInvalidOutput = errors.New("invalid classifier output")

// InferenceError reports a failed encode or predict step for one submission.
type InferenceError struct {
	Stage string
	Err   error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed at %s: %v", e.Stage, e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

// Pipeline holds the loaded encoder and classifier. It keeps no per-request
// state and is safe for concurrent use.
type Pipeline struct {
	encoder    model.Encoder
	classifier model.Classifier
}

// New creates a pipeline over already loaded artifacts.
func New(encoder model.Encoder, classifier model.Classifier) *Pipeline {
	return &Pipeline{encoder: encoder, classifier: classifier}
}

// Run encodes rec, classifies it and looks up the class probabilities.
// Any failure, including a panic inside a backend, is returned as an
// *InferenceError and leaves the pipeline usable for the next call.
func (p *Pipeline) Run(ctx context.Context, rec models.SymptomRecord) (pred models.Prediction, err error) {
	stage := StageEncode
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = &InferenceError{Stage: stage, Err: fmt.Errorf("panic: %v", r)}
		}
		metrics.ObserveInference(time.Since(start), err == nil)
	}()

	features, err := p.encoder.Transform(rec)
	if err != nil {
		return models.Prediction{}, &InferenceError{Stage: stage, Err: err}
	}

	stage = StagePredict
	label, proba, stage, err := p.classify(ctx, features)
	if err != nil {
		return models.Prediction{}, &InferenceError{Stage: stage, Err: err}
	}

	stage = StageOutput
	if err := checkOutput(label, proba); err != nil {
		return models.Prediction{}, &InferenceError{Stage: stage, Err: err}
	}

	return models.Prediction{
		ID:               uuid.New(),
		Label:            label,
		ProbNotDangerous: proba[0],
		ProbDangerous:    proba[1],
	}, nil
}

// classify asks the backend for the label and probabilities, in one call when
// it supports that. The returned stage names the step that failed.
func (p *Pipeline) classify(ctx context.Context, features []float64) (int, []float64, string, error) {
	if s, ok := p.classifier.(model.Scorer); ok {
		label, proba, err := s.Classify(ctx, features)
		return label, proba, StagePredict, err
	}

	label, err := p.classifier.Predict(ctx, features)
	if err != nil {
		return 0, nil, StagePredict, err
	}
	proba, err := p.classifier.PredictProba(ctx, features)
	if err != nil {
		return 0, nil, StagePredictProba, err
	}
	return label, proba, StageOutput, nil
}

func checkOutput(label int, proba []float64) error {
	if label != models.LabelNotDangerous && label != models.LabelDangerous {
		return fmt.Errorf("%w: label %d", ErrInvalidOutput, label)
	}
	if len(proba) != 2 {
		return fmt.Errorf("%w: %d probabilities", ErrInvalidOutput, len(proba))
	}
	for _, v := range proba {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: probability %v", ErrInvalidOutput, v)
		}
	}
	if math.Abs(proba[0]+proba[1]-1) > probabilityTolerance {
		return fmt.Errorf("%w: probabilities sum to %v", ErrInvalidOutput, proba[0]+proba[1])
	}
	return nil
}
