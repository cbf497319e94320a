package models

import "github.com/google/uuid"

// Class labels produced by the classifier.
const (
	LabelNotDangerous = 0
	LabelDangerous    = 1
)

// Submission outcome constants, used for metrics and logs.
const (
	OutcomeDangerous    = "dangerous"
	OutcomeNotDangerous = "not_dangerous"
	OutcomeRejected     = "rejected"
	OutcomeFailed       = "failed"
)

// Prediction is the result of running one SymptomRecord through the pipeline.
type Prediction struct {
	ID               uuid.UUID
	Label            int
	ProbNotDangerous float64
	ProbDangerous    float64
}

// IsDangerous reports whether the classifier labelled the record dangerous.
func (p Prediction) IsDangerous() bool {
	return p.Label == LabelDangerous
}

// ResultText returns the display text for the label.
func (p Prediction) ResultText() string {
	if p.IsDangerous() {
		return "Dangerous"
	}
	return "Not Dangerous"
}

// Outcome returns the metrics outcome for the prediction.
func (p Prediction) Outcome() string {
	if p.IsDangerous() {
		return OutcomeDangerous
	}
	return OutcomeNotDangerous
}
