package inference

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"symptomcheck/internal/advisory"
	"symptomcheck/internal/models"
	"symptomcheck/internal/validation"
)

type countingRunner struct {
	calls int
	pred  models.Prediction
	err   error
	last  models.SymptomRecord
}

func (r *countingRunner) Run(ctx context.Context, rec models.SymptomRecord) (models.Prediction, error) {
	r.calls++
	r.last = rec
	return r.pred, r.err
}

func mustAdvice(t *testing.T) *advisory.Table {
	t.Helper()
	table, err := advisory.Default()
	if err != nil {
		t.Fatalf("advisory.Default() error = %v", err)
	}
	return table
}

func TestService_RejectsWithoutInference(t *testing.T) {
	tests := []struct {
		name   string
		animal string
		picks  []string
	}{
		{"one symptom", "Cat", []string{"itching", "", "", "", ""}},
		{"no animal", "", []string{"vomiting", "diarrhea", "lethargy", "", ""}},
		{"two symptoms", "Dog", []string{"", "fever", "", "coughing", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &countingRunner{}
			svc := NewService(runner, mustAdvice(t))

			_, err := svc.Submit(context.Background(), tt.animal, tt.picks)
			if !errors.Is(err, validation.ErrIncompleteSubmission) {
				t.Fatalf("Submit() error = %v, want ErrIncompleteSubmission", err)
			}
			if runner.calls != 0 {
				t.Errorf("runner called %d times, want 0", runner.calls)
			}
		})
	}
}

func TestService_DangerousResolvesAdviceInSlotOrder(t *testing.T) {
	runner := &countingRunner{pred: models.Prediction{Label: models.LabelDangerous, ProbNotDangerous: 0.2, ProbDangerous: 0.8}}
	svc := NewService(runner, mustAdvice(t))

	res, err := svc.Submit(context.Background(), "Dog", []string{"vomiting", "diarrhea", "lethargy", "", ""})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	var titles []string
	for _, a := range res.Advice {
		titles = append(titles, a.Title)
	}
	if diff := cmp.Diff([]string{"Vomiting", "Diarrhea", "Lethargy"}, titles); diff != "" {
		t.Errorf("advice titles mismatch (-want +got):\n%s", diff)
	}

	want := models.SymptomRecord{AnimalName: "Dog", Symptoms: [5]string{"vomiting", "diarrhea", "lethargy", "", ""}}
	if runner.last != want {
		t.Errorf("record = %+v, want %+v", runner.last, want)
	}
}

func TestService_UnknownSymptomsSkipped(t *testing.T) {
	runner := &countingRunner{pred: models.Prediction{Label: models.LabelDangerous, ProbNotDangerous: 0.1, ProbDangerous: 0.9}}
	svc := NewService(runner, mustAdvice(t))

	res, err := svc.Submit(context.Background(), "Dog", []string{"made up", "fever", "also made up"})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(res.Advice) != 1 || res.Advice[0].Title != "Fever" {
		t.Errorf("Advice = %+v, want only Fever", res.Advice)
	}
}

func TestService_NotDangerousHasNoAdvice(t *testing.T) {
	runner := &countingRunner{pred: models.Prediction{Label: models.LabelNotDangerous, ProbNotDangerous: 0.7, ProbDangerous: 0.3}}
	svc := NewService(runner, mustAdvice(t))

	res, err := svc.Submit(context.Background(), "Dog", []string{"vomiting", "diarrhea", "lethargy"})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(res.Advice) != 0 {
		t.Errorf("Advice = %+v, want none", res.Advice)
	}
}

func TestService_InferenceError(t *testing.T) {
	runner := &countingRunner{err: &InferenceError{Stage: StageEncode, Err: errors.New("unseen")}}
	svc := NewService(runner, mustAdvice(t))

	_, err := svc.Submit(context.Background(), "Dog", []string{"a", "b", "c"})
	var infErr *InferenceError
	if !errors.As(err, &infErr) {
		t.Fatalf("Submit() error = %v, want *InferenceError", err)
	}

	runner.err = nil
	runner.pred = models.Prediction{ProbNotDangerous: 1}
	if _, err := svc.Submit(context.Background(), "Dog", []string{"a", "b", "c"}); err != nil {
		t.Errorf("next Submit() error = %v", err)
	}
}
