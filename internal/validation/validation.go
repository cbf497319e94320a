package validation

import (
	"errors"
	"fmt"
	"strings"

	"symptomcheck/internal/models"
)

// IncompleteMessage is shown when a submission fails the selection rule.
const IncompleteMessage = "Please select an animal and at least three symptoms before predicting."

var (
	// ErrIncompleteSubmission is wrapped by every ValidationError.
	ErrIncompleteSubmission = errors.New("incomplete submission")
	// ErrTooManySymptoms is returned when more slots are submitted than the form has.
	ErrTooManySymptoms = fmt.Errorf("at most %d symptoms can be submitted", models.SymptomSlots)
)

// ValidationError reports a submission that must not reach inference.
type ValidationError struct {
	AnimalMissing bool
	Selected      int
}

func (e *ValidationError) Error() string {
	return IncompleteMessage
}

func (e *ValidationError) Unwrap() error {
	return ErrIncompleteSubmission
}

// NormalizeSymptom lowercases a symptom so lookups are case-insensitive.
func NormalizeSymptom(symptom string) string {
	return strings.ToLower(strings.TrimSpace(symptom))
}

// ValidateSubmission checks that an animal is selected and at least
// models.MinSymptoms symptom slots hold a real value. picks may be shorter
// than models.SymptomSlots; missing slots count as none selected.
func ValidateSubmission(animal string, picks []string) (models.Submission, error) {
	if len(picks) > models.SymptomSlots {
		return models.Submission{}, ErrTooManySymptoms
	}

	sub := models.Submission{Animal: strings.TrimSpace(animal)}
	for i, p := range picks {
		p = strings.TrimSpace(p)
		sub.Picks[i] = p
		if p != models.NoneSelected {
			sub.Selected = append(sub.Selected, p)
		}
	}

	if sub.Animal == models.NoneSelected || len(sub.Selected) < models.MinSymptoms {
		return models.Submission{}, &ValidationError{
			AnimalMissing: sub.Animal == models.NoneSelected,
			Selected:      len(sub.Selected),
		}
	}
	return sub, nil
}
