package validation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"symptomcheck/internal/models"
)

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name          string
		animal        string
		picks         []string
		valid         bool
		animalMissing bool
		selected      []string
	}{
		{
			name:     "animal and three symptoms",
			animal:   "Dog",
			picks:    []string{"vomiting", "diarrhea", "lethargy", "", ""},
			valid:    true,
			selected: []string{"vomiting", "diarrhea", "lethargy"},
		},
		{
			name:     "gaps keep slot order",
			animal:   "Dog",
			picks:    []string{"", "fever", "", "itching", "coughing"},
			valid:    true,
			selected: []string{"fever", "itching", "coughing"},
		},
		{
			name:     "all five",
			animal:   "Cat",
			picks:    []string{"a", "b", "c", "d", "e"},
			valid:    true,
			selected: []string{"a", "b", "c", "d", "e"},
		},
		{
			name:     "short slice",
			animal:   "Cat",
			picks:    []string{"a", "b", "c"},
			valid:    true,
			selected: []string{"a", "b", "c"},
		},
		{
			name:   "one symptom",
			animal: "Cat",
			picks:  []string{"itching", "", "", "", ""},
		},
		{
			name:   "two symptoms",
			animal: "Cat",
			picks:  []string{"itching", "fever"},
		},
		{
			name:          "no animal",
			animal:        models.NoneSelected,
			picks:         []string{"a", "b", "c"},
			animalMissing: true,
		},
		{
			name:          "whitespace animal",
			animal:        "   ",
			picks:         []string{"a", "b", "c"},
			animalMissing: true,
		},
		{
			name:          "nothing selected",
			animalMissing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := ValidateSubmission(tt.animal, tt.picks)
			if tt.valid {
				if err != nil {
					t.Fatalf("ValidateSubmission() error = %v", err)
				}
				if diff := cmp.Diff(tt.selected, sub.Selected); diff != "" {
					t.Errorf("Selected mismatch (-want +got):\n%s", diff)
				}
				return
			}

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("ValidateSubmission() error = %v, want *ValidationError", err)
			}
			if !errors.Is(err, ErrIncompleteSubmission) {
				t.Error("error should wrap ErrIncompleteSubmission")
			}
			if vErr.AnimalMissing != tt.animalMissing {
				t.Errorf("AnimalMissing = %v, want %v", vErr.AnimalMissing, tt.animalMissing)
			}
			if err.Error() != IncompleteMessage {
				t.Errorf("Error() = %q, want %q", err.Error(), IncompleteMessage)
			}
		})
	}
}

func TestValidateSubmission_Record(t *testing.T) {
	sub, err := ValidateSubmission("Dog", []string{"vomiting", "", "diarrhea", "lethargy"})
	if err != nil {
		t.Fatalf("ValidateSubmission() error = %v", err)
	}

	want := models.SymptomRecord{
		AnimalName: "Dog",
		Symptoms:   [models.SymptomSlots]string{"vomiting", "", "diarrhea", "lethargy", ""},
	}
	if got := sub.Record(); got != want {
		t.Errorf("Record() = %+v, want %+v", got, want)
	}
}

func TestValidateSubmission_TooMany(t *testing.T) {
	_, err := ValidateSubmission("Dog", []string{"a", "b", "c", "d", "e", "f"})
	if !errors.Is(err, ErrTooManySymptoms) {
		t.Errorf("ValidateSubmission() error = %v, want ErrTooManySymptoms", err)
	}
}

func TestNormalizeSymptom(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Vomiting", "vomiting"},
		{"  Loss Of Appetite ", "loss of appetite"},
		{"CPR/cardiac arrest", "cpr/cardiac arrest"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeSymptom(tt.input); got != tt.expected {
			t.Errorf("NormalizeSymptom(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
