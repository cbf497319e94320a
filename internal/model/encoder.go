package model

import (
	"encoding/json"
	"fmt"
	"os"

	"symptomcheck/internal/models"
)

// Unknown-category handling modes of a one-hot encoder.
const (
	HandleUnknownError  = "error"
	HandleUnknownIgnore = "ignore"
)

// Encoder turns a SymptomRecord into the feature vector the classifier expects.
type Encoder interface {
	Transform(rec models.SymptomRecord) ([]float64, error)
	NumFeatures() int
}

// OneHotEncoder is a fitted categorical encoder exported by the training
// pipeline. Each input column expands to one indicator per known category.
type OneHotEncoder struct {
	Type          string     `json:"type"`
	Features      []string   `json:"features"`
	Categories    [][]string `json:"categories"`
	HandleUnknown string     `json:"handle_unknown"`

	index []map[string]int
	width int
}

// LoadEncoder reads a JSON encoder export from path.
func LoadEncoder(path string) (*OneHotEncoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ArtifactLoadError{Artifact: ArtifactEncoder, Path: path, Err: err}
	}

	enc, err := ParseEncoder(data)
	if err != nil {
		return nil, &ArtifactLoadError{Artifact: ArtifactEncoder, Path: path, Err: err}
	}
	return enc, nil
}

// ParseEncoder decodes and validates a JSON encoder export.
func ParseEncoder(data []byte) (*OneHotEncoder, error) {
	var enc OneHotEncoder
	if err := json.Unmarshal(data, &enc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	if err := enc.init(); err != nil {
		return nil, err
	}
	return &enc, nil
}

func (e *OneHotEncoder) init() error {
	if e.Type != "onehot" {
		return fmt.Errorf("%w: encoder type %q", ErrUnsupportedType, e.Type)
	}

	switch e.HandleUnknown {
	case "":
		e.HandleUnknown = HandleUnknownError
	case HandleUnknownError, HandleUnknownIgnore:
	default:
		return fmt.Errorf("%w: handle_unknown %q", ErrUnsupportedType, e.HandleUnknown)
	}

	if len(e.Features) != len(models.RecordColumns) {
		return fmt.Errorf("%w: encoder has %d features, want %d", ErrInvalidArtifact, len(e.Features), len(models.RecordColumns))
	}
	for i, f := range e.Features {
		if f != models.RecordColumns[i] {
			return fmt.Errorf("%w: feature %d is %q, want %q", ErrInvalidArtifact, i, f, models.RecordColumns[i])
		}
	}
	if len(e.Categories) != len(e.Features) {
		return fmt.Errorf("%w: %d category lists for %d features", ErrInvalidArtifact, len(e.Categories), len(e.Features))
	}

	e.index = make([]map[string]int, len(e.Categories))
	e.width = 0
	for i, cats := range e.Categories {
		m := make(map[string]int, len(cats))
		for j, c := range cats {
			if _, dup := m[c]; dup {
				return fmt.Errorf("%w: duplicate category %q in %s", ErrInvalidArtifact, c, e.Features[i])
			}
			m[c] = j
		}
		e.index[i] = m
		e.width += len(cats)
	}
	return nil
}

// NumFeatures returns the length of the encoded vector.
func (e *OneHotEncoder) NumFeatures() int {
	return e.width
}

// Transform one-hot encodes rec.
func (e *OneHotEncoder) Transform(rec models.SymptomRecord) ([]float64, error) {
	values := rec.Values()
	vec := make([]float64, e.width)

	offset := 0
	for i, v := range values {
		j, ok := e.index[i][v]
		switch {
		case ok:
			vec[offset+j] = 1
		case e.HandleUnknown == HandleUnknownError:
			return nil, fmt.Errorf("%w: %s=%q", ErrUnknownCategory, e.Features[i], v)
		}
		offset += len(e.Categories[i])
	}
	return vec, nil
}
