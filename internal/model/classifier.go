package model

import (
	"context"
	"path/filepath"
	"strings"
	"time"
)

// Classifier is a trained binary classifier over encoded feature vectors.
// Implementations are safe for concurrent use once loaded.
type Classifier interface {
	Predict(ctx context.Context, features []float64) (int, error)
	PredictProba(ctx context.Context, features []float64) ([]float64, error)
}

// Scorer is implemented by backends that produce the label and the class
// probabilities from one evaluation, such as a remote model server.
type Scorer interface {
	Classify(ctx context.Context, features []float64) (label int, proba []float64, err error)
}

// ClassifierOptions selects and configures a classifier backend.
type ClassifierOptions struct {
	// NumFeatures is the encoder output width; zero skips the check.
	NumFeatures int

	// ONNXLibraryPath is the ONNX Runtime shared library used for .onnx models.
	ONNXLibraryPath string

	// RemoteURL, when set, selects an out-of-process model server and the
	// model path is ignored.
	RemoteURL     string
	RemoteTimeout time.Duration
}

// LoadClassifier loads the classifier artifact at path. The backend is chosen
// by opts.RemoteURL, then by the file extension.
func LoadClassifier(ctx context.Context, path string, opts ClassifierOptions) (Classifier, error) {
	if opts.RemoteURL != "" {
		rc := NewRemoteClassifier(opts.RemoteURL, opts.RemoteTimeout)
		if err := rc.Health(ctx); err != nil {
			return nil, &ArtifactLoadError{Artifact: ArtifactClassifier, Path: opts.RemoteURL, Err: err}
		}
		return rc, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".onnx":
		oc, err := newONNXClassifier(path, opts.ONNXLibraryPath, opts.NumFeatures)
		if err != nil {
			return nil, &ArtifactLoadError{Artifact: ArtifactClassifier, Path: path, Err: err}
		}
		return oc, nil
	default:
		return LoadForest(path, opts.NumFeatures)
	}
}

// argmax returns the index of the largest value, the lowest index on ties.
func argmax(values []float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best
}
