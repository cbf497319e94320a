package model

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCategory  = errors.New("unknown category")
	ErrFeatureCount     = errors.New("feature count mismatch")
	ErrInvalidArtifact  = errors.New("invalid artifact")
	ErrUnsupportedType  = errors.New("unsupported artifact type")
	ErrBadModelResponse = errors.New("bad model server response")
)

// Artifact names used in ArtifactLoadError.
const (
	ArtifactClassifier = "classifier"
	ArtifactEncoder    = "encoder"
)

// ArtifactLoadError reports a failure to load a persisted model artifact.
type ArtifactLoadError struct {
	Artifact string
	Path     string
	Err      error
}

func (e *ArtifactLoadError) Error() string {
	return fmt.Sprintf("failed to load %s artifact %s: %v", e.Artifact, e.Path, e.Err)
}

func (e *ArtifactLoadError) Unwrap() error {
	return e.Err
}
