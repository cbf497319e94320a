// Package bootstrap loads the reference data and model artifacts shared by
// the server and the command-line tool.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"symptomcheck/internal/advisory"
	"symptomcheck/internal/catalog"
	"symptomcheck/internal/config"
	"symptomcheck/internal/inference"
	"symptomcheck/internal/metrics"
	"symptomcheck/internal/model"
)

// State is everything built before the first request. None of it is
// modified afterwards.
type State struct {
	Catalog    *catalog.Catalog
	Encoder    model.Encoder
	Classifier model.Classifier
	Advice     *advisory.Table
	Pipeline   *inference.Pipeline
	Service    *inference.Service
}

// Load reads the dataset, encoder, classifier and advisory table named by
// cfg. Any failure is fatal for the caller; nothing is partially usable.
func Load(ctx context.Context, cfg *config.Config) (*State, error) {
	cat, err := catalog.Load(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	slog.Info("reference data loaded", "path", cfg.DataPath, "animals", len(cat.Animals), "symptoms", len(cat.Symptoms))

	enc, err := model.LoadEncoder(cfg.EncoderPath)
	if err != nil {
		return nil, err
	}

	clf, err := model.LoadClassifier(ctx, cfg.ModelPath, model.ClassifierOptions{
		NumFeatures:     enc.NumFeatures(),
		ONNXLibraryPath: cfg.ONNXLibraryPath,
		RemoteURL:       cfg.InferenceURL,
		RemoteTimeout:   cfg.InferenceTimeout,
	})
	if err != nil {
		return nil, err
	}
	if cfg.IsRemoteInference() {
		slog.Info("classifier loaded", "backend", "remote", "url", cfg.InferenceURL)
	} else {
		slog.Info("classifier loaded", "path", cfg.ModelPath, "features", enc.NumFeatures())
	}

	table, err := LoadAdvice(cfg.AdviceFile)
	if err != nil {
		closeClassifier(clf)
		return nil, err
	}
	for _, dup := range table.Duplicates() {
		slog.Warn("advisory symptom defined more than once, keeping the last definition", "symptom", dup)
	}

	pipeline := inference.New(enc, clf)
	return &State{
		Catalog:    cat,
		Encoder:    enc,
		Classifier: clf,
		Advice:     table,
		Pipeline:   pipeline,
		Service:    inference.NewService(pipeline, table),
	}, nil
}

// LoadAdvice returns the advisory table from path, or the built-in table
// when path is empty.
func LoadAdvice(path string) (*advisory.Table, error) {
	if path == "" {
		t, err := advisory.Default()
		if err != nil {
			return nil, fmt.Errorf("built-in advisory table: %w", err)
		}
		return t, nil
	}
	return advisory.LoadFile(path)
}

// ReferenceSizes reports the loaded data sizes for metrics.
func (s *State) ReferenceSizes() metrics.ReferenceSizes {
	return metrics.ReferenceSizes{
		Animals:  len(s.Catalog.Animals),
		Symptoms: len(s.Catalog.Symptoms),
		Advice:   s.Advice.Len(),
	}
}

// Close releases classifier resources such as an ONNX Runtime session.
func (s *State) Close() {
	closeClassifier(s.Classifier)
}

func closeClassifier(clf model.Classifier) {
	if c, ok := clf.(io.Closer); ok {
		if err := c.Close(); err != nil {
			slog.Warn("failed to close classifier", "error", err)
		}
	}
}
