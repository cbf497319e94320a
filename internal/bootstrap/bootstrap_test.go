package bootstrap

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"symptomcheck/internal/catalog"
	"symptomcheck/internal/config"
	"symptomcheck/internal/model"
	"symptomcheck/internal/testutil"
)

func testConfig(a testutil.Artifacts) *config.Config {
	return &config.Config{
		DataPath:    a.DataPath,
		EncoderPath: a.EncoderPath,
		ModelPath:   a.ModelPath,
	}
}

func TestLoad(t *testing.T) {
	a := testutil.WriteArtifacts(t)

	st, err := Load(context.Background(), testConfig(a))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer st.Close()

	sizes := st.ReferenceSizes()
	if sizes.Animals != 2 || sizes.Symptoms != 5 || sizes.Advice == 0 {
		t.Errorf("ReferenceSizes() = %+v", sizes)
	}
	if st.Encoder.NumFeatures() != testutil.EncodedWidth {
		t.Errorf("NumFeatures() = %d, want %d", st.Encoder.NumFeatures(), testutil.EncodedWidth)
	}
}

func TestLoad_Errors(t *testing.T) {
	a := testutil.WriteArtifacts(t)
	missing := filepath.Join(t.TempDir(), "missing")

	t.Run("dataset", func(t *testing.T) {
		cfg := testConfig(a)
		cfg.DataPath = missing
		_, err := Load(context.Background(), cfg)
		var dle *catalog.DataLoadError
		if !errors.As(err, &dle) {
			t.Errorf("Load() error = %v, want *catalog.DataLoadError", err)
		}
	})

	t.Run("model", func(t *testing.T) {
		cfg := testConfig(a)
		cfg.ModelPath = missing
		_, err := Load(context.Background(), cfg)
		var ale *model.ArtifactLoadError
		if !errors.As(err, &ale) || ale.Artifact != model.ArtifactClassifier {
			t.Errorf("Load() error = %v, want classifier ArtifactLoadError", err)
		}
	})

	t.Run("advice", func(t *testing.T) {
		cfg := testConfig(a)
		cfg.AdviceFile = missing
		if _, err := Load(context.Background(), cfg); err == nil {
			t.Error("Load() with missing advice file returned nil error")
		}
	})
}
