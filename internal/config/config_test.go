package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "SERVER_ADDR", "DATA_PATH", "MODEL_PATH", "ENCODER_PATH", "INFERENCE_URL", "INFERENCE_TIMEOUT", "HEALTH_CHECK_INTERVAL", "RATE_LIMIT_MAX", "CORS_ORIGINS", "BASE_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ServerAddr != ":3000" {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr, ":3000")
	}
	if cfg.DataPath != "data.csv" {
		t.Errorf("DataPath = %q, want %q", cfg.DataPath, "data.csv")
	}
	if cfg.ModelPath != "random_forest_model.json" {
		t.Errorf("ModelPath = %q", cfg.ModelPath)
	}
	if cfg.EncoderPath != "onehot_encoder.json" {
		t.Errorf("EncoderPath = %q", cfg.EncoderPath)
	}
	if cfg.InferenceTimeout != 5*time.Second {
		t.Errorf("InferenceTimeout = %v, want 5s", cfg.InferenceTimeout)
	}
	if cfg.HealthCheckInterval != 30*time.Second {
		t.Errorf("HealthCheckInterval = %v, want 30s", cfg.HealthCheckInterval)
	}
	if cfg.RateLimitMax != 100 {
		t.Errorf("RateLimitMax = %d, want 100", cfg.RateLimitMax)
	}
	if !cfg.IsDev() {
		t.Error("IsDev() should be true by default")
	}
	if cfg.IsRemoteInference() {
		t.Error("IsRemoteInference() should be false by default")
	}
	if diff := cmp.Diff([]string{"http://localhost:3000"}, cfg.AllowedOrigins()); diff != "" {
		t.Errorf("AllowedOrigins() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("MODEL_PATH", "/models/forest.onnx")
	t.Setenv("INFERENCE_URL", "http://model:6000")
	t.Setenv("INFERENCE_TIMEOUT", "750ms")
	t.Setenv("RATE_LIMIT_MAX", "20")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg := Load()

	if cfg.IsDev() {
		t.Error("IsDev() should be false in production")
	}
	if cfg.ModelPath != "/models/forest.onnx" {
		t.Errorf("ModelPath = %q", cfg.ModelPath)
	}
	if !cfg.IsRemoteInference() {
		t.Error("IsRemoteInference() should be true")
	}
	if cfg.InferenceTimeout != 750*time.Millisecond {
		t.Errorf("InferenceTimeout = %v, want 750ms", cfg.InferenceTimeout)
	}
	if cfg.RateLimitMax != 20 {
		t.Errorf("RateLimitMax = %d, want 20", cfg.RateLimitMax)
	}
	if diff := cmp.Diff([]string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins()); diff != "" {
		t.Errorf("AllowedOrigins() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("INFERENCE_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_MAX", "-3")

	cfg := Load()

	if cfg.InferenceTimeout != 5*time.Second {
		t.Errorf("InferenceTimeout = %v, want fallback 5s", cfg.InferenceTimeout)
	}
	if cfg.RateLimitMax != 100 {
		t.Errorf("RateLimitMax = %d, want fallback 100", cfg.RateLimitMax)
	}
}

func TestIsMTLSEnabled(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected bool
	}{
		{"tls off", Config{TLSCAFile: "ca.pem"}, false},
		{"tls without ca", Config{TLSEnabled: true}, false},
		{"mtls", Config{TLSEnabled: true, TLSCAFile: "ca.pem"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.IsMTLSEnabled(); got != tt.expected {
				t.Errorf("IsMTLSEnabled() = %v, want %v", got, tt.expected)
			}
		})
	}
}
