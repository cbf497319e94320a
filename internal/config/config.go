package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Artifacts
	DataPath        string
	ModelPath       string
	EncoderPath     string
	AdviceFile      string // YAML advisory table replacing the built-in one when set
	ONNXLibraryPath string

	// Remote model server
	InferenceURL        string
	InferenceTimeout    time.Duration
	HealthCheckInterval time.Duration // background model server polling

	// Logging
	LogLevel  string
	LogFormat string // "text" or "json"

	// Rate limiting
	RateLimitMax int
	RedisURL     string // shared limiter storage; in-memory when empty

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Animal Symptom Danger Predictor"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:        getEnv("ENV", "development"),
		ServerAddr: getEnv("SERVER_ADDR", ":3000"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:3000"),

		DataPath:        getEnv("DATA_PATH", "data.csv"),
		ModelPath:       getEnv("MODEL_PATH", "random_forest_model.json"),
		EncoderPath:     getEnv("ENCODER_PATH", "onehot_encoder.json"),
		AdviceFile:      getEnv("ADVICE_FILE", ""),
		ONNXLibraryPath: getEnv("ONNX_LIBRARY_PATH", "libonnxruntime.so"),

		InferenceURL:        getEnv("INFERENCE_URL", ""),
		InferenceTimeout:    getEnvDuration("INFERENCE_TIMEOUT", 5*time.Second),
		HealthCheckInterval: getEnvDuration("HEALTH_CHECK_INTERVAL", 30*time.Second),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 100),
		RedisURL:     getEnv("REDIS_URL", ""),

		TLSEnabled:  getEnv("TLS_ENABLED", "") != "",
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:   getEnv("TLS_CA_FILE", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		SiteTitle:   getEnv("SITE_TITLE", "Animal Symptom Danger Predictor"),
		SiteTagline: getEnv("SITE_TAGLINE", "Select an animal and at least three symptoms in the sidebar, then click Predict."),
		SiteFooter:  getEnv("SITE_FOOTER", "Guidance is first aid only. Contact a veterinarian for any dangerous prediction."),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}

// IsRemoteInference returns true if classification is delegated to a model server.
func (c *Config) IsRemoteInference() bool {
	return c.InferenceURL != ""
}

// AllowedOrigins returns the CORS origins, defaulting to BaseURL.
func (c *Config) AllowedOrigins() []string {
	origins := c.BaseURL
	if c.CORSOrigins != "" {
		origins = c.CORSOrigins
	}
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
