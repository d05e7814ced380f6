package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type MapsConfig struct {
	APIKey      string
	ScriptURL   string
	DefaultZoom float64
	DefaultLat  float64
	DefaultLng  float64
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

type ObservabilityConfig struct {
	ServiceName  string
	MetricsAddr  string
	PprofAddr    string
	OTLPEndpoint string
}

type Config struct {
	ServerPort    string
	LogLevel      string
	Gemini        GeminiConfig
	Maps          MapsConfig
	Session       SessionConfig
	Observability ObservabilityConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnvOrDefault("SERVER_PORT", "8091"),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
		Gemini: GeminiConfig{
			APIKey:  getEnvOrDefault("GEMINI_API_KEY", ""),
			Model:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
			BaseURL: getEnvOrDefault("GEMINI_BASE_URL", ""),
		},
		Maps: MapsConfig{
			APIKey:    getEnvOrDefault("MAPS_API_KEY", ""),
			ScriptURL: getEnvOrDefault("MAPS_SCRIPT_URL", "https://maps.googleapis.com/maps/api/js"),
		},
		Session: SessionConfig{
			Secret: getEnvOrDefault("SESSION_SECRET", "change-me-in-production-32-bytes!"),
		},
		Observability: ObservabilityConfig{
			ServiceName:  getEnvOrDefault("OTEL_SERVICE_NAME", "travel-assistant"),
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			PprofAddr:    getEnvOrDefault("PPROF_ADDR", ":6060"),
			OTLPEndpoint: getEnvOrDefault("OTEL_EXPORTER_ENDPOINT", ""),
		},
	}

	var err error
	if cfg.Maps.DefaultZoom, err = getFloatOrDefault("MAP_DEFAULT_ZOOM", 12); err != nil {
		return nil, err
	}
	if cfg.Maps.DefaultLat, err = getFloatOrDefault("MAP_DEFAULT_LAT", 38.7223); err != nil {
		return nil, err
	}
	if cfg.Maps.DefaultLng, err = getFloatOrDefault("MAP_DEFAULT_LNG", -9.1393); err != nil {
		return nil, err
	}
	if cfg.Session.TTL, err = getDurationOrDefault("SESSION_TTL", 2*time.Hour); err != nil {
		return nil, err
	}

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	return cfg, nil
}

// MapsEnabled reports whether a map SDK key is configured.
func (c *Config) MapsEnabled() bool {
	return c.Maps.APIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloatOrDefault(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
