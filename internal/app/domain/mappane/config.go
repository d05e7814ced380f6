package mappane

import (
	"fmt"
	"net/url"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
	"github.com/FACorreiaa/go-travel-assistant/internal/pkg/config"
)

// Config holds what the map pane needs from the environment.
type Config struct {
	APIKey        string
	ScriptURL     string
	DefaultZoom   float64
	DefaultCenter models.LatLng
}

// ConfigFrom adapts the process configuration.
func ConfigFrom(cfg config.MapsConfig) Config {
	return Config{
		APIKey:        cfg.APIKey,
		ScriptURL:     cfg.ScriptURL,
		DefaultZoom:   cfg.DefaultZoom,
		DefaultCenter: models.LatLng{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng},
	}
}

func (c Config) Enabled() bool {
	return c.APIKey != "" && c.ScriptURL != ""
}

// SDKURL is the vendor script URL with the API key as query parameter.
func (c Config) SDKURL() (string, error) {
	u, err := url.Parse(c.ScriptURL)
	if err != nil {
		return "", fmt.Errorf("invalid map script url: %w", err)
	}
	q := u.Query()
	q.Set("key", c.APIKey)
	if q.Get("v") == "" {
		q.Set("v", "weekly")
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
