package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("requires a gemini api key", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("MAPS_API_KEY", "")
		t.Setenv("SERVER_PORT", "")
		t.Setenv("SESSION_TTL", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8091", cfg.ServerPort)
		assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
		assert.Equal(t, 12.0, cfg.Maps.DefaultZoom)
		assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
		assert.False(t, cfg.MapsEnabled())
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("MAPS_API_KEY", "maps-key")
		t.Setenv("MAP_DEFAULT_ZOOM", "9.5")
		t.Setenv("SESSION_TTL", "30m")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 9.5, cfg.Maps.DefaultZoom)
		assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
		assert.True(t, cfg.MapsEnabled())
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("MAP_DEFAULT_LAT", "north")

		_, err := Load()
		assert.Error(t, err)
	})
}
