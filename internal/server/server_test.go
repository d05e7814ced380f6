package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-travel-assistant/internal/pkg/config"
)

func TestHTTPServer(t *testing.T) {
	cfg := &config.Config{ServerPort: "9999"}
	s := New(cfg, zap.NewNop())
	s.SetRouter(http.NotFoundHandler())

	srv := s.HTTPServer()
	assert.Equal(t, ":9999", srv.Addr)
	assert.NotNil(t, srv.Handler)
	assert.Equal(t, 2*time.Minute, srv.WriteTimeout)
	assert.Same(t, cfg, s.GetConfig())
}

func TestSetupAssets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, SetupAssets(r))

	for _, path := range []string{"/assets/js/map.js", "/assets/css/app.css"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
