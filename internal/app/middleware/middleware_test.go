package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/domain/mappane"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/session"
)

func newRouter(store *session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("travel_session", cookie.NewStore([]byte("test-secret-test-secret-test-sec"))))
	r.Use(SessionMiddleware(store, zap.NewNop()))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, GetSessionFromContext(c).ID)
	})
	return r
}

func TestSessionMiddleware(t *testing.T) {
	store := session.NewStore(time.Minute, mappane.Config{}, nil)
	r := newRouter(store)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	first := w.Body.String()
	require.NotEmpty(t, first)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "a new session sets the cookie")

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/whoami", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	assert.Equal(t, first, w.Body.String(), "the cookie resolves to the same session")
	assert.Equal(t, 1, store.Len())
}

func TestSecurityMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecurityMiddleware(), CORSMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "https://maps.googleapis.com")

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodOptions, "/", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetSessionFromContextWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetSessionFromContext(c))
}
