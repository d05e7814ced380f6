package domain

import (
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/domain/mappane"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/middleware"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/pages"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/session"
	"github.com/FACorreiaa/go-travel-assistant/internal/observability/metrics"
)

const (
	appTitle = "Travel Assistant"

	SDKPath  = "/maps/sdk.js"
	PinsPath = "/pins"

	// HTMX events raised on the client through the HX-Trigger header.
	EventScreenChanged = "screen-changed"
	EventPinsUpdated   = "pins-updated"
)

type BaseHandler struct {
	Logger *zap.Logger
	mapCfg mappane.Config
}

func NewBaseHandler(logger *zap.Logger, mapCfg mappane.Config) *BaseHandler {
	return &BaseHandler{Logger: logger, mapCfg: mapCfg}
}

// Session returns the request's session, answering 500 when the session
// middleware did not run.
func (h *BaseHandler) Session(c *gin.Context) (*session.Session, bool) {
	sess := middleware.GetSessionFromContext(c)
	if sess == nil {
		h.Logger.Error("No session attached to request",
			zap.String("path", c.Request.URL.Path),
			zap.Error(models.ErrSessionNotFound))
		c.AbortWithStatus(http.StatusInternalServerError)
		return nil, false
	}
	return sess, true
}

func IsHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

func (h *BaseHandler) newLayoutData(title string, screen models.Screen, content templ.Component) models.LayoutTempl {
	return models.LayoutTempl{
		Title:     title,
		Content:   content,
		Nav:       models.MainNav,
		ActiveNav: screen,
		Map: models.MapMount{
			Enabled: h.mapCfg.Enabled(),
			Visible: screen == models.ScreenMap,
			SDKURL:  SDKPath,
			PinsURL: PinsPath,
		},
	}
}

// Render writes a component with the given status.
func (h *BaseHandler) Render(c *gin.Context, status int, component templ.Component) {
	start := time.Now()
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		h.Logger.Error("Failed to render component", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	metrics.Get().TemplateRenderDuration.Record(c.Request.Context(), time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("path", c.FullPath())))
}

// RenderPage answers HTMX navigation with the screen fragment and a
// screen-changed event, and full page loads with the layout.
func (h *BaseHandler) RenderPage(c *gin.Context, screen models.Screen, content templ.Component) {
	title := fmt.Sprintf("%s - %s", screen.Title(), appTitle)
	if IsHTMX(c) {
		c.Header("HX-Trigger", fmt.Sprintf(`{%q:{"screen":%q,"title":%q}}`, EventScreenChanged, screen, title))
		h.Render(c, http.StatusOK, content)
		return
	}
	h.Render(c, http.StatusOK, pages.LayoutPage(h.newLayoutData(title, screen, content)))
}
