package screens

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/domain"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/domain/mappane"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/pages"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/session"
)

type ScreenHandlers struct {
	*domain.BaseHandler
	router *Router
	loader *mappane.Loader
}

func NewScreenHandlers(base *domain.BaseHandler, router *Router, loader *mappane.Loader) *ScreenHandlers {
	return &ScreenHandlers{BaseHandler: base, router: router, loader: loader}
}

func (h *ScreenHandlers) ShowHome(c *gin.Context)    { h.show(c, models.ScreenHome) }
func (h *ScreenHandlers) ShowChat(c *gin.Context)    { h.show(c, models.ScreenChat) }
func (h *ScreenHandlers) ShowPlanner(c *gin.Context) { h.show(c, models.ScreenPlanner) }
func (h *ScreenHandlers) ShowMap(c *gin.Context)     { h.show(c, models.ScreenMap) }

// ShowScreen navigates by name, answering 404 for unknown screens.
func (h *ScreenHandlers) ShowScreen(c *gin.Context) {
	h.show(c, models.Screen(c.Param("name")))
}

func (h *ScreenHandlers) show(c *gin.Context, to models.Screen) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}

	var navErr error
	sess.Update(func(st *session.State) {
		navErr = h.router.Navigate(st, to)
	})
	if navErr != nil {
		if errors.Is(navErr, models.ErrUnknownScreen) {
			h.Logger.Debug("Unknown screen requested", zap.String("screen", string(to)))
			c.String(http.StatusNotFound, "unknown screen")
			return
		}
		h.Logger.Error("Navigation failed", zap.Error(navErr))
		c.Status(http.StatusInternalServerError)
		return
	}

	view := sess.Snapshot()
	h.RenderPage(c, view.Screen, h.content(c, view))
}

func (h *ScreenHandlers) content(c *gin.Context, view session.View) templ.Component {
	switch view.Screen {
	case models.ScreenChat:
		return pages.ChatPage(view.Transcript)
	case models.ScreenPlanner:
		return pages.PlannerPage()
	case models.ScreenMap:
		return pages.MapPage(h.mapData(c, view))
	default:
		return pages.HomePage()
	}
}

// mapData reports the SDK state alongside the pins. The loader fetches at
// most once, so repeated entries only read the remembered result.
func (h *ScreenHandlers) mapData(c *gin.Context, view session.View) pages.MapData {
	data := pages.MapData{
		Enabled: h.loader.Enabled(),
		Pins:    view.Pins,
		View:    view.Map,
	}
	if data.Enabled {
		if _, err := h.loader.Load(c.Request.Context()); errors.Is(err, models.ErrMapSDKUnavailable) {
			data.SDKFailed = true
		}
	}
	return data
}

// GetPins returns the session's pins for the map widget.
func (h *ScreenHandlers) GetPins(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}
	view := sess.Snapshot()
	pins := view.Pins
	if pins == nil {
		pins = []models.Pin{}
	}
	body := gin.H{
		"pins":    pins,
		"mounted": view.Map.Mounted,
	}
	if sw, ne, ok := mappane.Bounds(pins); ok {
		body["bounds"] = gin.H{"sw": sw, "ne": ne}
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, body)
}
