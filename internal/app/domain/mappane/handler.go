package mappane

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
)

type SDKHandlers struct {
	loader *Loader
	logger *zap.Logger
}

func NewSDKHandlers(loader *Loader, logger *zap.Logger) *SDKHandlers {
	return &SDKHandlers{loader: loader, logger: logger}
}

// ServeSDK serves the vendor map script from the server's cached copy. The
// body is passed through unchanged, so the API key embedded in it still
// reaches the browser. Upstream sees the server's address and no Referer,
// which a referrer-restricted key will reject.
func (h *SDKHandlers) ServeSDK(c *gin.Context) {
	script, err := h.loader.Load(c.Request.Context())
	if err != nil {
		if errors.Is(err, models.ErrMapSDKUnavailable) {
			h.logger.Debug("Map SDK unavailable", zap.Error(err))
			c.Status(http.StatusBadGateway)
			return
		}
		c.Status(http.StatusServiceUnavailable)
		return
	}
	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, script.ContentType, script.Body)
}
