package llmchat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/domain"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/pages"
)

type ChatHandlers struct {
	*domain.BaseHandler
	service Service
}

func NewChatHandlers(base *domain.BaseHandler, service Service) *ChatHandlers {
	return &ChatHandlers{BaseHandler: base, service: service}
}

// SendMessage runs one chat turn and returns the appended messages. Blank
// input is answered with 204 so HTMX leaves the transcript alone.
func (h *ChatHandlers) SendMessage(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}

	turn, err := h.service.Send(c.Request.Context(), sess, c.PostForm("message"))
	if err != nil {
		if errors.Is(err, models.ErrEmptyMessage) {
			c.Status(http.StatusNoContent)
			return
		}
		h.Logger.Error("Chat turn failed", zap.String("session_id", sess.ID), zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	if turn.PinsUpdated {
		c.Header("HX-Trigger", domain.EventPinsUpdated)
	}
	h.Render(c, http.StatusOK, pages.ChatMessages(turn.Messages))
}

// ClearTranscript empties the transcript and returns the now empty list.
func (h *ChatHandlers) ClearTranscript(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}
	h.service.ClearTranscript(sess)
	h.Logger.Debug("Transcript cleared", zap.String("session_id", sess.ID))
	h.Render(c, http.StatusOK, pages.ChatMessages(nil))
}

// ClearPins empties the pin list and returns the empty pin list fragment.
func (h *ChatHandlers) ClearPins(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}
	h.service.ClearPins(sess)
	h.Logger.Debug("Pins cleared", zap.String("session_id", sess.ID))
	c.Header("HX-Trigger", domain.EventPinsUpdated)
	h.Render(c, http.StatusOK, pages.PinList(nil))
}
