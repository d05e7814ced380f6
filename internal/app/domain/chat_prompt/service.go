package llmchat

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/session"
	"github.com/FACorreiaa/go-travel-assistant/internal/observability/metrics"
)

// Service runs chat turns against a session.
type Service interface {
	Send(ctx context.Context, sess *session.Session, text string) (Turn, error)
	ClearTranscript(sess *session.Session)
	ClearPins(sess *session.Session)
}

// Turn is what one call to Send appended to the session.
type Turn struct {
	Messages    []models.ChatMessage
	Pins        []models.Pin
	PinsUpdated bool
	Failed      bool
}

type ServiceImpl struct {
	generator   Generator
	instruction string
	logger      *zap.Logger
}

var _ Service = (*ServiceImpl)(nil)

func NewService(generator Generator, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		generator:   generator,
		instruction: TravelInstruction(),
		logger:      logger,
	}
}

// Send appends the user's message and the assistant's reply. Whitespace-only
// input returns ErrEmptyMessage without touching the session or the network.
// A failed completion is not an error: it appends ChatErrorMessage instead.
func (l *ServiceImpl) Send(ctx context.Context, sess *session.Session, text string) (Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Turn{}, models.ErrEmptyMessage
	}

	userMsg := models.NewChatMessage(models.RoleUser, text, false)
	sess.Update(func(st *session.State) { st.Append(userMsg) })

	m := metrics.Get()
	m.ChatRequestsTotal.Add(ctx, 1)
	start := time.Now()
	reply, err := l.generator.Generate(ctx, l.instruction, text)
	m.ChatLatencySeconds.Record(ctx, time.Since(start).Seconds())

	if err != nil {
		l.logger.Error("Chat completion failed",
			zap.String("session_id", sess.ID),
			zap.Error(err))
		m.ChatErrorsTotal.Add(ctx, 1)

		errMsg := models.NewChatMessage(models.RoleAssistant, models.ChatErrorMessage, false)
		sess.Update(func(st *session.State) { st.Append(errMsg) })
		return Turn{Messages: []models.ChatMessage{userMsg, errMsg}, Failed: true}, nil
	}

	ext := ExtractPins(reply)
	if ext.HasPayload && !ext.PinsFound {
		l.logger.Debug("Discarded unusable pins payload", zap.String("session_id", sess.ID))
	}

	assistantMsg := models.NewChatMessage(models.RoleAssistant, ext.Narrative, true)
	sess.Update(func(st *session.State) {
		st.Append(assistantMsg)
		if ext.PinsFound {
			st.ReplacePins(ext.Pins)
		}
	})

	turn := Turn{Messages: []models.ChatMessage{userMsg, assistantMsg}}
	if ext.PinsFound {
		turn.Pins = ext.Pins
		turn.PinsUpdated = true
		m.PinsExtractedTotal.Add(ctx, int64(len(ext.Pins)),
			metric.WithAttributes(attribute.String("source", "chat")))
		l.logger.Info("Pins replaced",
			zap.String("session_id", sess.ID),
			zap.Int("count", len(ext.Pins)))
	}
	return turn, nil
}

func (l *ServiceImpl) ClearTranscript(sess *session.Session) {
	sess.Update(func(st *session.State) { st.ClearTranscript() })
}

func (l *ServiceImpl) ClearPins(sess *session.Session) {
	sess.Update(func(st *session.State) { st.ClearPins() })
}
