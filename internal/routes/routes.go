package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/domain"
	llmchat "github.com/FACorreiaa/go-travel-assistant/internal/app/domain/chat_prompt"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/domain/mappane"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/domain/screens"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/middleware"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/session"
	"github.com/FACorreiaa/go-travel-assistant/internal/pkg/config"
)

type AppHandlers struct {
	Screens *screens.ScreenHandlers
	Chat    *llmchat.ChatHandlers
	MapSDK  *mappane.SDKHandlers

	Sessions *session.Store
}

// Setup wires the Gemini client, the map SDK loader and the handlers into r.
func Setup(ctx context.Context, r *gin.Engine, cfg *config.Config, log *zap.Logger) error {
	generator, err := llmchat.NewGeminiClient(ctx, cfg.Gemini, log)
	if err != nil {
		return fmt.Errorf("failed to create chat client: %w", err)
	}

	sdkClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   30 * time.Second,
	}

	handlers := NewAppHandlers(cfg, generator, sdkClient, log)
	Register(r, handlers, log)
	return nil
}

// NewAppHandlers builds the handlers around a completion backend and the
// HTTP client used to fetch the map SDK.
func NewAppHandlers(cfg *config.Config, generator llmchat.Generator, sdkClient *http.Client, log *zap.Logger) *AppHandlers {
	mapCfg := mappane.ConfigFrom(cfg.Maps)
	if !mapCfg.Enabled() {
		log.Warn("MAPS_API_KEY not set, map pane disabled")
	}

	baseHandler := domain.NewBaseHandler(log, mapCfg)
	loader := mappane.NewLoader(mapCfg, sdkClient, log)
	chatService := llmchat.NewService(generator, log)

	return &AppHandlers{
		Screens:  screens.NewScreenHandlers(baseHandler, screens.NewRouter(log), loader),
		Chat:     llmchat.NewChatHandlers(baseHandler, chatService),
		MapSDK:   mappane.NewSDKHandlers(loader, log),
		Sessions: session.NewStore(cfg.Session.TTL, mapCfg, log),
	}
}

func Register(r *gin.Engine, h *AppHandlers, log *zap.Logger) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"sessions": h.Sessions.Len(),
		})
	})

	// Shared by every session; the script is fetched once per process.
	r.GET(domain.SDKPath, h.MapSDK.ServeSDK)

	app := r.Group("/")
	app.Use(middleware.SessionMiddleware(h.Sessions, log))
	{
		app.GET("/", h.Screens.ShowHome)
		app.GET("/chat", h.Screens.ShowChat)
		app.GET("/planner", h.Screens.ShowPlanner)
		app.GET("/map", h.Screens.ShowMap)
		app.GET("/screens/:name", h.Screens.ShowScreen)

		app.POST("/chat/messages", h.Chat.SendMessage)
		app.POST("/chat/clear", h.Chat.ClearTranscript)

		app.GET(domain.PinsPath, h.Screens.GetPins)
		app.POST("/pins/clear", h.Chat.ClearPins)
	}
}
