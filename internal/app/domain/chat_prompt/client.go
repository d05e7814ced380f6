package llmchat

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
	"github.com/FACorreiaa/go-travel-assistant/internal/pkg/config"
)

// Generator sends one system instruction and one user part to a completion endpoint.
type Generator interface {
	Generate(ctx context.Context, instruction, userText string) (string, error)
}

// GeminiClient is a Generator backed by the Gemini API.
type GeminiClient struct {
	client    *genai.Client
	model     string
	logger    *zap.Logger
	llmLogger *LLMLogger
}

func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (*GeminiClient, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewGeminiClient")
	defer span.End()

	if cfg.APIKey == "" {
		err := fmt.Errorf("GEMINI_API_KEY environment variable is not set")
		span.RecordError(err)
		span.SetStatus(codes.Error, "API key not set")
		return nil, err
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	span.SetStatus(codes.Ok, "AI client created successfully")
	return &GeminiClient{
		client:    client,
		model:     cfg.Model,
		logger:    logger,
		llmLogger: NewLLMLogger(logger),
	}, nil
}

func (g *GeminiClient) Generate(ctx context.Context, instruction, userText string) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateContent", trace.WithAttributes(
		attribute.Int("prompt.length", len(userText)),
		attribute.String("model", g.model),
	))
	defer span.End()

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
	}
	contents := []*genai.Content{genai.NewContentFromText(userText, genai.RoleUser)}

	result, _, err := g.llmLogger.WrapNonStreamingCall(ctx, g.model, userText, func() (*genai.GenerateContentResponse, error) {
		return g.client.Models.GenerateContent(ctx, g.model, contents, genCfg)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate content")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		span.SetStatus(codes.Error, "Empty completion")
		return "", models.ErrEmptyCompletion
	}

	span.SetAttributes(attribute.Int("response.length", len(text)))
	span.SetStatus(codes.Ok, "Content generated successfully")
	g.logger.Debug("Completion received", zap.String("model", g.model), zap.Int("length", len(text)))
	return text, nil
}
