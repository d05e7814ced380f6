package llmchat

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type modelPricing struct {
	Model       string
	InputPer1M  float64
	OutputPer1M float64
}

// Pricing for Gemini models in USD per million tokens, matched by substring.
// Keep longer names ahead of their prefixes.
// Source: https://ai.google.dev/pricing
var geminiPricing = []modelPricing{
	{Model: "gemini-2.5-flash-lite", InputPer1M: 0.10, OutputPer1M: 0.40},
	{Model: "gemini-2.0-flash-lite", InputPer1M: 0.075, OutputPer1M: 0.30},
	{Model: "gemini-1.5-flash-8b", InputPer1M: 0.0375, OutputPer1M: 0.15},
	{Model: "gemini-2.5-flash", InputPer1M: 0.30, OutputPer1M: 2.50},
	{Model: "gemini-2.0-flash", InputPer1M: 0.10, OutputPer1M: 0.40},
	{Model: "gemini-1.5-flash", InputPer1M: 0.075, OutputPer1M: 0.30},
	{Model: "gemini-2.5-pro", InputPer1M: 1.25, OutputPer1M: 10.00},
	{Model: "gemini-1.5-pro", InputPer1M: 3.50, OutputPer1M: 10.50},
}

// CalculateCost estimates the cost in USD of one completion. Unknown models cost 0.
func CalculateCost(modelName string, promptTokens, completionTokens int) float64 {
	normalized := strings.ToLower(modelName)
	for _, pricing := range geminiPricing {
		if strings.Contains(normalized, pricing.Model) {
			inputCost := (float64(promptTokens) / 1_000_000) * pricing.InputPer1M
			outputCost := (float64(completionTokens) / 1_000_000) * pricing.OutputPer1M
			return inputCost + outputCost
		}
	}
	return 0
}

// HashPrompt creates a SHA256 hash of the prompt so logs never carry user text.
func HashPrompt(prompt string) string {
	hash := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(hash[:])
}

// Interaction is one completion call as it is logged.
type Interaction struct {
	RequestID        uuid.UUID
	Model            string
	PromptHash       string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	ResponseLength   int
	Latency          time.Duration
	CostEstimateUSD  float64
	ErrorMessage     string
}

// LLMLogger records completion calls: token usage, latency and cost.
type LLMLogger struct {
	logger *zap.Logger
}

func NewLLMLogger(logger *zap.Logger) *LLMLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMLogger{logger: logger}
}

// WrapNonStreamingCall runs callFunc and logs the interaction. The usage
// figures are also attached to the span in ctx.
func (l *LLMLogger) WrapNonStreamingCall(
	ctx context.Context,
	model, prompt string,
	callFunc func() (*genai.GenerateContentResponse, error),
) (*genai.GenerateContentResponse, Interaction, error) {
	start := time.Now()
	resp, err := callFunc()

	interaction := Interaction{
		RequestID:  uuid.New(),
		Model:      model,
		PromptHash: HashPrompt(prompt),
		Latency:    time.Since(start),
	}
	if err != nil {
		interaction.ErrorMessage = err.Error()
	} else if resp != nil {
		if resp.UsageMetadata != nil {
			interaction.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
			interaction.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
			interaction.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
		}
		interaction.ResponseLength = len(resp.Text())
	}
	interaction.CostEstimateUSD = CalculateCost(model, interaction.PromptTokens, interaction.CompletionTokens)

	l.log(ctx, interaction)
	return resp, interaction, err
}

func (l *LLMLogger) log(ctx context.Context, in Interaction) {
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("llm.request_id", in.RequestID.String()),
		attribute.Int("llm.prompt_tokens", in.PromptTokens),
		attribute.Int("llm.completion_tokens", in.CompletionTokens),
		attribute.Float64("llm.cost_usd", in.CostEstimateUSD),
	)

	fields := []zap.Field{
		zap.String("request_id", in.RequestID.String()),
		zap.String("model", in.Model),
		zap.String("prompt_hash", in.PromptHash),
		zap.Int("prompt_tokens", in.PromptTokens),
		zap.Int("completion_tokens", in.CompletionTokens),
		zap.Int("total_tokens", in.TotalTokens),
		zap.Int("response_length", in.ResponseLength),
		zap.Int64("latency_ms", in.Latency.Milliseconds()),
		zap.Float64("cost_usd", in.CostEstimateUSD),
	}
	if in.ErrorMessage != "" {
		l.logger.Warn("LLM interaction failed", append(fields, zap.String("error", in.ErrorMessage))...)
		return
	}
	l.logger.Info("LLM interaction", fields...)
}
