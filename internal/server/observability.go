package server

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/FACorreiaa/go-travel-assistant/internal/observability/metrics"
	"github.com/FACorreiaa/go-travel-assistant/internal/observability/tracer"
	"github.com/FACorreiaa/go-travel-assistant/internal/pkg/config"
)

// ObservabilityShutdownFunc is the function type returned by InitObservability
type ObservabilityShutdownFunc func(context.Context) error

// InitObservability initializes OpenTelemetry and application metrics
func InitObservability(ctx context.Context, cfg config.ObservabilityConfig, logger *zap.Logger) (ObservabilityShutdownFunc, error) {
	providers, err := tracer.Init(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	metrics.InitAppMetrics()
	logger.Info("Observability initialized",
		zap.String("service", cfg.ServiceName),
		zap.String("metrics_endpoint", cfg.MetricsAddr+"/metrics"),
		zap.Bool("otlp_export", cfg.OTLPEndpoint != ""))

	return providers.Shutdown, nil
}
