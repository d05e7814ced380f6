package tracer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-travel-assistant/internal/pkg/config"
)

const serviceVersion = "0.1.0"

// Providers owns the global tracer and meter providers and the /metrics
// listener.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	metrics *http.Server
	addr    net.Addr
	logger  *zap.Logger
}

// Init installs the global providers. Spans are batched to OTLP only when
// cfg.OTLPEndpoint is set. An empty cfg.MetricsAddr skips the scrape listener.
func Init(ctx context.Context, cfg config.ObservabilityConfig, logger *zap.Logger) (*Providers, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("otel")

	res := resource.NewWithAttributes(semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(serviceVersion),
	)

	tp, err := newTracerProvider(ctx, res, cfg.OTLPEndpoint, logger)
	if err != nil {
		return nil, err
	}
	mp, err := newMeterProvider(res)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}

	p := &Providers{Tracer: tp, Meter: mp, logger: logger}
	if cfg.MetricsAddr != "" {
		if err := p.serveMetrics(cfg.MetricsAddr); err != nil {
			_ = mp.Shutdown(ctx)
			_ = tp.Shutdown(ctx)
			return nil, err
		}
	}

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

func newTracerProvider(ctx context.Context, res *resource.Resource, endpoint string, logger *zap.Logger) (*sdktrace.TracerProvider, error) {
	if endpoint == "" {
		logger.Debug("Tracing without exporter")
		return sdktrace.NewTracerProvider(sdktrace.WithResource(res)), nil
	}
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter for %s: %w", endpoint, err)
	}
	logger.Info("Exporting spans", zap.String("endpoint", endpoint))
	return sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	), nil
}

func newMeterProvider(res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	reader, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("prometheus reader: %w", err)
	}
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	), nil
}

// serveMetrics binds synchronously. A taken port fails Init.
func (p *Providers) serveMetrics(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listener on %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	p.metrics = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	p.addr = ln.Addr()

	go func() {
		p.logger.Info("Serving metrics", zap.String("addr", p.addr.String()))
		if err := p.metrics.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			p.logger.Error("Metrics listener stopped", zap.Error(err))
		}
	}()
	return nil
}

// MetricsAddr is the bound scrape address, or nil when none was started.
func (p *Providers) MetricsAddr() net.Addr {
	return p.addr
}

// Shutdown flushes pending spans and stops the metrics listener.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.metrics != nil {
		if err := p.metrics.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics listener: %w", err))
		}
	}
	if err := p.Meter.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("meter provider: %w", err))
	}
	if err := p.Tracer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("tracer provider: %w", err))
	}
	return errors.Join(errs...)
}
