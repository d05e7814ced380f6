package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal      metric.Int64Counter
	HTTPRequestDuration    metric.Float64Histogram
	ChatRequestsTotal      metric.Int64Counter
	ChatErrorsTotal        metric.Int64Counter
	ChatLatencySeconds     metric.Float64Histogram
	PinsExtractedTotal     metric.Int64Counter
	MapSDKLoadsTotal       metric.Int64Counter
	ActiveSessionsGauge    metric.Int64Gauge
	TemplateRenderDuration metric.Float64Histogram
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments once from the global MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("travel-assistant")
		var err error
		m := &AppMetrics{}

		m.HTTPRequestsTotal, err = meter.Int64Counter(
			"http_requests_total",
			metric.WithDescription("Total number of HTTP requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_requests_total: %v", err)
		}

		m.HTTPRequestDuration, err = meter.Float64Histogram(
			"http_request_duration_seconds",
			metric.WithDescription("Duration of HTTP requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_request_duration_seconds: %v", err)
		}

		m.ChatRequestsTotal, err = meter.Int64Counter(
			"chat_requests_total",
			metric.WithDescription("Total number of chat turns sent to the completion endpoint"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create chat_requests_total: %v", err)
		}

		m.ChatErrorsTotal, err = meter.Int64Counter(
			"chat_errors_total",
			metric.WithDescription("Total number of failed chat turns"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create chat_errors_total: %v", err)
		}

		m.ChatLatencySeconds, err = meter.Float64Histogram(
			"chat_latency_seconds",
			metric.WithDescription("Completion endpoint latency in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create chat_latency_seconds: %v", err)
		}

		m.PinsExtractedTotal, err = meter.Int64Counter(
			"pins_extracted_total",
			metric.WithDescription("Total number of pins extracted from assistant replies"),
			metric.WithUnit("{pin}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create pins_extracted_total: %v", err)
		}

		m.MapSDKLoadsTotal, err = meter.Int64Counter(
			"map_sdk_loads_total",
			metric.WithDescription("Upstream map SDK fetches by result"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create map_sdk_loads_total: %v", err)
		}

		m.ActiveSessionsGauge, err = meter.Int64Gauge(
			"active_sessions_current",
			metric.WithDescription("Current number of live browser sessions"),
			metric.WithUnit("{session}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create active_sessions_current: %v", err)
		}

		m.TemplateRenderDuration, err = meter.Float64Histogram(
			"template_render_duration_seconds",
			metric.WithDescription("Duration of template rendering in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create template_render_duration_seconds: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the instruments, creating them on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
