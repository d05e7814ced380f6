package mappane

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
	"github.com/FACorreiaa/go-travel-assistant/internal/observability/metrics"
)

const maxScriptBytes = 8 << 20

// LoadState tracks the vendor script through its one and only load.
type LoadState int

const (
	StateNotLoaded LoadState = iota
	StateLoading
	StateReady
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "not-loaded"
	}
}

// Script is the fetched vendor SDK.
type Script struct {
	Body        []byte
	ContentType string
	FetchedAt   time.Time
}

// Loader fetches the map SDK at most once per process. Concurrent callers
// share the in-flight request; a failure is kept and returned to every later caller.
type Loader struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
	group  singleflight.Group

	mu      sync.Mutex
	state   LoadState
	script  Script
	err     error
	fetches int
}

func NewLoader(cfg Config, client *http.Client, logger *zap.Logger) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{cfg: cfg, client: client, logger: logger}
}

func (l *Loader) Enabled() bool {
	return l.cfg.Enabled()
}

func (l *Loader) State() LoadState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Fetches reports how many upstream requests were issued.
func (l *Loader) Fetches() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fetches
}

// Load returns the SDK, fetching it on first use. ctx only bounds the wait;
// the upstream request is never cancelled on behalf of a single caller.
func (l *Loader) Load(ctx context.Context) (Script, error) {
	if !l.Enabled() {
		return Script{}, fmt.Errorf("%w: no api key configured", models.ErrMapSDKUnavailable)
	}

	l.mu.Lock()
	switch l.state {
	case StateReady:
		s := l.script
		l.mu.Unlock()
		return s, nil
	case StateFailed:
		err := l.err
		l.mu.Unlock()
		return Script{}, err
	case StateNotLoaded:
		l.state = StateLoading
	}
	l.mu.Unlock()

	ch := l.group.DoChan("sdk", func() (interface{}, error) {
		return l.loadOnce(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return Script{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Script{}, res.Err
		}
		return res.Val.(Script), nil
	}
}

func (l *Loader) loadOnce(ctx context.Context) (Script, error) {
	l.mu.Lock()
	switch l.state {
	case StateReady:
		s := l.script
		l.mu.Unlock()
		return s, nil
	case StateFailed:
		err := l.err
		l.mu.Unlock()
		return Script{}, err
	}
	l.fetches++
	l.mu.Unlock()

	script, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.state = StateFailed
		l.err = fmt.Errorf("%w: %v", models.ErrMapSDKUnavailable, err)
		l.logger.Error("Map SDK load failed", zap.Error(err))
		return Script{}, l.err
	}
	l.state = StateReady
	l.script = script
	l.logger.Info("Map SDK loaded", zap.Int("bytes", len(script.Body)))
	return script, nil
}

func (l *Loader) fetch(ctx context.Context) (Script, error) {
	ctx, span := otel.Tracer("MapPane").Start(ctx, "LoadMapSDK")
	defer span.End()

	result := "error"
	defer func() {
		metrics.Get().MapSDKLoadsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	}()

	sdkURL, err := l.cfg.SDKURL()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid sdk url")
		return Script{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sdkURL, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to build request")
		return Script{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return Script{}, fmt.Errorf("failed to fetch map sdk: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("map sdk responded with status %d", resp.StatusCode)
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return Script{}, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxScriptBytes))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read body")
		return Script{}, fmt.Errorf("failed to read map sdk: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "text/javascript; charset=utf-8"
	}

	result = "ok"
	span.SetAttributes(attribute.Int("sdk.bytes", len(body)))
	span.SetStatus(codes.Ok, "map sdk loaded")
	return Script{Body: body, ContentType: contentType, FetchedAt: time.Now().UTC()}, nil
}
