package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-travel-assistant/internal/pkg/config"
	"github.com/FACorreiaa/go-travel-assistant/internal/pkg/logger"
	"github.com/FACorreiaa/go-travel-assistant/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.ParseLevel(cfg.LogLevel), zap.String("service", cfg.Observability.ServiceName)); err != nil {
		return err
	}
	defer logger.Log.Sync()
	lg := logger.Log

	ctx := context.Background()
	otelShutdown, err := server.InitObservability(ctx, cfg.Observability, lg)
	if err != nil {
		return err
	}

	router, err := server.SetupRouter(ctx, cfg, lg)
	if err != nil {
		return err
	}
	if err := server.SetupAssets(router); err != nil {
		lg.Error("Failed to setup assets", zap.Error(err))
		return err
	}

	srv := server.New(cfg, lg)
	srv.SetRouter(router)

	// Not exposed publicly
	server.StartPprofServer(cfg.Observability.PprofAddr, lg)

	httpServer := srv.HTTPServer()

	done := make(chan struct{})
	go server.GracefulShutdown(httpServer, lg, done, otelShutdown)

	lg.Info("Server starting",
		zap.String("port", cfg.ServerPort),
		zap.String("model", cfg.Gemini.Model),
		zap.Bool("maps_enabled", cfg.MapsEnabled()))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Error("Server error", zap.Error(err))
		return err
	}

	<-done
	lg.Info("Graceful shutdown complete")
	return nil
}
