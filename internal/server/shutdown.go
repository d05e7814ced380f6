package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// GracefulShutdown waits for SIGINT or SIGTERM, drains srv and then runs
// cleanup in order. done is signalled once everything has stopped.
func GracefulShutdown(srv *http.Server, logger *zap.Logger, done chan<- struct{}, cleanup ...func(context.Context) error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// In-flight chat turns may still be waiting on the model.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	for _, fn := range cleanup {
		if err := fn(shutdownCtx); err != nil {
			logger.Error("Cleanup failed during shutdown", zap.Error(err))
		}
	}

	logger.Info("Server exiting")
	close(done)
}
