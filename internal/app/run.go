package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/hoopscout/internal/config"
	"github.com/riskibarqy/hoopscout/internal/observability"
	"github.com/riskibarqy/hoopscout/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

// Run starts tracing, profiling, the HTTP API and the optional pprof server,
// and blocks until ctx is cancelled or a server fails.
func Run(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return fmt.Errorf("init uptrace: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("uptrace shutdown failed", "error", err)
		}
	}()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return fmt.Errorf("init pyroscope: %w", err)
	}
	defer func() { _ = stopProfiler() }()

	services := NewServices(cfg, logger)
	if err := services.LoadAnnotations(ctx, cfg.AnnotationsFile, logger); err != nil {
		return err
	}

	srv, err := NewHTTPServer(cfg, services, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	servers := pool.New().WithContext(ctx).WithCancelOnError()
	servers.Go(func(ctx context.Context) error {
		return serveHTTP(ctx, srv, logger)
	})
	servers.Go(func(ctx context.Context) error {
		return observability.RunPprofServer(ctx, cfg, logger)
	})
	return servers.Wait()
}

func serveHTTP(ctx context.Context, srv *http.Server, logger *logging.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}
