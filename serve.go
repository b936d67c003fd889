package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"credit-simulator/config"
	httpLayer "credit-simulator/http"
	"credit-simulator/logger"
	"credit-simulator/observability"
	"credit-simulator/repository"
	"credit-simulator/service"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()
			return runServer(cmd.Context(), cfg, log)
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	shutdownTracing := observability.InitTracing(ctx, log, cfg.Tracing, version)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	catalog := service.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		return err
	}

	reportService := service.NewReportService(catalog, log)
	unifiedScoreService := service.NewUnifiedScoreService(catalog, log)
	emiService := service.NewEMIService(log)

	limiter, stopLimiter := buildLimiter(cfg, log)
	defer stopLimiter()

	handler := httpLayer.NewRouter(httpLayer.RouterConfig{
		ReportHandler:       httpLayer.NewReportHandler(reportService, log),
		UnifiedScoreHandler: httpLayer.NewUnifiedScoreHandler(unifiedScoreService, log),
		EMIHandler:          httpLayer.NewEMIHandler(emiService, log),
		Limiter:             limiter,
		Log:                 log,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
		IdleTimeout:  cfg.GetIdleTimeout(),
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("API listening", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		log.Error("error starting server", "error", err)
		return err
	case <-quit:
		log.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("error during server shutdown", "error", err)
		return err
	}

	log.Info("server exited")
	return nil
}

// buildLimiter returns the configured limiter and a cleanup function. A nil
// limiter means rate limiting is off.
func buildLimiter(cfg *config.Config, log *logger.Logger) (httpLayer.Limiter, func()) {
	if !cfg.RateLimit.Enabled {
		return nil, func() {}
	}

	window := cfg.GetRateLimitWindow()
	if cfg.RateLimit.Backend == config.BackendRedis {
		client := repository.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		counter := repository.NewRedisWindowCounter(client, cfg.Redis.Prefix)
		log.Info("rate limiting via redis", "addr", cfg.Redis.Addr, "requests", cfg.RateLimit.Requests, "window", window)
		return httpLayer.NewSharedRateLimiter(counter, cfg.RateLimit.Requests, window, log), func() {
			if err := counter.Close(); err != nil {
				log.Warn("closing redis client", "error", err)
			}
		}
	}

	rl := httpLayer.NewRateLimiter(cfg.RateLimit.Requests, window)
	return rl, rl.Stop
}
