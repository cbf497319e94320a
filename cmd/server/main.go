package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"symptomcheck/internal/bootstrap"
	"symptomcheck/internal/config"
	"symptomcheck/internal/handlers"
	"symptomcheck/internal/jobs"
	"symptomcheck/internal/logging"
	"symptomcheck/internal/metrics"
	"symptomcheck/internal/server"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Init(cfg.LogFormat, logging.ParseLevel(cfg.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := bootstrap.Load(ctx, cfg)
	if err != nil {
		slog.Error("failed to load artifacts", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	metrics.Init(st.ReferenceSizes())

	deps := server.Deps{
		Catalog: st.Catalog,
		Service: st.Service,
		Advice:  st.Advice,
	}
	if hc, ok := st.Classifier.(handlers.HealthChecker); ok {
		deps.Backend = hc
		go jobs.NewHealthChecker(hc, cfg.HealthCheckInterval, cfg.InferenceTimeout).Start(ctx)
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(deps)

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("server error", "error", err)
			cancel()
			st.Close()
			os.Exit(1)
		}
	case <-quit:
		slog.Info("shutting down server")
		cancel()
		if err := srv.Shutdown(); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}
	slog.Info("server exited")
}
