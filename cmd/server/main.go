package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"intake/internal/analysis"
	"intake/internal/platform/config"
	"intake/internal/platform/httpserver"
	"intake/internal/platform/logger"
	platformmetrics "intake/internal/platform/metrics"
	wizardmetrics "intake/internal/wizard/metrics"
	"intake/internal/wizard/service"
	"intake/internal/wizard/session"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	reg := prometheus.DefaultRegisterer
	wm := wizardmetrics.New(reg)
	hm := platformmetrics.New(reg)

	sessions := session.NewInMemoryStore(cfg.SessionTTL)
	svc := service.New(sessions, analysis.NewStub(),
		service.WithLogger(log),
		service.WithMetrics(wm),
	)

	srv := httpserver.New(cfg.Addr, newRouter(cfg, log, svc, hm))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting intake server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return session.RunJanitor(ctx, sessions, cfg.JanitorInterval, log, wm.RecordExpired)
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
