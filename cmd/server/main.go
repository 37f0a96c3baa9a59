package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"
	"golang.org/x/sync/errgroup"

	specpkg "github.com/dynamicweb/dynamicweb/api"
	"github.com/dynamicweb/dynamicweb/internal/api"
	"github.com/dynamicweb/dynamicweb/internal/api/handler"
	"github.com/dynamicweb/dynamicweb/internal/api/middleware"
	"github.com/dynamicweb/dynamicweb/internal/app"
	"github.com/dynamicweb/dynamicweb/internal/config"
	"github.com/dynamicweb/dynamicweb/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped gracefully")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, err := app.NewService(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing provider: %w", err)
	}

	hist, err := app.OpenHistory(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing history: %w", err)
	}
	defer hist.Close()

	var pinger handler.DBPinger
	if hist.DB != nil {
		pinger = hist.DB
	}

	sessions := session.NewStore(cfg.SessionTTL)
	sweeper := session.NewSweeper(sessions, cfg.SweepInterval)

	router := api.NewRouter(api.RouterDeps{
		Version:     cfg.Version,
		Architect:   svc,
		Sessions:    sessions,
		History:     hist.Repo,
		DBPinger:    pinger,
		Limiter:     middleware.PerMinute(cfg.RatePerMinute, cfg.RateBurst),
		OpenAPISpec: specpkg.OpenAPISpec,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Generation can take up to the provider timeout.
		WriteTimeout: cfg.Timeout + 15*time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting DynamicWeb server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		sweeper.Start(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(h))
}
