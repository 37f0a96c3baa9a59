// Package app assembles the architect service and history store from
// configuration. It is shared by the server and the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dynamicweb/dynamicweb/internal/architect"
	"github.com/dynamicweb/dynamicweb/internal/config"
	"github.com/dynamicweb/dynamicweb/internal/history"
	"github.com/dynamicweb/dynamicweb/internal/provider"
	"github.com/dynamicweb/dynamicweb/internal/provider/canned"
	"github.com/dynamicweb/dynamicweb/internal/provider/gemini"
)

// NewRegistry registers every provider that can be built from cfg. The
// canned provider is always available; Gemini needs an API key.
func NewRegistry(ctx context.Context, cfg *config.Config) (*provider.Registry, error) {
	reg := provider.NewRegistry(canned.New())

	if key := cfg.GeminiKey(); key != "" {
		g, err := gemini.New(ctx, gemini.Config{APIKey: key, BaseURL: cfg.GeminiBaseURL})
		if err != nil {
			return nil, fmt.Errorf("creating gemini provider: %w", err)
		}
		reg.Register(g)
	}
	return reg, nil
}

// NewService builds the architect service for the configured provider.
func NewService(ctx context.Context, cfg *config.Config) (*architect.Service, error) {
	reg, err := NewRegistry(ctx, cfg)
	if err != nil {
		return nil, err
	}
	p, err := reg.Select(cfg.Provider)
	if err != nil {
		return nil, err
	}
	slog.Info("provider selected", "provider", p.Name(), "model", cfg.Model)
	return architect.NewService(p, architect.WithModel(cfg.Model), architect.WithTimeout(cfg.Timeout)), nil
}

// History is the generation store chosen from configuration. DB is nil when
// records are kept in memory.
type History struct {
	Repo history.Repository
	DB   *history.DB
}

// Close releases the database pool, if any.
func (h *History) Close() {
	if h.DB != nil {
		h.DB.Close()
	}
}

// OpenHistory connects to DATABASE_URL and applies migrations, or falls back
// to a bounded in-memory store when no URL is configured.
func OpenHistory(ctx context.Context, cfg *config.Config) (*History, error) {
	if cfg.DatabaseURL == "" {
		slog.Info("history: using in-memory store", "capacity", cfg.HistoryLimit)
		return &History{Repo: history.NewMemoryRepository(cfg.HistoryLimit)}, nil
	}

	db, err := history.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := history.Migrate(db.Pool()); err != nil {
		db.Close()
		return nil, err
	}
	slog.Info("history: using postgres store")
	return &History{Repo: history.NewPostgresRepository(db.Pool()), DB: db}, nil
}
