package session

import (
	"context"
	"log/slog"
	"time"
)

// DefaultSweepInterval is the default period between sweeps.
const DefaultSweepInterval = time.Minute

// Sweeper periodically evicts idle sessions from a Store.
type Sweeper struct {
	store    *Store
	interval time.Duration
}

// NewSweeper creates a new Sweeper.
func NewSweeper(store *Store, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{store: store, interval: interval}
}

// Start begins the sweep loop. It blocks until ctx is cancelled.
func (w *Sweeper) Start(ctx context.Context) {
	slog.Info("session sweeper started", "interval", w.interval.String())
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("session sweeper stopped")
			return
		case now := <-ticker.C:
			w.sweep(now)
		}
	}
}

func (w *Sweeper) sweep(now time.Time) {
	removed := w.store.Sweep(now)
	if removed > 0 {
		slog.Debug("session sweeper: evicted idle sessions", "removed", removed, "remaining", w.store.Len())
	}
}
