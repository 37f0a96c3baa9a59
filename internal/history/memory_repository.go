package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository keeps the most recent generations in process memory.
// It is used when no database is configured.
type MemoryRepository struct {
	mu       sync.RWMutex
	capacity int
	records  []Generation
}

// NewMemoryRepository creates a repository retaining at most capacity records.
func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity <= 0 {
		capacity = 500
	}
	return &MemoryRepository{capacity: capacity}
}

// Record stores g, evicting the oldest record once capacity is reached.
func (r *MemoryRepository) Record(_ context.Context, g *Generation) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.records) >= r.capacity {
		r.records = append(r.records[:0], r.records[1:]...)
	}
	r.records = append(r.records, *g)
	return nil
}

// GetByID returns the record with the given id.
func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Generation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if r.records[i].ID == id {
			g := r.records[i]
			return &g, nil
		}
	}
	return nil, ErrNotFound
}

// List returns records newest first.
func (r *MemoryRepository) List(_ context.Context, filter ListFilter) ([]Generation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.limit()
	out := make([]Generation, 0, min(limit, len(r.records)))
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		g := r.records[i]
		if filter.Outcome != nil && g.Outcome != *filter.Outcome {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}
