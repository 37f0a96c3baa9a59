package history

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a generation record is not found.
var ErrNotFound = errors.New("generation not found")

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ListFilter narrows List results. Results are always newest first.
type ListFilter struct {
	Outcome *string
	Limit   int
}

// limit clamps Limit into [1, MaxListLimit], defaulting to DefaultListLimit.
func (f ListFilter) limit() int {
	switch {
	case f.Limit <= 0:
		return DefaultListLimit
	case f.Limit > MaxListLimit:
		return MaxListLimit
	default:
		return f.Limit
	}
}

// Repository stores generation records. Records are append-only.
type Repository interface {
	// Record assigns ID and CreatedAt when unset and stores g.
	Record(ctx context.Context, g *Generation) error
	GetByID(ctx context.Context, id uuid.UUID) (*Generation, error)
	List(ctx context.Context, filter ListFilter) ([]Generation, error)
}
