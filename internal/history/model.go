package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/dynamicweb/dynamicweb/internal/blueprint"
)

// Generation is one recorded blueprint generation attempt. Blueprint is set
// only when Outcome is "ok"; ErrorMessage carries the internal cause otherwise.
type Generation struct {
	ID           uuid.UUID
	// SessionID is an opaque session reference, never the session cookie.
	SessionID    string
	Idea         string
	Model        string
	Provider     string
	Outcome      string
	ErrorMessage string
	Blueprint    *blueprint.Blueprint
	LatencyMS    int64
	CreatedAt    time.Time
}
