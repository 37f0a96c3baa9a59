package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dynamicweb/dynamicweb/internal/architect"
	"github.com/dynamicweb/dynamicweb/internal/blueprint"
	"github.com/dynamicweb/dynamicweb/internal/history"
)

// ErrPending is returned when a generation is requested while another one
// for the same session is still in flight. Nothing is sent and no state changes.
var ErrPending = errors.New("a blueprint request is already pending")

// Generator produces blueprints. *architect.Service satisfies it.
type Generator interface {
	Generate(ctx context.Context, idea string) (*blueprint.Blueprint, error)
	Model() string
	ProviderName() string
}

// Recorder receives one record per completed generation.
type Recorder interface {
	Record(ctx context.Context, g *history.Generation) error
}

// State is a point-in-time copy of a session for rendering. At most one of
// Blueprint and Error is set.
type State struct {
	ID        string
	Mode      Mode
	Idea      string
	Pending   bool
	Blueprint *blueprint.Blueprint
	Error     string
}

// Session is the per-visitor UI controller: it owns the view mode and the
// architect state, and enforces a single in-flight generation.
type Session struct {
	id uuid.UUID

	mu        sync.Mutex
	mode      Mode
	idea      string
	pending   bool
	blueprint *blueprint.Blueprint
	errMsg    string
	lastSeen  time.Time
}

func newSession(id uuid.UUID, now time.Time) *Session {
	return &Session{id: id, mode: ModeLearn, lastSeen: now}
}

// ID returns the session identifier. It doubles as the cookie value, so it
// must never leave the process except in that cookie.
func (s *Session) ID() uuid.UUID { return s.id }

// Ref returns an opaque handle for the session, safe to log and to store in
// history. It is a truncated SHA-256 of the ID.
func (s *Session) Ref() string {
	sum := sha256.Sum256([]byte(s.id.String()))
	return hex.EncodeToString(sum[:8])
}

// SetMode switches the active view.
func (s *Session) SetMode(m Mode) {
	s.mu.Lock()
	s.mode = m
	s.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		ID:        s.id.String(),
		Mode:      s.mode,
		Idea:      s.idea,
		Pending:   s.pending,
		Blueprint: s.blueprint,
		Error:     s.errMsg,
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen), s.pending
}

// Generate runs one generation for idea and stores the outcome. Empty ideas
// return architect.ErrEmptyIdea and a pending session returns ErrPending;
// neither calls gen nor changes state. Any other failure is stored as
// architect.UserMessage and returned to the caller for diagnostics. On
// success the stored blueprint is returned.
func (s *Session) Generate(ctx context.Context, gen Generator, rec Recorder, idea string) (*blueprint.Blueprint, error) {
	if strings.TrimSpace(idea) == "" {
		return nil, architect.ErrEmptyIdea
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return nil, ErrPending
	}
	s.pending = true
	s.idea = idea
	s.errMsg = ""
	s.mu.Unlock()

	start := time.Now()
	bp, err := gen.Generate(ctx, idea)
	latency := time.Since(start)
	outcome := architect.Classify(err)

	s.mu.Lock()
	s.pending = false
	if err != nil {
		s.blueprint = nil
		s.errMsg = architect.UserMessage
	} else {
		s.blueprint = bp
		s.errMsg = ""
	}
	s.mu.Unlock()

	if err != nil {
		slog.Error("blueprint generation failed",
			"session", s.Ref(),
			"outcome", string(outcome),
			"latencyMs", latency.Milliseconds(),
			"error", err,
		)
	} else {
		slog.Info("blueprint generated",
			"session", s.Ref(),
			"title", bp.Title,
			"latencyMs", latency.Milliseconds(),
		)
	}

	if rec != nil {
		s.record(ctx, gen, rec, idea, bp, err, outcome, latency)
	}
	if err != nil {
		return nil, err
	}
	return bp, nil
}

func (s *Session) record(ctx context.Context, gen Generator, rec Recorder, idea string, bp *blueprint.Blueprint, genErr error, outcome architect.Outcome, latency time.Duration) {
	g := &history.Generation{
		SessionID: s.Ref(),
		Idea:      idea,
		Model:     gen.Model(),
		Provider:  gen.ProviderName(),
		Outcome:   string(outcome),
		Blueprint: bp,
		LatencyMS: latency.Milliseconds(),
	}
	if genErr != nil {
		g.ErrorMessage = genErr.Error()
	}

	// The request context may already be cancelled by a client disconnect.
	recCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := rec.Record(recCtx, g); err != nil {
		slog.Warn("failed to record generation", "session", s.Ref(), "error", err)
	}
}
