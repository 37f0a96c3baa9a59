package architect

import (
	"context"
	"strings"
	"time"

	"github.com/dynamicweb/dynamicweb/internal/blueprint"
	"github.com/dynamicweb/dynamicweb/internal/provider"
)

const (
	// DefaultModel is the generation model used when none is configured.
	DefaultModel = "gemini-3-flash-preview"
	// DefaultTimeout bounds a single provider call.
	DefaultTimeout = 60 * time.Second
)

// Service turns project ideas into blueprints through a text-generation
// provider. It holds no per-request state and is safe for concurrent use.
type Service struct {
	provider provider.Provider
	model    string
	timeout  time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithModel sets the model identifier sent to the provider.
func WithModel(model string) Option {
	return func(s *Service) {
		if model != "" {
			s.model = model
		}
	}
}

// WithTimeout bounds each provider call. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewService creates a Service that calls p.
func NewService(p provider.Provider, opts ...Option) *Service {
	s := &Service{
		provider: p,
		model:    DefaultModel,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Model returns the configured model identifier.
func (s *Service) Model() string { return s.model }

// ProviderName returns the name of the backing provider.
func (s *Service) ProviderName() string { return s.provider.Name() }

// Generate produces a blueprint for idea with exactly one provider call.
// Empty ideas are rejected with ErrEmptyIdea before any call is made.
// Failures are either *TransportError or *blueprint.DecodeError.
func (s *Service) Generate(ctx context.Context, idea string) (*blueprint.Blueprint, error) {
	if strings.TrimSpace(idea) == "" {
		return nil, ErrEmptyIdea
	}

	raw, err := s.call(ctx, provider.Request{
		Model:             s.model,
		Prompt:            blueprint.ComposePrompt(idea),
		SystemInstruction: blueprint.SystemInstruction,
		ResponseMIMEType:  provider.MIMETypeJSON,
		Schema:            blueprint.ResponseSchema,
	})
	if err != nil {
		return nil, err
	}

	return blueprint.Decode(raw)
}

// Chat sends a free-text message to the consultant persona. Prior turns in
// history, if any, are forwarded ahead of the message.
func (s *Service) Chat(ctx context.Context, message string, history []provider.Message) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	return s.call(ctx, provider.Request{
		Model:             s.model,
		Prompt:            message,
		SystemInstruction: blueprint.ChatInstruction,
		History:           history,
	})
}

func (s *Service) call(ctx context.Context, req provider.Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", &TransportError{Provider: s.provider.Name(), Err: err}
	}
	return raw, nil
}
