package provider

import (
	"context"

	"github.com/dynamicweb/dynamicweb/internal/blueprint"
)

// MIMETypeJSON asks a provider to emit a JSON document.
const MIMETypeJSON = "application/json"

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one prior turn of a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request is a single text-generation exchange.
type Request struct {
	Model             string
	Prompt            string
	SystemInstruction string
	// ResponseMIMEType and Schema are set together for structured output.
	ResponseMIMEType string
	Schema           *blueprint.Schema
	History          []Message
}

// Provider abstracts text-generation backends (Gemini, canned, ...).
type Provider interface {
	// Generate performs one request/response exchange and returns the raw
	// text payload. Any error means the exchange itself did not complete.
	Generate(ctx context.Context, req Request) (string, error)

	// Name returns the registry name of the provider.
	Name() string
}
