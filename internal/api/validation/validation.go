package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dynamicweb/dynamicweb/internal/architect"
	"github.com/dynamicweb/dynamicweb/internal/provider"
)

// MaxInputLength is the longest idea or chat message accepted, in characters.
const MaxInputLength = 4000

// MaxHistoryTurns bounds the chat history forwarded with a message.
const MaxHistoryTurns = 50

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateIdea validates the idea submitted for blueprint generation.
func ValidateIdea(idea string) []FieldError {
	return validateText("idea", idea)
}

// ChatRequest mirrors the fields needed for chat validation.
type ChatRequest struct {
	Message string
	History []provider.Message
}

// ValidateChatRequest validates a chat message and its history.
func ValidateChatRequest(req ChatRequest) []FieldError {
	errs := validateText("message", req.Message)

	if len(req.History) > MaxHistoryTurns {
		errs = append(errs, FieldError{Field: "history", Message: fmt.Sprintf("history must have at most %d turns", MaxHistoryTurns)})
		return errs
	}
	for i, m := range req.History {
		field := fmt.Sprintf("history[%d]", i)
		if m.Role != provider.RoleUser && m.Role != provider.RoleAssistant {
			errs = append(errs, FieldError{Field: field + ".role", Message: "role must be one of: user, assistant"})
		}
		if strings.TrimSpace(m.Content) == "" {
			errs = append(errs, FieldError{Field: field + ".content", Message: "content is required"})
		}
	}
	return errs
}

// ValidateOutcome checks a history outcome filter.
func ValidateOutcome(outcome string) []FieldError {
	switch architect.Outcome(outcome) {
	case architect.OutcomeOK, architect.OutcomeTransport, architect.OutcomeDecode,
		architect.OutcomeRejected, architect.OutcomeUnknown:
		return nil
	}
	return []FieldError{{Field: "outcome", Message: "outcome must be one of: ok, transport, decode, rejected, unknown"}}
}

func validateText(field, value string) []FieldError {
	if strings.TrimSpace(value) == "" {
		return []FieldError{{Field: field, Message: field + " is required"}}
	}
	if utf8.RuneCountInString(value) > MaxInputLength {
		return []FieldError{{Field: field, Message: fmt.Sprintf("%s must be at most %d characters", field, MaxInputLength)}}
	}
	return nil
}
