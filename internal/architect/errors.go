package architect

import (
	"errors"
	"fmt"

	"github.com/dynamicweb/dynamicweb/internal/blueprint"
)

// UserMessage is shown to end users for every failed generation, whatever
// the underlying kind.
const UserMessage = "Failed to generate blueprint. Please try again."

// ErrEmptyIdea is returned when the idea is empty after trimming whitespace.
var ErrEmptyIdea = errors.New("idea must not be empty")

// ErrEmptyMessage is returned when a chat message is empty after trimming whitespace.
var ErrEmptyMessage = errors.New("message must not be empty")

// TransportError reports a provider call that did not complete, including
// calls cut short by the generation timeout.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Outcome classifies the result of one generation attempt.
type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeTransport Outcome = "transport"
	OutcomeDecode    Outcome = "decode"
	OutcomeRejected  Outcome = "rejected"
	OutcomeUnknown   Outcome = "unknown"
)

// Classify maps an error returned by Service to its Outcome.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return OutcomeTransport
	}
	var decodeErr *blueprint.DecodeError
	if errors.As(err, &decodeErr) {
		return OutcomeDecode
	}
	if errors.Is(err, ErrEmptyIdea) || errors.Is(err, ErrEmptyMessage) {
		return OutcomeRejected
	}
	return OutcomeUnknown
}
