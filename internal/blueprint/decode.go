package blueprint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeError reports a provider payload that could not be turned into a
// Blueprint: invalid JSON, a non-object document, or a schema violation.
type DecodeError struct {
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding blueprint: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode parses a raw provider payload into a Blueprint. The payload must
// satisfy ResponseSchema; no partially populated Blueprint is ever returned.
func Decode(raw string) (*Blueprint, error) {
	payload := []byte(stripFence(raw))

	var generic any
	if err := json.Unmarshal(payload, &generic); err != nil {
		return nil, &DecodeError{Raw: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := ResponseSchema.Validate(generic); err != nil {
		return nil, &DecodeError{Raw: raw, Err: err}
	}

	var bp Blueprint
	dec := json.NewDecoder(bytes.NewReader(payload))
	if err := dec.Decode(&bp); err != nil {
		return nil, &DecodeError{Raw: raw, Err: err}
	}
	return &bp, nil
}

// stripFence removes a single surrounding markdown code fence, which some
// models emit even when asked for bare JSON.
func stripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.ContainsAny(s[:nl], "{[") {
		s = s[nl+1:]
	}
	return strings.TrimSpace(s)
}
