package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput   = errors.New("invalid trip request")
	ErrMissingAPIKey  = errors.New("api key is missing")
	ErrModelTransport = errors.New("model call failed")
	ErrModelProvider  = errors.New("model provider error")
	ErrNoItinerary    = errors.New("no itinerary generated yet")
)

// MaxSnippetLen bounds the amount of raw model output carried inside a
// MalformedResponseError. Model replies can be arbitrarily large; error
// payloads must not be.
const MaxSnippetLen = 500

// MalformedResponseError is returned when the model reply cannot be parsed
// as JSON at all. Snippet holds at most MaxSnippetLen characters of the
// cleaned reply for debugging.
type MalformedResponseError struct {
	Snippet string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %s", e.Snippet)
}

// SchemaMismatchError is returned when the reply parses as JSON but a
// required top-level field is absent or has the wrong kind.
type SchemaMismatchError struct {
	Field string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("model response missing or invalid field: %s", e.Field)
}

// BoundSnippet truncates s to MaxSnippetLen characters.
func BoundSnippet(s string) string {
	if len(s) > MaxSnippetLen {
		return s[:MaxSnippetLen]
	}
	return s
}
