package pipeline

import "errors"

// Answer is the wire shape of a finished request. Exactly one field is
// populated, the caller branches on field presence.
type Answer struct {
	Response string `json:"response,omitempty"`
	Warning  string `json:"warning,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Query is a validated read-only Cypher query plus its parameters.
// Built per request, never persisted.
type Query struct {
	Text   string
	Params map[string]any
}

// ErrNoMatch marks a valid query that matched zero rows. An expected
// outcome (unknown or misspelled terms), surfaced as a warning upstream.
var ErrNoMatch = errors.New("no matching data")

// TranslationError means the model output could not be turned into a safe
// query and the deterministic fallback was not applicable either.
type TranslationError struct {
	Reason string
}

func (e *TranslationError) Error() string {
	return "translation failed: " + e.Reason
}
