package openrouter

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when a client is constructed without a key.
var ErrMissingAPIKey = errors.New("openrouter: api key is required")

// ErrInvalidAPIKey is returned when the key does not look like an API key.
// Keys are validated by shape only; a well-formed key can still be rejected
// by the endpoint, which surfaces as an [APIError] with status 401.
var ErrInvalidAPIKey = errors.New(`openrouter: api key must start with "sk-"`)

// ErrNoChoices is returned when the endpoint answers 200 with an empty
// choices array.
var ErrNoChoices = errors.New("openrouter: response contained no choices")

// APIError reports a non-200 response from the completions endpoint. The
// raw response body is preserved so callers can show what the service said.
//
// An APIError is fatal to a workflow run: the content pipeline cannot
// proceed without the completion it asked for.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openrouter: api error %d: %s", e.StatusCode, e.Body)
}

// NetworkError reports a failure to complete the HTTP exchange at all:
// connection refused, DNS failure, or the per-request deadline expiring.
// Timeout distinguishes deadline expiry from other transport failures.
//
// Like [APIError], a NetworkError is fatal to a workflow run.
type NetworkError struct {
	Err     error
	Timeout bool
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return "openrouter: request timed out"
	}
	return fmt.Sprintf("openrouter: network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
