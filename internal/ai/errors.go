package ai

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the provider answers with no choices.
var ErrEmptyResponse = errors.New("no choices returned by completion API")

// NetworkError wraps a transport failure while sending the request.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to send request: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is returned for a non-success HTTP status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
}

// ReadError wraps a failure reading a successful response body.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read response body: %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError wraps a response body that does not match the provider envelope.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
