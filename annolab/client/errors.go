package client

import (
	"fmt"
	"strings"
)

// APIError is a GraphQL-level error returned in the response errors
// array; the HTTP exchange itself succeeded.
type APIError struct {
	Messages []string
}

func (e *APIError) Error() string {
	return "api error: " + strings.Join(e.Messages, "; ")
}

// AuthenticationError reports a rejected or missing API key.
type AuthenticationError struct {
	StatusCode int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed (status %d)", e.StatusCode)
}

// ServerError reports a 5xx response from the service.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("internal server error (status %d)", e.StatusCode)
}

// HTTPError reports any other non-success HTTP status.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}
