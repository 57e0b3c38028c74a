package gemini

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for remote service responses.
var (
	// ErrUnauthorized indicates an invalid or missing API key.
	ErrUnauthorized = errors.New("authentication failed")

	// ErrForbidden indicates the key lacks permission for the model.
	ErrForbidden = errors.New("permission denied")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrBadRequest indicates the request was malformed.
	ErrBadRequest = errors.New("bad request")

	// ErrServerError indicates a server-side error occurred.
	ErrServerError = errors.New("server error")

	// ErrNoCandidates indicates the response decoded but contained no
	// usable text.
	ErrNoCandidates = errors.New("no commit message in response")
)

// APIError represents a non-success response from the remote service.
// The body is kept as opaque diagnostic text.
type APIError struct {
	// StatusCode is the HTTP status code returned.
	StatusCode int

	// Body is the raw response body.
	Body string

	// Endpoint is the endpoint that was called, without credentials.
	Endpoint string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API error (%d) at %s: %s", e.StatusCode, e.Endpoint, e.Body)
}

// Unwrap returns the underlying sentinel error based on status code.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 400:
		return ErrBadRequest
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 429:
		return ErrRateLimited
	default:
		if e.StatusCode >= 500 {
			return ErrServerError
		}
		return nil
	}
}
