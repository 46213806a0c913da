package openai

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrNotFound indicates the remote resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAuthError indicates an authentication error (missing/invalid API key).
	ErrAuthError = errors.New("authentication error")

	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error communicating with API")

	// ErrInvalidResponse indicates an unexpected API response.
	ErrInvalidResponse = errors.New("invalid response from API")
)

// APIError represents an error body returned by the API.
type APIError struct {
	StatusCode int
	Code       string // Error code from API (e.g., "vector_store_not_found")
	Type       string // Error type (e.g., "invalid_request_error")
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound returns true if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsAuthError returns true if the error indicates an authentication problem.
func IsAuthError(err error) bool {
	if errors.Is(err, ErrAuthError) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}

// IsAPIError returns true for any error that originated from the remote API
// or the transport, as opposed to local validation failures.
func IsAPIError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return true
	}
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAuthError) ||
		errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrNetworkError) ||
		errors.Is(err, ErrInvalidResponse)
}
