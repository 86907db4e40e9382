package trello

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents an error response from the Trello API.
type APIError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Message    string `json:"message"     yaml:"message"`
	URL        string `json:"url"         yaml:"url"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("trello: %s (status: %d, url: %s)", e.Message, e.StatusCode, e.URL)
	}

	return fmt.Sprintf("trello: %s (status: %d)", e.Message, e.StatusCode)
}

// Static errors for err113 compliance. Malformed chaining and dispatch calls
// wrap one of the invalid-argument errors below.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrKeyRequired       = errors.New("application key is required")
	ErrBaseURLRequired   = errors.New("base URL is required")
	ErrEmptyResourceName = errors.New("resource name must not be empty")
	ErrEmptySegment      = errors.New("path segment must not be empty")
	ErrUnsupportedVerb   = errors.New("unsupported HTTP verb")
)

// ParseAPIError builds an APIError from an error response. Trello returns
// either a plain-text body or a JSON object carrying "message" or "error".
func ParseAPIError(statusCode int, body []byte, url string) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		URL:        url,
		Message:    strings.TrimSpace(string(body)),
	}

	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			apiErr.Message = parsed.Message
		} else if parsed.Error != "" {
			apiErr.Message = parsed.Error
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(statusCode)
	}

	return apiErr
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return statusIs(err, http.StatusUnauthorized)
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	return statusIs(err, http.StatusTooManyRequests)
}

// IsInvalidArgument checks if the error stems from a malformed chaining or
// dispatch call rather than from the API.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrEmptyResourceName) ||
		errors.Is(err, ErrEmptySegment) ||
		errors.Is(err, ErrUnsupportedVerb)
}

func statusIs(err error, code int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}

	return false
}
