package hive

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error (connection reset, unreachable host, etc.)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeAuth indicates the API rejected the credentials or session token
	ErrTypeAuth
	// ErrTypeHTTP indicates an HTTP-level error (non-2xx status code)
	ErrTypeHTTP
	// ErrTypeParse indicates a parsing error (malformed JSON, unexpected shape)
	ErrTypeParse
	// ErrTypeAPI indicates a JSON response carrying an "error" field
	ErrTypeAPI
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the endpoint refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeAuth:
		return "Authentication Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeAPI:
		return "API Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// APIError represents an error that occurred while talking to the Hive API
type APIError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *APIError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a more specific error type
func ClassifyNetworkError(err error) *APIError {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) {
		return &APIError{Type: ErrTypeTimeout, Message: "request timed out", Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &APIError{
			Type:    ErrTypeDNS,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &APIError{Type: ErrTypeConnectionRefused, Message: "connection refused", Err: err}
	}

	return &APIError{Type: ErrTypeNetwork, Message: "network error occurred", Err: err}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(message string, err error) *APIError {
	classified := ClassifyNetworkError(err)
	if classified == nil {
		return &APIError{Type: ErrTypeNetwork, Message: message}
	}
	classified.Message = message
	return classified
}

// NewAuthError creates an authentication error
func NewAuthError(statusCode int, message string) *APIError {
	return &APIError{Type: ErrTypeAuth, Message: message, StatusCode: statusCode}
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, message string) *APIError {
	return &APIError{Type: ErrTypeHTTP, Message: message, StatusCode: statusCode}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *APIError {
	return &APIError{Type: ErrTypeParse, Message: message, Err: err}
}

// NewResponseError creates an error for a response body carrying an "error" field
func NewResponseError(statusCode int, reason string) *APIError {
	return &APIError{Type: ErrTypeAPI, Message: reason, StatusCode: statusCode}
}

// statusError maps a non-2xx status code to an error
func statusError(statusCode int, body []byte) *APIError {
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		return NewAuthError(statusCode, fmt.Sprintf("request rejected with status %d", statusCode))
	}
	msg := fmt.Sprintf("unexpected status code: %d", statusCode)
	if reason := errorReason(body); reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, reason)
	}
	return NewHTTPError(statusCode, msg)
}

func typeOf(err error) (ErrorType, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type, true
	}
	return 0, false
}

// IsNetworkError checks if an error is a network error (including timeout, connection refused, DNS)
func IsNetworkError(err error) bool {
	t, ok := typeOf(err)
	return ok && (t == ErrTypeNetwork || t == ErrTypeTimeout || t == ErrTypeConnectionRefused || t == ErrTypeDNS)
}

// IsAuthError checks if an error is an authentication error
func IsAuthError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeAuth
}

// IsHTTPError checks if an error is an HTTP error
func IsHTTPError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeHTTP
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeParse
}

// IsResponseError checks if an error came from an "error" field in a response body
func IsResponseError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeAPI
}

// TroubleshootingHints returns user-facing advice for an error.
// Returns nil when there is nothing useful to add.
func TroubleshootingHints(err error) []string {
	t, ok := typeOf(err)
	if !ok {
		return nil
	}

	switch t {
	case ErrTypeTimeout:
		return []string{
			"The Hive API did not respond in time",
			"Check your internet connection and try again",
		}
	case ErrTypeConnectionRefused, ErrTypeNetwork:
		return []string{
			"Check your internet connection",
			"If HHEAT_ENDPOINT or endpoint is set, verify the URL",
		}
	case ErrTypeDNS:
		return []string{
			"Could not resolve the API hostname",
			"Check your DNS settings",
		}
	case ErrTypeAuth, ErrTypeAPI:
		return []string{
			"Check username and password in ~/.hheat/conf.toml",
			"Logins are rate limited; wait a few minutes if you logged in repeatedly",
		}
	case ErrTypeHTTP:
		var apiErr *APIError
		errors.As(err, &apiErr)
		if apiErr.StatusCode >= 500 {
			return []string{"The Hive service returned a server error; try again later"}
		}
		return nil
	case ErrTypeParse:
		return []string{"The API response had an unexpected shape; the API may have changed"}
	default:
		return nil
	}
}
