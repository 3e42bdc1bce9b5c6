package hive

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"testing"
)

type timeoutError struct{}

func (e *timeoutError) Error() string   { return "i/o timeout" }
func (e *timeoutError) Timeout() bool   { return true }
func (e *timeoutError) Temporary() bool { return true }

func TestClassifyNetworkError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{
			name: "timeout",
			err:  &url.Error{Op: "Get", URL: "https://example", Err: &net.OpError{Op: "dial", Net: "tcp", Err: &timeoutError{}}},
			want: ErrTypeTimeout,
		},
		{
			name: "connection refused",
			err:  &url.Error{Op: "Post", URL: "https://example", Err: &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}},
			want: ErrTypeConnectionRefused,
		},
		{
			name: "dns",
			err:  &url.Error{Op: "Get", URL: "https://example", Err: &net.DNSError{Err: "no such host", Name: "beekeeper.invalid", IsNotFound: true}},
			want: ErrTypeDNS,
		},
		{
			name: "generic",
			err:  errors.New("connection reset by peer"),
			want: ErrTypeNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyNetworkError(tt.err)
			if got == nil {
				t.Fatal("Expected APIError, got nil")
			}
			if got.Type != tt.want {
				t.Errorf("Type = %v, want %v", got.Type, tt.want)
			}
			if !errors.Is(got, tt.err) {
				t.Error("classified error should wrap the original")
			}
		})
	}
}

func TestClassifyNetworkError_Nil(t *testing.T) {
	if ClassifyNetworkError(nil) != nil {
		t.Error("ClassifyNetworkError(nil) should return nil")
	}
}

func TestStatusError(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorType
	}{
		{http.StatusUnauthorized, ErrTypeAuth},
		{http.StatusForbidden, ErrTypeAuth},
		{http.StatusBadRequest, ErrTypeHTTP},
		{http.StatusInternalServerError, ErrTypeHTTP},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := statusError(tt.status, nil)
			if err.Type != tt.want {
				t.Errorf("Type = %v, want %v", err.Type, tt.want)
			}
			if err.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", err.StatusCode, tt.status)
			}
		})
	}
}

func TestErrorPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("fetching products: %w", NewAuthError(http.StatusUnauthorized, "rejected"))

	if !IsAuthError(wrapped) {
		t.Error("IsAuthError should unwrap fmt.Errorf chains")
	}
	if IsHTTPError(wrapped) || IsNetworkError(wrapped) || IsParseError(wrapped) || IsResponseError(wrapped) {
		t.Error("other predicates should be false for an auth error")
	}
	if IsAuthError(errors.New("plain")) {
		t.Error("plain errors are not auth errors")
	}
}

func TestErrorReason(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string", `{"error":"NOT_AUTHORIZED"}`, "NOT_AUTHORIZED"},
		{"reason object", `{"error":{"reason":"TOKEN_EXPIRED"}}`, "TOKEN_EXPIRED"},
		{"other object", `{"error":{"code":7}}`, `{"code":7}`},
		{"null", `{"error":null}`, "unknown error"},
		{"no error", `{"token":"abc"}`, ""},
		{"array", `[{"error":"inside"}]`, ""},
		{"empty", ``, ""},
		{"not json", `<html>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorReason([]byte(tt.body)); got != tt.want {
				t.Errorf("errorReason(%s) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestTroubleshootingHints(t *testing.T) {
	if hints := TroubleshootingHints(NewAuthError(http.StatusUnauthorized, "x")); len(hints) == 0 {
		t.Error("auth errors should carry hints")
	}
	if hints := TroubleshootingHints(NewHTTPError(http.StatusBadRequest, "x")); hints != nil {
		t.Errorf("4xx errors should carry no hints, got %v", hints)
	}
	if hints := TroubleshootingHints(NewHTTPError(http.StatusServiceUnavailable, "x")); len(hints) == 0 {
		t.Error("5xx errors should carry hints")
	}
	if hints := TroubleshootingHints(errors.New("plain")); hints != nil {
		t.Errorf("plain errors should carry no hints, got %v", hints)
	}
}

func TestErrorTypeString(t *testing.T) {
	if ErrTypeAuth.String() != "Authentication Error" {
		t.Errorf("ErrTypeAuth.String() = %s", ErrTypeAuth.String())
	}
	if ErrorType(99).String() != "ErrorType(99)" {
		t.Errorf("unknown type String() = %s", ErrorType(99).String())
	}
}
