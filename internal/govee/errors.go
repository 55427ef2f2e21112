package govee

import (
	"errors"
	"fmt"
	"net/http"
)

// APIKind categorizes API client errors.
type APIKind int

const (
	// KindAuth indicates a missing or rejected API key.
	KindAuth APIKind = iota
	// KindRateLimit indicates the account hit the vendor rate limit.
	KindRateLimit
	// KindHTTP indicates any other non-success HTTP status.
	KindHTTP
	// KindNetwork indicates a transport failure (timeout, refused
	// connection, DNS).
	KindNetwork
	// KindParse indicates an unreadable response body.
	KindParse
)

func (k APIKind) String() string {
	switch k {
	case KindAuth:
		return "auth error"
	case KindRateLimit:
		return "rate limited"
	case KindHTTP:
		return "http error"
	case KindNetwork:
		return "network error"
	case KindParse:
		return "parse error"
	default:
		return fmt.Sprintf("APIKind(%d)", k)
	}
}

// APIError is a kind-tagged error from the cloud API client.
type APIError struct {
	Kind       APIKind
	Message    string
	StatusCode int   // HTTP status, when applicable
	Err        error // underlying error, when any
	Retryable  bool  // whether a later attempt could plausibly succeed
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAuthError reports a missing or rejected API key.
func NewAuthError(message string) *APIError {
	return &APIError{Kind: KindAuth, Message: message, StatusCode: http.StatusUnauthorized}
}

// NewRateLimitError reports a vendor rate-limit rejection.
func NewRateLimitError(message string) *APIError {
	return &APIError{Kind: KindRateLimit, Message: message, StatusCode: http.StatusTooManyRequests, Retryable: true}
}

// NewHTTPError reports a non-success HTTP status. Server-side statuses
// are considered retryable.
func NewHTTPError(statusCode int, message string) *APIError {
	return &APIError{Kind: KindHTTP, Message: message, StatusCode: statusCode, Retryable: statusCode >= 500}
}

// NewNetworkError reports a transport failure.
func NewNetworkError(message string, err error) *APIError {
	return &APIError{Kind: KindNetwork, Message: message, Err: err, Retryable: true}
}

// NewParseError reports an unreadable response.
func NewParseError(message string, err error) *APIError {
	return &APIError{Kind: KindParse, Message: message, Err: err}
}

func kindOf(err error) (APIKind, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// IsAuthError reports whether err is an authentication failure.
func IsAuthError(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindAuth
}

// IsRateLimited reports whether err is a rate-limit rejection.
func IsRateLimited(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindRateLimit
}

// IsRetryable reports whether a later identical request could
// plausibly succeed.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable
	}
	return false
}
