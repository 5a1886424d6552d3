package jira

import (
	"errors"
	"fmt"
	"sort"
)

// ErrorKind tags an APIError with its classification. Every failed call
// surfaces exactly one of these; callers can switch exhaustively instead
// of matching on status codes.
type ErrorKind int

const (
	// KindGeneric covers unexpected status codes, exhausted 5xx retries
	// and transport-level failures.
	KindGeneric ErrorKind = iota

	// KindAuthentication is a 401.
	KindAuthentication

	// KindNotFound is a 404.
	KindNotFound

	// KindPermissionDenied is a 403.
	KindPermissionDenied

	// KindValidation is a 400.
	KindValidation

	// KindRateLimited is a 429 that outlived the retry budget.
	KindRateLimited
)

// String returns the kind name for logging.
func (k ErrorKind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindPermissionDenied:
		return "permission_denied"
	case KindValidation:
		return "validation"
	case KindRateLimited:
		return "rate_limited"
	case KindGeneric:
		return "generic"
	default:
		return "generic"
	}
}

// APIError is the single error type produced by the request pipeline.
// StatusCode is zero for transport-level failures; Body carries the
// best-effort parsed JSON error body and may be nil.
type APIError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Body       map[string]any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
	}

	return e.Message
}

// NewAPIError builds a Generic error.
func NewAPIError(message string, statusCode int, body map[string]any) *APIError {
	return &APIError{Kind: KindGeneric, Message: message, StatusCode: statusCode, Body: body}
}

// NewAuthenticationError builds an Authentication error.
func NewAuthenticationError(body map[string]any) *APIError {
	return &APIError{
		Kind:       KindAuthentication,
		Message:    "authentication failed, check credentials",
		StatusCode: 401,
		Body:       body,
	}
}

// NewPermissionError builds a PermissionDenied error.
func NewPermissionError(body map[string]any) *APIError {
	return &APIError{
		Kind:       KindPermissionDenied,
		Message:    "permission denied, check user permissions",
		StatusCode: 403,
		Body:       body,
	}
}

// NewNotFoundError builds a NotFound error carrying the resolved URL.
func NewNotFoundError(url string, body map[string]any) *APIError {
	return &APIError{
		Kind:       KindNotFound,
		Message:    "resource not found: " + url,
		StatusCode: 404,
		Body:       body,
	}
}

// NewValidationError builds a Validation error from the extracted
// message.
func NewValidationError(message string, body map[string]any) *APIError {
	return &APIError{
		Kind:       KindValidation,
		Message:    "validation error: " + message,
		StatusCode: 400,
		Body:       body,
	}
}

// NewRateLimitError builds a RateLimited error.
func NewRateLimitError(body map[string]any) *APIError {
	return &APIError{
		Kind:       KindRateLimited,
		Message:    "rate limit exceeded",
		StatusCode: 429,
		Body:       body,
	}
}

// ExtractErrorMessage pulls a human-readable message out of a Jira error
// body. Jira uses several shapes; they are tried in a fixed order:
// the errorMessages list, the errors field map, a plain message string,
// and finally the stringified body.
func ExtractErrorMessage(body map[string]any) string {
	if len(body) == 0 {
		return "unknown error"
	}

	if msgs, ok := body["errorMessages"].([]any); ok && len(msgs) > 0 {
		out := ""

		for i, m := range msgs {
			if i > 0 {
				out += ", "
			}

			out += fmt.Sprint(m)
		}

		return out
	}

	if errs, ok := body["errors"].(map[string]any); ok && len(errs) > 0 {
		out := ""

		for _, k := range sortedKeys(errs) {
			if out != "" {
				out += ", "
			}

			out += fmt.Sprintf("%s: %v", k, errs[k])
		}

		return out
	}

	if msg, ok := body["message"].(string); ok {
		return msg
	}

	return fmt.Sprint(body)
}

// isKind reports whether err is an *APIError of the given kind.
func isKind(err error, kind ErrorKind) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.Kind == kind
}

// AsAPIError unwraps err to an *APIError if possible.
func AsAPIError(err error) (*APIError, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// IsAuthentication checks for an authentication failure.
func IsAuthentication(err error) bool { return isKind(err, KindAuthentication) }

// IsNotFound checks for a missing resource.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsPermissionDenied checks for a permission failure.
func IsPermissionDenied(err error) bool { return isKind(err, KindPermissionDenied) }

// IsValidation checks for a request validation failure.
func IsValidation(err error) bool { return isKind(err, KindValidation) }

// IsRateLimited checks for an exhausted rate-limit retry budget.
func IsRateLimited(err error) bool { return isKind(err, KindRateLimited) }
