package jira_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *jira.APIError
		expected string
	}{
		{
			name:     "with status code",
			err:      jira.NewAPIError("server error: 502", 502, nil),
			expected: "server error: 502 (status: 502)",
		},
		{
			name:     "transport failure without status",
			err:      jira.NewAPIError("request failed after 3 attempt(s): dial tcp: refused", 0, nil),
			expected: "request failed after 3 attempt(s): dial tcp: refused",
		},
		{
			name:     "not found carries URL",
			err:      jira.NewNotFoundError("https://jira.example.com/rest/api/2/issue/X-1", nil),
			expected: "resource not found: https://jira.example.com/rest/api/2/issue/X-1 (status: 404)",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, testCase.err.Error())
		})
	}
}

func TestExtractErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     map[string]any
		expected string
	}{
		{
			name:     "nil body",
			body:     nil,
			expected: "unknown error",
		},
		{
			name:     "errorMessages preferred over everything else",
			body:     map[string]any{"errorMessages": []any{"a", "b"}, "message": "ignored"},
			expected: "a, b",
		},
		{
			name:     "empty errorMessages falls through to errors map",
			body:     map[string]any{"errorMessages": []any{}, "errors": map[string]any{"summary": "is required"}},
			expected: "summary: is required",
		},
		{
			name: "errors map keys are sorted",
			body: map[string]any{"errors": map[string]any{
				"summary": "is required",
				"project": "unknown",
			}},
			expected: "project: unknown, summary: is required",
		},
		{
			name:     "message string",
			body:     map[string]any{"message": "boom"},
			expected: "boom",
		},
		{
			name:     "unknown shape stringified",
			body:     map[string]any{"weird": "shape"},
			expected: "map[weird:shape]",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, jira.ExtractErrorMessage(testCase.body))
		})
	}
}

func TestErrorKindHelpers(t *testing.T) {
	t.Parallel()

	authErr := jira.NewAuthenticationError(nil)
	assert.True(t, jira.IsAuthentication(authErr))
	assert.False(t, jira.IsNotFound(authErr))

	wrapped := fmt.Errorf("checking connection: %w", jira.NewPermissionError(nil))
	assert.True(t, jira.IsPermissionDenied(wrapped))

	apiErr, ok := jira.AsAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, jira.KindPermissionDenied, apiErr.Kind)
	assert.Equal(t, 403, apiErr.StatusCode)

	_, ok = jira.AsAPIError(fmt.Errorf("plain error"))
	assert.False(t, ok)

	assert.True(t, jira.IsValidation(jira.NewValidationError("bad field", nil)))
	assert.True(t, jira.IsRateLimited(jira.NewRateLimitError(nil)))
	assert.True(t, jira.IsNotFound(jira.NewNotFoundError("http://x", nil)))
}

func TestErrorKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "authentication", jira.KindAuthentication.String())
	assert.Equal(t, "not_found", jira.KindNotFound.String())
	assert.Equal(t, "permission_denied", jira.KindPermissionDenied.String())
	assert.Equal(t, "validation", jira.KindValidation.String())
	assert.Equal(t, "rate_limited", jira.KindRateLimited.String())
	assert.Equal(t, "generic", jira.KindGeneric.String())
}
