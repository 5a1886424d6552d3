package jira_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

func TestADFDocument(t *testing.T) {
	t.Parallel()

	doc := jira.ADFDocument("hello world")

	assert.Equal(t, "doc", doc["type"])
	assert.Equal(t, 1, doc["version"])

	// A document must survive JSON encoding and come back out as the
	// same text.
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]any

	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "hello world", jira.ADFText(decoded))
}

func TestADFText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "nil", input: nil, expected: ""},
		{name: "plain string passes through", input: "already text", expected: "already text"},
		{
			name: "multiple paragraphs joined with blank line",
			input: map[string]any{
				"type":    "doc",
				"version": 1,
				"content": []any{
					map[string]any{
						"type": "paragraph",
						"content": []any{
							map[string]any{"type": "text", "text": "first"},
							map[string]any{"type": "text", "text": " line"},
						},
					},
					map[string]any{
						"type": "paragraph",
						"content": []any{
							map[string]any{"type": "text", "text": "second"},
						},
					},
				},
			},
			expected: "first line\n\nsecond",
		},
		{
			name: "non-paragraph nodes skipped",
			input: map[string]any{
				"type": "doc",
				"content": []any{
					map[string]any{"type": "codeBlock", "content": []any{
						map[string]any{"type": "text", "text": "code"},
					}},
					map[string]any{"type": "paragraph", "content": []any{
						map[string]any{"type": "text", "text": "prose"},
					}},
				},
			},
			expected: "prose",
		},
		{name: "scalar fallback stringified", input: 42, expected: "42"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, jira.ADFText(testCase.input))
		})
	}
}
