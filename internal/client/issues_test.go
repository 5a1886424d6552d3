package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestIssuesClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/rest/api/2/issue/PROJ-1", request.URL.Path)
		assert.Equal(t, "summary,status", request.URL.Query().Get("fields"))
		assert.Equal(t, "changelog", request.URL.Query().Get("expand"))

		_ = json.NewEncoder(writer).Encode(map[string]any{
			"id":  "10001",
			"key": "PROJ-1",
			"fields": map[string]any{
				"summary": "Fix login page",
				"status":  map[string]any{"name": "In Progress"},
				"customfield_10050": "custom value",
			},
		})
	}))
	defer server.Close()

	issues := NewTestClient(server.URL, jira.CloudModeServer).Issues()

	issue, err := issues.Get(context.Background(), "PROJ-1", []string{"summary", "status"}, "changelog")
	require.NoError(t, err)

	assert.Equal(t, "PROJ-1", issue.Key)
	assert.Equal(t, "Fix login page", issue.Fields.Summary)
	assert.Equal(t, "In Progress", issue.Fields.Status.Name)

	// Custom fields remain reachable through the raw body.
	require.NotNil(t, issue.Raw)
	fields, _ := issue.Raw["fields"].(map[string]any)
	assert.Equal(t, "custom value", fields["customfield_10050"])
}

func TestIssuesClient_Create(t *testing.T) {
	t.Parallel()

	t.Run("server keeps plain description", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			var payload map[string]any

			_ = json.NewDecoder(request.Body).Decode(&payload)
			fields, _ := payload["fields"].(map[string]any)
			assert.Equal(t, "plain text", fields["description"])

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(map[string]string{"id": "10002", "key": "PROJ-2"})
		}))
		defer server.Close()

		issues := NewTestClient(server.URL, jira.CloudModeServer).Issues()

		created, err := issues.Create(context.Background(), map[string]any{
			"project":     map[string]any{"key": "PROJ"},
			"summary":     "New task",
			"description": "plain text",
			"issuetype":   map[string]any{"name": "Task"},
		})
		require.NoError(t, err)
		assert.Equal(t, "PROJ-2", created.Key)
	})

	t.Run("cloud converts description to document", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			var payload map[string]any

			_ = json.NewDecoder(request.Body).Decode(&payload)
			fields, _ := payload["fields"].(map[string]any)
			desc, ok := fields["description"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "doc", desc["type"])

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(map[string]string{"id": "10003", "key": "PROJ-3"})
		}))
		defer server.Close()

		issues := NewTestClient(server.URL, jira.CloudModeCloud).Issues()

		_, err := issues.Create(context.Background(), map[string]any{
			"summary":     "Cloud task",
			"description": "becomes a document",
		})
		require.NoError(t, err)
	})
}

func TestIssuesClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/rest/api/2/issue/PROJ-1", request.URL.Path)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	issues := NewTestClient(server.URL, jira.CloudModeServer).Issues()

	err := issues.Update(context.Background(), "PROJ-1", map[string]any{"summary": "Updated"})
	require.NoError(t, err)
}

func TestIssuesClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "DELETE", request.Method)
		assert.Equal(t, "true", request.URL.Query().Get("deleteSubtasks"))
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	issues := NewTestClient(server.URL, jira.CloudModeServer).Issues()

	err := issues.Delete(context.Background(), "PROJ-1", true)
	require.NoError(t, err)
}

func TestIssuesClient_BatchCreate(t *testing.T) {
	t.Parallel()

	t.Run("empty batch rejected locally", func(t *testing.T) {
		t.Parallel()

		issues := NewTestClient("https://jira.invalid", jira.CloudModeServer).Issues()

		_, err := issues.BatchCreate(context.Background(), nil)
		require.ErrorIs(t, err, ErrEmptyBatch)
	})

	t.Run("bulk endpoint reports partial failures", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/rest/api/2/issue/bulk", request.URL.Path)

			var payload struct {
				IssueUpdates []map[string]any `json:"issueUpdates"`
			}

			_ = json.NewDecoder(request.Body).Decode(&payload)
			assert.Len(t, payload.IssueUpdates, 2)

			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{
				"issues": [{"id": "10010", "key": "PROJ-10"}],
				"errors": [{"failedElementNumber": 1, "elementErrors": {"errorMessages": ["summary missing"]}}]
			}`))
		}))
		defer server.Close()

		issues := NewTestClient(server.URL, jira.CloudModeServer).Issues()

		result, err := issues.BatchCreate(context.Background(), []map[string]any{
			{"summary": "first"},
			{},
		})
		require.NoError(t, err)
		require.Len(t, result.Issues, 1)
		assert.Equal(t, "PROJ-10", result.Issues[0].Key)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, 1, result.Errors[0].FailedElementNumber)
	})
}

func TestIssuesClient_BatchChangelogs(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "changelog", request.URL.Query().Get("expand"))

		if request.URL.Path == "/rest/api/2/issue/PROJ-404" {
			writer.WriteHeader(http.StatusNotFound)

			return
		}

		_, _ = writer.Write([]byte(`{
			"key": "PROJ-1",
			"changelog": {"histories": [
				{"id": "1", "created": "2026-08-01T10:00:00.000+0000",
				 "items": [{"field": "status", "fromString": "To Do", "toString": "Done"}]}
			]}
		}`))
	}))
	defer server.Close()

	issues := NewTestClient(server.URL, jira.CloudModeServer).Issues()

	results, failures := issues.BatchChangelogs(context.Background(), []string{"PROJ-1", "PROJ-404"})

	require.Len(t, results, 1)
	require.Len(t, results["PROJ-1"], 1)
	assert.Equal(t, "status", results["PROJ-1"][0].Items[0].Field)

	require.Len(t, failures, 1)
	assert.True(t, jira.IsNotFound(failures["PROJ-404"]))
}
