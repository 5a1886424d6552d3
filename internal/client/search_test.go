package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

const searchResultsBody = `{
	"startAt": 0, "maxResults": 50, "total": 1,
	"issues": [{"id": "10001", "key": "PROJ-1",
		"fields": {"summary": "Fix login page", "status": {"name": "To Do"}}}]
}`

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestSearchClient_Search(t *testing.T) {
	t.Parallel()

	t.Run("server uses classic endpoint without implicit fields", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/rest/api/2/search", request.URL.Path)
			assert.Equal(t, "project = PROJ", request.URL.Query().Get("jql"))
			assert.False(t, request.URL.Query().Has("fields"))

			_, _ = writer.Write([]byte(searchResultsBody))
		}))
		defer server.Close()

		search := NewTestClient(server.URL, jira.CloudModeServer).Search()

		results, err := search.Search(context.Background(), "project = PROJ", SearchOptions{})
		require.NoError(t, err)
		assert.Equal(t, 1, results.Total)
		assert.Equal(t, "PROJ-1", results.Issues[0].Key)
	})

	t.Run("server passes caller fields through", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "summary,assignee", request.URL.Query().Get("fields"))
			_, _ = writer.Write([]byte(searchResultsBody))
		}))
		defer server.Close()

		search := NewTestClient(server.URL, jira.CloudModeServer).Search()

		_, err := search.Search(context.Background(), "project = PROJ", SearchOptions{
			Fields: []string{"summary", "assignee"},
		})
		require.NoError(t, err)
	})

	t.Run("cloud uses next-gen endpoint with default fields", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/rest/api/3/search/jql", request.URL.Path)

			fields := request.URL.Query().Get("fields")
			assert.Equal(t, "summary,status,priority,issuetype,assignee,"+
				"reporter,created,updated,description,labels,"+
				"components,project,resolution,resolutiondate", fields)

			_, _ = writer.Write([]byte(searchResultsBody))
		}))
		defer server.Close()

		search := NewTestClient(server.URL, jira.CloudModeCloud).Search()

		_, err := search.Search(context.Background(), "assignee = currentUser()", SearchOptions{})
		require.NoError(t, err)
	})

	t.Run("cloud prefers caller fields over defaults", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "summary", request.URL.Query().Get("fields"))
			_, _ = writer.Write([]byte(searchResultsBody))
		}))
		defer server.Close()

		search := NewTestClient(server.URL, jira.CloudModeCloud).Search()

		_, err := search.Search(context.Background(), "project = PROJ", SearchOptions{
			Fields: []string{"summary"},
		})
		require.NoError(t, err)
	})

	t.Run("page size is clamped", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "100", request.URL.Query().Get("maxResults"))
			_, _ = writer.Write([]byte(searchResultsBody))
		}))
		defer server.Close()

		search := NewTestClient(server.URL, jira.CloudModeServer).Search()

		_, err := search.Search(context.Background(), "project = PROJ", SearchOptions{MaxResults: 5000})
		require.NoError(t, err)
	})
}

func TestSearchClient_ProjectIssues(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "project = PROJ ORDER BY created DESC", request.URL.Query().Get("jql"))
		_, _ = writer.Write([]byte(searchResultsBody))
	}))
	defer server.Close()

	search := NewTestClient(server.URL, jira.CloudModeServer).Search()

	results, err := search.ProjectIssues(context.Background(), "PROJ", SearchOptions{})
	require.NoError(t, err)
	assert.Len(t, results.Issues, 1)
}

func TestSearchClient_EpicIssues(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, `"Epic Link" = PROJ-100 ORDER BY created ASC`, request.URL.Query().Get("jql"))
		_, _ = writer.Write([]byte(searchResultsBody))
	}))
	defer server.Close()

	search := NewTestClient(server.URL, jira.CloudModeServer).Search()

	_, err := search.EpicIssues(context.Background(), "PROJ-100", SearchOptions{})
	require.NoError(t, err)
}
