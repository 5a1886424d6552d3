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

const transitionsBody = `{
	"transitions": [
		{"id": "11", "name": "To Do", "to": {"name": "To Do"}},
		{"id": "21", "name": "In Progress", "to": {"name": "In Progress"}},
		{"id": "31", "name": "Done", "to": {"name": "Done"}}
	]
}`

func TestTransitionsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/rest/api/2/issue/PROJ-1/transitions", request.URL.Path)
		_, _ = writer.Write([]byte(transitionsBody))
	}))
	defer server.Close()

	transitions := NewTestClient(server.URL, jira.CloudModeServer).Transitions()

	list, err := transitions.List(context.Background(), "PROJ-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "21", list[1].ID)
	assert.Equal(t, "In Progress", list[1].Name)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestTransitionsClient_Transition(t *testing.T) {
	t.Parallel()

	t.Run("matches transition by name case-insensitively", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.Method == "GET" {
				_, _ = writer.Write([]byte(transitionsBody))

				return
			}

			var payload map[string]any

			_ = json.NewDecoder(request.Body).Decode(&payload)
			transition, _ := payload["transition"].(map[string]any)
			assert.Equal(t, "31", transition["id"])

			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		transitions := NewTestClient(server.URL, jira.CloudModeServer).Transitions()

		err := transitions.Transition(context.Background(), "PROJ-1", &TransitionRequest{Target: "done"})
		require.NoError(t, err)
	})

	t.Run("accepts a raw transition ID", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.Method == "GET" {
				_, _ = writer.Write([]byte(transitionsBody))

				return
			}

			var payload map[string]any

			_ = json.NewDecoder(request.Body).Decode(&payload)
			transition, _ := payload["transition"].(map[string]any)
			assert.Equal(t, "21", transition["id"])

			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		transitions := NewTestClient(server.URL, jira.CloudModeServer).Transitions()

		err := transitions.Transition(context.Background(), "PROJ-1", &TransitionRequest{Target: "21"})
		require.NoError(t, err)
	})

	t.Run("attaches resolution and comment", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.Method == "GET" {
				_, _ = writer.Write([]byte(transitionsBody))

				return
			}

			var payload map[string]any

			_ = json.NewDecoder(request.Body).Decode(&payload)

			fields, _ := payload["fields"].(map[string]any)
			resolution, _ := fields["resolution"].(map[string]any)
			assert.Equal(t, "Fixed", resolution["name"])

			update, _ := payload["update"].(map[string]any)
			assert.NotNil(t, update["comment"])

			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		transitions := NewTestClient(server.URL, jira.CloudModeServer).Transitions()

		err := transitions.Transition(context.Background(), "PROJ-1", &TransitionRequest{
			Target:     "Done",
			Resolution: "Fixed",
			Comment:    "Closing after verification",
		})
		require.NoError(t, err)
	})

	t.Run("unknown target is rejected before posting", func(t *testing.T) {
		t.Parallel()

		posted := false

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.Method == "POST" {
				posted = true
			}

			_, _ = writer.Write([]byte(transitionsBody))
		}))
		defer server.Close()

		transitions := NewTestClient(server.URL, jira.CloudModeServer).Transitions()

		err := transitions.Transition(context.Background(), "PROJ-1", &TransitionRequest{Target: "Reopened"})
		require.ErrorIs(t, err, ErrTransitionNotFound)
		assert.False(t, posted)
	})
}
