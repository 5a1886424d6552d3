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

func TestAttachmentsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/rest/api/2/issue/PROJ-1", request.URL.Path)
		assert.Equal(t, "attachment", request.URL.Query().Get("fields"))

		_, _ = writer.Write([]byte(`{
			"key": "PROJ-1",
			"fields": {"attachment": [
				{"id": "10000", "filename": "design.pdf", "size": 204800,
				 "mimeType": "application/pdf",
				 "content": "` + "https://jira.example.com/secure/attachment/10000/design.pdf" + `"}
			]}
		}`))
	}))
	defer server.Close()

	attachments := NewTestClient(server.URL, jira.CloudModeServer).Attachments()

	list, err := attachments.List(context.Background(), "PROJ-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "design.pdf", list[0].Filename)
	assert.Equal(t, int64(204800), list[0].Size)
}

func TestAttachmentsClient_Upload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/rest/api/2/issue/PROJ-1/attachments", request.URL.Path)
		assert.Equal(t, "no-check", request.Header.Get("X-Atlassian-Token"))
		assert.Contains(t, request.Header.Get("Content-Type"), "multipart/form-data")

		require.NoError(t, request.ParseMultipartForm(1<<20))

		file, header, err := request.FormFile("file")
		require.NoError(t, err)

		defer func() { _ = file.Close() }()

		assert.Equal(t, "notes.txt", header.Filename)

		_, _ = writer.Write([]byte(`[{"id": "10001", "filename": "notes.txt", "size": 11}]`))
	}))
	defer server.Close()

	attachments := NewTestClient(server.URL, jira.CloudModeServer).Attachments()

	created, err := attachments.Upload(context.Background(), "PROJ-1", "notes.txt", []byte("hello notes"))
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "notes.txt", created[0].Filename)
}

func TestAttachmentsClient_Download(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/secure/attachment/10000/design.pdf", request.URL.Path)
		_, _ = writer.Write([]byte("%PDF-1.7 content"))
	}))
	defer server.Close()

	attachments := NewTestClient(server.URL, jira.CloudModeServer).Attachments()

	content, err := attachments.Download(context.Background(), &jira.Attachment{
		ID:       "10000",
		Filename: "design.pdf",
		Content:  server.URL + "/secure/attachment/10000/design.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 content"), content)
}
