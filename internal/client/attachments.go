package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fulcrumops/jira-mcp/internal/http"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// AttachmentsClient covers issue attachments. Uploads go through the
// multipart path of the pipeline; downloads follow the absolute content
// URL the metadata carries.
type AttachmentsClient struct {
	httpClient *http.Client
	issues     *IssuesClient
}

// NewAttachmentsClient creates a new AttachmentsClient.
func NewAttachmentsClient(httpClient *http.Client, issues *IssuesClient) *AttachmentsClient {
	return &AttachmentsClient{
		httpClient: httpClient,
		issues:     issues,
	}
}

// List returns the attachment metadata of an issue.
func (c *AttachmentsClient) List(ctx context.Context, issueKey string) ([]jira.Attachment, error) {
	issue, err := c.issues.Get(ctx, issueKey, []string{"attachment"}, "")
	if err != nil {
		return nil, fmt.Errorf("listing attachments: %w", err)
	}

	return issue.Fields.Attachments, nil
}

// Upload attaches a file to an issue. The endpoint requires the
// X-Atlassian-Token header to bypass XSRF protection and returns an
// array of the created attachments.
func (c *AttachmentsClient) Upload(ctx context.Context, issueKey, filename string, content []byte) ([]jira.Attachment, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:   "POST",
		Endpoint: "/issue/" + issueKey + "/attachments",
		File: &http.FilePayload{
			Field:    "file",
			Filename: filename,
			Content:  content,
		},
		Headers: map[string]string{"X-Atlassian-Token": "no-check"},
	})
	if err != nil {
		return nil, fmt.Errorf("uploading attachment: %w", err)
	}

	var attachments []jira.Attachment

	err = json.Unmarshal(resp.Body, &attachments)
	if err != nil {
		return nil, fmt.Errorf("parsing attachment response: %w", err)
	}

	return attachments, nil
}

// Download fetches the raw bytes of one attachment via its absolute
// content URL.
func (c *AttachmentsClient) Download(ctx context.Context, attachment *jira.Attachment) ([]byte, error) {
	resp, err := c.httpClient.Get(ctx, attachment.Content, nil)
	if err != nil {
		return nil, fmt.Errorf("downloading attachment: %w", err)
	}

	return resp.Body, nil
}
