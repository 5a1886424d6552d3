package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fulcrumops/jira-mcp/internal/constants"
	"github.com/fulcrumops/jira-mcp/internal/http"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// CommentsClient covers issue comments.
type CommentsClient struct {
	httpClient *http.Client
	cloud      bool
}

// NewCommentsClient creates a new CommentsClient.
func NewCommentsClient(httpClient *http.Client, cloud bool) *CommentsClient {
	return &CommentsClient{
		httpClient: httpClient,
		cloud:      cloud,
	}
}

// List returns the comments of an issue, oldest first.
func (c *CommentsClient) List(ctx context.Context, issueKey string, startAt, maxResults int) (*jira.CommentPage, error) {
	if maxResults <= 0 {
		maxResults = constants.DefaultMaxResults
	}

	query := url.Values{}
	query.Set("startAt", strconv.Itoa(startAt))
	query.Set("maxResults", strconv.Itoa(maxResults))
	query.Set("orderBy", "created")

	resp, err := c.httpClient.Get(ctx, "/issue/"+issueKey+"/comment", query)
	if err != nil {
		return nil, fmt.Errorf("getting comments: %w", err)
	}

	var page jira.CommentPage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing comments response: %w", err)
	}

	return &page, nil
}

// Add posts a plain-text comment. Cloud instances require the body as
// an ADF document.
func (c *CommentsClient) Add(ctx context.Context, issueKey, text string) (*jira.Comment, error) {
	var body any = text
	if c.cloud {
		body = jira.ADFDocument(text)
	}

	resp, err := c.httpClient.Post(ctx, "/issue/"+issueKey+"/comment", map[string]any{"body": body})
	if err != nil {
		return nil, fmt.Errorf("adding comment: %w", err)
	}

	var comment jira.Comment

	err = json.Unmarshal(resp.Body, &comment)
	if err != nil {
		return nil, fmt.Errorf("parsing comment response: %w", err)
	}

	return &comment, nil
}
