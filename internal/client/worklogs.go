package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fulcrumops/jira-mcp/internal/http"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// WorklogsClient covers issue work logs.
type WorklogsClient struct {
	httpClient *http.Client
	cloud      bool
}

// NewWorklogsClient creates a new WorklogsClient.
func NewWorklogsClient(httpClient *http.Client, cloud bool) *WorklogsClient {
	return &WorklogsClient{
		httpClient: httpClient,
		cloud:      cloud,
	}
}

// List returns the work logged on an issue.
func (c *WorklogsClient) List(ctx context.Context, issueKey string) (*jira.WorklogPage, error) {
	resp, err := c.httpClient.Get(ctx, "/issue/"+issueKey+"/worklog", nil)
	if err != nil {
		return nil, fmt.Errorf("getting worklogs: %w", err)
	}

	var page jira.WorklogPage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing worklogs response: %w", err)
	}

	return &page, nil
}

// Add logs work on an issue. timeSpent uses Jira duration syntax such
// as 2h 30m; started is an ISO 8601 timestamp and optional.
func (c *WorklogsClient) Add(ctx context.Context, issueKey, timeSpent, comment, started string) (*jira.Worklog, error) {
	payload := map[string]any{
		"timeSpent": timeSpent,
	}

	if comment != "" {
		var body any = comment
		if c.cloud {
			body = jira.ADFDocument(comment)
		}

		payload["comment"] = body
	}

	if started != "" {
		payload["started"] = started
	}

	resp, err := c.httpClient.Post(ctx, "/issue/"+issueKey+"/worklog", payload)
	if err != nil {
		return nil, fmt.Errorf("adding worklog: %w", err)
	}

	var worklog jira.Worklog

	err = json.Unmarshal(resp.Body, &worklog)
	if err != nil {
		return nil, fmt.Errorf("parsing worklog response: %w", err)
	}

	return &worklog, nil
}
