package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fulcrumops/jira-mcp/internal/http"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// ProjectsClient covers project metadata.
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new ProjectsClient.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
	}
}

// List returns all projects visible to the authenticated user. The
// endpoint returns a bare array.
func (c *ProjectsClient) List(ctx context.Context) ([]jira.Project, error) {
	resp, err := c.httpClient.Get(ctx, "/project", nil)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	var projects []jira.Project

	err = json.Unmarshal(resp.Body, &projects)
	if err != nil {
		return nil, fmt.Errorf("parsing projects response: %w", err)
	}

	return projects, nil
}

// Get returns one project by key or ID.
func (c *ProjectsClient) Get(ctx context.Context, keyOrID string) (*jira.Project, error) {
	resp, err := c.httpClient.Get(ctx, "/project/"+keyOrID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	var project jira.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}
