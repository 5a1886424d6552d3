package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fulcrumops/jira-mcp/internal/http"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// VersionsClient covers project versions.
type VersionsClient struct {
	httpClient *http.Client
}

// NewVersionsClient creates a new VersionsClient.
func NewVersionsClient(httpClient *http.Client) *VersionsClient {
	return &VersionsClient{
		httpClient: httpClient,
	}
}

// List returns the versions of a project. The endpoint returns a bare
// array.
func (c *VersionsClient) List(ctx context.Context, projectKey string) ([]jira.Version, error) {
	resp, err := c.httpClient.Get(ctx, "/project/"+projectKey+"/versions", nil)
	if err != nil {
		return nil, fmt.Errorf("listing versions: %w", err)
	}

	var versions []jira.Version

	err = json.Unmarshal(resp.Body, &versions)
	if err != nil {
		return nil, fmt.Errorf("parsing versions response: %w", err)
	}

	return versions, nil
}

// VersionRequest describes a version to create. ProjectID is the
// numeric project ID the version belongs to.
type VersionRequest struct {
	Name        string
	ProjectID   int
	Description string
	StartDate   string
	ReleaseDate string
	Released    bool
	Archived    bool
}

// Create creates one project version.
func (c *VersionsClient) Create(ctx context.Context, req *VersionRequest) (*jira.Version, error) {
	payload := map[string]any{
		"name":      req.Name,
		"projectId": req.ProjectID,
		"released":  req.Released,
		"archived":  req.Archived,
	}

	if req.Description != "" {
		payload["description"] = req.Description
	}

	if req.StartDate != "" {
		payload["startDate"] = req.StartDate
	}

	if req.ReleaseDate != "" {
		payload["releaseDate"] = req.ReleaseDate
	}

	resp, err := c.httpClient.Post(ctx, "/version", payload)
	if err != nil {
		return nil, fmt.Errorf("creating version: %w", err)
	}

	var version jira.Version

	err = json.Unmarshal(resp.Body, &version)
	if err != nil {
		return nil, fmt.Errorf("parsing version response: %w", err)
	}

	return &version, nil
}

// BatchCreateVersionsResult pairs created versions with per-entry
// failures.
type BatchCreateVersionsResult struct {
	Versions []jira.Version
	Errors   map[string]error
}

// BatchCreate creates several versions. The REST API has no bulk
// endpoint for versions, so entries are created one by one and failures
// are collected per version name.
func (c *VersionsClient) BatchCreate(ctx context.Context, reqs []*VersionRequest) (*BatchCreateVersionsResult, error) {
	if len(reqs) == 0 {
		return nil, ErrEmptyBatch
	}

	result := &BatchCreateVersionsResult{
		Errors: make(map[string]error),
	}

	for _, req := range reqs {
		version, err := c.Create(ctx, req)
		if err != nil {
			result.Errors[req.Name] = err

			continue
		}

		result.Versions = append(result.Versions, *version)
	}

	return result, nil
}
