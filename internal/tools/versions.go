package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fulcrumops/jira-mcp/internal/client"
)

func (d *Deps) registerVersionTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("jira_get_project_versions",
		mcp.WithDescription("List the versions of a project"),
		mcp.WithString("project_key", mcp.Required(), mcp.Description("Project key, e.g. PROJ")),
	), d.handler("jira_get_project_versions", false, d.getProjectVersions))

	s.AddTool(mcp.NewTool("jira_create_version",
		mcp.WithDescription("Create a project version"),
		mcp.WithString("version_name", mcp.Required(), mcp.Description("Version name, e.g. 2.0.0")),
		mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Numeric ID of the project")),
		mcp.WithString("description", mcp.Description("Version description")),
		mcp.WithString("start_date", mcp.Description("Start date, YYYY-MM-DD")),
		mcp.WithString("release_date", mcp.Description("Release date, YYYY-MM-DD")),
	), d.handler("jira_create_version", true, d.createVersion))

	s.AddTool(mcp.NewTool("jira_batch_create_versions",
		mcp.WithDescription("Create several project versions in one call"),
		mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Numeric ID of the project")),
		mcp.WithString("versions", mcp.Required(), mcp.Description("JSON array of version objects with name, description, releaseDate")),
	), d.handler("jira_batch_create_versions", true, d.batchCreateVersions))
}

func (d *Deps) getProjectVersions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectKey, err := req.RequireString("project_key")
	if err != nil {
		return nil, err
	}

	versions, err := d.Client.Versions().List(ctx, projectKey)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatVersions(projectKey, versions)), nil
}

func (d *Deps) createVersion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("version_name")
	if err != nil {
		return nil, err
	}

	projectID, err := req.RequireInt("project_id")
	if err != nil {
		return nil, err
	}

	version, err := d.Client.Versions().Create(ctx, &client.VersionRequest{
		Name:        name,
		ProjectID:   projectID,
		Description: req.GetString("description", ""),
		StartDate:   req.GetString("start_date", ""),
		ReleaseDate: req.GetString("release_date", ""),
	})
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(fmt.Sprintf("Created version %s (ID %s).", version.Name, version.ID)), nil
}

func (d *Deps) batchCreateVersions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, err := req.RequireInt("project_id")
	if err != nil {
		return nil, err
	}

	raw, err := req.RequireString("versions")
	if err != nil {
		return nil, err
	}

	var entries []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		StartDate   string `json:"startDate"`
		ReleaseDate string `json:"releaseDate"`
	}

	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("parsing versions: %w", err)
	}

	reqs := make([]*client.VersionRequest, 0, len(entries))
	for _, e := range entries {
		reqs = append(reqs, &client.VersionRequest{
			Name:        e.Name,
			ProjectID:   projectID,
			Description: e.Description,
			StartDate:   e.StartDate,
			ReleaseDate: e.ReleaseDate,
		})
	}

	result, err := d.Client.Versions().BatchCreate(ctx, reqs)
	if err != nil {
		return nil, err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Created %d of %d versions.\n", len(result.Versions), len(reqs))

	for _, v := range result.Versions {
		fmt.Fprintf(&b, "- %s (ID %s)\n", v.Name, v.ID)
	}

	for name, createErr := range result.Errors {
		fmt.Fprintf(&b, "- %s failed: %s\n", name, createErr.Error())
	}

	return mcp.NewToolResultText(b.String()), nil
}
