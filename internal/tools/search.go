package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (d *Deps) registerSearchTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("jira_search",
		mcp.WithDescription("Search Jira issues with a JQL query"),
		mcp.WithString("jql", mcp.Required(), mcp.Description("JQL query, e.g. project = PROJ AND status = \"In Progress\"")),
		mcp.WithString("fields", mcp.Description("Comma-separated fields to return per issue")),
		mcp.WithNumber("start_at", mcp.Description("Pagination offset, default 0")),
		mcp.WithNumber("max_results", mcp.Description("Page size, default 50, capped at 100")),
	), d.handler("jira_search", false, d.searchIssues))

	s.AddTool(mcp.NewTool("jira_get_project_issues",
		mcp.WithDescription("List the issues of a project, newest first"),
		mcp.WithString("project_key", mcp.Required(), mcp.Description("Project key, e.g. PROJ")),
		mcp.WithNumber("start_at", mcp.Description("Pagination offset, default 0")),
		mcp.WithNumber("max_results", mcp.Description("Page size, default 50, capped at 100")),
	), d.handler("jira_get_project_issues", false, d.projectIssues))
}

func (d *Deps) searchIssues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jql, err := req.RequireString("jql")
	if err != nil {
		return nil, err
	}

	opts := searchOptions(req)
	opts.Fields = splitCSV(req.GetString("fields", ""))

	results, err := d.Client.Search().Search(ctx, jql, opts)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatIssueTable(results)), nil
}

func (d *Deps) projectIssues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectKey, err := req.RequireString("project_key")
	if err != nil {
		return nil, err
	}

	results, err := d.Client.Search().ProjectIssues(ctx, projectKey, searchOptions(req))
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatIssueTable(results)), nil
}
