package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (d *Deps) registerEpicTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("jira_link_to_epic",
		mcp.WithDescription("Attach an issue to an epic"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("Issue to attach, e.g. PROJ-123")),
		mcp.WithString("epic_key", mcp.Required(), mcp.Description("Epic to attach it to, e.g. PROJ-100")),
	), d.handler("jira_link_to_epic", true, d.linkToEpic))

	s.AddTool(mcp.NewTool("jira_get_epic_issues",
		mcp.WithDescription("List the issues attached to an epic"),
		mcp.WithString("epic_key", mcp.Required(), mcp.Description("Epic key, e.g. PROJ-100")),
		mcp.WithNumber("start_at", mcp.Description("Pagination offset, default 0")),
		mcp.WithNumber("max_results", mcp.Description("Page size, default 50")),
	), d.handler("jira_get_epic_issues", false, d.getEpicIssues))
}

func (d *Deps) linkToEpic(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issueKey, err := req.RequireString("issue_key")
	if err != nil {
		return nil, err
	}

	epicKey, err := req.RequireString("epic_key")
	if err != nil {
		return nil, err
	}

	if err := d.Client.Epics().LinkIssue(ctx, issueKey, epicKey); err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(fmt.Sprintf("Linked %s to epic %s.", issueKey, epicKey)), nil
}

func (d *Deps) getEpicIssues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	epicKey, err := req.RequireString("epic_key")
	if err != nil {
		return nil, err
	}

	results, err := d.Client.Epics().Issues(ctx, epicKey, searchOptions(req))
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatIssueTable(results)), nil
}
