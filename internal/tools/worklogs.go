package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (d *Deps) registerWorklogTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("jira_get_worklog",
		mcp.WithDescription("Get the work logged on an issue"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("Issue key, e.g. PROJ-123")),
	), d.handler("jira_get_worklog", false, d.getWorklog))

	s.AddTool(mcp.NewTool("jira_add_worklog",
		mcp.WithDescription("Log work on an issue"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("Issue key, e.g. PROJ-123")),
		mcp.WithString("time_spent", mcp.Required(), mcp.Description("Time spent in Jira duration syntax, e.g. 2h 30m")),
		mcp.WithString("comment", mcp.Description("Worklog comment")),
		mcp.WithString("started", mcp.Description("When the work started, ISO 8601; defaults to now")),
	), d.handler("jira_add_worklog", true, d.addWorklog))
}

func (d *Deps) getWorklog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("issue_key")
	if err != nil {
		return nil, err
	}

	page, err := d.Client.Worklogs().List(ctx, key)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatWorklogs(key, page)), nil
}

func (d *Deps) addWorklog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("issue_key")
	if err != nil {
		return nil, err
	}

	timeSpent, err := req.RequireString("time_spent")
	if err != nil {
		return nil, err
	}

	worklog, err := d.Client.Worklogs().Add(ctx, key, timeSpent,
		req.GetString("comment", ""), req.GetString("started", ""))
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(fmt.Sprintf("Logged %s on %s (worklog %s).", worklog.TimeSpent, key, worklog.ID)), nil
}
