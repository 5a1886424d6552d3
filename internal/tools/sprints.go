package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fulcrumops/jira-mcp/internal/client"
)

func (d *Deps) registerSprintTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("jira_get_sprints_from_board",
		mcp.WithDescription("List the sprints of an agile board"),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithString("state", mcp.Description("Sprint state filter: future, active or closed")),
		mcp.WithNumber("start_at", mcp.Description("Pagination offset, default 0")),
		mcp.WithNumber("max_results", mcp.Description("Page size, default 50")),
	), d.handler("jira_get_sprints_from_board", false, d.getSprints))

	s.AddTool(mcp.NewTool("jira_get_sprint_issues",
		mcp.WithDescription("List the issues in a sprint"),
		mcp.WithNumber("sprint_id", mcp.Required(), mcp.Description("Sprint ID")),
		mcp.WithNumber("start_at", mcp.Description("Pagination offset, default 0")),
		mcp.WithNumber("max_results", mcp.Description("Page size, default 50")),
	), d.handler("jira_get_sprint_issues", false, d.getSprintIssues))

	s.AddTool(mcp.NewTool("jira_create_sprint",
		mcp.WithDescription("Create a sprint on a board"),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board to create the sprint on")),
		mcp.WithString("sprint_name", mcp.Required(), mcp.Description("Sprint name")),
		mcp.WithString("start_date", mcp.Description("Start date, ISO 8601")),
		mcp.WithString("end_date", mcp.Description("End date, ISO 8601")),
		mcp.WithString("goal", mcp.Description("Sprint goal")),
	), d.handler("jira_create_sprint", true, d.createSprint))

	s.AddTool(mcp.NewTool("jira_update_sprint",
		mcp.WithDescription("Update a sprint's name, dates, goal or state"),
		mcp.WithNumber("sprint_id", mcp.Required(), mcp.Description("Sprint ID")),
		mcp.WithString("sprint_name", mcp.Description("New sprint name")),
		mcp.WithString("state", mcp.Description("New state: active or closed")),
		mcp.WithString("start_date", mcp.Description("New start date, ISO 8601")),
		mcp.WithString("end_date", mcp.Description("New end date, ISO 8601")),
		mcp.WithString("goal", mcp.Description("New sprint goal")),
	), d.handler("jira_update_sprint", true, d.updateSprint))
}

func (d *Deps) getSprints(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := req.RequireInt("board_id")
	if err != nil {
		return nil, err
	}

	page, err := d.Client.Sprints().ListForBoard(ctx, boardID,
		req.GetString("state", ""), req.GetInt("start_at", 0), req.GetInt("max_results", 0))
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatSprints(page)), nil
}

func (d *Deps) getSprintIssues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sprintID, err := req.RequireInt("sprint_id")
	if err != nil {
		return nil, err
	}

	results, err := d.Client.Sprints().Issues(ctx, sprintID,
		req.GetInt("start_at", 0), req.GetInt("max_results", 0))
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatIssueTable(results)), nil
}

func (d *Deps) createSprint(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := req.RequireInt("board_id")
	if err != nil {
		return nil, err
	}

	name, err := req.RequireString("sprint_name")
	if err != nil {
		return nil, err
	}

	sprint, err := d.Client.Sprints().Create(ctx, boardID, name,
		req.GetString("start_date", ""), req.GetString("end_date", ""), req.GetString("goal", ""))
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatSprint(sprint)), nil
}

func (d *Deps) updateSprint(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sprintID, err := req.RequireInt("sprint_id")
	if err != nil {
		return nil, err
	}

	sprint, err := d.Client.Sprints().Update(ctx, sprintID, &client.SprintUpdate{
		Name:      req.GetString("sprint_name", ""),
		State:     req.GetString("state", ""),
		StartDate: req.GetString("start_date", ""),
		EndDate:   req.GetString("end_date", ""),
		Goal:      req.GetString("goal", ""),
	})
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatSprint(sprint)), nil
}
