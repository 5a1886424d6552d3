package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fulcrumops/jira-mcp/internal/client"
)

func (d *Deps) registerBoardTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("jira_get_agile_boards",
		mcp.WithDescription("List agile boards, optionally filtered by type, project or name"),
		mcp.WithString("board_type", mcp.Description("Board type: scrum or kanban")),
		mcp.WithString("project_key", mcp.Description("Only boards of this project")),
		mcp.WithString("board_name", mcp.Description("Only boards whose name contains this text")),
		mcp.WithNumber("start_at", mcp.Description("Pagination offset, default 0")),
		mcp.WithNumber("max_results", mcp.Description("Page size, default 50")),
	), d.handler("jira_get_agile_boards", false, d.getBoards))

	s.AddTool(mcp.NewTool("jira_get_board_issues",
		mcp.WithDescription("List the issues on an agile board"),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithString("jql", mcp.Description("JQL to narrow the board's issues")),
		mcp.WithNumber("start_at", mcp.Description("Pagination offset, default 0")),
		mcp.WithNumber("max_results", mcp.Description("Page size, default 50")),
	), d.handler("jira_get_board_issues", false, d.getBoardIssues))
}

func (d *Deps) getBoards(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := d.Client.Boards().List(ctx, client.BoardFilter{
		Type:       req.GetString("board_type", ""),
		ProjectKey: req.GetString("project_key", ""),
		Name:       req.GetString("board_name", ""),
		StartAt:    req.GetInt("start_at", 0),
		MaxResults: req.GetInt("max_results", 0),
	})
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatBoards(page)), nil
}

func (d *Deps) getBoardIssues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := req.RequireInt("board_id")
	if err != nil {
		return nil, err
	}

	results, err := d.Client.Boards().Issues(ctx, boardID,
		req.GetString("jql", ""), req.GetInt("start_at", 0), req.GetInt("max_results", 0))
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatIssueTable(results)), nil
}
