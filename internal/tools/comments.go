package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (d *Deps) registerCommentTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("jira_get_comments",
		mcp.WithDescription("Get the comments of a Jira issue"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("Issue key, e.g. PROJ-123")),
		mcp.WithNumber("start_at", mcp.Description("Pagination offset, default 0")),
		mcp.WithNumber("max_results", mcp.Description("Page size, default 50")),
	), d.handler("jira_get_comments", false, d.getComments))

	s.AddTool(mcp.NewTool("jira_add_comment",
		mcp.WithDescription("Add a comment to a Jira issue"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("Issue key, e.g. PROJ-123")),
		mcp.WithString("comment", mcp.Required(), mcp.Description("Comment text")),
	), d.handler("jira_add_comment", true, d.addComment))
}

func (d *Deps) getComments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("issue_key")
	if err != nil {
		return nil, err
	}

	page, err := d.Client.Comments().List(ctx, key, req.GetInt("start_at", 0), req.GetInt("max_results", 0))
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatComments(key, page)), nil
}

func (d *Deps) addComment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("issue_key")
	if err != nil {
		return nil, err
	}

	text, err := req.RequireString("comment")
	if err != nil {
		return nil, err
	}

	comment, err := d.Client.Comments().Add(ctx, key, text)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(fmt.Sprintf("Added comment %s to %s.", comment.ID, key)), nil
}
