package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (d *Deps) registerUserTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("jira_get_user_profile",
		mcp.WithDescription("Look up a Jira user by account ID, username or email address"),
		mcp.WithString("user_identifier", mcp.Required(), mcp.Description("Account ID, username or email address")),
	), d.handler("jira_get_user_profile", false, d.getUserProfile))

	s.AddTool(mcp.NewTool("jira_search_users",
		mcp.WithDescription("Search Jira users by name or email"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Free-text search query")),
		mcp.WithNumber("max_results", mcp.Description("Maximum users to return, default 50")),
	), d.handler("jira_search_users", false, d.searchUsers))
}

func (d *Deps) getUserProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	identifier, err := req.RequireString("user_identifier")
	if err != nil {
		return nil, err
	}

	user, err := d.Client.Users().Profile(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatUser(user)), nil
}

func (d *Deps) searchUsers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return nil, err
	}

	users, err := d.Client.Users().Search(ctx, query, req.GetInt("max_results", 0))
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatUsers(users)), nil
}
