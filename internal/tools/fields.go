package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (d *Deps) registerFieldTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("jira_search_fields",
		mcp.WithDescription("Search field definitions, including custom fields, by keyword"),
		mcp.WithString("keyword", mcp.Description("Keyword matched against field names and IDs; empty lists everything")),
		mcp.WithNumber("limit", mcp.Description("Maximum fields to return, default 10")),
	), d.handler("jira_search_fields", false, d.searchFields))
}

func (d *Deps) searchFields(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fields, err := d.Client.Fields().Search(ctx, req.GetString("keyword", ""), req.GetInt("limit", 10))
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatFields(fields)), nil
}
