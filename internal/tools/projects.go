package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (d *Deps) registerProjectTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("jira_get_all_projects",
		mcp.WithDescription("List all Jira projects visible to the configured user"),
	), d.handler("jira_get_all_projects", false, d.getAllProjects))
}

func (d *Deps) getAllProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projects, err := d.Client.Projects().List(ctx)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatProjects(projects)), nil
}
