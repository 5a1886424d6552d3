// Package tools exposes the Jira clients as MCP tools. Every tool here
// is glue: it validates arguments, delegates to a resource client and
// formats the result as markdown. API failures come back as tool error
// results, never as protocol faults.
package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fulcrumops/jira-mcp/internal/client"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

const disabledMessage = "Tool is disabled by configuration"

// Deps carries what every tool handler needs.
type Deps struct {
	Client *client.Client
	Config *jira.Config
	Logger jira.Logger
}

// NewServer builds the MCP server with every enabled tool registered.
func NewServer(deps *Deps, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"jira-mcp",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	deps.registerIssueTools(s)
	deps.registerSearchTools(s)
	deps.registerCommentTools(s)
	deps.registerTransitionTools(s)
	deps.registerProjectTools(s)
	deps.registerBoardTools(s)
	deps.registerSprintTools(s)
	deps.registerEpicTools(s)
	deps.registerLinkTools(s)
	deps.registerWorklogTools(s)
	deps.registerVersionTools(s)
	deps.registerAttachmentTools(s)
	deps.registerUserTools(s)
	deps.registerFieldTools(s)

	return s
}

type handlerFunc func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

// handler wraps a tool implementation with the shared gating: the
// enabled-tools allow-list first, then the read-only guard for tools
// that write. Errors from the implementation become error results so
// the MCP session stays healthy.
func (d *Deps) handler(name string, write bool, fn handlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !d.Config.IsToolEnabled(name) {
			return mcp.NewToolResultError(disabledMessage), nil
		}

		if write && d.Config.ReadOnly {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %s is not available in read-only mode", name)), nil
		}

		result, err := fn(ctx, req)
		if err != nil {
			d.Logger.Error("tool call failed", map[string]interface{}{
				"tool":  name,
				"error": err.Error(),
			})

			return mcp.NewToolResultError("Error: " + err.Error()), nil
		}

		return result, nil
	}
}

// searchOptions reads the shared pagination arguments.
func searchOptions(req mcp.CallToolRequest) client.SearchOptions {
	return client.SearchOptions{
		StartAt:    req.GetInt("start_at", 0),
		MaxResults: req.GetInt("max_results", 0),
	}
}
