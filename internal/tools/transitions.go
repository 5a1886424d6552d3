package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fulcrumops/jira-mcp/internal/client"
)

func (d *Deps) registerTransitionTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("jira_get_transitions",
		mcp.WithDescription("List the workflow transitions currently available on an issue"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("Issue key, e.g. PROJ-123")),
	), d.handler("jira_get_transitions", false, d.getTransitions))

	s.AddTool(mcp.NewTool("jira_transition_issue",
		mcp.WithDescription("Move an issue through its workflow, optionally setting fields and a comment"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("Issue key, e.g. PROJ-123")),
		mcp.WithString("transition", mcp.Required(), mcp.Description("Transition ID or target status name, e.g. Done")),
		mcp.WithString("resolution", mcp.Description("Resolution name to set, e.g. Fixed")),
		mcp.WithString("comment", mcp.Description("Comment to attach to the transition")),
		mcp.WithString("fields", mcp.Description("JSON object of fields to set alongside the transition")),
	), d.handler("jira_transition_issue", true, d.transitionIssue))
}

func (d *Deps) getTransitions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("issue_key")
	if err != nil {
		return nil, err
	}

	transitions, err := d.Client.Transitions().List(ctx, key)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatTransitions(key, transitions)), nil
}

func (d *Deps) transitionIssue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("issue_key")
	if err != nil {
		return nil, err
	}

	target, err := req.RequireString("transition")
	if err != nil {
		return nil, err
	}

	transitionReq := &client.TransitionRequest{
		Target:     target,
		Resolution: req.GetString("resolution", ""),
		Comment:    req.GetString("comment", ""),
	}

	if raw := req.GetString("fields", ""); raw != "" {
		if err := json.Unmarshal([]byte(raw), &transitionReq.Fields); err != nil {
			return nil, fmt.Errorf("parsing fields: %w", err)
		}
	}

	if err := d.Client.Transitions().Transition(ctx, key, transitionReq); err != nil {
		return nil, err
	}

	// Re-fetch so the result shows the status the issue landed in.
	issue, err := d.Client.Issues().Get(ctx, key, []string{"status"}, "")
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Transitioned issue %s.", key)), nil //nolint:nilerr // transition succeeded
	}

	return mcp.NewToolResultText(fmt.Sprintf("Transitioned issue %s to %s.",
		key, namedOrDash(issue.Fields.Status))), nil
}
