package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (d *Deps) registerLinkTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("jira_get_link_types",
		mcp.WithDescription("List the issue link relationship types the instance supports"),
	), d.handler("jira_get_link_types", false, d.getLinkTypes))

	s.AddTool(mcp.NewTool("jira_create_issue_link",
		mcp.WithDescription("Link two issues, e.g. PROJ-1 blocks PROJ-2"),
		mcp.WithString("link_type", mcp.Required(), mcp.Description("Relationship name, e.g. Blocks, Relates")),
		mcp.WithString("inward_issue_key", mcp.Required(), mcp.Description("Issue on the inward side of the relation")),
		mcp.WithString("outward_issue_key", mcp.Required(), mcp.Description("Issue on the outward side of the relation")),
		mcp.WithString("comment", mcp.Description("Comment to attach to the link")),
	), d.handler("jira_create_issue_link", true, d.createIssueLink))

	s.AddTool(mcp.NewTool("jira_remove_issue_link",
		mcp.WithDescription("Remove an issue link by its ID"),
		mcp.WithString("link_id", mcp.Required(), mcp.Description("Link ID")),
	), d.handler("jira_remove_issue_link", true, d.removeIssueLink))

	s.AddTool(mcp.NewTool("jira_create_remote_issue_link",
		mcp.WithDescription("Attach an external URL to an issue"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("Issue key, e.g. PROJ-123")),
		mcp.WithString("url", mcp.Required(), mcp.Description("URL to attach")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Link title shown on the issue")),
		mcp.WithString("summary", mcp.Description("Optional link summary")),
		mcp.WithString("relationship", mcp.Description("Relationship label, e.g. documentation")),
	), d.handler("jira_create_remote_issue_link", true, d.createRemoteLink))
}

func (d *Deps) getLinkTypes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	types, err := d.Client.Links().Types(ctx)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatLinkTypes(types)), nil
}

func (d *Deps) createIssueLink(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	linkType, err := req.RequireString("link_type")
	if err != nil {
		return nil, err
	}

	inward, err := req.RequireString("inward_issue_key")
	if err != nil {
		return nil, err
	}

	outward, err := req.RequireString("outward_issue_key")
	if err != nil {
		return nil, err
	}

	if err := d.Client.Links().Create(ctx, linkType, inward, outward, req.GetString("comment", "")); err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(fmt.Sprintf("Linked %s %s %s.", inward, linkType, outward)), nil
}

func (d *Deps) removeIssueLink(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	linkID, err := req.RequireString("link_id")
	if err != nil {
		return nil, err
	}

	if err := d.Client.Links().Remove(ctx, linkID); err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(fmt.Sprintf("Removed issue link %s.", linkID)), nil
}

func (d *Deps) createRemoteLink(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issueKey, err := req.RequireString("issue_key")
	if err != nil {
		return nil, err
	}

	linkURL, err := req.RequireString("url")
	if err != nil {
		return nil, err
	}

	title, err := req.RequireString("title")
	if err != nil {
		return nil, err
	}

	link, err := d.Client.Links().CreateRemote(ctx, issueKey, linkURL, title,
		req.GetString("summary", ""), req.GetString("relationship", ""))
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(fmt.Sprintf("Created remote link %d on %s.", link.ID, issueKey)), nil
}
