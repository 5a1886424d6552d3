package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (d *Deps) registerIssueTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("jira_get_issue",
		mcp.WithDescription("Get a Jira issue by key, including its summary, status, people and description"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("Issue key, e.g. PROJ-123")),
		mcp.WithString("fields", mcp.Description("Comma-separated list of fields to return; empty returns everything")),
		mcp.WithString("expand", mcp.Description("Comma-separated expansions, e.g. changelog,renderedFields")),
	), d.handler("jira_get_issue", false, d.getIssue))

	s.AddTool(mcp.NewTool("jira_create_issue",
		mcp.WithDescription("Create a new Jira issue"),
		mcp.WithString("project_key", mcp.Required(), mcp.Description("Key of the project to create the issue in")),
		mcp.WithString("summary", mcp.Required(), mcp.Description("Issue summary")),
		mcp.WithString("issue_type", mcp.Required(), mcp.Description("Issue type name, e.g. Task, Bug, Story")),
		mcp.WithString("description", mcp.Description("Issue description as plain text")),
		mcp.WithString("assignee", mcp.Description("Account ID or username to assign the issue to")),
		mcp.WithString("components", mcp.Description("Comma-separated component names")),
		mcp.WithString("additional_fields", mcp.Description("JSON object with extra fields, e.g. {\"labels\": [\"infra\"]}")),
	), d.handler("jira_create_issue", true, d.createIssue))

	s.AddTool(mcp.NewTool("jira_update_issue",
		mcp.WithDescription("Update fields of an existing Jira issue"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("Issue key, e.g. PROJ-123")),
		mcp.WithString("fields", mcp.Required(), mcp.Description("JSON object of fields to update, e.g. {\"summary\": \"New title\"}")),
	), d.handler("jira_update_issue", true, d.updateIssue))

	s.AddTool(mcp.NewTool("jira_delete_issue",
		mcp.WithDescription("Delete a Jira issue"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("Issue key, e.g. PROJ-123")),
		mcp.WithBoolean("delete_subtasks", mcp.Description("Also delete subtasks")),
	), d.handler("jira_delete_issue", true, d.deleteIssue))

	s.AddTool(mcp.NewTool("jira_batch_create_issues",
		mcp.WithDescription("Create several Jira issues in one call"),
		mcp.WithString("issues", mcp.Required(), mcp.Description("JSON array of field objects, one per issue")),
	), d.handler("jira_batch_create_issues", true, d.batchCreateIssues))

	s.AddTool(mcp.NewTool("jira_batch_get_changelogs",
		mcp.WithDescription("Get the change history of several issues"),
		mcp.WithString("issue_keys", mcp.Required(), mcp.Description("Comma-separated issue keys")),
	), d.handler("jira_batch_get_changelogs", false, d.batchGetChangelogs))
}

func (d *Deps) getIssue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("issue_key")
	if err != nil {
		return nil, err
	}

	fields := splitCSV(req.GetString("fields", ""))
	expand := req.GetString("expand", "")

	issue, err := d.Client.Issues().Get(ctx, key, fields, expand)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatIssue(issue)), nil
}

func (d *Deps) createIssue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectKey, err := req.RequireString("project_key")
	if err != nil {
		return nil, err
	}

	summary, err := req.RequireString("summary")
	if err != nil {
		return nil, err
	}

	issueType, err := req.RequireString("issue_type")
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"project":   map[string]any{"key": projectKey},
		"summary":   summary,
		"issuetype": map[string]any{"name": issueType},
	}

	if desc := req.GetString("description", ""); desc != "" {
		fields["description"] = desc
	}

	if assignee := req.GetString("assignee", ""); assignee != "" {
		fields["assignee"] = assigneeRef(assignee, d.Config.IsCloud())
	}

	if components := splitCSV(req.GetString("components", "")); len(components) > 0 {
		refs := make([]any, 0, len(components))
		for _, name := range components {
			refs = append(refs, map[string]any{"name": name})
		}

		fields["components"] = refs
	}

	if extra := req.GetString("additional_fields", ""); extra != "" {
		var additional map[string]any

		if err := json.Unmarshal([]byte(extra), &additional); err != nil {
			return nil, fmt.Errorf("parsing additional_fields: %w", err)
		}

		for k, v := range additional {
			fields[k] = v
		}
	}

	created, err := d.Client.Issues().Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(fmt.Sprintf("Created issue %s (ID %s).", created.Key, created.ID)), nil
}

func (d *Deps) updateIssue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("issue_key")
	if err != nil {
		return nil, err
	}

	rawFields, err := req.RequireString("fields")
	if err != nil {
		return nil, err
	}

	var fields map[string]any

	if err := json.Unmarshal([]byte(rawFields), &fields); err != nil {
		return nil, fmt.Errorf("parsing fields: %w", err)
	}

	if err := d.Client.Issues().Update(ctx, key, fields); err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(fmt.Sprintf("Updated issue %s.", key)), nil
}

func (d *Deps) deleteIssue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("issue_key")
	if err != nil {
		return nil, err
	}

	if err := d.Client.Issues().Delete(ctx, key, req.GetBool("delete_subtasks", false)); err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(fmt.Sprintf("Deleted issue %s.", key)), nil
}

func (d *Deps) batchCreateIssues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("issues")
	if err != nil {
		return nil, err
	}

	var fieldSets []map[string]any

	if err := json.Unmarshal([]byte(raw), &fieldSets); err != nil {
		return nil, fmt.Errorf("parsing issues: %w", err)
	}

	result, err := d.Client.Issues().BatchCreate(ctx, fieldSets)
	if err != nil {
		return nil, err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Created %d of %d issues.\n", len(result.Issues), len(fieldSets))

	for _, issue := range result.Issues {
		fmt.Fprintf(&b, "- %s\n", issue.Key)
	}

	for _, failure := range result.Errors {
		fmt.Fprintf(&b, "- entry %d failed: %v\n", failure.FailedElementNumber, failure.ElementErrors)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (d *Deps) batchGetChangelogs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("issue_keys")
	if err != nil {
		return nil, err
	}

	keys := splitCSV(raw)
	results, failures := d.Client.Issues().BatchChangelogs(ctx, keys)

	return mcp.NewToolResultText(formatChangelogs(results, failures, keys)), nil
}

// assigneeRef builds the assignee stanza for the target API generation:
// Cloud identifies users by account ID, Server by username.
func assigneeRef(identifier string, cloud bool) map[string]any {
	if cloud {
		return map[string]any{"accountId": identifier}
	}

	return map[string]any{"name": identifier}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}

	var out []string

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}
