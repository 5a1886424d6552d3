package client

import (
	"context"
	"fmt"

	"github.com/fulcrumops/jira-mcp/internal/constants"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// EpicsClient covers the epic relationship on top of the issue and
// search clients.
type EpicsClient struct {
	issues *IssuesClient
	search *SearchClient
}

// NewEpicsClient creates a new EpicsClient.
func NewEpicsClient(issues *IssuesClient, search *SearchClient) *EpicsClient {
	return &EpicsClient{
		issues: issues,
		search: search,
	}
}

// LinkIssue attaches an issue to an epic by writing the Epic Link
// custom field.
func (c *EpicsClient) LinkIssue(ctx context.Context, issueKey, epicKey string) error {
	err := c.issues.Update(ctx, issueKey, map[string]any{
		constants.EpicLinkField: epicKey,
	})
	if err != nil {
		return fmt.Errorf("linking issue to epic: %w", err)
	}

	return nil
}

// Issues returns the issues attached to an epic.
func (c *EpicsClient) Issues(ctx context.Context, epicKey string, opts SearchOptions) (*jira.SearchResults, error) {
	return c.search.EpicIssues(ctx, epicKey, opts)
}
