package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fulcrumops/jira-mcp/internal/http"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// LinksClient covers issue links and remote links.
type LinksClient struct {
	httpClient *http.Client
}

// NewLinksClient creates a new LinksClient.
func NewLinksClient(httpClient *http.Client) *LinksClient {
	return &LinksClient{
		httpClient: httpClient,
	}
}

// Types returns the link relationship types the instance supports.
func (c *LinksClient) Types(ctx context.Context) ([]jira.IssueLinkType, error) {
	resp, err := c.httpClient.Get(ctx, "/issueLinkType", nil)
	if err != nil {
		return nil, fmt.Errorf("listing link types: %w", err)
	}

	var envelope struct {
		IssueLinkTypes []jira.IssueLinkType `json:"issueLinkTypes"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing link types response: %w", err)
	}

	return envelope.IssueLinkTypes, nil
}

// Create links two issues. linkType is the relationship name, for
// example Blocks; inwardKey blocks outwardKey when the type is Blocks.
func (c *LinksClient) Create(ctx context.Context, linkType, inwardKey, outwardKey, comment string) error {
	payload := map[string]any{
		"type":         map[string]any{"name": linkType},
		"inwardIssue":  map[string]any{"key": inwardKey},
		"outwardIssue": map[string]any{"key": outwardKey},
	}

	if comment != "" {
		payload["comment"] = map[string]any{"body": comment}
	}

	_, err := c.httpClient.Post(ctx, "/issueLink", payload)
	if err != nil {
		return fmt.Errorf("creating issue link: %w", err)
	}

	return nil
}

// Remove deletes an issue link by ID.
func (c *LinksClient) Remove(ctx context.Context, linkID string) error {
	_, err := c.httpClient.Delete(ctx, "/issueLink/"+linkID)
	if err != nil {
		return fmt.Errorf("removing issue link: %w", err)
	}

	return nil
}

// CreateRemote attaches an external URL to an issue.
func (c *LinksClient) CreateRemote(ctx context.Context, issueKey, linkURL, title, summary, relationship string) (*jira.RemoteLink, error) {
	object := map[string]any{
		"url":   linkURL,
		"title": title,
	}

	if summary != "" {
		object["summary"] = summary
	}

	payload := map[string]any{"object": object}

	if relationship != "" {
		payload["relationship"] = relationship
	}

	resp, err := c.httpClient.Post(ctx, "/issue/"+issueKey+"/remotelink", payload)
	if err != nil {
		return nil, fmt.Errorf("creating remote link: %w", err)
	}

	var link jira.RemoteLink

	err = json.Unmarshal(resp.Body, &link)
	if err != nil {
		return nil, fmt.Errorf("parsing remote link response: %w", err)
	}

	return &link, nil
}
