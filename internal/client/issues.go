package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/fulcrumops/jira-mcp/internal/http"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// IssuesClient covers the core issue lifecycle: get, create, update,
// delete, plus the bulk variants.
type IssuesClient struct {
	httpClient *http.Client
	cloud      bool
}

// NewIssuesClient creates a new IssuesClient.
func NewIssuesClient(httpClient *http.Client, cloud bool) *IssuesClient {
	return &IssuesClient{
		httpClient: httpClient,
		cloud:      cloud,
	}
}

// Get retrieves an issue by key. fields limits the returned field set
// (nil means everything); expand requests expansions such as changelog.
func (c *IssuesClient) Get(ctx context.Context, key string, fields []string, expand string) (*jira.Issue, error) {
	query := url.Values{}
	if len(fields) > 0 {
		query.Set("fields", strings.Join(fields, ","))
	}

	if expand != "" {
		query.Set("expand", expand)
	}

	resp, err := c.httpClient.Get(ctx, "/issue/"+key, query)
	if err != nil {
		return nil, fmt.Errorf("getting issue: %w", err)
	}

	return parseIssue(resp.Body)
}

// Create creates a new issue from the given field map. A plain string
// description is converted to an ADF document when the target is Cloud.
func (c *IssuesClient) Create(ctx context.Context, fields map[string]any) (*jira.CreatedIssue, error) {
	resp, err := c.httpClient.Post(ctx, "/issue", map[string]any{
		"fields": c.normalizeFields(fields),
	})
	if err != nil {
		return nil, fmt.Errorf("creating issue: %w", err)
	}

	var created jira.CreatedIssue

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing created issue response: %w", err)
	}

	return &created, nil
}

// Update applies a partial field update to an issue. The endpoint
// returns 204 on success.
func (c *IssuesClient) Update(ctx context.Context, key string, fields map[string]any) error {
	_, err := c.httpClient.Put(ctx, "/issue/"+key, map[string]any{
		"fields": c.normalizeFields(fields),
	})
	if err != nil {
		return fmt.Errorf("updating issue: %w", err)
	}

	return nil
}

// Delete deletes an issue. deleteSubtasks cascades to subtasks.
func (c *IssuesClient) Delete(ctx context.Context, key string, deleteSubtasks bool) error {
	query := url.Values{}
	if deleteSubtasks {
		query.Set("deleteSubtasks", "true")
	}

	_, err := c.httpClient.Do(ctx, &http.Request{
		Method:   "DELETE",
		Endpoint: "/issue/" + key,
		Query:    query,
	})
	if err != nil {
		return fmt.Errorf("deleting issue: %w", err)
	}

	return nil
}

// BatchCreateResult pairs successfully created issues with the per-entry
// failures the bulk endpoint reports.
type BatchCreateResult struct {
	Issues []jira.CreatedIssue `json:"issues"`
	Errors []BatchCreateError  `json:"errors"`
}

// BatchCreateError is one failed entry of a bulk create.
type BatchCreateError struct {
	FailedElementNumber int            `json:"failedElementNumber"`
	ElementErrors       map[string]any `json:"elementErrors"`
}

// BatchCreate creates several issues in one call via POST /issue/bulk.
func (c *IssuesClient) BatchCreate(ctx context.Context, fieldSets []map[string]any) (*BatchCreateResult, error) {
	if len(fieldSets) == 0 {
		return nil, ErrEmptyBatch
	}

	updates := make([]map[string]any, 0, len(fieldSets))
	for _, fields := range fieldSets {
		updates = append(updates, map[string]any{"fields": c.normalizeFields(fields)})
	}

	resp, err := c.httpClient.Post(ctx, "/issue/bulk", map[string]any{"issueUpdates": updates})
	if err != nil {
		return nil, fmt.Errorf("creating issues in bulk: %w", err)
	}

	var result BatchCreateResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing bulk create response: %w", err)
	}

	return &result, nil
}

// ChangelogEntry is one history entry of an issue changelog.
type ChangelogEntry struct {
	ID      string          `json:"id"`
	Author  *jira.User      `json:"author,omitempty"`
	Created string          `json:"created,omitempty"`
	Items   []ChangelogItem `json:"items"`
}

// ChangelogItem is a single field change within a changelog entry.
type ChangelogItem struct {
	Field      string `json:"field"`
	FromString string `json:"fromString,omitempty"`
	ToString   string `json:"toString,omitempty"`
}

// Changelog fetches the change history of one issue via the changelog
// expansion.
func (c *IssuesClient) Changelog(ctx context.Context, key string) ([]ChangelogEntry, error) {
	query := url.Values{}
	query.Set("fields", "summary")
	query.Set("expand", "changelog")

	resp, err := c.httpClient.Get(ctx, "/issue/"+key, query)
	if err != nil {
		return nil, fmt.Errorf("getting issue changelog: %w", err)
	}

	var envelope struct {
		Changelog struct {
			Histories []ChangelogEntry `json:"histories"`
		} `json:"changelog"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing changelog response: %w", err)
	}

	return envelope.Changelog.Histories, nil
}

// BatchChangelogs fetches changelogs for several issues. Failures on
// single issues are reported per key, not as an overall failure.
func (c *IssuesClient) BatchChangelogs(ctx context.Context, keys []string) (map[string][]ChangelogEntry, map[string]error) {
	results := make(map[string][]ChangelogEntry, len(keys))
	failures := make(map[string]error)

	for _, key := range keys {
		entries, err := c.Changelog(ctx, key)
		if err != nil {
			failures[key] = err

			continue
		}

		results[key] = entries
	}

	return results, failures
}

// normalizeFields returns a copy of fields with a string description
// converted for the target API generation. The input map is not mutated.
func (c *IssuesClient) normalizeFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}

	if desc, ok := out["description"].(string); ok && c.cloud {
		out["description"] = jira.ADFDocument(desc)
	}

	return out
}

// parseIssue decodes an issue body into both the typed struct and the
// raw map so callers keep access to custom fields.
func parseIssue(body []byte) (*jira.Issue, error) {
	var issue jira.Issue

	err := json.Unmarshal(body, &issue)
	if err != nil {
		return nil, fmt.Errorf("parsing issue response: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err == nil {
		issue.Raw = raw
	}

	return &issue, nil
}
