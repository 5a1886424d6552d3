package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fulcrumops/jira-mcp/internal/constants"
	"github.com/fulcrumops/jira-mcp/internal/http"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// DefaultSearchFields is the field set requested when the caller does
// not narrow the search. Cloud's next-gen search endpoint returns
// nothing useful without an explicit field list.
var DefaultSearchFields = []string{
	"summary", "status", "priority", "issuetype", "assignee",
	"reporter", "created", "updated", "description", "labels",
	"components", "project", "resolution", "resolutiondate",
}

// SearchOptions narrow a JQL search.
type SearchOptions struct {
	StartAt    int
	MaxResults int
	Fields     []string
	Expand     string
}

// SearchClient executes JQL searches against whichever search endpoint
// generation the target instance speaks.
type SearchClient struct {
	httpClient *http.Client
	cloud      bool
}

// NewSearchClient creates a new SearchClient.
func NewSearchClient(httpClient *http.Client, cloud bool) *SearchClient {
	return &SearchClient{
		httpClient: httpClient,
		cloud:      cloud,
	}
}

// Search runs a JQL query. Cloud instances use the next-gen
// /rest/api/3/search/jql endpoint and always receive an explicit field
// list; Server instances use the classic /search endpoint and only
// receive fields the caller supplied.
func (c *SearchClient) Search(ctx context.Context, jql string, opts SearchOptions) (*jira.SearchResults, error) {
	if opts.MaxResults <= 0 {
		opts.MaxResults = constants.DefaultMaxResults
	}

	if opts.MaxResults > constants.MaxMaxResults {
		opts.MaxResults = constants.MaxMaxResults
	}

	query := url.Values{}
	query.Set("jql", jql)
	query.Set("startAt", strconv.Itoa(opts.StartAt))
	query.Set("maxResults", strconv.Itoa(opts.MaxResults))

	if opts.Expand != "" {
		query.Set("expand", opts.Expand)
	}

	endpoint := constants.ServerSearchPath

	if c.cloud {
		endpoint = constants.CloudSearchPath

		fields := opts.Fields
		if len(fields) == 0 {
			fields = DefaultSearchFields
		}

		query.Set("fields", strings.Join(fields, ","))
	} else if len(opts.Fields) > 0 {
		query.Set("fields", strings.Join(opts.Fields, ","))
	}

	resp, err := c.httpClient.Get(ctx, endpoint, query)
	if err != nil {
		return nil, fmt.Errorf("searching issues: %w", err)
	}

	var results jira.SearchResults

	err = json.Unmarshal(resp.Body, &results)
	if err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	return &results, nil
}

// ProjectIssues lists the issues of one project, newest first.
func (c *SearchClient) ProjectIssues(ctx context.Context, projectKey string, opts SearchOptions) (*jira.SearchResults, error) {
	jql := fmt.Sprintf("project = %s ORDER BY created DESC", projectKey)

	results, err := c.Search(ctx, jql, opts)
	if err != nil {
		return nil, fmt.Errorf("listing project issues: %w", err)
	}

	return results, nil
}

// EpicIssues lists the issues attached to an epic via the Epic Link
// relation.
func (c *SearchClient) EpicIssues(ctx context.Context, epicKey string, opts SearchOptions) (*jira.SearchResults, error) {
	jql := fmt.Sprintf("\"Epic Link\" = %s ORDER BY created ASC", epicKey)

	results, err := c.Search(ctx, jql, opts)
	if err != nil {
		return nil, fmt.Errorf("listing epic issues: %w", err)
	}

	return results, nil
}
