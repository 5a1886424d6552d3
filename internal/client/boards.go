package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fulcrumops/jira-mcp/internal/constants"
	"github.com/fulcrumops/jira-mcp/internal/http"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// BoardsClient covers the agile board endpoints.
type BoardsClient struct {
	httpClient *http.Client
}

// NewBoardsClient creates a new BoardsClient.
func NewBoardsClient(httpClient *http.Client) *BoardsClient {
	return &BoardsClient{
		httpClient: httpClient,
	}
}

// BoardFilter narrows a board listing. Zero values mean no filtering.
type BoardFilter struct {
	Type       string // scrum or kanban
	ProjectKey string
	Name       string
	StartAt    int
	MaxResults int
}

// List returns agile boards matching the filter.
func (c *BoardsClient) List(ctx context.Context, filter BoardFilter) (*jira.BoardPage, error) {
	if filter.MaxResults <= 0 {
		filter.MaxResults = constants.DefaultMaxResults
	}

	query := url.Values{}
	query.Set("startAt", strconv.Itoa(filter.StartAt))
	query.Set("maxResults", strconv.Itoa(filter.MaxResults))

	if filter.Type != "" {
		query.Set("type", filter.Type)
	}

	if filter.ProjectKey != "" {
		query.Set("projectKeyOrId", filter.ProjectKey)
	}

	if filter.Name != "" {
		query.Set("name", filter.Name)
	}

	resp, err := c.httpClient.Get(ctx, constants.AgileBasePath+"/board", query)
	if err != nil {
		return nil, fmt.Errorf("listing boards: %w", err)
	}

	var page jira.BoardPage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing boards response: %w", err)
	}

	return &page, nil
}

// Issues returns the issues on a board, optionally narrowed by JQL.
func (c *BoardsClient) Issues(ctx context.Context, boardID int, jql string, startAt, maxResults int) (*jira.SearchResults, error) {
	if maxResults <= 0 {
		maxResults = constants.DefaultMaxResults
	}

	query := url.Values{}
	query.Set("startAt", strconv.Itoa(startAt))
	query.Set("maxResults", strconv.Itoa(maxResults))

	if jql != "" {
		query.Set("jql", jql)
	}

	endpoint := fmt.Sprintf("%s/board/%d/issue", constants.AgileBasePath, boardID)

	resp, err := c.httpClient.Get(ctx, endpoint, query)
	if err != nil {
		return nil, fmt.Errorf("listing board issues: %w", err)
	}

	var results jira.SearchResults

	err = json.Unmarshal(resp.Body, &results)
	if err != nil {
		return nil, fmt.Errorf("parsing board issues response: %w", err)
	}

	return &results, nil
}
