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

// SprintsClient covers the agile sprint endpoints.
type SprintsClient struct {
	httpClient *http.Client
}

// NewSprintsClient creates a new SprintsClient.
func NewSprintsClient(httpClient *http.Client) *SprintsClient {
	return &SprintsClient{
		httpClient: httpClient,
	}
}

// ListForBoard returns the sprints of a board, optionally filtered by
// state (future, active, closed).
func (c *SprintsClient) ListForBoard(ctx context.Context, boardID int, state string, startAt, maxResults int) (*jira.SprintPage, error) {
	if maxResults <= 0 {
		maxResults = constants.DefaultMaxResults
	}

	query := url.Values{}
	query.Set("startAt", strconv.Itoa(startAt))
	query.Set("maxResults", strconv.Itoa(maxResults))

	if state != "" {
		query.Set("state", state)
	}

	endpoint := fmt.Sprintf("%s/board/%d/sprint", constants.AgileBasePath, boardID)

	resp, err := c.httpClient.Get(ctx, endpoint, query)
	if err != nil {
		return nil, fmt.Errorf("listing sprints: %w", err)
	}

	var page jira.SprintPage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing sprints response: %w", err)
	}

	return &page, nil
}

// Issues returns the issues in a sprint.
func (c *SprintsClient) Issues(ctx context.Context, sprintID int, startAt, maxResults int) (*jira.SearchResults, error) {
	if maxResults <= 0 {
		maxResults = constants.DefaultMaxResults
	}

	query := url.Values{}
	query.Set("startAt", strconv.Itoa(startAt))
	query.Set("maxResults", strconv.Itoa(maxResults))

	endpoint := fmt.Sprintf("%s/sprint/%d/issue", constants.AgileBasePath, sprintID)

	resp, err := c.httpClient.Get(ctx, endpoint, query)
	if err != nil {
		return nil, fmt.Errorf("listing sprint issues: %w", err)
	}

	var results jira.SearchResults

	err = json.Unmarshal(resp.Body, &results)
	if err != nil {
		return nil, fmt.Errorf("parsing sprint issues response: %w", err)
	}

	return &results, nil
}

// Create creates a sprint on a board. Dates are ISO 8601 strings and
// optional.
func (c *SprintsClient) Create(ctx context.Context, boardID int, name, startDate, endDate, goal string) (*jira.Sprint, error) {
	payload := map[string]any{
		"name":          name,
		"originBoardId": boardID,
	}

	if startDate != "" {
		payload["startDate"] = startDate
	}

	if endDate != "" {
		payload["endDate"] = endDate
	}

	if goal != "" {
		payload["goal"] = goal
	}

	resp, err := c.httpClient.Post(ctx, constants.AgileBasePath+"/sprint", payload)
	if err != nil {
		return nil, fmt.Errorf("creating sprint: %w", err)
	}

	var sprint jira.Sprint

	err = json.Unmarshal(resp.Body, &sprint)
	if err != nil {
		return nil, fmt.Errorf("parsing sprint response: %w", err)
	}

	return &sprint, nil
}

// SprintUpdate is a partial sprint update. Empty fields are left
// untouched.
type SprintUpdate struct {
	Name      string
	State     string // active or closed; sprints cannot be moved back to future
	StartDate string
	EndDate   string
	Goal      string
}

// Update applies a partial update to a sprint.
func (c *SprintsClient) Update(ctx context.Context, sprintID int, update *SprintUpdate) (*jira.Sprint, error) {
	if update.State != "" && update.State != "active" && update.State != "closed" {
		return nil, fmt.Errorf("%w: got %q", ErrSprintStateInvalid, update.State)
	}

	payload := map[string]any{}

	if update.Name != "" {
		payload["name"] = update.Name
	}

	if update.State != "" {
		payload["state"] = update.State
	}

	if update.StartDate != "" {
		payload["startDate"] = update.StartDate
	}

	if update.EndDate != "" {
		payload["endDate"] = update.EndDate
	}

	if update.Goal != "" {
		payload["goal"] = update.Goal
	}

	endpoint := fmt.Sprintf("%s/sprint/%d", constants.AgileBasePath, sprintID)

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:   "PUT",
		Endpoint: endpoint,
		Body:     payload,
	})
	if err != nil {
		return nil, fmt.Errorf("updating sprint: %w", err)
	}

	var sprint jira.Sprint

	err = json.Unmarshal(resp.Body, &sprint)
	if err != nil {
		return nil, fmt.Errorf("parsing sprint response: %w", err)
	}

	return &sprint, nil
}
