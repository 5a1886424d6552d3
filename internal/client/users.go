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

// UsersClient covers user lookup. Cloud and Server expose different
// lookup parameters: Cloud identifies users by account ID or free-text
// query, Server by username.
type UsersClient struct {
	httpClient *http.Client
	cloud      bool
}

// NewUsersClient creates a new UsersClient.
func NewUsersClient(httpClient *http.Client, cloud bool) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
		cloud:      cloud,
	}
}

// Myself returns the authenticated user.
func (c *UsersClient) Myself(ctx context.Context) (*jira.User, error) {
	resp, err := c.httpClient.Get(ctx, "/myself", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	var user jira.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Profile resolves one user from an identifier: an account ID, username
// or email address, depending on the instance generation.
func (c *UsersClient) Profile(ctx context.Context, identifier string) (*jira.User, error) {
	if !c.cloud {
		query := url.Values{}
		query.Set("username", identifier)

		resp, err := c.httpClient.Get(ctx, "/user", query)
		if err != nil {
			return nil, fmt.Errorf("getting user profile: %w", err)
		}

		var user jira.User

		err = json.Unmarshal(resp.Body, &user)
		if err != nil {
			return nil, fmt.Errorf("parsing user response: %w", err)
		}

		return &user, nil
	}

	// Cloud has no direct lookup by email or name; search and take the
	// first match.
	users, err := c.Search(ctx, identifier, 1)
	if err != nil {
		return nil, fmt.Errorf("getting user profile: %w", err)
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, identifier)
	}

	return &users[0], nil
}

// Search finds users matching a free-text query. The endpoint returns a
// bare array.
func (c *UsersClient) Search(ctx context.Context, queryText string, maxResults int) ([]jira.User, error) {
	if maxResults <= 0 {
		maxResults = constants.DefaultMaxResults
	}

	query := url.Values{}
	query.Set("maxResults", strconv.Itoa(maxResults))

	if c.cloud {
		query.Set("query", queryText)
	} else {
		query.Set("username", queryText)
	}

	resp, err := c.httpClient.Get(ctx, "/user/search", query)
	if err != nil {
		return nil, fmt.Errorf("searching users: %w", err)
	}

	var users []jira.User

	err = json.Unmarshal(resp.Body, &users)
	if err != nil {
		return nil, fmt.Errorf("parsing user search response: %w", err)
	}

	return users, nil
}
