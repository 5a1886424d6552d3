package client

import (
	"context"
	"time"

	"github.com/fulcrumops/jira-mcp/internal/http"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// NewTestClient creates a client bundle against a test server.
// cloudMode forces the API generation so tests do not depend on the
// server's host name.
func NewTestClient(baseURL string, cloudMode jira.CloudMode) *Client {
	cfg := &jira.Config{
		BaseURL:    baseURL,
		Username:   "alice@example.com",
		APIToken:   "token",
		Timeout:    5 * time.Second,
		VerifySSL:  true,
		MaxRetries: 0,
		CloudMode:  cloudMode,
	}

	return New(cfg, http.WithSleeper(func(ctx context.Context, d time.Duration) error { return nil }))
}
