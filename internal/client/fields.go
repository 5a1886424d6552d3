package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fulcrumops/jira-mcp/internal/http"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// FieldsClient covers field definitions.
type FieldsClient struct {
	httpClient *http.Client
}

// NewFieldsClient creates a new FieldsClient.
func NewFieldsClient(httpClient *http.Client) *FieldsClient {
	return &FieldsClient{
		httpClient: httpClient,
	}
}

// List returns all field definitions, system and custom. The endpoint
// returns a bare array.
func (c *FieldsClient) List(ctx context.Context) ([]jira.Field, error) {
	resp, err := c.httpClient.Get(ctx, "/field", nil)
	if err != nil {
		return nil, fmt.Errorf("listing fields: %w", err)
	}

	var fields []jira.Field

	err = json.Unmarshal(resp.Body, &fields)
	if err != nil {
		return nil, fmt.Errorf("parsing fields response: %w", err)
	}

	return fields, nil
}

// Search filters field definitions by a case-insensitive keyword over
// name and ID. An empty keyword returns everything; the API has no
// server-side filter for fields.
func (c *FieldsClient) Search(ctx context.Context, keyword string, limit int) ([]jira.Field, error) {
	fields, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	if keyword == "" {
		return capFields(fields, limit), nil
	}

	needle := strings.ToLower(keyword)

	var matched []jira.Field

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f.Name), needle) || strings.Contains(strings.ToLower(f.ID), needle) {
			matched = append(matched, f)
		}
	}

	return capFields(matched, limit), nil
}

func capFields(fields []jira.Field, limit int) []jira.Field {
	if limit > 0 && len(fields) > limit {
		return fields[:limit]
	}

	return fields
}
