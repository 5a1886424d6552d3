package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fulcrumops/jira-mcp/internal/http"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// TransitionsClient covers workflow transitions.
type TransitionsClient struct {
	httpClient *http.Client
	cloud      bool
}

// NewTransitionsClient creates a new TransitionsClient.
func NewTransitionsClient(httpClient *http.Client, cloud bool) *TransitionsClient {
	return &TransitionsClient{
		httpClient: httpClient,
		cloud:      cloud,
	}
}

// List returns the transitions currently available on an issue.
func (c *TransitionsClient) List(ctx context.Context, issueKey string) ([]jira.Transition, error) {
	resp, err := c.httpClient.Get(ctx, "/issue/"+issueKey+"/transitions", nil)
	if err != nil {
		return nil, fmt.Errorf("getting transitions: %w", err)
	}

	var list jira.TransitionList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing transitions response: %w", err)
	}

	return list.Transitions, nil
}

// TransitionRequest describes one workflow transition to perform.
// Target identifies the transition either by ID or, case-insensitively,
// by name. Fields and Resolution are applied alongside the transition;
// Comment, when set, is attached to it.
type TransitionRequest struct {
	Target     string
	Fields     map[string]any
	Resolution string
	Comment    string
}

// Transition moves an issue through its workflow. When Target is not a
// known transition ID it is matched against the transition names.
func (c *TransitionsClient) Transition(ctx context.Context, issueKey string, req *TransitionRequest) error {
	transitions, err := c.List(ctx, issueKey)
	if err != nil {
		return err
	}

	transitionID := ""

	for _, t := range transitions {
		if t.ID == req.Target || strings.EqualFold(t.Name, req.Target) {
			transitionID = t.ID

			break
		}
	}

	if transitionID == "" {
		return fmt.Errorf("%w: %q", ErrTransitionNotFound, req.Target)
	}

	payload := map[string]any{
		"transition": map[string]any{"id": transitionID},
	}

	fields := make(map[string]any, len(req.Fields)+1)
	for k, v := range req.Fields {
		fields[k] = v
	}

	if req.Resolution != "" {
		fields["resolution"] = map[string]any{"name": req.Resolution}
	}

	if len(fields) > 0 {
		payload["fields"] = fields
	}

	if req.Comment != "" {
		var body any = req.Comment
		if c.cloud {
			body = jira.ADFDocument(req.Comment)
		}

		payload["update"] = map[string]any{
			"comment": []any{
				map[string]any{"add": map[string]any{"body": body}},
			},
		}
	}

	_, err = c.httpClient.Post(ctx, "/issue/"+issueKey+"/transitions", payload)
	if err != nil {
		return fmt.Errorf("transitioning issue: %w", err)
	}

	return nil
}
