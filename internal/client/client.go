// Package client holds the per-resource Jira API clients. Each one is a
// thin layer over the shared request pipeline: it knows its endpoints
// and payload shapes, nothing about transport, retry or authentication.
package client

import (
	"errors"

	"github.com/fulcrumops/jira-mcp/internal/http"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// Static errors for err113 compliance.
var (
	ErrTransitionNotFound = errors.New("no transition matches the requested status")
	ErrSprintStateInvalid = errors.New("sprint state must be active or closed")
	ErrUserNotFound       = errors.New("no user matches the given identifier")
	ErrEmptyBatch         = errors.New("batch request contains no entries")
)

// Client bundles the resource clients over one shared pipeline.
type Client struct {
	httpClient *http.Client
	config     *jira.Config

	issues      *IssuesClient
	search      *SearchClient
	comments    *CommentsClient
	transitions *TransitionsClient
	projects    *ProjectsClient
	boards      *BoardsClient
	sprints     *SprintsClient
	epics       *EpicsClient
	links       *LinksClient
	worklogs    *WorklogsClient
	versions    *VersionsClient
	attachments *AttachmentsClient
	users       *UsersClient
	fields      *FieldsClient
}

// New builds the client bundle from a validated configuration.
func New(cfg *jira.Config, opts ...http.Option) *Client {
	httpClient := http.NewClient(cfg, opts...)
	cloud := cfg.IsCloud()

	c := &Client{
		httpClient: httpClient,
		config:     cfg,
	}

	c.issues = NewIssuesClient(httpClient, cloud)
	c.search = NewSearchClient(httpClient, cloud)
	c.comments = NewCommentsClient(httpClient, cloud)
	c.transitions = NewTransitionsClient(httpClient, cloud)
	c.projects = NewProjectsClient(httpClient)
	c.boards = NewBoardsClient(httpClient)
	c.sprints = NewSprintsClient(httpClient)
	c.epics = NewEpicsClient(c.issues, c.search)
	c.links = NewLinksClient(httpClient)
	c.worklogs = NewWorklogsClient(httpClient, cloud)
	c.versions = NewVersionsClient(httpClient)
	c.attachments = NewAttachmentsClient(httpClient, c.issues)
	c.users = NewUsersClient(httpClient, cloud)
	c.fields = NewFieldsClient(httpClient)

	return c
}

// Close releases the underlying transport.
func (c *Client) Close() {
	c.httpClient.Close()
}

// Config returns the configuration the client was built with.
func (c *Client) Config() *jira.Config { return c.config }

// HTTP exposes the raw pipeline for callers that need endpoints the
// resource clients do not cover.
func (c *Client) HTTP() *http.Client { return c.httpClient }

func (c *Client) Issues() *IssuesClient           { return c.issues }
func (c *Client) Search() *SearchClient           { return c.search }
func (c *Client) Comments() *CommentsClient       { return c.comments }
func (c *Client) Transitions() *TransitionsClient { return c.transitions }
func (c *Client) Projects() *ProjectsClient       { return c.projects }
func (c *Client) Boards() *BoardsClient           { return c.boards }
func (c *Client) Sprints() *SprintsClient         { return c.sprints }
func (c *Client) Epics() *EpicsClient             { return c.epics }
func (c *Client) Links() *LinksClient             { return c.links }
func (c *Client) Worklogs() *WorklogsClient       { return c.worklogs }
func (c *Client) Versions() *VersionsClient       { return c.versions }
func (c *Client) Attachments() *AttachmentsClient { return c.attachments }
func (c *Client) Users() *UsersClient             { return c.users }
func (c *Client) Fields() *FieldsClient           { return c.fields }
