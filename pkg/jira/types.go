package jira

import "fmt"

// The Jira REST API returns large, partially dynamic objects. These
// types cover the fields the formatting layer renders; everything else
// passes through untouched in the raw bodies the clients keep.

// User is a Jira user reference.
type User struct {
	AccountID    string `json:"accountId,omitempty"`
	Name         string `json:"name,omitempty"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress,omitempty"`
	Active       bool   `json:"active"`
	TimeZone     string `json:"timeZone,omitempty"`
}

// NamedRef is the {"name": ...} shape Jira uses for statuses, types,
// priorities and resolutions.
type NamedRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// ProjectRef is the project stanza embedded in issue fields.
type ProjectRef struct {
	ID   string `json:"id,omitempty"`
	Key  string `json:"key"`
	Name string `json:"name,omitempty"`
}

// IssueFields covers the well-known issue fields. Description and
// comment bodies are `any` because Cloud returns Atlassian Document
// Format objects where Server returns plain strings.
type IssueFields struct {
	Summary        string       `json:"summary"`
	Description    any          `json:"description,omitempty"`
	Status         *NamedRef    `json:"status,omitempty"`
	IssueType      *NamedRef    `json:"issuetype,omitempty"`
	Priority       *NamedRef    `json:"priority,omitempty"`
	Resolution     *NamedRef    `json:"resolution,omitempty"`
	ResolutionDate string       `json:"resolutiondate,omitempty"`
	Assignee       *User        `json:"assignee,omitempty"`
	Reporter       *User        `json:"reporter,omitempty"`
	Created        string       `json:"created,omitempty"`
	Updated        string       `json:"updated,omitempty"`
	Labels         []string     `json:"labels,omitempty"`
	Components     []NamedRef   `json:"components,omitempty"`
	Project        *ProjectRef  `json:"project,omitempty"`
	Attachments    []Attachment `json:"attachment,omitempty"`
}

// Issue is a Jira issue as returned by the issue and search endpoints.
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Self   string      `json:"self,omitempty"`
	Fields IssueFields `json:"fields"`

	// Raw carries dynamic fields (custom fields, expansions) that the
	// typed struct does not model. Populated by the issues client.
	Raw map[string]any `json:"-"`
}

// CreatedIssue is the minimal response of POST /issue.
type CreatedIssue struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// SearchResults is the envelope of both search endpoint generations.
type SearchResults struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// Comment is a single issue comment. Body may be a string or an ADF
// document.
type Comment struct {
	ID      string `json:"id"`
	Author  *User  `json:"author,omitempty"`
	Body    any    `json:"body"`
	Created string `json:"created,omitempty"`
	Updated string `json:"updated,omitempty"`
}

// CommentPage is the envelope of GET /issue/{key}/comment.
type CommentPage struct {
	StartAt    int       `json:"startAt"`
	MaxResults int       `json:"maxResults"`
	Total      int       `json:"total"`
	Comments   []Comment `json:"comments"`
}

// Transition is a workflow transition available on an issue.
type Transition struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	To   *NamedRef `json:"to,omitempty"`
}

// TransitionList is the envelope of GET /issue/{key}/transitions.
type TransitionList struct {
	Transitions []Transition `json:"transitions"`
}

// Project is a Jira project.
type Project struct {
	ID             string `json:"id"`
	Key            string `json:"key"`
	Name           string `json:"name"`
	ProjectTypeKey string `json:"projectTypeKey,omitempty"`
	Lead           *User  `json:"lead,omitempty"`
}

// BoardLocation ties a board to its project.
type BoardLocation struct {
	ProjectID  int    `json:"projectId,omitempty"`
	ProjectKey string `json:"projectKey,omitempty"`
}

// Board is an agile board.
type Board struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	Location *BoardLocation `json:"location,omitempty"`
}

// BoardPage is the agile API list envelope for boards.
type BoardPage struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Values     []Board `json:"values"`
}

// Sprint is an agile sprint.
type Sprint struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	State         string `json:"state,omitempty"`
	StartDate     string `json:"startDate,omitempty"`
	EndDate       string `json:"endDate,omitempty"`
	Goal          string `json:"goal,omitempty"`
	OriginBoardID int    `json:"originBoardId,omitempty"`
}

// SprintPage is the agile API list envelope for sprints.
type SprintPage struct {
	StartAt    int      `json:"startAt"`
	MaxResults int      `json:"maxResults"`
	Total      int      `json:"total"`
	Values     []Sprint `json:"values"`
}

// Version is a project version.
type Version struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Released    bool   `json:"released"`
	Archived    bool   `json:"archived"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	ProjectID   int    `json:"projectId,omitempty"`
}

// Worklog is a single work log entry. Comment may be ADF on Cloud.
type Worklog struct {
	ID               string `json:"id"`
	Author           *User  `json:"author,omitempty"`
	TimeSpent        string `json:"timeSpent"`
	TimeSpentSeconds int    `json:"timeSpentSeconds"`
	Started          string `json:"started,omitempty"`
	Comment          any    `json:"comment,omitempty"`
}

// WorklogPage is the envelope of GET /issue/{key}/worklog.
type WorklogPage struct {
	StartAt    int       `json:"startAt"`
	MaxResults int       `json:"maxResults"`
	Total      int       `json:"total"`
	Worklogs   []Worklog `json:"worklogs"`
}

// Attachment is issue attachment metadata. Content is an absolute URL
// served by the API itself.
type Attachment struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Author   *User  `json:"author,omitempty"`
	Created  string `json:"created,omitempty"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType,omitempty"`
	Content  string `json:"content,omitempty"`
}

// Field is a field definition from GET /field.
type Field struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Custom bool   `json:"custom"`
}

// IssueLinkType describes a link relationship.
type IssueLinkType struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Inward  string `json:"inward"`
	Outward string `json:"outward"`
}

// RemoteLink is the response of creating a remote issue link.
type RemoteLink struct {
	ID   int    `json:"id"`
	Self string `json:"self"`
}

// ADFDocument builds a minimal Atlassian Document Format body wrapping
// a single paragraph of plain text. Cloud comment and description
// endpoints require this shape.
func ADFDocument(text string) map[string]any {
	return map[string]any{
		"type":    "doc",
		"version": 1,
		"content": []any{
			map[string]any{
				"type": "paragraph",
				"content": []any{
					map[string]any{"type": "text", "text": text},
				},
			},
		},
	}
}

// ADFText extracts plain text from a value that is either already a
// string or an ADF document. Only paragraph/text nodes are walked; other
// node types are skipped.
func ADFText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case map[string]any:
		content, _ := val["content"].([]any)

		var parts []string

		for _, node := range content {
			n, ok := node.(map[string]any)
			if !ok || n["type"] != "paragraph" {
				continue
			}

			para := ""

			inner, _ := n["content"].([]any)
			for _, tn := range inner {
				t, ok := tn.(map[string]any)
				if !ok || t["type"] != "text" {
					continue
				}

				if s, ok := t["text"].(string); ok {
					para += s
				}
			}

			parts = append(parts, para)
		}

		out := ""

		for i, p := range parts {
			if i > 0 {
				out += "\n\n"
			}

			out += p
		}

		return out
	default:
		return fmt.Sprint(v)
	}
}
