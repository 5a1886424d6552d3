package tools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

func TestFormatIssue(t *testing.T) {
	t.Parallel()

	issue := &jira.Issue{
		Key: "PROJ-1",
		Fields: jira.IssueFields{
			Summary:     "Fix login page",
			Status:      &jira.NamedRef{Name: "In Progress"},
			IssueType:   &jira.NamedRef{Name: "Bug"},
			Assignee:    &jira.User{DisplayName: "Alice"},
			Labels:      []string{"auth", "frontend"},
			Description: "Users cannot log in with SSO.",
		},
	}

	out := formatIssue(issue)

	assert.Contains(t, out, "# PROJ-1: Fix login page")
	assert.Contains(t, out, "**Status**: In Progress")
	assert.Contains(t, out, "**Assignee**: Alice")
	assert.Contains(t, out, "**Labels**: auth, frontend")
	assert.Contains(t, out, "Users cannot log in with SSO.")
	assert.Contains(t, out, "**Priority**: -")
}

func TestFormatIssue_ADFDescription(t *testing.T) {
	t.Parallel()

	issue := &jira.Issue{
		Key: "PROJ-2",
		Fields: jira.IssueFields{
			Summary:     "Cloud issue",
			Description: jira.ADFDocument("rendered from a document"),
		},
	}

	assert.Contains(t, formatIssue(issue), "rendered from a document")
}

func TestFormatIssueTable(t *testing.T) {
	t.Parallel()

	t.Run("empty result", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "No issues found.", formatIssueTable(&jira.SearchResults{}))
	})

	t.Run("escapes pipes in summaries", func(t *testing.T) {
		t.Parallel()

		results := &jira.SearchResults{
			Total: 1,
			Issues: []jira.Issue{{
				Key: "PROJ-1",
				Fields: jira.IssueFields{
					Summary: "apply a | b filter",
					Status:  &jira.NamedRef{Name: "To Do"},
				},
			}},
		}

		out := formatIssueTable(results)
		assert.Contains(t, out, `apply a \| b filter`)
		assert.Contains(t, out, "| Key | Summary |")
	})
}

func TestFormatSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size     int64
		expected string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{3 * 1024 * 1024 * 1024, "3.0 GiB"},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.expected, formatSize(testCase.size))
	}
}

func TestFormatChangelogs(t *testing.T) {
	t.Parallel()

	out := formatChangelogs(nil, nil, nil)
	assert.Empty(t, out)
}

func TestFormatWorklogs(t *testing.T) {
	t.Parallel()

	page := &jira.WorklogPage{
		Total: 1,
		Worklogs: []jira.Worklog{{
			Author:    &jira.User{DisplayName: "Alice"},
			TimeSpent: "2h",
			Comment:   "reviewed the fix",
		}},
	}

	out := formatWorklogs("PROJ-1", page)
	assert.True(t, strings.HasPrefix(out, "Work logged on PROJ-1"))
	assert.Contains(t, out, "| Alice | 2h |")
}
