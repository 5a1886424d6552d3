package tools

import (
	"fmt"
	"strings"

	"github.com/fulcrumops/jira-mcp/internal/client"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// The formatters render API payloads as markdown for the MCP client.
// Table cells escape pipes so issue summaries cannot break the layout.

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")

	return s
}

func namedOrDash(ref *jira.NamedRef) string {
	if ref == nil || ref.Name == "" {
		return "-"
	}

	return ref.Name
}

func userOrDash(u *jira.User) string {
	if u == nil || u.DisplayName == "" {
		return "-"
	}

	return u.DisplayName
}

func formatIssue(issue *jira.Issue) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s: %s\n\n", issue.Key, issue.Fields.Summary)
	fmt.Fprintf(&b, "- **Status**: %s\n", namedOrDash(issue.Fields.Status))
	fmt.Fprintf(&b, "- **Type**: %s\n", namedOrDash(issue.Fields.IssueType))
	fmt.Fprintf(&b, "- **Priority**: %s\n", namedOrDash(issue.Fields.Priority))
	fmt.Fprintf(&b, "- **Assignee**: %s\n", userOrDash(issue.Fields.Assignee))
	fmt.Fprintf(&b, "- **Reporter**: %s\n", userOrDash(issue.Fields.Reporter))

	if issue.Fields.Project != nil {
		fmt.Fprintf(&b, "- **Project**: %s\n", issue.Fields.Project.Key)
	}

	if issue.Fields.Created != "" {
		fmt.Fprintf(&b, "- **Created**: %s\n", issue.Fields.Created)
	}

	if issue.Fields.Updated != "" {
		fmt.Fprintf(&b, "- **Updated**: %s\n", issue.Fields.Updated)
	}

	if issue.Fields.Resolution != nil {
		fmt.Fprintf(&b, "- **Resolution**: %s\n", issue.Fields.Resolution.Name)
	}

	if len(issue.Fields.Labels) > 0 {
		fmt.Fprintf(&b, "- **Labels**: %s\n", strings.Join(issue.Fields.Labels, ", "))
	}

	if len(issue.Fields.Components) > 0 {
		names := make([]string, 0, len(issue.Fields.Components))
		for _, c := range issue.Fields.Components {
			names = append(names, c.Name)
		}

		fmt.Fprintf(&b, "- **Components**: %s\n", strings.Join(names, ", "))
	}

	if desc := jira.ADFText(issue.Fields.Description); desc != "" {
		fmt.Fprintf(&b, "\n## Description\n\n%s\n", desc)
	}

	return b.String()
}

func formatIssueTable(results *jira.SearchResults) string {
	if len(results.Issues) == 0 {
		return "No issues found."
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Showing %d of %d issues (starting at %d).\n\n",
		len(results.Issues), results.Total, results.StartAt)
	b.WriteString("| Key | Summary | Status | Type | Assignee |\n")
	b.WriteString("|-----|---------|--------|------|----------|\n")

	for _, issue := range results.Issues {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			issue.Key,
			escapeCell(issue.Fields.Summary),
			escapeCell(namedOrDash(issue.Fields.Status)),
			escapeCell(namedOrDash(issue.Fields.IssueType)),
			escapeCell(userOrDash(issue.Fields.Assignee)))
	}

	return b.String()
}

func formatComments(issueKey string, page *jira.CommentPage) string {
	if len(page.Comments) == 0 {
		return fmt.Sprintf("No comments on %s.", issueKey)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# Comments on %s (%d total)\n", issueKey, page.Total)

	for _, comment := range page.Comments {
		fmt.Fprintf(&b, "\n## %s (%s)\n\n%s\n",
			userOrDash(comment.Author), comment.Created, jira.ADFText(comment.Body))
	}

	return b.String()
}

func formatTransitions(issueKey string, transitions []jira.Transition) string {
	if len(transitions) == 0 {
		return fmt.Sprintf("No transitions available on %s.", issueKey)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Available transitions for %s:\n\n", issueKey)
	b.WriteString("| ID | Name | Target Status |\n")
	b.WriteString("|----|------|---------------|\n")

	for _, t := range transitions {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", t.ID, escapeCell(t.Name), escapeCell(namedOrDash(t.To)))
	}

	return b.String()
}

func formatProjects(projects []jira.Project) string {
	if len(projects) == 0 {
		return "No projects found."
	}

	var b strings.Builder

	b.WriteString("| Key | Name | Type | Lead |\n")
	b.WriteString("|-----|------|------|------|\n")

	for _, p := range projects {
		lead := "-"
		if p.Lead != nil {
			lead = p.Lead.DisplayName
		}

		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			p.Key, escapeCell(p.Name), escapeCell(p.ProjectTypeKey), escapeCell(lead))
	}

	return b.String()
}

func formatBoards(page *jira.BoardPage) string {
	if len(page.Values) == 0 {
		return "No boards found."
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Showing %d of %d boards.\n\n", len(page.Values), page.Total)
	b.WriteString("| ID | Name | Type | Project |\n")
	b.WriteString("|----|------|------|--------|\n")

	for _, board := range page.Values {
		project := "-"
		if board.Location != nil && board.Location.ProjectKey != "" {
			project = board.Location.ProjectKey
		}

		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n",
			board.ID, escapeCell(board.Name), board.Type, escapeCell(project))
	}

	return b.String()
}

func formatSprints(page *jira.SprintPage) string {
	if len(page.Values) == 0 {
		return "No sprints found."
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Showing %d of %d sprints.\n\n", len(page.Values), page.Total)
	b.WriteString("| ID | Name | State | Start | End | Goal |\n")
	b.WriteString("|----|------|-------|-------|-----|------|\n")

	for _, sprint := range page.Values {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			sprint.ID, escapeCell(sprint.Name), sprint.State,
			orDash(sprint.StartDate), orDash(sprint.EndDate), escapeCell(orDash(sprint.Goal)))
	}

	return b.String()
}

func formatSprint(sprint *jira.Sprint) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Sprint %d: %s\n\n", sprint.ID, sprint.Name)
	fmt.Fprintf(&b, "- **State**: %s\n", orDash(sprint.State))
	fmt.Fprintf(&b, "- **Start**: %s\n", orDash(sprint.StartDate))
	fmt.Fprintf(&b, "- **End**: %s\n", orDash(sprint.EndDate))
	fmt.Fprintf(&b, "- **Goal**: %s\n", orDash(sprint.Goal))

	return b.String()
}

func formatVersions(projectKey string, versions []jira.Version) string {
	if len(versions) == 0 {
		return fmt.Sprintf("No versions in project %s.", projectKey)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Versions in %s:\n\n", projectKey)
	b.WriteString("| ID | Name | Released | Archived | Release Date |\n")
	b.WriteString("|----|------|----------|----------|--------------|\n")

	for _, v := range versions {
		fmt.Fprintf(&b, "| %s | %s | %t | %t | %s |\n",
			v.ID, escapeCell(v.Name), v.Released, v.Archived, orDash(v.ReleaseDate))
	}

	return b.String()
}

func formatWorklogs(issueKey string, page *jira.WorklogPage) string {
	if len(page.Worklogs) == 0 {
		return fmt.Sprintf("No work logged on %s.", issueKey)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Work logged on %s (%d entries):\n\n", issueKey, page.Total)
	b.WriteString("| Author | Time Spent | Started | Comment |\n")
	b.WriteString("|--------|-----------|---------|--------|\n")

	for _, w := range page.Worklogs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			escapeCell(userOrDash(w.Author)), w.TimeSpent, orDash(w.Started),
			escapeCell(orDash(jira.ADFText(w.Comment))))
	}

	return b.String()
}

func formatAttachments(issueKey string, attachments []jira.Attachment) string {
	if len(attachments) == 0 {
		return fmt.Sprintf("No attachments on %s.", issueKey)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Attachments on %s:\n\n", issueKey)
	b.WriteString("| ID | Filename | Size | Type | Author | URL |\n")
	b.WriteString("|----|----------|------|------|--------|-----|\n")

	for _, a := range attachments {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			a.ID, escapeCell(a.Filename), formatSize(a.Size), orDash(a.MimeType),
			escapeCell(userOrDash(a.Author)), orDash(a.Content))
	}

	return b.String()
}

func formatUsers(users []jira.User) string {
	if len(users) == 0 {
		return "No users found."
	}

	var b strings.Builder

	b.WriteString("| Display Name | Account ID | Email | Active |\n")
	b.WriteString("|--------------|------------|-------|--------|\n")

	for _, u := range users {
		id := u.AccountID
		if id == "" {
			id = u.Name
		}

		fmt.Fprintf(&b, "| %s | %s | %s | %t |\n",
			escapeCell(u.DisplayName), orDash(id), orDash(u.EmailAddress), u.Active)
	}

	return b.String()
}

func formatUser(user *jira.User) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", user.DisplayName)

	if user.AccountID != "" {
		fmt.Fprintf(&b, "- **Account ID**: %s\n", user.AccountID)
	}

	if user.Name != "" {
		fmt.Fprintf(&b, "- **Username**: %s\n", user.Name)
	}

	fmt.Fprintf(&b, "- **Email**: %s\n", orDash(user.EmailAddress))
	fmt.Fprintf(&b, "- **Active**: %t\n", user.Active)
	fmt.Fprintf(&b, "- **Time Zone**: %s\n", orDash(user.TimeZone))

	return b.String()
}

func formatFields(fields []jira.Field) string {
	if len(fields) == 0 {
		return "No fields found."
	}

	var b strings.Builder

	b.WriteString("| ID | Name | Custom |\n")
	b.WriteString("|----|------|--------|\n")

	for _, f := range fields {
		fmt.Fprintf(&b, "| %s | %s | %t |\n", f.ID, escapeCell(f.Name), f.Custom)
	}

	return b.String()
}

func formatLinkTypes(types []jira.IssueLinkType) string {
	if len(types) == 0 {
		return "No link types found."
	}

	var b strings.Builder

	b.WriteString("| ID | Name | Inward | Outward |\n")
	b.WriteString("|----|------|--------|--------|\n")

	for _, lt := range types {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			lt.ID, escapeCell(lt.Name), escapeCell(lt.Inward), escapeCell(lt.Outward))
	}

	return b.String()
}

func formatChangelogs(results map[string][]client.ChangelogEntry, failures map[string]error, keys []string) string {
	var b strings.Builder

	for _, key := range keys {
		if err, failed := failures[key]; failed {
			fmt.Fprintf(&b, "# %s\n\nError: %s\n\n", key, err.Error())

			continue
		}

		entries := results[key]

		fmt.Fprintf(&b, "# %s\n\n", key)

		if len(entries) == 0 {
			b.WriteString("No changes recorded.\n\n")

			continue
		}

		for _, entry := range entries {
			fmt.Fprintf(&b, "## %s by %s\n\n", entry.Created, userOrDash(entry.Author))

			for _, item := range entry.Items {
				fmt.Fprintf(&b, "- %s: %s -> %s\n", item.Field, orDash(item.FromString), orDash(item.ToString))
			}

			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatSize(size int64) string {
	const unit = 1024

	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
