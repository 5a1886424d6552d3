package tools

// ToolInfo describes one registered tool for listing purposes.
type ToolInfo struct {
	Name        string `json:"name" yaml:"name"`
	Write       bool   `json:"write" yaml:"write"`
	Description string `json:"description" yaml:"description"`
}

// Catalog returns every tool the server can register, in registration
// order. The write flag here must match the flag passed to handler at
// registration time since both feed the read-only guard story.
func Catalog() []ToolInfo {
	return []ToolInfo{
		{Name: "jira_get_issue", Write: false, Description: "Get details of a specific issue"},
		{Name: "jira_create_issue", Write: true, Description: "Create a new issue"},
		{Name: "jira_update_issue", Write: true, Description: "Update fields of an existing issue"},
		{Name: "jira_delete_issue", Write: true, Description: "Delete an issue"},
		{Name: "jira_batch_create_issues", Write: true, Description: "Create multiple issues in one call"},
		{Name: "jira_batch_get_changelogs", Write: false, Description: "Get changelogs for multiple issues"},
		{Name: "jira_search", Write: false, Description: "Search issues with JQL"},
		{Name: "jira_get_project_issues", Write: false, Description: "List issues of a project"},
		{Name: "jira_get_comments", Write: false, Description: "List comments on an issue"},
		{Name: "jira_add_comment", Write: true, Description: "Add a comment to an issue"},
		{Name: "jira_get_transitions", Write: false, Description: "List available transitions for an issue"},
		{Name: "jira_transition_issue", Write: true, Description: "Move an issue through a workflow transition"},
		{Name: "jira_get_all_projects", Write: false, Description: "List visible projects"},
		{Name: "jira_get_agile_boards", Write: false, Description: "List agile boards"},
		{Name: "jira_get_board_issues", Write: false, Description: "List issues on a board"},
		{Name: "jira_get_sprints_from_board", Write: false, Description: "List sprints of a board"},
		{Name: "jira_get_sprint_issues", Write: false, Description: "List issues in a sprint"},
		{Name: "jira_create_sprint", Write: true, Description: "Create a sprint on a board"},
		{Name: "jira_update_sprint", Write: true, Description: "Update or close a sprint"},
		{Name: "jira_link_to_epic", Write: true, Description: "Link an issue to an epic"},
		{Name: "jira_get_epic_issues", Write: false, Description: "List issues linked to an epic"},
		{Name: "jira_get_link_types", Write: false, Description: "List issue link types"},
		{Name: "jira_create_issue_link", Write: true, Description: "Link two issues"},
		{Name: "jira_remove_issue_link", Write: true, Description: "Remove an issue link"},
		{Name: "jira_create_remote_issue_link", Write: true, Description: "Attach a web link to an issue"},
		{Name: "jira_get_worklog", Write: false, Description: "List worklog entries of an issue"},
		{Name: "jira_add_worklog", Write: true, Description: "Log work on an issue"},
		{Name: "jira_get_project_versions", Write: false, Description: "List versions of a project"},
		{Name: "jira_create_version", Write: true, Description: "Create a project version"},
		{Name: "jira_batch_create_versions", Write: true, Description: "Create multiple project versions"},
		{Name: "jira_download_attachments", Write: false, Description: "Download issue attachments to a directory"},
		{Name: "jira_add_attachment", Write: true, Description: "Upload an attachment to an issue"},
		{Name: "jira_get_user_profile", Write: false, Description: "Get a user profile"},
		{Name: "jira_search_users", Write: false, Description: "Search users"},
		{Name: "jira_search_fields", Write: false, Description: "Search field definitions"},
	}
}
