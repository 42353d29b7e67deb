package tools

// SearchIssuesParams defines the input parameters for search_issues.
type SearchIssuesParams struct {
	JQL        string `json:"jql" jsonschema:"JQL query string (e.g., 'project = PROJ AND status = Open')"`
	MaxResults *int   `json:"max_results,omitempty" jsonschema:"Maximum number of results to return (default: 50, max: 100)"`
}

// GetIssueParams defines the input parameters for get_issue.
type GetIssueParams struct {
	IssueKey string `json:"issue_key" jsonschema:"The issue key (e.g., 'PROJ-123')"`
}

// AddCommentParams defines the input parameters for add_comment.
type AddCommentParams struct {
	IssueKey string `json:"issue_key" jsonschema:"The issue key (e.g., 'PROJ-123')"`
	Comment  string `json:"comment" jsonschema:"The comment text to add to the issue"`
}

// GetChildrenParams defines the input parameters for get_children.
type GetChildrenParams struct {
	ParentKey  string `json:"parent_key" jsonschema:"The parent issue key (e.g., 'PROJ-100')"`
	MaxResults *int   `json:"max_results,omitempty" jsonschema:"Maximum number of results to return (default: 50, max: 100)"`
}

// GetCommentsParams defines the input parameters for get_comments.
type GetCommentsParams struct {
	IssueKey   string `json:"issue_key" jsonschema:"The issue key (e.g., 'PROJ-123')"`
	StartAt    *int   `json:"start_at,omitempty" jsonschema:"Index of the first comment to return (default: 0)"`
	MaxResults *int   `json:"max_results,omitempty" jsonschema:"Maximum number of comments to return (default: 50, max: 100)"`
}

// GetEpicsParams defines the input parameters for get_epics.
type GetEpicsParams struct {
	ProjectKey string `json:"project_key" jsonschema:"The project key (e.g., 'PROJ')"`
	MaxResults *int   `json:"max_results,omitempty" jsonschema:"Maximum number of results to return (default: 50, max: 100)"`
}

// UpdateIssueParams defines the input parameters for update_issue.
// At least one optional field must be supplied.
type UpdateIssueParams struct {
	IssueKey          string   `json:"issue_key" jsonschema:"The issue key (e.g., 'PROJ-123')"`
	Summary           *string  `json:"summary,omitempty" jsonschema:"New summary for the issue"`
	Description       *string  `json:"description,omitempty" jsonschema:"New description for the issue (plain text)"`
	DueDate           *string  `json:"due_date,omitempty" jsonschema:"New due date (YYYY-MM-DD)"`
	Priority          *string  `json:"priority,omitempty" jsonschema:"New priority by name (e.g., 'High')"`
	AssigneeAccountID *string  `json:"assignee_account_id,omitempty" jsonschema:"Account ID of the new assignee"`
	ParentKey         *string  `json:"parent_key,omitempty" jsonschema:"Key of the new parent issue"`
	Labels            []string `json:"labels,omitempty" jsonschema:"Replacement set of labels"`
}
