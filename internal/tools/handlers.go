package tools

import (
	"context"
	"fmt"

	"github.com/cexll/jira-mcp/internal/jira"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	defaultMaxResults = 50
	maxResultsCeiling = 100
)

// JiraAPI is the slice of the Jira client the tool handlers use.
// This abstraction allows mocking the remote service in tests.
type JiraAPI interface {
	SearchIssues(ctx context.Context, jql string, maxResults int) (*jira.SearchResult, error)
	GetIssue(ctx context.Context, issueKey string) (*jira.Issue, error)
	GetChildren(ctx context.Context, parentKey string, maxResults int) (*jira.SearchResult, error)
	GetEpics(ctx context.Context, projectKey string, maxResults int) (*jira.SearchResult, error)
	GetComments(ctx context.Context, issueKey string, startAt, maxResults int) (*jira.CommentPage, error)
	AddComment(ctx context.Context, issueKey, text string) (*jira.Comment, error)
	UpdateIssue(ctx context.Context, issueKey string, update *jira.UpdateRequest) error
}

// Handler exposes the Jira tool surface over MCP.
type Handler struct {
	jira JiraAPI
}

// NewHandler creates a tool handler backed by the given Jira client.
func NewHandler(client JiraAPI) *Handler {
	return &Handler{jira: client}
}

// Register adds every Jira tool to the MCP server and returns the tool names.
func (h *Handler) Register(server *mcp.Server) []string {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_issues",
		Description: "Search for Jira issues using JQL (Jira Query Language). Returns a list of issues matching the query.",
	}, h.SearchIssues)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_issue",
		Description: "Get detailed information about a specific Jira issue by its key (e.g., PROJ-123).",
	}, h.GetIssue)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_comment",
		Description: "Add a comment to a Jira issue. Use this to leave notes, updates, or feedback on an issue.",
	}, h.AddComment)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_children",
		Description: "List the child issues of a parent issue (e.g., the stories under an epic).",
	}, h.GetChildren)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_comments",
		Description: "List the comments on a Jira issue, with pagination.",
	}, h.GetComments)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_epics",
		Description: "List the epics in a Jira project, newest first.",
	}, h.GetEpics)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_issue",
		Description: "Update fields of a Jira issue. Only the supplied fields are changed; at least one field is required.",
	}, h.UpdateIssue)

	return []string{
		"search_issues",
		"get_issue",
		"add_comment",
		"get_children",
		"get_comments",
		"get_epics",
		"update_issue",
	}
}

// SearchIssues handles the search_issues tool call.
func (h *Handler) SearchIssues(ctx context.Context, req *mcp.CallToolRequest, params SearchIssuesParams) (*mcp.CallToolResult, any, error) {
	maxResults := clampMaxResults(params.MaxResults)

	result, err := h.jira.SearchIssues(ctx, params.JQL, maxResults)
	if err != nil {
		return errorResult("Failed to search issues: %v", err), nil, nil
	}
	return textResult(FormatSearchResult(result)), nil, nil
}

// GetIssue handles the get_issue tool call.
func (h *Handler) GetIssue(ctx context.Context, req *mcp.CallToolRequest, params GetIssueParams) (*mcp.CallToolResult, any, error) {
	issue, err := h.jira.GetIssue(ctx, params.IssueKey)
	if err != nil {
		return errorResult("Failed to get issue: %v", err), nil, nil
	}
	return textResult(FormatIssue(issue)), nil, nil
}

// AddComment handles the add_comment tool call.
func (h *Handler) AddComment(ctx context.Context, req *mcp.CallToolRequest, params AddCommentParams) (*mcp.CallToolResult, any, error) {
	comment, err := h.jira.AddComment(ctx, params.IssueKey, params.Comment)
	if err != nil {
		return errorResult("Failed to add comment: %v", err), nil, nil
	}
	return textResult(FormatComment(params.IssueKey, comment)), nil, nil
}

// GetChildren handles the get_children tool call.
func (h *Handler) GetChildren(ctx context.Context, req *mcp.CallToolRequest, params GetChildrenParams) (*mcp.CallToolResult, any, error) {
	maxResults := clampMaxResults(params.MaxResults)

	result, err := h.jira.GetChildren(ctx, params.ParentKey, maxResults)
	if err != nil {
		return errorResult("Failed to get children: %v", err), nil, nil
	}
	return textResult(FormatSearchResult(result)), nil, nil
}

// GetComments handles the get_comments tool call.
func (h *Handler) GetComments(ctx context.Context, req *mcp.CallToolRequest, params GetCommentsParams) (*mcp.CallToolResult, any, error) {
	startAt := 0
	if params.StartAt != nil && *params.StartAt > 0 {
		startAt = *params.StartAt
	}
	maxResults := clampMaxResults(params.MaxResults)

	page, err := h.jira.GetComments(ctx, params.IssueKey, startAt, maxResults)
	if err != nil {
		return errorResult("Failed to get comments: %v", err), nil, nil
	}
	return textResult(FormatCommentPage(params.IssueKey, page)), nil, nil
}

// GetEpics handles the get_epics tool call.
func (h *Handler) GetEpics(ctx context.Context, req *mcp.CallToolRequest, params GetEpicsParams) (*mcp.CallToolResult, any, error) {
	maxResults := clampMaxResults(params.MaxResults)

	result, err := h.jira.GetEpics(ctx, params.ProjectKey, maxResults)
	if err != nil {
		return errorResult("Failed to get epics: %v", err), nil, nil
	}
	return textResult(FormatEpics(params.ProjectKey, result)), nil, nil
}

// UpdateIssue handles the update_issue tool call. The update is validated
// locally: with no fields supplied the call returns an error result without
// touching the remote service.
func (h *Handler) UpdateIssue(ctx context.Context, req *mcp.CallToolRequest, params UpdateIssueParams) (*mcp.CallToolResult, any, error) {
	update := jira.NewUpdateRequest()
	var updatedFields []string

	if params.Summary != nil {
		update.SetSummary(*params.Summary)
		updatedFields = append(updatedFields, "summary")
	}
	if params.Description != nil {
		update.SetDescription(*params.Description)
		updatedFields = append(updatedFields, "description")
	}
	if params.DueDate != nil {
		update.SetDueDate(*params.DueDate)
		updatedFields = append(updatedFields, "due_date")
	}
	if params.Priority != nil {
		update.SetPriority(*params.Priority)
		updatedFields = append(updatedFields, "priority")
	}
	if params.AssigneeAccountID != nil {
		update.SetAssignee(*params.AssigneeAccountID)
		updatedFields = append(updatedFields, "assignee")
	}
	if params.ParentKey != nil {
		update.SetParent(*params.ParentKey)
		updatedFields = append(updatedFields, "parent")
	}
	if params.Labels != nil {
		update.SetLabels(params.Labels)
		updatedFields = append(updatedFields, "labels")
	}

	if update.IsEmpty() {
		return errorResult("Failed to update issue: no fields to update were provided"), nil, nil
	}

	if err := h.jira.UpdateIssue(ctx, params.IssueKey, update); err != nil {
		return errorResult("Failed to update issue: %v", err), nil, nil
	}
	return textResult(FormatUpdateResult(params.IssueKey, updatedFields)), nil, nil
}

// clampMaxResults applies the default page size and the hard ceiling.
// Caller-supplied values are never passed through above the ceiling.
func clampMaxResults(v *int) int {
	if v == nil || *v <= 0 {
		return defaultMaxResults
	}
	if *v > maxResultsCeiling {
		return maxResultsCeiling
	}
	return *v
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}
