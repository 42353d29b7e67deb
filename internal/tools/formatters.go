package tools

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cexll/jira-mcp/internal/jira"
)

// The formatters are pure functions: given a typed API result they produce
// deterministic multi-line text for the tool response. Missing optional
// fields render fixed placeholders instead of being omitted.

// FormatSearchResult renders a search result as a bullet list of issues.
func FormatSearchResult(result *jira.SearchResult) string {
	var b strings.Builder
	total := countOrUnknown(result.Total)
	fmt.Fprintf(&b, "Found %s issues (showing %d of %s):\n\n", total, len(result.Issues), total)

	for _, issue := range result.Issues {
		issueType := "Unknown"
		if issue.Fields.IssueType != nil {
			issueType = issue.Fields.IssueType.Name
		}
		status := "Unknown"
		if issue.Fields.Status != nil {
			status = issue.Fields.Status.Name
		}
		summary := "No summary"
		if issue.Fields.Summary != nil {
			summary = *issue.Fields.Summary
		}
		assignee := formatUser(issue.Fields.Assignee, "Unassigned")

		fmt.Fprintf(&b, "- **%s** [%s/%s] %s\n  Assignee: %s\n\n", issue.Key, issueType, status, summary, assignee)
	}

	return b.String()
}

// FormatIssue renders a single issue with its metadata and, when embedded,
// its comments.
func FormatIssue(issue *jira.Issue) string {
	status := "Unknown"
	if issue.Fields.Status != nil {
		status = issue.Fields.Status.Name
	}
	summary := "No summary"
	if issue.Fields.Summary != nil {
		summary = *issue.Fields.Summary
	}
	priority := "None"
	if issue.Fields.Priority != nil {
		priority = issue.Fields.Priority.Name
	}
	issueType := "Unknown"
	if issue.Fields.IssueType != nil {
		issueType = issue.Fields.IssueType.Name
	}
	assignee := formatUser(issue.Fields.Assignee, "Unassigned")
	created := stringOrUnknown(issue.Fields.Created)
	updated := stringOrUnknown(issue.Fields.Updated)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s - %s\n\n", issue.Key, summary)
	fmt.Fprintf(&b, "**Type:** %s\n", issueType)
	fmt.Fprintf(&b, "**Status:** %s\n", status)
	fmt.Fprintf(&b, "**Assignee:** %s\n", assignee)
	fmt.Fprintf(&b, "**Priority:** %s\n", priority)
	fmt.Fprintf(&b, "**Created:** %s\n", created)
	fmt.Fprintf(&b, "**Updated:** %s\n", updated)
	fmt.Fprintf(&b, "**URL:** %s\n", issue.Self)

	if issue.Fields.Comment != nil && len(issue.Fields.Comment.Comments) > 0 {
		b.WriteString("\n## Comments\n\n")
		for _, comment := range issue.Fields.Comment.Comments {
			writeCommentEntry(&b, &comment)
		}
	}

	return b.String()
}

// FormatComment renders the confirmation for a newly created comment.
func FormatComment(issueKey string, comment *jira.Comment) string {
	author := formatUser(comment.Author, "Unknown")
	created := stringOrUnknown(comment.Created)

	return fmt.Sprintf(
		"Comment added successfully to %s\n\n**Comment ID:** %s\n**Author:** %s\n**Created:** %s\n",
		issueKey, comment.ID, author, created,
	)
}

// FormatCommentPage renders one page of comments on an issue.
func FormatCommentPage(issueKey string, page *jira.CommentPage) string {
	if len(page.Comments) == 0 {
		return fmt.Sprintf("No comments found on %s", issueKey)
	}

	var b strings.Builder
	total := countOrUnknown(page.Total)
	fmt.Fprintf(&b, "Found %s comments on %s (showing %d of %s):\n\n", total, issueKey, len(page.Comments), total)

	for _, comment := range page.Comments {
		writeCommentEntry(&b, &comment)
	}

	return b.String()
}

// FormatEpics renders the epics of a project as a bullet list.
func FormatEpics(projectKey string, result *jira.SearchResult) string {
	if len(result.Issues) == 0 {
		return fmt.Sprintf("No epics found in project %s", projectKey)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %s epic(s) in project %s:\n\n", countOrUnknown(result.Total), projectKey)

	for _, issue := range result.Issues {
		status := "Unknown"
		if issue.Fields.Status != nil {
			status = issue.Fields.Status.Name
		}
		summary := "No summary"
		if issue.Fields.Summary != nil {
			summary = *issue.Fields.Summary
		}
		fmt.Fprintf(&b, "- **%s** [%s] %s\n", issue.Key, status, summary)
	}

	return b.String()
}

// FormatUpdateResult renders the confirmation for an issue update.
func FormatUpdateResult(issueKey string, updatedFields []string) string {
	if len(updatedFields) == 0 {
		return fmt.Sprintf("No fields were updated for %s", issueKey)
	}

	return fmt.Sprintf(
		"Issue %s updated successfully.\n\n**Updated fields:** %s",
		issueKey, strings.Join(updatedFields, ", "),
	)
}

// FlattenBody extracts the plain text from a document body: each
// paragraph's text runs concatenated, one paragraph per line. An empty or
// absent body renders "No content".
func FlattenBody(body *jira.CommentBody) string {
	if body == nil {
		return "No content"
	}

	var b strings.Builder
	for _, paragraph := range body.Content {
		for _, node := range paragraph.Content {
			b.WriteString(node.Text)
		}
		b.WriteByte('\n')
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "No content"
	}
	return text
}

func writeCommentEntry(b *strings.Builder, comment *jira.Comment) {
	author := formatUser(comment.Author, "Unknown")
	created := stringOrUnknown(comment.Created)
	fmt.Fprintf(b, "### Comment by %s (%s)\n%s\n\n", author, created, FlattenBody(comment.Body))
}

// formatUser renders "DisplayName (accountID)", with "No ID" inside the
// parenthetical when the account identifier is absent. A nil user renders
// the given placeholder.
func formatUser(u *jira.User, missing string) string {
	if u == nil {
		return missing
	}
	accountID := "No ID"
	if u.AccountID != nil {
		accountID = *u.AccountID
	}
	return fmt.Sprintf("%s (%s)", u.DisplayName, accountID)
}

func stringOrUnknown(s *string) string {
	if s == nil {
		return "Unknown"
	}
	return *s
}

// countOrUnknown renders an optional counter. Absent counters mean the API
// did not report a value, which must read as unknown rather than zero.
func countOrUnknown(n *int) string {
	if n == nil {
		return "unknown"
	}
	return strconv.Itoa(*n)
}
