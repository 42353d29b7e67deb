package jira

import "encoding/json"

// searchRequest is the body sent to the search endpoint.
type searchRequest struct {
	JQL        string   `json:"jql"`
	MaxResults int      `json:"maxResults"`
	Fields     []string `json:"fields"`
}

// SearchResult is the top-level response from the Jira search API.
// The count fields are pointers because some API versions omit them
// entirely; nil means "unknown", not zero.
type SearchResult struct {
	Total      *int    `json:"total,omitempty"`
	MaxResults *int    `json:"maxResults,omitempty"`
	StartAt    *int    `json:"startAt,omitempty"`
	Issues     []Issue `json:"issues"`
}

// Issue is a single Jira issue.
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Self   string      `json:"self"`
	Fields IssueFields `json:"fields"`
}

// IssueFields holds the inner fields of an issue. Every field is optional;
// Jira omits fields that were not requested or are not populated.
type IssueFields struct {
	Summary     *string         `json:"summary,omitempty"`
	Status      *Status         `json:"status,omitempty"`
	Assignee    *User           `json:"assignee,omitempty"`
	Priority    *Priority       `json:"priority,omitempty"`
	IssueType   *IssueType      `json:"issuetype,omitempty"`
	Created     *string         `json:"created,omitempty"`
	Updated     *string         `json:"updated,omitempty"`
	Description json.RawMessage `json:"description,omitempty"`
	Comment     *CommentList    `json:"comment,omitempty"`
}

// Status is the workflow status of an issue.
type Status struct {
	Name string `json:"name"`
}

// Priority is the priority of an issue.
type Priority struct {
	Name string `json:"name"`
}

// IssueType describes the type of an issue (Bug, Story, Epic, ...).
type IssueType struct {
	Name    string `json:"name"`
	Subtask bool   `json:"subtask"`
}

// User is an assignee, reporter or comment author.
type User struct {
	DisplayName  string  `json:"displayName"`
	EmailAddress *string `json:"emailAddress,omitempty"`
	AccountID    *string `json:"accountId,omitempty"`
}

// CommentList is the comment block embedded in an issue's fields.
type CommentList struct {
	Comments []Comment `json:"comments"`
	Total    *int      `json:"total,omitempty"`
}

// CommentPage is one page of comments from the comment list endpoint.
// Like SearchResult, absent counters mean "unknown".
type CommentPage struct {
	StartAt    *int      `json:"startAt,omitempty"`
	MaxResults *int      `json:"maxResults,omitempty"`
	Total      *int      `json:"total,omitempty"`
	Comments   []Comment `json:"comments"`
}

// Comment is a single issue comment.
type Comment struct {
	ID      string       `json:"id"`
	Self    string       `json:"self"`
	Author  *User        `json:"author,omitempty"`
	Created *string      `json:"created,omitempty"`
	Body    *CommentBody `json:"body,omitempty"`
}

// addCommentRequest is the body sent when creating a comment.
type addCommentRequest struct {
	Body *CommentBody `json:"body"`
}

// CommentBody is an Atlassian document: paragraphs containing text runs.
type CommentBody struct {
	Type    string      `json:"type"`
	Version int         `json:"version"`
	Content []Paragraph `json:"content"`
}

// Paragraph is one paragraph inside a document body.
type Paragraph struct {
	Type    string     `json:"type"`
	Content []TextNode `json:"content"`
}

// TextNode is a single text run inside a paragraph.
type TextNode struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewDocument wraps plain text in the document envelope Jira requires for
// comment and description bodies: a single paragraph with a single text run.
func NewDocument(text string) *CommentBody {
	return &CommentBody{
		Type:    "doc",
		Version: 1,
		Content: []Paragraph{{
			Type: "paragraph",
			Content: []TextNode{{
				Type: "text",
				Text: text,
			}},
		}},
	}
}
