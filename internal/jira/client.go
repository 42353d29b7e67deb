package jira

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// searchFields is the fixed field selection sent with every search request.
// It is constant rather than caller-controlled to keep payload sizes
// predictable.
var searchFields = []string{
	"summary",
	"status",
	"assignee",
	"priority",
	"issuetype",
	"created",
	"updated",
}

// Client handles communication with the Jira Cloud REST API v3.
// It is safe for concurrent use; the base URL and authorization header are
// computed once at construction and never mutated.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authHeader string
}

// NewClient returns a client for the Jira instance at baseURL,
// authenticating every request with Basic auth derived from the email and
// API token. Trailing slashes on baseURL are stripped.
func NewClient(baseURL, email, apiToken string) *Client {
	credentials := email + ":" + apiToken
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		authHeader: "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials)),
	}
}

// SearchIssues runs a JQL search and returns at most maxResults issues.
// The limit is passed through uninterpreted; callers are responsible for
// bounds.
func (c *Client) SearchIssues(ctx context.Context, jql string, maxResults int) (*SearchResult, error) {
	body := searchRequest{
		JQL:        jql,
		MaxResults: maxResults,
		Fields:     searchFields,
	}

	var result SearchResult
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/rest/api/3/search/jql", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetIssue fetches a single issue by key. A missing issue surfaces as a
// RemoteError with status 404.
func (c *Client) GetIssue(ctx context.Context, issueKey string) (*Issue, error) {
	var issue Issue
	if err := c.do(ctx, http.MethodGet, c.issueURL(issueKey), nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// GetChildren lists the direct children of an issue. Jira has no dedicated
// children endpoint, so this is a search constrained to parent = key.
func (c *Client) GetChildren(ctx context.Context, parentKey string, maxResults int) (*SearchResult, error) {
	return c.SearchIssues(ctx, fmt.Sprintf("parent = %s", parentKey), maxResults)
}

// GetEpics lists the epics of a project, newest first.
func (c *Client) GetEpics(ctx context.Context, projectKey string, maxResults int) (*SearchResult, error) {
	jql := fmt.Sprintf("project = %s AND issuetype = Epic ORDER BY created DESC", projectKey)
	return c.SearchIssues(ctx, jql, maxResults)
}

// GetComments returns one page of comments for an issue. startAt and
// maxResults are forwarded verbatim as query parameters.
func (c *Client) GetComments(ctx context.Context, issueKey string, startAt, maxResults int) (*CommentPage, error) {
	params := url.Values{}
	params.Set("startAt", strconv.Itoa(startAt))
	params.Set("maxResults", strconv.Itoa(maxResults))

	var page CommentPage
	if err := c.do(ctx, http.MethodGet, c.issueURL(issueKey)+"/comment?"+params.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// AddComment posts a plain-text comment on an issue, wrapping the text in
// the document envelope the API requires. The returned comment carries the
// identifier Jira assigned.
func (c *Client) AddComment(ctx context.Context, issueKey, text string) (*Comment, error) {
	body := addCommentRequest{Body: NewDocument(text)}

	var comment Comment
	if err := c.do(ctx, http.MethodPost, c.issueURL(issueKey)+"/comment", body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateIssue applies a partial update to an issue. Only the fields set on
// update are transmitted. Jira answers 204 No Content on success.
func (c *Client) UpdateIssue(ctx context.Context, issueKey string, update *UpdateRequest) error {
	return c.do(ctx, http.MethodPut, c.issueURL(issueKey), update.payload(), nil)
}

func (c *Client) issueURL(issueKey string) string {
	return fmt.Sprintf("%s/rest/api/3/issue/%s", c.baseURL, url.PathEscape(issueKey))
}

// do performs one authenticated request. A non-2xx response is returned as
// a RemoteError carrying the status code and the raw body text; transport
// and serialization failures are wrapped and returned as-is. When out is
// nil the response body is not decoded.
func (c *Client) do(ctx context.Context, method, requestURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errorText, _ := io.ReadAll(resp.Body) // best effort, empty on failure
		return &RemoteError{StatusCode: resp.StatusCode, Body: string(errorText)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
