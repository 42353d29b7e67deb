package jira

import "fmt"

// RemoteError is returned when Jira responds with a non-2xx status. Body is
// the raw response text, read best-effort; it is display-only and must not
// be parsed as structured data.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("Jira API error (%d): %s", e.StatusCode, e.Body)
}
