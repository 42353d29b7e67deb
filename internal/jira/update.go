package jira

// UpdateRequest accumulates field changes for a partial issue update.
// Only fields explicitly set through a setter are serialized; Jira's PUT
// endpoint leaves absent keys untouched, so unset fields must never appear
// in the outgoing payload.
type UpdateRequest struct {
	fields map[string]any
}

// NewUpdateRequest returns an empty update.
func NewUpdateRequest() *UpdateRequest {
	return &UpdateRequest{fields: make(map[string]any)}
}

// SetSummary sets the issue summary.
func (u *UpdateRequest) SetSummary(summary string) *UpdateRequest {
	u.fields["summary"] = summary
	return u
}

// SetDescription sets the issue description from plain text, wrapped in the
// document envelope Jira requires for rich-text fields.
func (u *UpdateRequest) SetDescription(text string) *UpdateRequest {
	u.fields["description"] = NewDocument(text)
	return u
}

// SetDueDate sets the due date (YYYY-MM-DD).
func (u *UpdateRequest) SetDueDate(date string) *UpdateRequest {
	u.fields["duedate"] = date
	return u
}

// SetPriority sets the priority by name (e.g. "High").
func (u *UpdateRequest) SetPriority(name string) *UpdateRequest {
	u.fields["priority"] = map[string]string{"name": name}
	return u
}

// SetAssignee assigns the issue by account ID.
func (u *UpdateRequest) SetAssignee(accountID string) *UpdateRequest {
	u.fields["assignee"] = map[string]string{"accountId": accountID}
	return u
}

// SetParent re-parents the issue under the given issue key.
func (u *UpdateRequest) SetParent(key string) *UpdateRequest {
	u.fields["parent"] = map[string]string{"key": key}
	return u
}

// SetLabels replaces the issue labels.
func (u *UpdateRequest) SetLabels(labels []string) *UpdateRequest {
	u.fields["labels"] = labels
	return u
}

// IsEmpty reports whether no fields have been set.
func (u *UpdateRequest) IsEmpty() bool {
	return len(u.fields) == 0
}

// payload is the request body for the issue update endpoint.
func (u *UpdateRequest) payload() map[string]any {
	return map[string]any{"fields": u.fields}
}
