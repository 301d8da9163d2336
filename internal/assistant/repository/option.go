package repository

import "encoding/json"

// CreateLogOptions holds parameters for inserting an audit Log.
type CreateLogOptions struct {
	UserID    string // empty for system events
	Level     string
	Message   string
	Source    string
	ExtraData json.RawMessage
}

// ListLogsOptions holds filter parameters for listing Logs.
// Results are ordered by created_at descending.
type ListLogsOptions struct {
	UserID string
	Source string
	Limit  int
}
