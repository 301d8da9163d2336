package repository

import (
	"encoding/json"
	"time"
)

// CreateMeetingOptions holds parameters for inserting a new Meeting.
type CreateMeetingOptions struct {
	OwnerID         string
	Title           string
	Description     string
	StartTime       time.Time
	DurationMinutes int
	ExtraData       json.RawMessage
}

// GetOneMeetingOptions holds filter parameters for fetching a single Meeting.
// All non-empty fields are applied as AND conditions.
type GetOneMeetingOptions struct {
	ID      string
	OwnerID string
}

// ListMeetingsOptions holds filter parameters for listing Meetings.
// Results are always ordered by start_time ascending.
type ListMeetingsOptions struct {
	OwnerID   string
	StartFrom *time.Time // only meetings starting at or after this instant
}

// UpdateMeetingOptions holds parameters for updating an existing Meeting.
// Nil pointer fields are left untouched.
type UpdateMeetingOptions struct {
	ID              string
	OwnerID         string
	Title           *string
	Description     *string
	StartTime       *time.Time
	DurationMinutes *int
	ExtraData       json.RawMessage
}
