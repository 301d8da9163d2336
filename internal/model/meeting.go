package model

import (
	"encoding/json"
	"time"
)

const DefaultMeetingDurationMinutes = 30

// Meeting represents a scheduled meeting owned by a user.
type Meeting struct {
	ID              string
	OwnerID         string
	Title           string
	Description     string
	StartTime       time.Time
	DurationMinutes int
	ExtraData       json.RawMessage
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EndTime derives the meeting end from its start and duration.
func (m Meeting) EndTime() time.Time {
	return m.StartTime.Add(time.Duration(m.DurationMinutes) * time.Minute)
}
