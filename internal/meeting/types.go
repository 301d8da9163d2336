package meeting

import (
	"time"

	"smartmeet/internal/model"
	"smartmeet/pkg/gcalendar"
)

// --- UseCase Inputs ---

type CreateMeetingInput struct {
	Title           string
	Description     string
	StartTime       time.Time
	DurationMinutes int // 0 means the default duration
}

type UpdateMeetingInput struct {
	ID              string
	Title           *string
	Description     *string
	StartTime       *time.Time
	DurationMinutes *int
}

// --- UseCase Outputs ---

type MeetingOutput struct {
	Meeting model.Meeting
}

type ListMeetingsOutput struct {
	Meetings []model.Meeting
}

// EventsOutput pairs local meetings with the owner's Google Calendar events
// over the same window. Remote is empty when no calendar is configured.
type EventsOutput struct {
	Meetings []model.Meeting
	Remote   []gcalendar.Event
}

type SyncOutput struct {
	Synced int
}
