package meeting

import (
	"context"

	"smartmeet/internal/model"
	"smartmeet/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Meeting CRUD, owner-scoped
	Create(ctx context.Context, sc model.Scope, input CreateMeetingInput) (MeetingOutput, error)
	List(ctx context.Context, sc model.Scope) (ListMeetingsOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateMeetingInput) (MeetingOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Events returns the owner's meetings from seven days back, ascending,
	// merged with the Google Calendar events over the same window when a
	// calendar client is configured.
	Events(ctx context.Context, sc model.Scope) (EventsOutput, error)

	// Sync pushes unsynced upcoming meetings to Google Calendar and records
	// the event link in each meeting's extra data.
	Sync(ctx context.Context, sc model.Scope) (SyncOutput, error)
}

// Calendar is the slice of the Google Calendar client the domain needs.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}
