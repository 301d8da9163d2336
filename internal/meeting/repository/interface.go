package repository

import (
	"context"

	"smartmeet/internal/model"
)

// Repository is the composed interface for the meeting domain data store.
type Repository interface {
	MeetingRepository
}

// MeetingRepository defines all data access methods for the Meeting entity.
type MeetingRepository interface {
	CreateMeeting(ctx context.Context, opt CreateMeetingOptions) (model.Meeting, error)
	GetOneMeeting(ctx context.Context, opt GetOneMeetingOptions) (model.Meeting, error)
	ListMeetings(ctx context.Context, opt ListMeetingsOptions) ([]model.Meeting, error)
	UpdateMeeting(ctx context.Context, opt UpdateMeetingOptions) (model.Meeting, error)
	DeleteMeeting(ctx context.Context, id, ownerID string) error
}
