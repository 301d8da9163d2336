package usecase

import (
	"context"

	"smartmeet/internal/meeting"
	repo "smartmeet/internal/meeting/repository"
	"smartmeet/internal/model"
)

// Create schedules a new meeting for the scope owner.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input meeting.CreateMeetingInput) (meeting.MeetingOutput, error) {
	duration := input.DurationMinutes
	if duration == 0 {
		duration = model.DefaultMeetingDurationMinutes
	}
	if duration < 0 {
		return meeting.MeetingOutput{}, meeting.ErrInvalidDuration
	}

	m, err := uc.repo.CreateMeeting(ctx, repo.CreateMeetingOptions{
		OwnerID:         sc.UserID,
		Title:           input.Title,
		Description:     input.Description,
		StartTime:       input.StartTime,
		DurationMinutes: duration,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateMeeting: %v", err)
		return meeting.MeetingOutput{}, err
	}
	return meeting.MeetingOutput{Meeting: m}, nil
}

// List returns all of the owner's meetings ordered by start time.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (meeting.ListMeetingsOutput, error) {
	meetings, err := uc.repo.ListMeetings(ctx, repo.ListMeetingsOptions{OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListMeetings: %v", err)
		return meeting.ListMeetingsOutput{}, err
	}
	return meeting.ListMeetingsOutput{Meetings: meetings}, nil
}

// Update applies a partial update to an owned meeting.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input meeting.UpdateMeetingInput) (meeting.MeetingOutput, error) {
	existing, err := uc.repo.GetOneMeeting(ctx, repo.GetOneMeetingOptions{ID: input.ID, OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneMeeting: %v", err)
		return meeting.MeetingOutput{}, err
	}
	if existing.ID == "" {
		return meeting.MeetingOutput{}, meeting.ErrMeetingNotFound
	}

	if input.DurationMinutes != nil && *input.DurationMinutes <= 0 {
		return meeting.MeetingOutput{}, meeting.ErrInvalidDuration
	}

	// A blank title keeps the current one.
	title := input.Title
	if title != nil && *title == "" {
		title = nil
	}

	m, err := uc.repo.UpdateMeeting(ctx, repo.UpdateMeetingOptions{
		ID:              existing.ID,
		OwnerID:         sc.UserID,
		Title:           title,
		Description:     input.Description,
		StartTime:       input.StartTime,
		DurationMinutes: input.DurationMinutes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateMeeting: %v", err)
		return meeting.MeetingOutput{}, err
	}
	return meeting.MeetingOutput{Meeting: m}, nil
}

// Delete removes an owned meeting. Returns ErrMeetingNotFound when the
// meeting does not exist or belongs to someone else.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneMeeting(ctx, repo.GetOneMeetingOptions{ID: id, OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneMeeting: %v", err)
		return err
	}
	if existing.ID == "" {
		return meeting.ErrMeetingNotFound
	}

	if err := uc.repo.DeleteMeeting(ctx, id, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteMeeting: %v", err)
		return err
	}
	return nil
}
