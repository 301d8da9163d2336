package usecase

import (
	"context"
	"encoding/json"

	"smartmeet/internal/meeting"
	repo "smartmeet/internal/meeting/repository"
	"smartmeet/internal/model"
	"smartmeet/pkg/gcalendar"
)

const calendarLinkKey = "calendar_link"

// Events returns the owner's meetings from seven days back, ascending,
// plus the Google Calendar events over the same window. A remote listing
// failure degrades to local meetings only.
func (uc *implUseCase) Events(ctx context.Context, sc model.Scope) (meeting.EventsOutput, error) {
	from := uc.now().AddDate(0, 0, -7)
	meetings, err := uc.repo.ListMeetings(ctx, repo.ListMeetingsOptions{
		OwnerID:   sc.UserID,
		StartFrom: &from,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Events ListMeetings: %v", err)
		return meeting.EventsOutput{}, err
	}

	out := meeting.EventsOutput{Meetings: meetings}

	if uc.calendar != nil {
		remote, listErr := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
			CalendarID: uc.calendarID,
			TimeMin:    from,
		})
		if listErr != nil {
			uc.l.Warnf(ctx, "uc.Events ListEvents: %v", listErr)
		} else {
			out.Remote = remote
		}
	}

	return out, nil
}

// Sync pushes unsynced upcoming meetings to Google Calendar. Meetings that
// already carry a calendar link are skipped; individual push failures are
// logged and do not abort the rest of the batch.
func (uc *implUseCase) Sync(ctx context.Context, sc model.Scope) (meeting.SyncOutput, error) {
	if uc.calendar == nil {
		return meeting.SyncOutput{}, meeting.ErrCalendarNotConfigured
	}

	from := uc.now()
	meetings, err := uc.repo.ListMeetings(ctx, repo.ListMeetingsOptions{
		OwnerID:   sc.UserID,
		StartFrom: &from,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Sync ListMeetings: %v", err)
		return meeting.SyncOutput{}, err
	}

	var synced int
	for _, m := range meetings {
		if hasCalendarLink(m.ExtraData) {
			continue
		}

		event, pushErr := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     m.Title,
			Description: m.Description,
			StartTime:   m.StartTime,
			EndTime:     m.EndTime(),
			Timezone:    uc.timezone,
		})
		if pushErr != nil {
			uc.l.Warnf(ctx, "uc.Sync CreateEvent %s: %v", m.ID, pushErr)
			continue
		}

		extra := withCalendarLink(m.ExtraData, event.HtmlLink)
		if _, updErr := uc.repo.UpdateMeeting(ctx, repo.UpdateMeetingOptions{
			ID:        m.ID,
			OwnerID:   sc.UserID,
			ExtraData: extra,
		}); updErr != nil {
			uc.l.Errorf(ctx, "uc.Sync UpdateMeeting %s: %v", m.ID, updErr)
			continue
		}
		synced++
	}

	return meeting.SyncOutput{Synced: synced}, nil
}

func hasCalendarLink(extra json.RawMessage) bool {
	if len(extra) == 0 {
		return false
	}
	var data map[string]any
	if err := json.Unmarshal(extra, &data); err != nil {
		return false
	}
	link, _ := data[calendarLinkKey].(string)
	return link != ""
}

func withCalendarLink(extra json.RawMessage, link string) json.RawMessage {
	data := map[string]any{}
	if len(extra) > 0 {
		json.Unmarshal(extra, &data)
	}
	data[calendarLinkKey] = link
	out, _ := json.Marshal(data)
	return out
}
