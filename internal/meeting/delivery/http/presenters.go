package http

import (
	"encoding/json"
	"time"

	"smartmeet/internal/meeting"
	"smartmeet/internal/model"
	pkgErrors "smartmeet/pkg/errors"
)

// startTimeLayouts accepts RFC3339 and zone-less ISO8601 timestamps.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseStartTime(value string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, pkgErrors.NewHTTPError(400, "start_time must be ISO8601")
}

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
	StartTime   string `json:"start_time"  binding:"required"`
	Duration    int    `json:"duration"    binding:"omitempty,min=1,max=1440"`

	parsedStart time.Time
}

func (r *createReq) validate() error {
	start, err := parseStartTime(r.StartTime)
	if err != nil {
		return err
	}
	r.parsedStart = start
	return nil
}

func (r createReq) toInput() meeting.CreateMeetingInput {
	return meeting.CreateMeetingInput{
		Title:           r.Title,
		Description:     r.Description,
		StartTime:       r.parsedStart,
		DurationMinutes: r.Duration,
	}
}

// ---

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Title       *string `json:"title"       binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	StartTime   *string `json:"start_time"`
	Duration    *int    `json:"duration"    binding:"omitempty,min=1,max=1440"`

	parsedStart *time.Time
}

func (r *updateReq) validate() error {
	if r.ID == "" {
		return pkgErrors.NewHTTPError(400, "id is required")
	}
	if r.StartTime != nil {
		start, err := parseStartTime(*r.StartTime)
		if err != nil {
			return err
		}
		r.parsedStart = &start
	}
	return nil
}

func (r updateReq) toInput() meeting.UpdateMeetingInput {
	return meeting.UpdateMeetingInput{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		StartTime:       r.parsedStart,
		DurationMinutes: r.Duration,
	}
}

// --- Response DTOs ---

type meetingJSON struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartTime   time.Time       `json:"start_time"`
	EndTime     time.Time       `json:"end_time"`
	Duration    int             `json:"duration"`
	ExtraData   json.RawMessage `json:"extra_data,omitempty"`
}

func newMeetingJSON(m model.Meeting) meetingJSON {
	return meetingJSON{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime(),
		Duration:    m.DurationMinutes,
		ExtraData:   m.ExtraData,
	}
}

type meetingResp struct {
	Meeting meetingJSON `json:"meeting"`
}

func (h *handler) newMeetingResp(out meeting.MeetingOutput) meetingResp {
	return meetingResp{Meeting: newMeetingJSON(out.Meeting)}
}

type listResp struct {
	Meetings []meetingJSON `json:"meetings"`
}

func (h *handler) newListResp(out meeting.ListMeetingsOutput) listResp {
	meetings := make([]meetingJSON, len(out.Meetings))
	for i, m := range out.Meetings {
		meetings[i] = newMeetingJSON(m)
	}
	return listResp{Meetings: meetings}
}

type googleEventJSON struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	HTMLLink    string    `json:"html_link,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location,omitempty"`
	AllDay      bool      `json:"all_day"`
}

type eventsResp struct {
	Events       []meetingJSON     `json:"events"`
	GoogleEvents []googleEventJSON `json:"google_events,omitempty"`
}

func (h *handler) newEventsResp(out meeting.EventsOutput) eventsResp {
	events := make([]meetingJSON, len(out.Meetings))
	for i, m := range out.Meetings {
		events[i] = newMeetingJSON(m)
	}

	resp := eventsResp{Events: events}
	for _, ev := range out.Remote {
		resp.GoogleEvents = append(resp.GoogleEvents, googleEventJSON{
			ID:          ev.ID,
			Summary:     ev.Summary,
			Description: ev.Description,
			HTMLLink:    ev.HtmlLink,
			StartTime:   ev.StartTime,
			EndTime:     ev.EndTime,
			Location:    ev.Location,
			AllDay:      ev.AllDay,
		})
	}
	return resp
}

type syncResp struct {
	Synced int `json:"synced"`
}

func (h *handler) newSyncResp(out meeting.SyncOutput) syncResp {
	return syncResp{Synced: out.Synced}
}

type deleteResp struct {
	Deleted string `json:"deleted"`
}
