package http

import (
	"encoding/json"
	"strings"
	"time"

	"smartmeet/internal/assistant"
	"smartmeet/internal/model"
	pkgErrors "smartmeet/pkg/errors"
)

// --- Request DTOs ---

// processReq carries one transcript. "text" is accepted as an alias for
// clients that send raw typed input instead of a transcription.
type processReq struct {
	Transcript string `json:"transcript"`
	Text       string `json:"text"`
}

func (req *processReq) validate() error {
	if strings.TrimSpace(req.Transcript) == "" {
		req.Transcript = req.Text
	}
	if strings.TrimSpace(req.Transcript) == "" {
		return pkgErrors.NewHTTPError(400, "transcript is required")
	}
	return nil
}

func (req processReq) toInput() assistant.ProcessInput {
	return assistant.ProcessInput{Transcript: req.Transcript}
}

type historyReq struct {
	Limit int `form:"limit"`
}

func (req historyReq) validate() error {
	if req.Limit < 0 {
		return pkgErrors.NewHTTPError(400, "limit must not be negative")
	}
	return nil
}

func (req historyReq) toInput() assistant.HistoryInput {
	return assistant.HistoryInput{Limit: req.Limit}
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

type processResp struct {
	Success      bool          `json:"success"`
	Action       string        `json:"action"`
	Message      string        `json:"message"`
	Audio        string        `json:"audio,omitempty"`
	Meeting      *meetingJSON  `json:"meeting,omitempty"`
	CalendarLink string        `json:"calendar_link,omitempty"`
	Events       []meetingJSON `json:"events,omitempty"`
}

type logJSON struct {
	ID        string          `json:"id"`
	Level     string          `json:"level"`
	Message   string          `json:"message"`
	Source    string          `json:"source,omitempty"`
	ExtraData json.RawMessage `json:"extra_data,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type historyResp struct {
	Logs []logJSON `json:"logs"`
}

func (h *handler) newHistoryResp(out assistant.HistoryOutput) historyResp {
	logs := make([]logJSON, len(out.Logs))
	for i, l := range out.Logs {
		logs[i] = logJSON{
			ID:        l.ID,
			Level:     l.Level,
			Message:   l.Message,
			Source:    l.Source,
			ExtraData: l.ExtraData,
			CreatedAt: l.CreatedAt,
		}
	}
	return historyResp{Logs: logs}
}

func (h *handler) newProcessResp(out assistant.ProcessOutput) processResp {
	resp := processResp{
		Success:      true,
		Action:       out.Action,
		Message:      out.Reply,
		Audio:        out.Audio,
		CalendarLink: out.CalendarLink,
	}

	if out.Meeting != nil {
		m := newMeetingJSON(*out.Meeting)
		resp.Meeting = &m
	}

	if len(out.Events) > 0 {
		resp.Events = make([]meetingJSON, len(out.Events))
		for i, m := range out.Events {
			resp.Events[i] = newMeetingJSON(m)
		}
	}

	return resp
}
