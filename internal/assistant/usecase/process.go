package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"smartmeet/internal/assistant"
	"smartmeet/internal/assistant/repository"
	"smartmeet/internal/meeting"
	"smartmeet/internal/model"
	"smartmeet/pkg/gcalendar"
	"smartmeet/pkg/llm"
)

const (
	fallbackReply = "I could not process that request."
	noDateReply   = "I could not understand the date and time. Please try again."

	auditSource = "assistant"
)

func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input assistant.ProcessInput) (assistant.ProcessOutput, error) {
	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		return assistant.ProcessOutput{}, assistant.ErrEmptyTranscript
	}

	action, reply := uc.classify(ctx, transcript)

	out := assistant.ProcessOutput{
		Action: string(action),
		Reply:  reply,
	}

	switch action {
	case llm.ActionScheduleMeeting:
		if err := uc.scheduleMeeting(ctx, sc, transcript, &out); err != nil {
			uc.l.Errorf(ctx, "uc.Process schedule meeting: %v", err)
			return assistant.ProcessOutput{}, err
		}
	case llm.ActionFetchCalendar:
		if err := uc.fetchCalendar(ctx, sc, &out); err != nil {
			uc.l.Errorf(ctx, "uc.Process fetch calendar: %v", err)
			return assistant.ProcessOutput{}, err
		}
	}

	if uc.speech != nil && out.Reply != "" {
		audio, err := uc.speech.Synthesize(ctx, out.Reply)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Process synthesize reply: %v", err)
		} else {
			out.Audio = audio
		}
	}

	uc.audit(ctx, sc, out.Action, transcript)

	return out, nil
}

// classify decides what to do with the transcript. When the LLM is not
// configured or fails, the date hint check picks between scheduling and a
// generic reply.
func (uc *implUseCase) classify(ctx context.Context, transcript string) (llm.Action, string) {
	if uc.intent != nil {
		action, reply, err := uc.intent.GenerateActionReply(ctx, transcript)
		if err == nil {
			return action, reply
		}
		uc.l.Warnf(ctx, "uc.classify generate action: %v", err)
	}

	if uc.dates.HasDateHint(transcript) {
		return llm.ActionScheduleMeeting, ""
	}
	return llm.ActionGeneralResponse, fallbackReply
}

func (uc *implUseCase) scheduleMeeting(ctx context.Context, sc model.Scope, transcript string, out *assistant.ProcessOutput) error {
	if !uc.dates.HasDateHint(transcript) {
		out.Action = string(llm.ActionGeneralResponse)
		out.Reply = noDateReply
		return nil
	}

	res := uc.dates.ParseAt(transcript, uc.now())

	start := res.Start
	if res.AllDay {
		start = res.StartDate
	}

	duration := extractDuration(transcript)
	if duration == 0 && !res.AllDay && res.End != nil {
		duration = int(res.End.Sub(res.Start).Minutes())
	}

	created, err := uc.meetings.Create(ctx, sc, meeting.CreateMeetingInput{
		Title:           extractTitle(transcript),
		Description:     transcript,
		StartTime:       start,
		DurationMinutes: duration,
	})
	if err != nil {
		return err
	}

	m := created.Meeting
	out.Meeting = &m
	out.Reply = fmt.Sprintf("Scheduled %q for %s.", m.Title, formatWhen(start, res.AllDay))

	if uc.calendar != nil {
		event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			Summary:     m.Title,
			Description: m.Description,
			StartTime:   start,
			EndTime:     m.EndTime(),
			Timezone:    uc.timezone,
			AllDay:      res.AllDay,
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.scheduleMeeting push calendar event: %v", err)
		} else {
			out.CalendarLink = event.HtmlLink
		}
	}

	return nil
}

func (uc *implUseCase) fetchCalendar(ctx context.Context, sc model.Scope, out *assistant.ProcessOutput) error {
	events, err := uc.meetings.Events(ctx, sc)
	if err != nil {
		return err
	}

	out.Events = events.Meetings
	if out.Reply == "" {
		out.Reply = fmt.Sprintf("You have %d meetings on your calendar.", len(events.Meetings))
	}
	return nil
}

// audit records the processed transcript. Failures are logged and swallowed,
// the user already has their answer.
func (uc *implUseCase) audit(ctx context.Context, sc model.Scope, action, transcript string) {
	extra, err := json.Marshal(map[string]string{
		"action":     action,
		"transcript": transcript,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.audit marshal extra: %v", err)
		return
	}

	if _, err := uc.repo.CreateLog(ctx, repository.CreateLogOptions{
		UserID:    sc.UserID,
		Level:     "INFO",
		Message:   "voice transcript processed",
		Source:    auditSource,
		ExtraData: extra,
	}); err != nil {
		uc.l.Warnf(ctx, "uc.audit create log: %v", err)
	}
}

func formatWhen(start time.Time, allDay bool) string {
	if allDay {
		return start.Format("Monday, January 2")
	}
	return start.Format("Monday, January 2 at 3:04 PM")
}
