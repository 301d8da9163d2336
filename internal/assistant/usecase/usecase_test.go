package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"smartmeet/internal/assistant"
	"smartmeet/internal/assistant/repository"
	"smartmeet/internal/meeting"
	"smartmeet/internal/model"
	"smartmeet/pkg/gcalendar"
	"smartmeet/pkg/llm"
	"smartmeet/pkg/nldate"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockLogRepo struct {
	created  []repository.CreateLogOptions
	listOpts []repository.ListLogsOptions
	logs     []model.Log
	fail     bool
}

func (m *mockLogRepo) CreateLog(ctx context.Context, opt repository.CreateLogOptions) (model.Log, error) {
	if m.fail {
		return model.Log{}, errors.New("db error")
	}
	m.created = append(m.created, opt)
	return model.Log{ID: "l-1", UserID: opt.UserID, Level: opt.Level, Message: opt.Message, Source: opt.Source}, nil
}

func (m *mockLogRepo) ListLogs(ctx context.Context, opt repository.ListLogsOptions) ([]model.Log, error) {
	if m.fail {
		return nil, errors.New("db error")
	}
	m.listOpts = append(m.listOpts, opt)
	return m.logs, nil
}

type mockMeetings struct {
	created   []meeting.CreateMeetingInput
	createErr error
	events    []model.Meeting
	eventsErr error
}

func (m *mockMeetings) Create(ctx context.Context, sc model.Scope, input meeting.CreateMeetingInput) (meeting.MeetingOutput, error) {
	if m.createErr != nil {
		return meeting.MeetingOutput{}, m.createErr
	}
	m.created = append(m.created, input)
	return meeting.MeetingOutput{Meeting: model.Meeting{
		ID:              "m-1",
		OwnerID:         sc.UserID,
		Title:           input.Title,
		Description:     input.Description,
		StartTime:       input.StartTime,
		DurationMinutes: input.DurationMinutes,
	}}, nil
}

func (m *mockMeetings) List(ctx context.Context, sc model.Scope) (meeting.ListMeetingsOutput, error) {
	return meeting.ListMeetingsOutput{}, nil
}

func (m *mockMeetings) Update(ctx context.Context, sc model.Scope, input meeting.UpdateMeetingInput) (meeting.MeetingOutput, error) {
	return meeting.MeetingOutput{}, nil
}

func (m *mockMeetings) Delete(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

func (m *mockMeetings) Events(ctx context.Context, sc model.Scope) (meeting.EventsOutput, error) {
	if m.eventsErr != nil {
		return meeting.EventsOutput{}, m.eventsErr
	}
	return meeting.EventsOutput{Meetings: m.events}, nil
}

func (m *mockMeetings) Sync(ctx context.Context, sc model.Scope) (meeting.SyncOutput, error) {
	return meeting.SyncOutput{}, nil
}

type mockIntent struct {
	action llm.Action
	reply  string
	err    error
}

func (m *mockIntent) GenerateActionReply(ctx context.Context, userText string) (llm.Action, string, error) {
	return m.action, m.reply, m.err
}

type mockSpeech struct {
	audio string
	err   error
	texts []string
}

func (m *mockSpeech) Synthesize(ctx context.Context, text string) (string, error) {
	m.texts = append(m.texts, text)
	if m.err != nil {
		return "", m.err
	}
	return m.audio, nil
}

type mockCalendar struct {
	requests []gcalendar.CreateEventRequest
	err      error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.requests = append(m.requests, req)
	return &gcalendar.Event{ID: "ev-1", HtmlLink: "https://calendar.google.com/event?eid=ev-1"}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return nil, nil
}

// Wednesday, so "tomorrow" is Thursday Jan 11.
var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

var testSC = model.Scope{UserID: "u-1", Email: "u1@example.com"}

type testDeps struct {
	logs     *mockLogRepo
	meetings *mockMeetings
	speech   *mockSpeech
	calendar *mockCalendar
}

func newTestUseCase(intent assistant.Intent, deps *testDeps) *implUseCase {
	// Assign through locals so an absent mock stays a nil interface.
	var speech assistant.Speech
	if deps.speech != nil {
		speech = deps.speech
	}
	var cal meeting.Calendar
	if deps.calendar != nil {
		cal = deps.calendar
	}

	uc := New(&mockLogger{}, deps.logs, deps.meetings, nldate.New(), intent, speech, cal, "UTC")
	uc.now = func() time.Time { return testNow }
	return uc
}

func TestProcessEmptyTranscript(t *testing.T) {
	deps := &testDeps{logs: &mockLogRepo{}, meetings: &mockMeetings{}}
	uc := newTestUseCase(nil, deps)

	_, err := uc.Process(context.Background(), testSC, assistant.ProcessInput{Transcript: "   "})
	if !errors.Is(err, assistant.ErrEmptyTranscript) {
		t.Fatalf("err = %v, want ErrEmptyTranscript", err)
	}
	if len(deps.logs.created) != 0 {
		t.Fatalf("expected no audit log, got %d", len(deps.logs.created))
	}
}

func TestProcessScheduleMeeting(t *testing.T) {
	deps := &testDeps{
		logs:     &mockLogRepo{},
		meetings: &mockMeetings{},
		speech:   &mockSpeech{audio: "b64-audio"},
		calendar: &mockCalendar{},
	}
	intent := &mockIntent{action: llm.ActionScheduleMeeting, reply: "On it."}
	uc := newTestUseCase(intent, deps)

	transcript := "schedule a sync tomorrow at 3pm for 45 minutes with alice"
	out, err := uc.Process(context.Background(), testSC, assistant.ProcessInput{Transcript: transcript})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if out.Action != string(llm.ActionScheduleMeeting) {
		t.Errorf("action = %q, want schedule_meeting", out.Action)
	}
	if len(deps.meetings.created) != 1 {
		t.Fatalf("created %d meetings, want 1", len(deps.meetings.created))
	}

	in := deps.meetings.created[0]
	wantStart := time.Date(2024, 1, 11, 15, 0, 0, 0, time.UTC)
	if !in.StartTime.Equal(wantStart) {
		t.Errorf("start = %v, want %v", in.StartTime, wantStart)
	}
	if in.DurationMinutes != 45 {
		t.Errorf("duration = %d, want 45", in.DurationMinutes)
	}
	if in.Title != "Alice" {
		t.Errorf("title = %q, want %q", in.Title, "Alice")
	}
	if in.Description != transcript {
		t.Errorf("description = %q, want the transcript", in.Description)
	}

	if out.Meeting == nil || out.Meeting.ID != "m-1" {
		t.Errorf("meeting = %+v, want m-1", out.Meeting)
	}
	if !strings.HasPrefix(out.Reply, "Scheduled") {
		t.Errorf("reply = %q, want a confirmation", out.Reply)
	}
	if out.CalendarLink == "" {
		t.Error("expected a calendar link")
	}
	if len(deps.calendar.requests) != 1 || deps.calendar.requests[0].AllDay {
		t.Errorf("calendar requests = %+v, want one timed event", deps.calendar.requests)
	}
	if out.Audio != "b64-audio" {
		t.Errorf("audio = %q, want synthesized reply", out.Audio)
	}

	if len(deps.logs.created) != 1 {
		t.Fatalf("audit logs = %d, want 1", len(deps.logs.created))
	}
	logged := deps.logs.created[0]
	if logged.UserID != testSC.UserID || logged.Source != "assistant" {
		t.Errorf("audit log = %+v", logged)
	}
}

func TestProcessScheduleAllDay(t *testing.T) {
	deps := &testDeps{
		logs:     &mockLogRepo{},
		meetings: &mockMeetings{},
		calendar: &mockCalendar{},
	}
	intent := &mockIntent{action: llm.ActionScheduleMeeting, reply: "On it."}
	uc := newTestUseCase(intent, deps)

	out, err := uc.Process(context.Background(), testSC, assistant.ProcessInput{
		Transcript: "plan an all day offsite tomorrow about team planning",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if len(deps.meetings.created) != 1 {
		t.Fatalf("created %d meetings, want 1", len(deps.meetings.created))
	}
	in := deps.meetings.created[0]
	wantStart := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	if !in.StartTime.Equal(wantStart) {
		t.Errorf("start = %v, want midnight of the next day", in.StartTime)
	}
	if in.Title != "Team Planning" {
		t.Errorf("title = %q, want %q", in.Title, "Team Planning")
	}
	if len(deps.calendar.requests) != 1 || !deps.calendar.requests[0].AllDay {
		t.Errorf("calendar requests = %+v, want one all-day event", deps.calendar.requests)
	}
	if out.CalendarLink == "" {
		t.Error("expected a calendar link")
	}
}

func TestProcessScheduleNoDateHint(t *testing.T) {
	deps := &testDeps{logs: &mockLogRepo{}, meetings: &mockMeetings{}}
	intent := &mockIntent{action: llm.ActionScheduleMeeting, reply: "On it."}
	uc := newTestUseCase(intent, deps)

	out, err := uc.Process(context.Background(), testSC, assistant.ProcessInput{
		Transcript: "please schedule something sometime soon",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if out.Action != string(llm.ActionGeneralResponse) {
		t.Errorf("action = %q, want general_response", out.Action)
	}
	if out.Reply != noDateReply {
		t.Errorf("reply = %q, want %q", out.Reply, noDateReply)
	}
	if len(deps.meetings.created) != 0 {
		t.Errorf("created %d meetings, want none", len(deps.meetings.created))
	}
}

func TestProcessFetchCalendar(t *testing.T) {
	deps := &testDeps{
		logs: &mockLogRepo{},
		meetings: &mockMeetings{events: []model.Meeting{
			{ID: "m-1", Title: "standup"},
			{ID: "m-2", Title: "review"},
		}},
	}
	intent := &mockIntent{action: llm.ActionFetchCalendar, reply: "Here is your calendar."}
	uc := newTestUseCase(intent, deps)

	out, err := uc.Process(context.Background(), testSC, assistant.ProcessInput{
		Transcript: "what is on my calendar",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if len(out.Events) != 2 {
		t.Errorf("events = %d, want 2", len(out.Events))
	}
	if out.Reply != "Here is your calendar." {
		t.Errorf("reply = %q, want the model reply kept", out.Reply)
	}
}

func TestProcessFallbackWithoutIntent(t *testing.T) {
	t.Run("date hint schedules", func(t *testing.T) {
		deps := &testDeps{logs: &mockLogRepo{}, meetings: &mockMeetings{}}
		uc := newTestUseCase(nil, deps)

		out, err := uc.Process(context.Background(), testSC, assistant.ProcessInput{
			Transcript: "book lunch tomorrow at 1pm",
		})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if out.Action != string(llm.ActionScheduleMeeting) {
			t.Errorf("action = %q, want schedule_meeting", out.Action)
		}
		if len(deps.meetings.created) != 1 {
			t.Errorf("created %d meetings, want 1", len(deps.meetings.created))
		}
	})

	t.Run("no hint falls back", func(t *testing.T) {
		deps := &testDeps{logs: &mockLogRepo{}, meetings: &mockMeetings{}}
		uc := newTestUseCase(nil, deps)

		out, err := uc.Process(context.Background(), testSC, assistant.ProcessInput{
			Transcript: "tell me a joke",
		})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if out.Action != string(llm.ActionGeneralResponse) {
			t.Errorf("action = %q, want general_response", out.Action)
		}
		if out.Reply != fallbackReply {
			t.Errorf("reply = %q, want %q", out.Reply, fallbackReply)
		}
	})

	t.Run("intent error falls back", func(t *testing.T) {
		deps := &testDeps{logs: &mockLogRepo{}, meetings: &mockMeetings{}}
		intent := &mockIntent{err: errors.New("api down")}
		uc := newTestUseCase(intent, deps)

		out, err := uc.Process(context.Background(), testSC, assistant.ProcessInput{
			Transcript: "tell me a joke",
		})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if out.Action != string(llm.ActionGeneralResponse) {
			t.Errorf("action = %q, want general_response", out.Action)
		}
	})
}

func TestProcessNonFatalSideEffects(t *testing.T) {
	deps := &testDeps{
		logs:     &mockLogRepo{fail: true},
		meetings: &mockMeetings{},
		speech:   &mockSpeech{err: errors.New("tts down")},
		calendar: &mockCalendar{err: errors.New("calendar down")},
	}
	intent := &mockIntent{action: llm.ActionScheduleMeeting, reply: "On it."}
	uc := newTestUseCase(intent, deps)

	out, err := uc.Process(context.Background(), testSC, assistant.ProcessInput{
		Transcript: "schedule a review tomorrow at 10am",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out.Meeting == nil {
		t.Fatal("expected the meeting despite side effect failures")
	}
	if out.Audio != "" {
		t.Errorf("audio = %q, want empty on TTS failure", out.Audio)
	}
	if out.CalendarLink != "" {
		t.Errorf("calendar link = %q, want empty on push failure", out.CalendarLink)
	}
}

func TestHistory(t *testing.T) {
	tcs := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"default", 0, 20},
		{"explicit", 5, 5},
		{"capped", 500, 100},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			deps := &testDeps{
				logs:     &mockLogRepo{logs: []model.Log{{ID: "l-1", Source: "assistant"}}},
				meetings: &mockMeetings{},
			}
			uc := newTestUseCase(nil, deps)

			out, err := uc.History(context.Background(), testSC, assistant.HistoryInput{Limit: tc.limit})
			if err != nil {
				t.Fatalf("History: %v", err)
			}
			if len(out.Logs) != 1 || out.Logs[0].ID != "l-1" {
				t.Errorf("logs = %+v", out.Logs)
			}

			if len(deps.logs.listOpts) != 1 {
				t.Fatalf("list calls = %d, want 1", len(deps.logs.listOpts))
			}
			opt := deps.logs.listOpts[0]
			if opt.Limit != tc.wantLimit {
				t.Errorf("limit = %d, want %d", opt.Limit, tc.wantLimit)
			}
			if opt.UserID != testSC.UserID || opt.Source != "assistant" {
				t.Errorf("options = %+v", opt)
			}
		})
	}
}

func TestExtractDuration(t *testing.T) {
	tcs := []struct {
		text string
		want int
	}{
		{"a quick sync for 45 minutes", 45},
		{"block 2 hours for planning", 120},
		{"90 min workshop", 90},
		{"1 hour with the team", 60},
		{"3 hrs deep work", 180},
		{"catch up tomorrow", 0},
	}
	for _, tc := range tcs {
		if got := extractDuration(tc.text); got != tc.want {
			t.Errorf("extractDuration(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestExtractTitle(t *testing.T) {
	tcs := []struct {
		name string
		text string
		want string
	}{
		{"with keyword", "schedule a call with bob tomorrow", "Bob Tomorrow"},
		{"about keyword", "meet tomorrow about budget review", "Budget Review"},
		{"regarding keyword", "set up time regarding the q3 launch", "The Q3 Launch"},
		{"no keyword", "standup tomorrow", "Standup Tomorrow"},
		{"empty", "", titleFallback},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractTitle(tc.text); got != tc.want {
				t.Errorf("extractTitle(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}
