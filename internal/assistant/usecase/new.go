package usecase

import (
	"time"

	"smartmeet/internal/assistant"
	"smartmeet/internal/assistant/repository"
	"smartmeet/internal/meeting"
	"smartmeet/pkg/log"
	"smartmeet/pkg/nldate"
)

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	meetings meeting.UseCase
	dates    *nldate.Parser
	intent   assistant.Intent // nil when the LLM is not configured
	speech   assistant.Speech // nil when TTS is not configured
	calendar meeting.Calendar // nil when Google Calendar is not configured
	timezone string
	now      func() time.Time
}

// New creates a new assistant UseCase implementation.
func New(
	l log.Logger,
	repo repository.Repository,
	meetings meeting.UseCase,
	dates *nldate.Parser,
	intent assistant.Intent,
	speech assistant.Speech,
	calendar meeting.Calendar,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		meetings: meetings,
		dates:    dates,
		intent:   intent,
		speech:   speech,
		calendar: calendar,
		timezone: timezone,
		now:      time.Now,
	}
}
