package usecase

import (
	"time"

	"smartmeet/internal/meeting"
	"smartmeet/internal/meeting/repository"
	"smartmeet/pkg/log"
)

// implUseCase is the private implementation of meeting.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	calendar   meeting.Calendar // nil when Google Calendar is not configured
	calendarID string
	timezone   string
	now        func() time.Time
}

// New creates a new meeting UseCase implementation.
func New(l log.Logger, repo repository.Repository, calendar meeting.Calendar, calendarID, timezone string) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
		now:        time.Now,
	}
}
