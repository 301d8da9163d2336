package http

import (
	"smartmeet/internal/meeting"
	"smartmeet/pkg/log"
)

type handler struct {
	l  log.Logger
	uc meeting.UseCase
}

// New creates a new HTTP handler for the meeting domain.
func New(l log.Logger, uc meeting.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
