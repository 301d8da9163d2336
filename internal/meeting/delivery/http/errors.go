package http

import (
	"smartmeet/internal/meeting"
	pkgErrors "smartmeet/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case meeting.ErrMeetingNotFound:
		return pkgErrors.NewHTTPError(404, "meeting not found")
	case meeting.ErrInvalidDuration:
		return pkgErrors.NewHTTPError(400, "duration must be positive")
	case meeting.ErrCalendarNotConfigured:
		return pkgErrors.NewHTTPError(503, "google calendar is not configured")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
