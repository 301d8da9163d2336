package meeting

import "errors"

var (
	ErrMeetingNotFound       = errors.New("meeting not found")
	ErrCalendarNotConfigured = errors.New("google calendar is not configured")
	ErrInvalidDuration       = errors.New("duration must be positive")
)
