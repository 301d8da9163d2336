package http

import (
	"smartmeet/internal/assistant"
	pkgErrors "smartmeet/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case assistant.ErrEmptyTranscript:
		return pkgErrors.NewHTTPError(400, "transcript is required")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
