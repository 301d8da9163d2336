package http

import (
	"smartmeet/internal/auth"
	pkgErrors "smartmeet/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrEmailTaken:
		return pkgErrors.NewHTTPError(409, "email already registered")
	case auth.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(401, "invalid email or password")
	case auth.ErrInvalidGoogleToken:
		return pkgErrors.NewHTTPError(401, "invalid google token")
	case auth.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
