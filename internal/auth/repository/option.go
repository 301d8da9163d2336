package repository

import (
	"encoding/json"

	"smartmeet/internal/model"
)

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Name               string
	Email              string
	PasswordHash       string
	CalendarPreference model.CalendarPreference
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    string
	Email string
}

// UpdateUserOptions holds parameters for updating an existing User.
// Nil pointer fields are left untouched.
type UpdateUserOptions struct {
	ID                 string
	Name               *string
	CalendarPreference *model.CalendarPreference
	GoogleCredentials  json.RawMessage
}
