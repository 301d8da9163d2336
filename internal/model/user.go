package model

import (
	"encoding/json"
	"time"
)

// CalendarPreference selects where a user's meetings are materialized.
type CalendarPreference string

const (
	CalendarPreferenceLocal  CalendarPreference = "local"
	CalendarPreferenceDevice CalendarPreference = "device"
)

// Valid reports whether p is a known preference.
func (p CalendarPreference) Valid() bool {
	return p == CalendarPreferenceLocal || p == CalendarPreferenceDevice
}

// User represents a registered account.
type User struct {
	ID                 string
	Name               string
	Email              string
	PasswordHash       string
	CalendarPreference CalendarPreference
	GoogleCredentials  json.RawMessage // OAuth token blob, nil when not linked
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasGoogleCredentials reports whether the account is linked to Google Calendar.
func (u User) HasGoogleCredentials() bool {
	return len(u.GoogleCredentials) > 0
}
