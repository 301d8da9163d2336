package auth

import "smartmeet/internal/model"

// --- UseCase Inputs ---

type RegisterInput struct {
	Name               string
	Email              string
	Password           string
	CalendarPreference string
}

type LoginInput struct {
	Email    string
	Password string
}

type GoogleLoginInput struct {
	IDToken string
}

type UpdateMeInput struct {
	Name               *string
	CalendarPreference *string
}

// --- UseCase Outputs ---

// SessionOutput carries a freshly minted token plus the account it belongs to.
type SessionOutput struct {
	Token string
	User  model.User
}

type ProfileOutput struct {
	User model.User
}
