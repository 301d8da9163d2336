package http

import (
	"time"

	"smartmeet/internal/auth"
	"smartmeet/internal/model"
)

// --- Request DTOs ---

type registerReq struct {
	Name               string `json:"name"     binding:"required,min=1,max=120"`
	Email              string `json:"email"    binding:"required,email,max=255"`
	Password           string `json:"password" binding:"required,min=6,max=128"`
	CalendarPreference string `json:"calendar_preference" binding:"omitempty,oneof=local device"`
}

func (r registerReq) validate() error { return nil }

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Name:               r.Name,
		Email:              r.Email,
		Password:           r.Password,
		CalendarPreference: r.CalendarPreference,
	}
}

// ---

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) validate() error { return nil }

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Email: r.Email, Password: r.Password}
}

// ---

type googleLoginReq struct {
	Token string `json:"token" binding:"required"`
}

func (r googleLoginReq) validate() error { return nil }

func (r googleLoginReq) toInput() auth.GoogleLoginInput {
	return auth.GoogleLoginInput{IDToken: r.Token}
}

// ---

type updateMeReq struct {
	Name               *string `json:"name"                binding:"omitempty,min=1,max=120"`
	CalendarPreference *string `json:"calendar_preference" binding:"omitempty,oneof=local device"`
}

func (r updateMeReq) validate() error { return nil }

func (r updateMeReq) toInput() auth.UpdateMeInput {
	return auth.UpdateMeInput{
		Name:               r.Name,
		CalendarPreference: r.CalendarPreference,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	CalendarPreference string    `json:"calendar_preference"`
	CreatedAt          time.Time `json:"created_at"`
}

func newUserResp(user model.User) userResp {
	return userResp{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		CalendarPreference: string(user.CalendarPreference),
		CreatedAt:          user.CreatedAt,
	}
}

type sessionResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

func (h *handler) newSessionResp(out auth.SessionOutput) sessionResp {
	return sessionResp{Token: out.Token, User: newUserResp(out.User)}
}

type profileResp struct {
	User userResp `json:"user"`
}

func (h *handler) newProfileResp(out auth.ProfileOutput) profileResp {
	return profileResp{User: newUserResp(out.User)}
}
