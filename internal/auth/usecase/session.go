package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"smartmeet/internal/auth"
	repo "smartmeet/internal/auth/repository"
	"smartmeet/internal/model"
)

// Register creates a new account after checking email uniqueness.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.SessionOutput, error) {
	email := normalizeEmail(input.Email)

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return auth.SessionOutput{}, err
	}
	if existing.ID != "" {
		return auth.SessionOutput{}, auth.ErrEmailTaken
	}

	hash, err := uc.encrypter.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register HashPassword: %v", err)
		return auth.SessionOutput{}, err
	}

	user, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:               strings.TrimSpace(input.Name),
		Email:              email,
		PasswordHash:       hash,
		CalendarPreference: normalizePreference(input.CalendarPreference),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return auth.SessionOutput{}, err
	}

	return uc.newSession(ctx, user)
}

// Login authenticates by email and password.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.SessionOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: normalizeEmail(input.Email)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return auth.SessionOutput{}, err
	}
	if user.ID == "" || input.Password == "" || !uc.encrypter.ComparePassword(user.PasswordHash, input.Password) {
		return auth.SessionOutput{}, auth.ErrInvalidCredentials
	}

	return uc.newSession(ctx, user)
}

// GoogleLogin verifies a Google ID token and creates the account on first sight.
// First-time accounts get a random password so the email/password path stays closed.
func (uc *implUseCase) GoogleLogin(ctx context.Context, input auth.GoogleLoginInput) (auth.SessionOutput, error) {
	if uc.verifier == nil {
		return auth.SessionOutput{}, auth.ErrInvalidGoogleToken
	}

	identity, err := uc.verifier.Verify(ctx, input.IDToken)
	if err != nil || identity.Email == "" {
		uc.l.Warnf(ctx, "uc.GoogleLogin verify: %v", err)
		return auth.SessionOutput{}, auth.ErrInvalidGoogleToken
	}

	email := normalizeEmail(identity.Email)
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GoogleLogin GetOneUser: %v", err)
		return auth.SessionOutput{}, err
	}

	if user.ID == "" {
		name := identity.Name
		if name == "" {
			name = strings.SplitN(email, "@", 2)[0]
		}

		hash, hashErr := uc.encrypter.HashPassword(randomPassword())
		if hashErr != nil {
			uc.l.Errorf(ctx, "uc.GoogleLogin HashPassword: %v", hashErr)
			return auth.SessionOutput{}, hashErr
		}

		user, err = uc.repo.CreateUser(ctx, repo.CreateUserOptions{
			Name:               name,
			Email:              email,
			PasswordHash:       hash,
			CalendarPreference: model.CalendarPreferenceLocal,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.GoogleLogin CreateUser: %v", err)
			return auth.SessionOutput{}, err
		}
	}

	return uc.newSession(ctx, user)
}

func (uc *implUseCase) newSession(ctx context.Context, user model.User) (auth.SessionOutput, error) {
	token, err := uc.jwt.CreateToken(user.ID, user.Email)
	if err != nil {
		uc.l.Errorf(ctx, "uc.newSession CreateToken: %v", err)
		return auth.SessionOutput{}, err
	}
	return auth.SessionOutput{Token: token, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizePreference(value string) model.CalendarPreference {
	pref := model.CalendarPreference(strings.ToLower(value))
	if !pref.Valid() {
		return model.CalendarPreferenceLocal
	}
	return pref
}

func randomPassword() string {
	buf := make([]byte, 16)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
