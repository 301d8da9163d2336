package auth

import (
	"context"

	"smartmeet/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Register creates a new account and returns a session token.
	Register(ctx context.Context, input RegisterInput) (SessionOutput, error)

	// Login authenticates by email and password.
	Login(ctx context.Context, input LoginInput) (SessionOutput, error)

	// GoogleLogin authenticates with a Google ID token, creating the
	// account on first sight.
	GoogleLogin(ctx context.Context, input GoogleLoginInput) (SessionOutput, error)

	// Me returns the authenticated user's profile.
	Me(ctx context.Context, sc model.Scope) (ProfileOutput, error)

	// UpdateMe applies a partial profile update.
	UpdateMe(ctx context.Context, sc model.Scope, input UpdateMeInput) (ProfileOutput, error)
}

// TokenVerifier validates Google ID tokens.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (GoogleIdentity, error)
}

// GoogleIdentity is the subset of ID token claims the domain needs.
type GoogleIdentity struct {
	Email string
	Name  string
}
