package usecase

import (
	"context"
	"strings"

	"smartmeet/internal/auth"
	repo "smartmeet/internal/auth/repository"
	"smartmeet/internal/model"
)

// Me retrieves the authenticated user's profile. Returns ErrUserNotFound when
// the account behind the token no longer exists.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (auth.ProfileOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return auth.ProfileOutput{}, err
	}
	if user.ID == "" {
		return auth.ProfileOutput{}, auth.ErrUserNotFound
	}
	return auth.ProfileOutput{User: user}, nil
}

// UpdateMe applies a partial profile update. Blank names and unknown calendar
// preferences are ignored rather than rejected.
func (uc *implUseCase) UpdateMe(ctx context.Context, sc model.Scope, input auth.UpdateMeInput) (auth.ProfileOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateMe GetOneUser: %v", err)
		return auth.ProfileOutput{}, err
	}
	if existing.ID == "" {
		return auth.ProfileOutput{}, auth.ErrUserNotFound
	}

	opt := repo.UpdateUserOptions{ID: existing.ID}
	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			opt.Name = &name
		}
	}
	if input.CalendarPreference != nil {
		pref := normalizePreference(*input.CalendarPreference)
		opt.CalendarPreference = &pref
	}

	if opt.Name == nil && opt.CalendarPreference == nil {
		return auth.ProfileOutput{User: existing}, nil
	}

	user, err := uc.repo.UpdateUser(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateMe UpdateUser: %v", err)
		return auth.ProfileOutput{}, err
	}
	return auth.ProfileOutput{User: user}, nil
}
