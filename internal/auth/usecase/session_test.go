package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"smartmeet/internal/auth"
	"smartmeet/internal/auth/repository"
	"smartmeet/internal/auth/usecase"
	"smartmeet/internal/model"
	"smartmeet/pkg/encrypter"
	"smartmeet/pkg/scope"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUserRepo struct {
	byEmail map[string]model.User
	byID    map[string]model.User
	fail    bool
	nextID  int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byEmail: map[string]model.User{},
		byID:    map[string]model.User{},
		nextID:  1,
	}
}

func (m *mockUserRepo) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	if m.fail {
		return model.User{}, errors.New("db error")
	}
	user := model.User{
		ID:                 fmt.Sprintf("u-%d", m.nextID),
		Name:               opt.Name,
		Email:              opt.Email,
		PasswordHash:       opt.PasswordHash,
		CalendarPreference: opt.CalendarPreference,
	}
	m.nextID++
	m.byEmail[user.Email] = user
	m.byID[user.ID] = user
	return user, nil
}

func (m *mockUserRepo) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (model.User, error) {
	if m.fail {
		return model.User{}, errors.New("db error")
	}
	if opt.ID != "" {
		return m.byID[opt.ID], nil
	}
	return m.byEmail[opt.Email], nil
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, opt repository.UpdateUserOptions) (model.User, error) {
	if m.fail {
		return model.User{}, errors.New("db error")
	}
	user := m.byID[opt.ID]
	if user.ID == "" {
		return model.User{}, nil
	}
	if opt.Name != nil {
		user.Name = *opt.Name
	}
	if opt.CalendarPreference != nil {
		user.CalendarPreference = *opt.CalendarPreference
	}
	m.byID[user.ID] = user
	m.byEmail[user.Email] = user
	return user, nil
}

type mockVerifier struct {
	identity auth.GoogleIdentity
	err      error
}

func (m *mockVerifier) Verify(ctx context.Context, token string) (auth.GoogleIdentity, error) {
	return m.identity, m.err
}

func newTestUseCase(repo *mockUserRepo, verifier auth.TokenVerifier) auth.UseCase {
	return usecase.New(&mockLogger{}, repo, scope.NewManager("test-secret", 0), encrypter.New(), verifier)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	repo := newMockUserRepo()
	uc := newTestUseCase(repo, nil)

	out, err := uc.Register(ctx, auth.RegisterInput{
		Name:               "  Ada  ",
		Email:              " Ada@Example.COM ",
		Password:           "hunter22",
		CalendarPreference: "DEVICE",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Token == "" {
		t.Error("expected a session token")
	}
	if out.User.Email != "ada@example.com" {
		t.Errorf("email not normalized: %q", out.User.Email)
	}
	if out.User.Name != "Ada" {
		t.Errorf("name not trimmed: %q", out.User.Name)
	}
	if out.User.CalendarPreference != model.CalendarPreferenceDevice {
		t.Errorf("unexpected preference: %q", out.User.CalendarPreference)
	}

	// Duplicate email must be rejected.
	_, err = uc.Register(ctx, auth.RegisterInput{Name: "Other", Email: "ada@example.com", Password: "pw"})
	if !errors.Is(err, auth.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterUnknownPreferenceDefaultsToLocal(t *testing.T) {
	repo := newMockUserRepo()
	uc := newTestUseCase(repo, nil)

	out, err := uc.Register(context.Background(), auth.RegisterInput{
		Name:               "Bob",
		Email:              "bob@example.com",
		Password:           "pw",
		CalendarPreference: "outlook",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.CalendarPreference != model.CalendarPreferenceLocal {
		t.Errorf("unexpected preference: %q", out.User.CalendarPreference)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := newMockUserRepo()
	uc := newTestUseCase(repo, nil)

	if _, err := uc.Register(ctx, auth.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "hunter22"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	out, err := uc.Login(ctx, auth.LoginInput{Email: "ADA@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.Email != "ada@example.com" {
		t.Errorf("unexpected user: %q", out.User.Email)
	}

	cases := []auth.LoginInput{
		{Email: "ada@example.com", Password: "wrong"},
		{Email: "ada@example.com", Password: ""},
		{Email: "nobody@example.com", Password: "hunter22"},
	}
	for _, input := range cases {
		if _, err := uc.Login(ctx, input); !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("Login(%q): expected ErrInvalidCredentials, got %v", input.Email, err)
		}
	}
}

func TestGoogleLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account on first sight", func(t *testing.T) {
		repo := newMockUserRepo()
		uc := newTestUseCase(repo, &mockVerifier{identity: auth.GoogleIdentity{Email: "New@Example.com", Name: "New User"}})

		out, err := uc.GoogleLogin(ctx, auth.GoogleLoginInput{IDToken: "good-token"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.Email != "new@example.com" {
			t.Errorf("unexpected email: %q", out.User.Email)
		}
		if out.User.Name != "New User" {
			t.Errorf("unexpected name: %q", out.User.Name)
		}
	})

	t.Run("name falls back to email local part", func(t *testing.T) {
		repo := newMockUserRepo()
		uc := newTestUseCase(repo, &mockVerifier{identity: auth.GoogleIdentity{Email: "plain@example.com"}})

		out, err := uc.GoogleLogin(ctx, auth.GoogleLoginInput{IDToken: "good-token"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.Name != "plain" {
			t.Errorf("unexpected name: %q", out.User.Name)
		}
	})

	t.Run("reuses existing account", func(t *testing.T) {
		repo := newMockUserRepo()
		uc := newTestUseCase(repo, &mockVerifier{identity: auth.GoogleIdentity{Email: "ada@example.com"}})

		reg, err := uc.Register(ctx, auth.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "pw"})
		if err != nil {
			t.Fatalf("register: %v", err)
		}

		out, err := uc.GoogleLogin(ctx, auth.GoogleLoginInput{IDToken: "good-token"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.ID != reg.User.ID {
			t.Errorf("expected existing account %q, got %q", reg.User.ID, out.User.ID)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		repo := newMockUserRepo()
		uc := newTestUseCase(repo, &mockVerifier{err: errors.New("bad token")})

		if _, err := uc.GoogleLogin(ctx, auth.GoogleLoginInput{IDToken: "bad"}); !errors.Is(err, auth.ErrInvalidGoogleToken) {
			t.Errorf("expected ErrInvalidGoogleToken, got %v", err)
		}
	})

	t.Run("verifier not configured", func(t *testing.T) {
		repo := newMockUserRepo()
		uc := newTestUseCase(repo, nil)

		if _, err := uc.GoogleLogin(ctx, auth.GoogleLoginInput{IDToken: "any"}); !errors.Is(err, auth.ErrInvalidGoogleToken) {
			t.Errorf("expected ErrInvalidGoogleToken, got %v", err)
		}
	})
}

func TestMeAndUpdateMe(t *testing.T) {
	ctx := context.Background()
	repo := newMockUserRepo()
	uc := newTestUseCase(repo, nil)

	reg, err := uc.Register(ctx, auth.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	sc := model.Scope{UserID: reg.User.ID, Email: reg.User.Email}

	out, err := uc.Me(ctx, sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.ID != reg.User.ID {
		t.Errorf("unexpected user: %+v", out.User)
	}

	if _, err := uc.Me(ctx, model.Scope{UserID: "missing"}); !errors.Is(err, auth.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	name := "Ada Lovelace"
	pref := "device"
	updated, err := uc.UpdateMe(ctx, sc, auth.UpdateMeInput{Name: &name, CalendarPreference: &pref})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.User.Name != "Ada Lovelace" {
		t.Errorf("name not updated: %q", updated.User.Name)
	}
	if updated.User.CalendarPreference != model.CalendarPreferenceDevice {
		t.Errorf("preference not updated: %q", updated.User.CalendarPreference)
	}

	// Blank name is ignored, not applied.
	blank := "   "
	kept, err := uc.UpdateMe(ctx, sc, auth.UpdateMeInput{Name: &blank})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kept.User.Name != "Ada Lovelace" {
		t.Errorf("blank name should be ignored, got %q", kept.User.Name)
	}
}
