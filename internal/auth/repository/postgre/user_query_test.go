package postgre

import (
	"reflect"
	"testing"

	repo "smartmeet/internal/auth/repository"
	"smartmeet/internal/model"
)

func TestBuildGetOneQuery(t *testing.T) {
	r := &implRepository{}

	tests := []struct {
		name     string
		opt      repo.GetOneUserOptions
		wantMods string
		wantArgs []any
	}{
		{
			name:     "by id",
			opt:      repo.GetOneUserOptions{ID: "u-1"},
			wantMods: "id = $1",
			wantArgs: []any{"u-1"},
		},
		{
			name:     "by email",
			opt:      repo.GetOneUserOptions{Email: "a@b.com"},
			wantMods: "email = $1",
			wantArgs: []any{"a@b.com"},
		},
		{
			name:     "by both",
			opt:      repo.GetOneUserOptions{ID: "u-1", Email: "a@b.com"},
			wantMods: "id = $1 AND email = $2",
			wantArgs: []any{"u-1", "a@b.com"},
		},
		{
			name:     "no filters",
			opt:      repo.GetOneUserOptions{},
			wantMods: "1=1",
			wantArgs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods, args := r.buildGetOneQuery(tt.opt)
			if mods != tt.wantMods {
				t.Errorf("mods = %q, want %q", mods, tt.wantMods)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestBuildUpdateQuery(t *testing.T) {
	r := &implRepository{}

	name := "New Name"
	pref := model.CalendarPreferenceDevice

	mods, args := r.buildUpdateQuery(repo.UpdateUserOptions{
		ID:                 "u-1",
		Name:               &name,
		CalendarPreference: &pref,
	})
	want := "SET name = $1, calendar_preference = $2, updated_at = NOW() WHERE id = $3"
	if mods != want {
		t.Errorf("mods = %q, want %q", mods, want)
	}
	if !reflect.DeepEqual(args, []any{"New Name", "device", "u-1"}) {
		t.Errorf("unexpected args: %v", args)
	}

	// Only the ID: still touches updated_at
	mods, args = r.buildUpdateQuery(repo.UpdateUserOptions{ID: "u-2"})
	if mods != "SET updated_at = NOW() WHERE id = $1" {
		t.Errorf("unexpected mods: %q", mods)
	}
	if !reflect.DeepEqual(args, []any{"u-2"}) {
		t.Errorf("unexpected args: %v", args)
	}
}
