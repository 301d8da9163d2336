package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	repo "smartmeet/internal/auth/repository"
	"smartmeet/internal/model"
)

const userColumns = `id, name, email, password_hash, calendar_preference, google_credentials, created_at, updated_at`

func scanUser(row *sql.Row) (model.User, error) {
	var (
		user  model.User
		pref  string
		creds []byte
	)
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&pref, &creds, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return model.User{}, err
	}
	user.CalendarPreference = model.CalendarPreference(pref)
	user.GoogleCredentials = creds
	return user, nil
}

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (id, name, email, password_hash, calendar_preference, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s`, userColumns)

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.Name, opt.Email, opt.PasswordHash, string(opt.CalendarPreference),
	)
	user, err := scanUser(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return user, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, mods)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return user, nil
}

// UpdateUser applies a partial update by ID and returns the updated entity.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	mods, args := r.buildUpdateQuery(opt)
	query := fmt.Sprintf("UPDATE users %s RETURNING %s", mods, userColumns)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	return user, nil
}
