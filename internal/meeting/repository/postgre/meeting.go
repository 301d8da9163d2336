package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	repo "smartmeet/internal/meeting/repository"
	"smartmeet/internal/model"
)

const meetingColumns = `id, owner_id, title, description, start_time, duration_minutes, extra_data, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeeting(row rowScanner) (model.Meeting, error) {
	var (
		m     model.Meeting
		desc  sql.NullString
		extra []byte
	)
	err := row.Scan(
		&m.ID, &m.OwnerID, &m.Title, &desc, &m.StartTime,
		&m.DurationMinutes, &extra, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return model.Meeting{}, err
	}
	m.Description = desc.String
	m.ExtraData = extra
	return m, nil
}

// CreateMeeting inserts a new Meeting row and returns the created entity.
func (r *implRepository) CreateMeeting(ctx context.Context, opt repo.CreateMeetingOptions) (model.Meeting, error) {
	query := fmt.Sprintf(`
		INSERT INTO meetings (id, owner_id, title, description, start_time, duration_minutes, extra_data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s`, meetingColumns)

	var extra []byte
	if opt.ExtraData != nil {
		extra = []byte(opt.ExtraData)
	}

	m, err := scanMeeting(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.OwnerID, opt.Title, opt.Description,
		opt.StartTime, opt.DurationMinutes, extra,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMeeting"), err)
		return model.Meeting{}, repo.ErrFailedToInsert
	}
	return m, nil
}

// GetOneMeeting retrieves a single Meeting by the provided filters (AND condition).
// Returns zero-value Meeting (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneMeeting(ctx context.Context, opt repo.GetOneMeetingOptions) (model.Meeting, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM meetings WHERE %s LIMIT 1", meetingColumns, mods)

	m, err := scanMeeting(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Meeting{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneMeeting"), err)
		return model.Meeting{}, repo.ErrFailedToGet
	}
	return m, nil
}

// ListMeetings returns the filtered meetings ordered by start_time ascending.
func (r *implRepository) ListMeetings(ctx context.Context, opt repo.ListMeetingsOptions) ([]model.Meeting, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM meetings %s", meetingColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMeetings"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var meetings []model.Meeting
	for rows.Next() {
		m, scanErr := scanMeeting(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMeetings"), scanErr)
			return nil, repo.ErrFailedToList
		}
		meetings = append(meetings, m)
	}
	return meetings, nil
}

// UpdateMeeting applies a partial update and returns the updated entity.
func (r *implRepository) UpdateMeeting(ctx context.Context, opt repo.UpdateMeetingOptions) (model.Meeting, error) {
	mods, args := r.buildUpdateQuery(opt)
	query := fmt.Sprintf("UPDATE meetings %s RETURNING %s", mods, meetingColumns)

	m, err := scanMeeting(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Meeting{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateMeeting"), err)
		return model.Meeting{}, repo.ErrFailedToUpdate
	}
	return m, nil
}

// DeleteMeeting removes a Meeting by ID, scoped to its owner.
func (r *implRepository) DeleteMeeting(ctx context.Context, id, ownerID string) error {
	const query = `DELETE FROM meetings WHERE id = $1 AND owner_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteMeeting"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
