package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	repo "smartmeet/internal/assistant/repository"
	"smartmeet/internal/model"
)

const logColumns = `id, user_id, level, message, source, extra_data, created_at`

func scanLog(row interface{ Scan(dest ...any) error }) (model.Log, error) {
	var (
		l      model.Log
		userID sql.NullString
		source sql.NullString
		extra  []byte
	)
	if err := row.Scan(&l.ID, &userID, &l.Level, &l.Message, &source, &extra, &l.CreatedAt); err != nil {
		return model.Log{}, err
	}
	l.UserID = userID.String
	l.Source = source.String
	l.ExtraData = extra
	return l, nil
}

// CreateLog inserts a new audit Log row.
func (r *implRepository) CreateLog(ctx context.Context, opt repo.CreateLogOptions) (model.Log, error) {
	query := fmt.Sprintf(`
		INSERT INTO logs (id, user_id, level, message, source, extra_data, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, NOW())
		RETURNING %s`, logColumns)

	var extra []byte
	if opt.ExtraData != nil {
		extra = []byte(opt.ExtraData)
	}

	l, err := scanLog(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Level, opt.Message, opt.Source, extra,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateLog"), err)
		return model.Log{}, repo.ErrFailedToInsert
	}
	return l, nil
}

// ListLogs returns the filtered logs, newest first.
func (r *implRepository) ListLogs(ctx context.Context, opt repo.ListLogsOptions) ([]model.Log, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.Source != "" {
		conditions = append(conditions, fmt.Sprintf("source = $%d", idx))
		args = append(args, opt.Source)
		idx++
	}

	query := fmt.Sprintf("SELECT %s FROM logs", logColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", idx)
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLogs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var logs []model.Log
	for rows.Next() {
		l, scanErr := scanLog(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListLogs"), scanErr)
			return nil, repo.ErrFailedToList
		}
		logs = append(logs, l)
	}
	return logs, nil
}
