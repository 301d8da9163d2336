package postgre

import (
	"fmt"
	"strings"

	repo "smartmeet/internal/meeting/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneMeeting.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneMeetingOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.OwnerID != "" {
		conditions = append(conditions, fmt.Sprintf("owner_id = $%d", idx))
		args = append(args, opt.OwnerID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the WHERE + ORDER clause for ListMeetings.
// Results are always ordered by start_time ascending.
func (r *implRepository) buildListQuery(opt repo.ListMeetingsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.OwnerID != "" {
		conditions = append(conditions, fmt.Sprintf("owner_id = $%d", idx))
		args = append(args, opt.OwnerID)
		idx++
	}
	if opt.StartFrom != nil {
		conditions = append(conditions, fmt.Sprintf("start_time >= $%d", idx))
		args = append(args, *opt.StartFrom)
		idx++
	}

	var where string
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ") + " "
	}
	return where + "ORDER BY start_time ASC", args
}

// buildUpdateQuery builds the SET clause + args for UpdateMeeting.
// Nil pointer fields are skipped. ID and owner ID are the trailing arguments.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateMeetingOptions) (string, []any) {
	var sets []string
	var args []any
	idx := 1

	if opt.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", idx))
		args = append(args, *opt.Title)
		idx++
	}
	if opt.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", idx))
		args = append(args, *opt.Description)
		idx++
	}
	if opt.StartTime != nil {
		sets = append(sets, fmt.Sprintf("start_time = $%d", idx))
		args = append(args, *opt.StartTime)
		idx++
	}
	if opt.DurationMinutes != nil {
		sets = append(sets, fmt.Sprintf("duration_minutes = $%d", idx))
		args = append(args, *opt.DurationMinutes)
		idx++
	}
	if opt.ExtraData != nil {
		sets = append(sets, fmt.Sprintf("extra_data = $%d", idx))
		args = append(args, []byte(opt.ExtraData))
		idx++
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, opt.ID, opt.OwnerID)

	return fmt.Sprintf("SET %s WHERE id = $%d AND owner_id = $%d",
		strings.Join(sets, ", "), idx, idx+1), args
}
