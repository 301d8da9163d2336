package postgre

import (
	"fmt"
	"strings"

	repo "smartmeet/internal/auth/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneUser.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildUpdateQuery builds the SET clause + args for UpdateUser.
// Nil pointer fields are skipped. The user ID is always the last argument.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateUserOptions) (string, []any) {
	var sets []string
	var args []any
	idx := 1

	if opt.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", idx))
		args = append(args, *opt.Name)
		idx++
	}
	if opt.CalendarPreference != nil {
		sets = append(sets, fmt.Sprintf("calendar_preference = $%d", idx))
		args = append(args, string(*opt.CalendarPreference))
		idx++
	}
	if opt.GoogleCredentials != nil {
		sets = append(sets, fmt.Sprintf("google_credentials = $%d", idx))
		args = append(args, []byte(opt.GoogleCredentials))
		idx++
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, opt.ID)

	return fmt.Sprintf("SET %s WHERE id = $%d", strings.Join(sets, ", "), idx), args
}
