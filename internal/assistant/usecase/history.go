package usecase

import (
	"context"

	"smartmeet/internal/assistant"
	"smartmeet/internal/assistant/repository"
	"smartmeet/internal/model"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// History returns the caller's recent voice command audit entries, newest
// first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input assistant.HistoryInput) (assistant.HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	logs, err := uc.repo.ListLogs(ctx, repository.ListLogsOptions{
		UserID: sc.UserID,
		Source: auditSource,
		Limit:  limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.History ListLogs: %v", err)
		return assistant.HistoryOutput{}, err
	}

	return assistant.HistoryOutput{Logs: logs}, nil
}
