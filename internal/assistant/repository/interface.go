package repository

import (
	"context"

	"smartmeet/internal/model"
)

// Repository is the composed interface for the assistant domain data store.
type Repository interface {
	LogRepository
}

// LogRepository persists the assistant audit trail.
type LogRepository interface {
	CreateLog(ctx context.Context, opt CreateLogOptions) (model.Log, error)
	ListLogs(ctx context.Context, opt ListLogsOptions) ([]model.Log, error)
}
