package model

import (
	"encoding/json"
	"time"
)

// Log is an audit record written by the assistant pipeline.
type Log struct {
	ID        string
	UserID    string // empty for system events
	Level     string
	Message   string
	Source    string
	ExtraData json.RawMessage
	CreatedAt time.Time
}
