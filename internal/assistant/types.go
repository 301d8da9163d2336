package assistant

import "smartmeet/internal/model"

// --- UseCase Inputs ---

type ProcessInput struct {
	Transcript string
}

type HistoryInput struct {
	Limit int // 0 means the default page size
}

// --- UseCase Outputs ---

// ProcessOutput is the full assistant response for one transcript.
type ProcessOutput struct {
	Action       string
	Reply        string
	Audio        string // base64 audio of Reply, empty when TTS is off
	Meeting      *model.Meeting
	CalendarLink string
	Events       []model.Meeting
}

type HistoryOutput struct {
	Logs []model.Log
}
