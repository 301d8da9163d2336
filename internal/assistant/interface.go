package assistant

import (
	"context"

	"smartmeet/internal/model"
	"smartmeet/pkg/llm"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Process handles one voice transcript end to end: intent, scheduling
	// or calendar lookup, spoken reply, and audit trail.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)

	// History returns the caller's recent voice command audit entries,
	// newest first.
	History(ctx context.Context, sc model.Scope, input HistoryInput) (HistoryOutput, error)
}

// Intent classifies a transcript into an assistant action and a reply.
type Intent interface {
	GenerateActionReply(ctx context.Context, userText string) (llm.Action, string, error)
}

// Speech converts a reply into base64 audio.
type Speech interface {
	Synthesize(ctx context.Context, text string) (string, error)
}
