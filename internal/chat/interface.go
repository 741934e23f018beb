package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Process handles one incoming chat message end to end: conversation
	// resolution, generation, history retention, and follow-up suggestions.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
}
