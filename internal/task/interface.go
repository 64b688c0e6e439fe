package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Add creates a single task from a manual description.
	Add(ctx context.Context, input AddInput) (AddOutput, error)

	// List returns every stored task in priority order.
	List(ctx context.Context) (ListOutput, error)

	// Update mutates a task's description and/or done flag.
	Update(ctx context.Context, id string, input UpdateInput) (UpdateOutput, error)

	// Delete removes a task permanently.
	Delete(ctx context.Context, id string) error

	// ExtractFromText derives tasks from free text, stores them, and
	// re-ranks the whole set.
	ExtractFromText(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// Transcribe converts a media file to text and feeds the transcript
	// through extraction.
	Transcribe(ctx context.Context, input TranscribeInput) (TranscribeOutput, error)

	// Rank re-prioritizes every pending task.
	Rank(ctx context.Context) (RankOutput, error)
}
