package task

import "tasktracker/internal/model"

// Engine names reported in outputs so callers can tell whether a result
// came from a live model or the deterministic fallback.
const (
	EngineLLM       = "llm"
	EngineHeuristic = "heuristic"
)

// AddInput is the input for manual task creation.
type AddInput struct {
	Description string
}

// AddOutput is the result of manual task creation.
type AddOutput struct {
	Task model.Task
}

// ListOutput is the full task set, ordered pending-first, highest
// priority first.
type ListOutput struct {
	Tasks []model.Task
	Count int
}

// UpdateInput carries the mutable task fields; nil means keep current value.
type UpdateInput struct {
	Description *string
	Done        *bool
}

// UpdateOutput is the task after mutation.
type UpdateOutput struct {
	Task model.Task
}

// ExtractInput is the input for free-text task extraction.
type ExtractInput struct {
	RawText string
}

// ExtractOutput is the result of extraction: the tasks created from the
// text, already ranked against the rest of the store.
type ExtractOutput struct {
	Tasks  []model.Task
	Count  int
	Engine string
}

// TranscribeInput is the input for media-file ingestion.
type TranscribeInput struct {
	FilePath string
}

// TranscribeOutput is the transcript plus the tasks extracted from it.
type TranscribeOutput struct {
	Transcript string
	Tasks      []model.Task
	Count      int
	Engine     string
}

// RankOutput is the full task set after re-prioritization.
type RankOutput struct {
	Tasks  []model.Task
	Count  int
	Engine string
}
