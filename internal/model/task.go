package model

import "time"

// TaskSource tags where a task came from.
type TaskSource string

const (
	// SourceManual is a task typed in directly by the user.
	SourceManual TaskSource = "manual"
	// SourceText is a task extracted from free-form text.
	SourceText TaskSource = "text"
	// SourceTranscript is a task extracted from an audio/video transcript.
	SourceTranscript TaskSource = "transcript"
)

// Valid reports whether s is a known source tag.
func (s TaskSource) Valid() bool {
	switch s {
	case SourceManual, SourceText, SourceTranscript:
		return true
	}
	return false
}

// Task is the sole domain entity: one unit of user work.
type Task struct {
	ID          string     `json:"id"`          // UUID, assigned at creation, never reused
	Description string     `json:"description"` // Non-empty task text
	Priority    int        `json:"priority"`    // Urgency score, higher ranks first; recomputed by the ranker
	Source      TaskSource `json:"source"`      // manual | text | transcript
	CreatedAt   time.Time  `json:"created_at"`  // Immutable creation timestamp
	Done        bool       `json:"done"`        // Completion flag, user-toggled only
}
