package whisper

import "time"

const (
	// DefaultBaseURL is the default whisper.cpp server endpoint
	DefaultBaseURL = "http://localhost:8178"

	// DefaultTimeout is generous: transcription is CPU-heavy
	DefaultTimeout = 5 * time.Minute
)
