package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput       = errors.New("input text is empty")
	ErrNoTasksExtracted = errors.New("no tasks extracted from input")
	ErrEmptyTranscript  = errors.New("transcript is empty")
)
