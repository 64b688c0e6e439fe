package repository

import "errors"

var (
	// ErrNotFound is returned when an operation references an unknown task id.
	ErrNotFound = errors.New("task not found")

	// ErrCorruptState is returned when the persisted file exists but cannot be parsed.
	ErrCorruptState = errors.New("persisted task file is corrupt")

	// ErrIDMismatch is returned by ReplaceAll when the id set differs from the store.
	ErrIDMismatch = errors.New("replacement set does not match stored task ids")
)
