package repository

import "tasktracker/internal/model"

// CreateTaskOptions holds the parameters for creating a task.
type CreateTaskOptions struct {
	Description string           // Non-empty task text
	Source      model.TaskSource // Origin tag (default: manual)
	Priority    int              // Initial urgency score (default 0, ranker overwrites)
}

// UpdateTaskFields holds optional field changes for an update.
// Nil pointers leave the field untouched.
type UpdateTaskFields struct {
	Description *string
	Done        *bool
	Priority    *int
}
