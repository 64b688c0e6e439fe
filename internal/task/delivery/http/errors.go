package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/task"
	"tasktracker/internal/task/repository"
	"tasktracker/internal/transcribe"
	"tasktracker/pkg/response"
)

// mapError translates domain/use-case errors into HTTP responses.
// Unknown errors become opaque 500s so internals never leak to clients.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, transcribe.ErrUnsupportedFormat),
		errors.Is(err, transcribe.ErrFileNotFound):
		response.Error(c, err, nil)
	case errors.Is(err, task.ErrNoTasksExtracted),
		errors.Is(err, task.ErrEmptyTranscript):
		response.Unprocessable(c, err)
	default:
		response.InternalError(c, err)
	}
}
