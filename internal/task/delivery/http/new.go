package http

import (
	"tasktracker/internal/task"
	"tasktracker/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c interface{})
	List(c interface{})
	Update(c interface{})
	Delete(c interface{})
	Extract(c interface{})
	Transcribe(c interface{})
	Rank(c interface{})
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
