package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/middleware"
	taskHTTP "tasktracker/internal/task/delivery/http"
)

// setupTaskDomain wires the task domain's HTTP handler and registers its
// routes at /api/v1/tasks.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
