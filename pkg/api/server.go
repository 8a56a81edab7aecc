// Package api exposes the engine over HTTP: task creation and inspection,
// context entry reads, user-input responses, and health.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gianmatteo-arcana/engine-lever/pkg/database"
	"github.com/gianmatteo-arcana/engine-lever/pkg/events"
	"github.com/gianmatteo-arcana/engine-lever/pkg/queue"
	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
)

// Server represents the API server.
type Server struct {
	db         *database.Client
	tasks      *services.TaskService
	entries    *services.EntryService
	uiRequests *services.UIRequestService
	events     *services.EventService
	broker     *events.Broker
	pool       *queue.WorkerPool
	auth       *Authenticator
}

// NewServer creates a new API server. pool may be nil (API-only replica);
// eventService and broker may be nil together, which disables the live
// event stream endpoint.
func NewServer(
	db *database.Client,
	tasks *services.TaskService,
	entries *services.EntryService,
	uiRequests *services.UIRequestService,
	eventService *services.EventService,
	broker *events.Broker,
	pool *queue.WorkerPool,
	auth *Authenticator,
) *Server {
	return &Server{
		db:         db,
		tasks:      tasks,
		entries:    entries,
		uiRequests: uiRequests,
		events:     eventService,
		broker:     broker,
		pool:       pool,
		auth:       auth,
	}
}

// RegisterRoutes mounts all routes on the given engine.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", s.Health)

	v1 := r.Group("/api/v1", s.auth.Middleware())
	v1.POST("/tasks", s.CreateTask)
	v1.GET("/tasks", s.ListTasks)
	v1.GET("/tasks/:id", s.GetTask)
	v1.GET("/tasks/:id/entries", s.ListEntries)
	v1.GET("/tasks/:id/events/stream", s.StreamEvents)
	v1.POST("/tasks/:id/cancel", s.CancelTask)
	v1.GET("/tasks/:id/ui-requests", s.ListUIRequests)
	v1.POST("/tasks/:id/ui-requests/:requestID/response", s.SubmitUIResponse)
	v1.POST("/tasks/:id/ui-requests/:requestID/cancel", s.CancelUIRequest)
}

// Health handles GET /healthz.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())

	body := gin.H{"database": dbHealth}
	if s.pool != nil {
		body["queue"] = s.pool.Health()
	}

	if err != nil {
		body["status"] = "unhealthy"
		body["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	body["status"] = "healthy"
	c.JSON(http.StatusOK, body)
}
