package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gianmatteo-arcana/engine-lever/ent"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
)

// CreateTaskBody is the request body for POST /api/v1/tasks.
type CreateTaskBody struct {
	TaskID      string         `json:"task_id"`
	TemplateID  string         `json:"template_id" binding:"required"`
	InitialData map[string]any `json:"initial_data"`
}

// TaskSummary is the row-level view of a task, without its projected state.
type TaskSummary struct {
	TaskID         string    `json:"task_id"`
	TenantID       string    `json:"tenant_id"`
	TemplateID     string    `json:"template_id"`
	Status         string    `json:"status"`
	CurrentPhase   string    `json:"current_phase,omitempty"`
	LatestSequence int       `json:"latest_sequence"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	ErrorMessage   string    `json:"error_message,omitempty"`
}

func toTaskSummary(t *ent.Task) TaskSummary {
	summary := TaskSummary{
		TaskID:         t.ID,
		TenantID:       t.TenantID,
		TemplateID:     t.TemplateID,
		Status:         string(t.Status),
		CurrentPhase:   t.CurrentPhase,
		LatestSequence: t.LatestSequence,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
	if t.ErrorMessage != nil {
		summary.ErrorMessage = *t.ErrorMessage
	}
	return summary
}

// CreateTask handles POST /api/v1/tasks.
func (s *Server) CreateTask(c *gin.Context) {
	var body CreateTaskBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity := CallerIdentity(c)
	task, err := s.tasks.Create(c.Request.Context(), models.CreateTaskRequest{
		TaskID:      body.TaskID,
		TenantID:    identity.TenantID,
		TemplateID:  body.TemplateID,
		InitialData: body.InitialData,
		Actor:       models.UserActor(identity.Subject),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTaskSummary(task))
}

// ListTasks handles GET /api/v1/tasks.
func (s *Server) ListTasks(c *gin.Context) {
	identity := CallerIdentity(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	tasks, total, err := s.tasks.List(c.Request.Context(), models.TaskFilters{
		TenantID:   identity.TenantID,
		Status:     c.Query("status"),
		TemplateID: c.Query("template_id"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	summaries := make([]TaskSummary, len(tasks))
	for i, t := range tasks {
		summaries[i] = toTaskSummary(t)
	}
	c.JSON(http.StatusOK, gin.H{
		"tasks":  summaries,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// GetTask handles GET /api/v1/tasks/:id. The response is the full task
// context: identity, template snapshot, and the state projected from the
// event history.
func (s *Server) GetTask(c *gin.Context) {
	identity := CallerIdentity(c)

	tc, err := s.tasks.LoadContext(c.Request.Context(), identity.TenantID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tc)
}

// ListEntries handles GET /api/v1/tasks/:id/entries?since=N.
func (s *Server) ListEntries(c *gin.Context) {
	identity := CallerIdentity(c)
	taskID := c.Param("id")

	// Tenant check before the unscoped entry read.
	if _, err := s.tasks.Get(c.Request.Context(), identity.TenantID, taskID); err != nil {
		respondServiceError(c, err)
		return
	}

	since, err := strconv.Atoi(c.DefaultQuery("since", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "since must be an integer"})
		return
	}

	entries, err := s.entries.ListSince(c.Request.Context(), taskID, since)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

// CancelTaskBody is the request body for POST /api/v1/tasks/:id/cancel.
type CancelTaskBody struct {
	Reason string `json:"reason"`
}

// CancelTask handles POST /api/v1/tasks/:id/cancel.
func (s *Server) CancelTask(c *gin.Context) {
	var body CancelTaskBody
	_ = c.ShouldBindJSON(&body)
	if body.Reason == "" {
		body.Reason = "cancelled by user"
	}

	identity := CallerIdentity(c)
	taskID := c.Param("id")

	err := s.tasks.Cancel(c.Request.Context(), identity.TenantID, taskID,
		models.UserActor(identity.Subject), body.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Interrupt the run if it is executing on this replica. Other replicas
	// notice the terminal status on their next append or reload.
	if s.pool != nil {
		s.pool.CancelTask(taskID)
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
