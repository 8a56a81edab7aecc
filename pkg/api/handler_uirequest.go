package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
)

// ListUIRequests handles GET /api/v1/tasks/:id/ui-requests. Only pending
// requests are returned; answered and cancelled ones live in the entry
// history.
func (s *Server) ListUIRequests(c *gin.Context) {
	identity := CallerIdentity(c)
	taskID := c.Param("id")

	if _, err := s.tasks.Get(c.Request.Context(), identity.TenantID, taskID); err != nil {
		respondServiceError(c, err)
		return
	}

	pending, err := s.uiRequests.ListPending(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ui_requests": pending, "count": len(pending)})
}

// UIResponseBody is the request body for submitting a user response.
type UIResponseBody struct {
	Payload map[string]any `json:"payload" binding:"required"`
}

// SubmitUIResponse handles POST /api/v1/tasks/:id/ui-requests/:requestID/response.
// The response is recorded once; a second submission gets a conflict. The
// waiting dispatch, on this replica or another, is woken through the event
// broker.
func (s *Server) SubmitUIResponse(c *gin.Context) {
	var body UIResponseBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity := CallerIdentity(c)
	taskID := c.Param("id")

	if _, err := s.tasks.Get(c.Request.Context(), identity.TenantID, taskID); err != nil {
		respondServiceError(c, err)
		return
	}

	row, err := s.uiRequests.SubmitResponse(c.Request.Context(), taskID, models.UIResponse{
		RequestID: c.Param("requestID"),
		Payload:   body.Payload,
		Actor:     models.UserActor(identity.Subject),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// CancelUIRequestBody is the request body for cancelling a UI request.
type CancelUIRequestBody struct {
	Reason string `json:"reason"`
}

// CancelUIRequest handles POST /api/v1/tasks/:id/ui-requests/:requestID/cancel.
func (s *Server) CancelUIRequest(c *gin.Context) {
	var body CancelUIRequestBody
	_ = c.ShouldBindJSON(&body)
	if body.Reason == "" {
		body.Reason = "cancelled by user"
	}

	identity := CallerIdentity(c)
	taskID := c.Param("id")

	if _, err := s.tasks.Get(c.Request.Context(), identity.TenantID, taskID); err != nil {
		respondServiceError(c, err)
		return
	}

	err := s.uiRequests.Cancel(c.Request.Context(), taskID, c.Param("requestID"),
		body.Reason, models.UserActor(identity.Subject))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
