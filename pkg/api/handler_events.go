package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gianmatteo-arcana/engine-lever/pkg/events"
)

// catchupPageSize bounds one catch-up query while streaming.
const catchupPageSize = 200

// heartbeatInterval keeps idle streams alive through proxies.
const heartbeatInterval = 25 * time.Second

// StreamEvents handles GET /api/v1/tasks/:id/events/stream.
//
// The response is a server-sent event stream. It opens with a catch-up pass
// over the persisted event feed, starting after the `after` cursor (or the
// Last-Event-ID header on a browser reconnect), then delivers live events
// from the NOTIFY broker. Every event carries its feed id as db_event_id;
// clients resume with ?after=<last id>. Duplicates across the catch-up/live
// seam, and NOTIFY payloads too large for the 8000-byte limit, are resolved
// against the feed by id.
func (s *Server) StreamEvents(c *gin.Context) {
	identity := CallerIdentity(c)
	taskID := c.Param("id")

	// Tenant check before any read of the feed.
	if _, err := s.tasks.Get(c.Request.Context(), identity.TenantID, taskID); err != nil {
		respondServiceError(c, err)
		return
	}

	if s.broker == nil || s.events == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming is not available on this replica"})
		return
	}

	after := 0
	if v := c.Query("after"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "after must be an integer"})
			return
		}
		after = n
	} else if v := c.GetHeader("Last-Event-ID"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			after = n
		}
	}

	ctx := c.Request.Context()

	// Subscribe before the catch-up read so an event published in between is
	// not missed; anything delivered twice is dropped by id below.
	msgs, unsubscribe, err := s.broker.Subscribe(ctx, events.TaskChannel(taskID))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event feed unavailable"})
		return
	}
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Writer.Flush()

	lastID, err := s.streamCatchup(c, taskID, after)
	if err != nil {
		return
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-heartbeat.C:
			if _, err := c.Writer.WriteString(": keep-alive\n\n"); err != nil {
				return
			}
			c.Writer.Flush()

		case msg := <-msgs:
			var payload map[string]any
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				continue
			}
			id, _ := payload["db_event_id"].(float64)
			truncated, _ := payload["truncated"].(bool)

			switch {
			case truncated:
				// The NOTIFY was an envelope; recover the full rows.
				if lastID, err = s.streamCatchup(c, taskID, lastID); err != nil {
					return
				}
			case int(id) > lastID:
				c.SSEvent("event", payload)
				c.Writer.Flush()
				lastID = int(id)
			}
		}
	}
}

// streamCatchup writes every persisted event after sinceID to the stream and
// returns the id of the last one written.
func (s *Server) streamCatchup(c *gin.Context, taskID string, sinceID int) (int, error) {
	lastID := sinceID
	for {
		rows, err := s.events.ListSince(c.Request.Context(), taskID, lastID, catchupPageSize)
		if err != nil {
			return lastID, err
		}
		for _, row := range rows {
			payload := row.Payload
			payload["db_event_id"] = row.ID
			c.SSEvent("event", payload)
			lastID = row.ID
		}
		c.Writer.Flush()
		if len(rows) < catchupPageSize {
			return lastID, nil
		}
	}
}
