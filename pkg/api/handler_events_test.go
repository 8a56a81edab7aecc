package api

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gianmatteo-arcana/engine-lever/pkg/events"
)

// streamedEvent is one decoded SSE data frame from the feed.
type streamedEvent struct {
	Type      string  `json:"type"`
	TaskID    string  `json:"task_id"`
	Operation string  `json:"operation"`
	DBEventID float64 `json:"db_event_id"`
}

// readEvents consumes SSE frames until n events arrived or the deadline hit.
func readEvents(t *testing.T, r *bufio.Reader, n int, deadline time.Duration) []streamedEvent {
	t.Helper()
	var got []streamedEvent
	done := make(chan struct{})

	go func() {
		defer close(done)
		for len(got) < n {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			var evt streamedEvent
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data:")), &evt); err != nil {
				continue
			}
			got = append(got, evt)
		}
	}()

	select {
	case <-done:
	case <-time.After(deadline):
	}
	return got
}

func TestStreamEventsEndpoint(t *testing.T) {
	f := newServerFixture(t)
	ctx := context.Background()
	taskID := f.createTask(t, "secret-1")

	// Persist two feed events the way the services do: through the publisher.
	publisher := events.NewEventPublisher(f.db.DB())
	for _, op := range []string{"task_created", "plan_created"} {
		require.NoError(t, publisher.PublishEntryAppended(ctx, taskID, events.EntryAppendedPayload{
			BasePayload: events.NewBasePayload(events.EventTypeEntryAppended, taskID),
			Operation:   op,
		}))
	}

	srv := httptest.NewServer(f.router)
	defer srv.Close()

	openStream := func(t *testing.T, path string) (*http.Response, *bufio.Reader, context.CancelFunc) {
		t.Helper()
		reqCtx, cancel := context.WithCancel(ctx)
		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, srv.URL+path, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer secret-1")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp, bufio.NewReader(resp.Body), cancel
	}

	t.Run("catches up from the persisted feed then goes live", func(t *testing.T) {
		resp, reader, cancel := openStream(t, "/api/v1/tasks/"+taskID+"/events/stream")
		defer cancel()
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

		catchup := readEvents(t, reader, 2, 5*time.Second)
		require.Len(t, catchup, 2)
		assert.Equal(t, "task_created", catchup[0].Operation)
		assert.Equal(t, "plan_created", catchup[1].Operation)
		assert.Greater(t, catchup[1].DBEventID, catchup[0].DBEventID)

		// A live broadcast after the catch-up arrives on the same stream. The
		// broker is fed directly; this fixture has no LISTEN connection.
		live, err := json.Marshal(map[string]any{
			"type":        events.EventTypeTaskStatus,
			"task_id":     taskID,
			"status":      "active",
			"db_event_id": catchup[1].DBEventID + 1,
		})
		require.NoError(t, err)

		gotLive := make(chan []streamedEvent, 1)
		go func() {
			gotLive <- readEvents(t, reader, 1, 5*time.Second)
		}()

		// Rebroadcast until the stream's subscription picks one up: Subscribe
		// and Broadcast race on a fresh connection.
		deadline := time.Now().Add(5 * time.Second)
		for {
			f.broker.Broadcast(events.TaskChannel(taskID), live)
			select {
			case evts := <-gotLive:
				require.Len(t, evts, 1, "no live event before deadline")
				assert.Equal(t, events.EventTypeTaskStatus, evts[0].Type)
				return
			case <-time.After(50 * time.Millisecond):
			}
			require.False(t, time.Now().After(deadline), "no live event before deadline")
		}
	})

	t.Run("after cursor skips already-seen events", func(t *testing.T) {
		resp, reader, cancel := openStream(t, "/api/v1/tasks/"+taskID+"/events/stream")
		all := readEvents(t, reader, 2, 5*time.Second)
		cancel()
		resp.Body.Close()
		require.Len(t, all, 2)

		cursor := strconv.Itoa(int(all[0].DBEventID))
		resp, reader, cancel = openStream(t, "/api/v1/tasks/"+taskID+"/events/stream?after="+cursor)
		defer cancel()
		defer resp.Body.Close()

		rest := readEvents(t, reader, 1, 5*time.Second)
		require.Len(t, rest, 1)
		assert.Equal(t, "plan_created", rest[0].Operation)
	})

	t.Run("non-integer after", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/"+taskID+"/events/stream?after=abc", "secret-1", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("other tenant gets 404", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/"+taskID+"/events/stream", "secret-2", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
