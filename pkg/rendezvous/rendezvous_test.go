package rendezvous_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gianmatteo-arcana/engine-lever/ent/uirequest"
	"github.com/gianmatteo-arcana/engine-lever/pkg/config"
	"github.com/gianmatteo-arcana/engine-lever/pkg/events"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/gianmatteo-arcana/engine-lever/pkg/rendezvous"
	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
	testdb "github.com/gianmatteo-arcana/engine-lever/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	rdv        *rendezvous.Rendezvous
	broker     *events.Broker
	uiRequests *services.UIRequestService
	taskID     string
}

func newFixture(t *testing.T) *fixture {
	db := testdb.NewTestClient(t)
	entries := services.NewEntryService(db.Client, nil)
	templates := config.NewTemplateRegistry(map[string]*config.TemplateConfig{
		"generic": {
			Name:         "Generic task",
			InitialPhase: "data_collection",
			Goals:        []string{"Complete the task"},
		},
	})
	tasks := services.NewTaskService(db.Client, templates, entries, nil)
	uiRequests := services.NewUIRequestService(db.Client, nil)
	broker := events.NewBroker(nil)

	task, err := tasks.Create(context.Background(), models.CreateTaskRequest{
		TenantID:   "tenant-1",
		TemplateID: "generic",
		Actor:      models.UserActor("user-1"),
	})
	require.NoError(t, err)

	return &fixture{
		rdv:        rendezvous.New(uiRequests, broker),
		broker:     broker,
		uiRequests: uiRequests,
		taskID:     task.ID,
	}
}

func (f *fixture) open(t *testing.T, requestID string) {
	t.Helper()
	_, err := f.rdv.Open(context.Background(), f.taskID, "collector", models.UIRequestSpec{
		RequestID:    requestID,
		TemplateKind: models.UIKindForm,
		SemanticData: map[string]any{"data_path": "contact"},
	})
	require.NoError(t, err)
}

func (f *fixture) notifyResponse(requestID string) {
	payload, _ := json.Marshal(map[string]any{
		"type":       events.EventTypeUIResponseReceived,
		"request_id": requestID,
	})
	f.broker.Broadcast(events.TaskChannel(f.taskID), payload)
}

func TestWaitRespondBefore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.open(t, "ui-1")

	// Response lands before anyone waits; a restarted run reattaches.
	_, err := f.uiRequests.SubmitResponse(ctx, f.taskID, models.UIResponse{
		RequestID: "ui-1",
		Payload:   map[string]any{"email": "ops@acme.test"},
		Actor:     models.UserActor("user-1"),
	})
	require.NoError(t, err)

	payload, err := f.rdv.Wait(ctx, f.taskID, "ui-1", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "ops@acme.test", payload["email"])
}

func TestWaitWokenByBroker(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.open(t, "ui-1")

	done := make(chan struct{})
	var payload map[string]any
	var waitErr error
	go func() {
		defer close(done)
		payload, waitErr = f.rdv.Wait(ctx, f.taskID, "ui-1", 30*time.Second)
	}()

	// Let the waiter subscribe, then answer and notify.
	time.Sleep(50 * time.Millisecond)
	_, err := f.uiRequests.SubmitResponse(ctx, f.taskID, models.UIResponse{
		RequestID: "ui-1",
		Payload:   map[string]any{"email": "late@acme.test"},
		Actor:     models.UserActor("user-1"),
	})
	require.NoError(t, err)
	f.notifyResponse("ui-1")

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("wait did not wake")
	}
	require.NoError(t, waitErr)
	assert.Equal(t, "late@acme.test", payload["email"])
}

func TestWaitIgnoresOtherRequests(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.open(t, "ui-1")
	f.open(t, "ui-2")

	done := make(chan struct{})
	var waitErr error
	go func() {
		defer close(done)
		_, waitErr = f.rdv.Wait(ctx, f.taskID, "ui-1", 30*time.Second)
	}()

	time.Sleep(50 * time.Millisecond)

	// Answering a different request must not release this wait.
	_, err := f.uiRequests.SubmitResponse(ctx, f.taskID, models.UIResponse{
		RequestID: "ui-2",
		Payload:   map[string]any{"email": "other@acme.test"},
		Actor:     models.UserActor("user-1"),
	})
	require.NoError(t, err)
	f.notifyResponse("ui-2")

	select {
	case <-done:
		t.Fatal("wait released by the wrong request")
	case <-time.After(200 * time.Millisecond):
	}

	_, err = f.uiRequests.SubmitResponse(ctx, f.taskID, models.UIResponse{
		RequestID: "ui-1",
		Payload:   map[string]any{"email": "right@acme.test"},
		Actor:     models.UserActor("user-1"),
	})
	require.NoError(t, err)
	f.notifyResponse("ui-1")

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("wait did not wake")
	}
	require.NoError(t, waitErr)
}

func TestWaitTimeout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.open(t, "ui-1")

	_, err := f.rdv.Wait(ctx, f.taskID, "ui-1", 100*time.Millisecond)
	assert.ErrorIs(t, err, rendezvous.ErrWaitTimeout)

	// Timeout retires the request so the UI can drop it.
	row, err := f.uiRequests.Get(ctx, f.taskID, "ui-1")
	require.NoError(t, err)
	assert.Equal(t, uirequest.StatusCancelled, row.Status)
	assert.Equal(t, "timeout", row.CancelReason)
}

func TestWaitCancelledRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.open(t, "ui-1")

	require.NoError(t, f.uiRequests.Cancel(ctx, f.taskID, "ui-1", "user dismissed", models.UserActor("user-1")))

	_, err := f.rdv.Wait(ctx, f.taskID, "ui-1", 5*time.Second)
	assert.ErrorIs(t, err, rendezvous.ErrRequestCancelled)
	assert.Contains(t, err.Error(), "user dismissed")
}

func TestWaitContextCancelled(t *testing.T) {
	f := newFixture(t)
	f.open(t, "ui-1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := f.rdv.Wait(ctx, f.taskID, "ui-1", 30*time.Second)
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("wait did not observe context cancellation")
	}
}
