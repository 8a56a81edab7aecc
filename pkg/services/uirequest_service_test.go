package services_test

import (
	"context"
	"testing"

	enttask "github.com/gianmatteo-arcana/engine-lever/ent/task"
	"github.com/gianmatteo-arcana/engine-lever/ent/uirequest"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formSpec(requestID string) models.UIRequestSpec {
	return models.UIRequestSpec{
		RequestID:    requestID,
		TemplateKind: models.UIKindForm,
		SemanticData: map[string]any{
			"data_path": "contact",
			"fields":    []any{"email"},
		},
	}
}

func TestUIRequestServiceOpen(t *testing.T) {
	tasks, _, uiRequests := newTaskFixture(t)
	ctx := context.Background()
	taskID := createTask(t, tasks, "tenant-1", nil)

	t.Run("creates row, entry, and waiting status", func(t *testing.T) {
		row, err := uiRequests.Open(ctx, taskID, "collector", formSpec("ui-1"))
		require.NoError(t, err)
		assert.Equal(t, "ui-1", row.ID)
		assert.Equal(t, uirequest.StatusPending, row.Status)
		assert.Equal(t, uirequest.PriorityMedium, row.Priority)
		assert.NotEmpty(t, row.OriginatingEventID)

		task, err := tasks.Get(ctx, "tenant-1", taskID)
		require.NoError(t, err)
		assert.Equal(t, enttask.StatusWaitingForInput, task.Status)

		tc, err := tasks.LoadContext(ctx, "tenant-1", taskID)
		require.NoError(t, err)
		assert.Contains(t, tc.State.PendingRequests, "ui-1")
	})

	t.Run("reopening the same request reattaches", func(t *testing.T) {
		before, err := tasks.Get(ctx, "tenant-1", taskID)
		require.NoError(t, err)

		row, err := uiRequests.Open(ctx, taskID, "collector", formSpec("ui-1"))
		require.NoError(t, err)
		assert.Equal(t, "ui-1", row.ID)

		after, err := tasks.Get(ctx, "tenant-1", taskID)
		require.NoError(t, err)
		assert.Equal(t, before.LatestSequence, after.LatestSequence, "reattach writes nothing")
	})

	t.Run("validation", func(t *testing.T) {
		_, err := uiRequests.Open(ctx, taskID, "collector", models.UIRequestSpec{TemplateKind: models.UIKindForm})
		assert.True(t, services.IsValidationError(err))

		_, err = uiRequests.Open(ctx, taskID, "collector", models.UIRequestSpec{RequestID: "x"})
		assert.True(t, services.IsValidationError(err))
	})
}

func TestUIRequestServiceSubmitResponse(t *testing.T) {
	tasks, _, uiRequests := newTaskFixture(t)
	ctx := context.Background()
	taskID := createTask(t, tasks, "tenant-1", nil)

	_, err := uiRequests.Open(ctx, taskID, "collector", formSpec("ui-1"))
	require.NoError(t, err)

	t.Run("records response and reverts task to active", func(t *testing.T) {
		row, err := uiRequests.SubmitResponse(ctx, taskID, models.UIResponse{
			RequestID: "ui-1",
			Payload:   map[string]any{"email": "ops@acme.test"},
			Actor:     models.UserActor("user-1"),
		})
		require.NoError(t, err)
		assert.Equal(t, uirequest.StatusResponded, row.Status)
		assert.Equal(t, "ops@acme.test", row.Response["email"])

		tc, err := tasks.LoadContext(ctx, "tenant-1", taskID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusActive, tc.State.Status)
		// Payload merged at the request's data_path.
		assert.Equal(t, "ops@acme.test", tc.State.Data["contact"].(map[string]any)["email"])
	})

	t.Run("second response is rejected", func(t *testing.T) {
		_, err := uiRequests.SubmitResponse(ctx, taskID, models.UIResponse{
			RequestID: "ui-1",
			Payload:   map[string]any{"email": "other@acme.test"},
			Actor:     models.UserActor("user-2"),
		})
		assert.ErrorIs(t, err, services.ErrAlreadyResponded)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := uiRequests.SubmitResponse(ctx, taskID, models.UIResponse{
			RequestID: "ghost",
			Payload:   map[string]any{},
			Actor:     models.UserActor("user-1"),
		})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("task stays waiting while another request is pending", func(t *testing.T) {
		_, err := uiRequests.Open(ctx, taskID, "collector", formSpec("ui-2"))
		require.NoError(t, err)
		_, err = uiRequests.Open(ctx, taskID, "collector", formSpec("ui-3"))
		require.NoError(t, err)

		_, err = uiRequests.SubmitResponse(ctx, taskID, models.UIResponse{
			RequestID: "ui-2",
			Payload:   map[string]any{"email": "a@b.c"},
			Actor:     models.UserActor("user-1"),
		})
		require.NoError(t, err)

		task, err := tasks.Get(ctx, "tenant-1", taskID)
		require.NoError(t, err)
		assert.Equal(t, enttask.StatusWaitingForInput, task.Status)

		_, err = uiRequests.SubmitResponse(ctx, taskID, models.UIResponse{
			RequestID: "ui-3",
			Payload:   map[string]any{"email": "d@e.f"},
			Actor:     models.UserActor("user-1"),
		})
		require.NoError(t, err)

		task, err = tasks.Get(ctx, "tenant-1", taskID)
		require.NoError(t, err)
		assert.Equal(t, enttask.StatusActive, task.Status)
	})
}

func TestUIRequestServiceCancel(t *testing.T) {
	tasks, _, uiRequests := newTaskFixture(t)
	ctx := context.Background()
	taskID := createTask(t, tasks, "tenant-1", nil)

	_, err := uiRequests.Open(ctx, taskID, "collector", formSpec("ui-1"))
	require.NoError(t, err)

	t.Run("cancels a pending request", func(t *testing.T) {
		err := uiRequests.Cancel(ctx, taskID, "ui-1", "wait expired", models.SystemActor("dispatcher"))
		require.NoError(t, err)

		row, err := uiRequests.Get(ctx, taskID, "ui-1")
		require.NoError(t, err)
		assert.Equal(t, uirequest.StatusCancelled, row.Status)
		assert.Equal(t, "wait expired", row.CancelReason)

		task, err := tasks.Get(ctx, "tenant-1", taskID)
		require.NoError(t, err)
		assert.Equal(t, enttask.StatusActive, task.Status)
	})

	t.Run("cancelled request is not cancellable again", func(t *testing.T) {
		err := uiRequests.Cancel(ctx, taskID, "ui-1", "again", models.SystemActor("dispatcher"))
		assert.ErrorIs(t, err, services.ErrNotCancellable)
	})

	t.Run("responded request is not cancellable", func(t *testing.T) {
		_, err := uiRequests.Open(ctx, taskID, "collector", formSpec("ui-2"))
		require.NoError(t, err)
		_, err = uiRequests.SubmitResponse(ctx, taskID, models.UIResponse{
			RequestID: "ui-2",
			Payload:   map[string]any{"email": "x@y.z"},
			Actor:     models.UserActor("user-1"),
		})
		require.NoError(t, err)

		err = uiRequests.Cancel(ctx, taskID, "ui-2", "too late", models.SystemActor("dispatcher"))
		assert.ErrorIs(t, err, services.ErrNotCancellable)
	})

	t.Run("unknown request", func(t *testing.T) {
		err := uiRequests.Cancel(ctx, taskID, "ghost", "reason", models.SystemActor("dispatcher"))
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("pending list reflects lifecycle", func(t *testing.T) {
		pending, err := uiRequests.ListPending(ctx, taskID)
		require.NoError(t, err)
		assert.Empty(t, pending)

		_, err = uiRequests.Open(ctx, taskID, "collector", formSpec("ui-4"))
		require.NoError(t, err)

		pending, err = uiRequests.ListPending(ctx, taskID)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "ui-4", pending[0].ID)
	})
}
