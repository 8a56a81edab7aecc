package services_test

import (
	"context"
	"testing"

	enttask "github.com/gianmatteo-arcana/engine-lever/ent/task"
	"github.com/gianmatteo-arcana/engine-lever/pkg/config"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
	testdb "github.com/gianmatteo-arcana/engine-lever/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTemplates() *config.TemplateRegistry {
	return config.NewTemplateRegistry(map[string]*config.TemplateConfig{
		"business_onboarding": {
			Name:           "Business onboarding",
			InitialPhase:   "initialization",
			Goals:          []string{"Collect and verify the business profile"},
			RequiredFields: []string{"business.legal_name", "business.entity_type", "contact.email"},
		},
	})
}

func newTaskFixture(t *testing.T) (*services.TaskService, *services.EntryService, *services.UIRequestService) {
	db := testdb.NewTestClient(t)
	entries := services.NewEntryService(db.Client, nil)
	tasks := services.NewTaskService(db.Client, testTemplates(), entries, nil)
	uiRequests := services.NewUIRequestService(db.Client, nil)
	return tasks, entries, uiRequests
}

func createTask(t *testing.T, tasks *services.TaskService, tenantID string, initial map[string]any) string {
	t.Helper()
	task, err := tasks.Create(context.Background(), models.CreateTaskRequest{
		TenantID:    tenantID,
		TemplateID:  "business_onboarding",
		InitialData: initial,
		Actor:       models.UserActor("user-1"),
	})
	require.NoError(t, err)
	return task.ID
}

func TestTaskServiceCreate(t *testing.T) {
	tasks, entries, _ := newTaskFixture(t)
	ctx := context.Background()

	t.Run("creates row and first entry atomically", func(t *testing.T) {
		task, err := tasks.Create(ctx, models.CreateTaskRequest{
			TenantID:   "tenant-1",
			TemplateID: "business_onboarding",
			InitialData: map[string]any{
				"business": map[string]any{"legal_name": "Acme Corp"},
			},
			Actor: models.UserActor("user-1"),
		})
		require.NoError(t, err)

		assert.Equal(t, enttask.StatusActive, task.Status)
		assert.Equal(t, 1, task.LatestSequence)
		assert.Equal(t, "tenant-1", task.TenantID)

		history, err := entries.List(ctx, task.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, models.OpTaskCreated, history[0].Operation)
		assert.Equal(t, 1, history[0].SequenceNumber)
	})

	t.Run("explicit task id must be unique", func(t *testing.T) {
		req := models.CreateTaskRequest{
			TaskID:     "fixed-id",
			TenantID:   "tenant-1",
			TemplateID: "business_onboarding",
			Actor:      models.UserActor("user-1"),
		}
		_, err := tasks.Create(ctx, req)
		require.NoError(t, err)

		_, err = tasks.Create(ctx, req)
		assert.ErrorIs(t, err, services.ErrAlreadyExists)
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := tasks.Create(ctx, models.CreateTaskRequest{
			TenantID:   "tenant-1",
			TemplateID: "nope",
			Actor:      models.UserActor("user-1"),
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("missing tenant", func(t *testing.T) {
		_, err := tasks.Create(ctx, models.CreateTaskRequest{
			TemplateID: "business_onboarding",
			Actor:      models.UserActor("user-1"),
		})
		assert.True(t, services.IsValidationError(err))
	})
}

func TestTaskServiceGet(t *testing.T) {
	tasks, _, _ := newTaskFixture(t)
	ctx := context.Background()
	taskID := createTask(t, tasks, "tenant-1", nil)

	t.Run("owner reads it", func(t *testing.T) {
		task, err := tasks.Get(ctx, "tenant-1", taskID)
		require.NoError(t, err)
		assert.Equal(t, taskID, task.ID)
	})

	t.Run("other tenant sees not found", func(t *testing.T) {
		_, err := tasks.Get(ctx, "tenant-2", taskID)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestTaskServiceLoadContext(t *testing.T) {
	tasks, entries, _ := newTaskFixture(t)
	ctx := context.Background()
	taskID := createTask(t, tasks, "tenant-1", map[string]any{
		"business": map[string]any{"legal_name": "Acme"},
	})

	tc, err := tasks.LoadContext(ctx, "tenant-1", taskID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, tc.State.Status)
	assert.Equal(t, "initialization", tc.State.Phase)
	assert.Equal(t, 33, tc.State.Completeness)
	assert.Equal(t, "Business onboarding", tc.Template.Name)
	assert.Equal(t, 1, tc.LatestSequence)

	// Read-your-writes: an append is visible on the very next load.
	_, err = entries.Append(ctx, models.AppendEntryRequest{
		TaskID:           taskID,
		ExpectedSequence: -1,
		Actor:            models.SystemActor("dispatcher"),
		Operation:        models.OpPhaseStarted,
		Data:             map[string]any{"phase": "data_collection"},
	})
	require.NoError(t, err)

	tc, err = tasks.LoadContext(ctx, "tenant-1", taskID)
	require.NoError(t, err)
	assert.Equal(t, "data_collection", tc.State.Phase)
	assert.Equal(t, 2, tc.LatestSequence)
}

func TestTaskServiceList(t *testing.T) {
	tasks, entries, _ := newTaskFixture(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		ids = append(ids, createTask(t, tasks, "tenant-1", nil))
	}
	createTask(t, tasks, "tenant-2", nil)

	// Fail one so the status filter has something to find.
	_, err := entries.Append(ctx, models.AppendEntryRequest{
		TaskID:           ids[0],
		ExpectedSequence: -1,
		Actor:            models.SystemActor("dispatcher"),
		Operation:        models.OpTaskFailed,
		Data:             map[string]any{"message": "boom"},
	})
	require.NoError(t, err)

	t.Run("scoped to tenant", func(t *testing.T) {
		list, total, err := tasks.List(ctx, models.TaskFilters{TenantID: "tenant-1"})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, list, 3)
	})

	t.Run("status filter", func(t *testing.T) {
		list, total, err := tasks.List(ctx, models.TaskFilters{TenantID: "tenant-1", Status: models.StatusFailed})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, ids[0], list[0].ID)
	})

	t.Run("pagination", func(t *testing.T) {
		list, total, err := tasks.List(ctx, models.TaskFilters{TenantID: "tenant-1", Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, list, 2)

		rest, _, err := tasks.List(ctx, models.TaskFilters{TenantID: "tenant-1", Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, rest, 1)
	})

	t.Run("missing tenant", func(t *testing.T) {
		_, _, err := tasks.List(ctx, models.TaskFilters{})
		assert.True(t, services.IsValidationError(err))
	})
}

func TestTaskServiceCancel(t *testing.T) {
	tasks, entries, uiRequests := newTaskFixture(t)
	ctx := context.Background()
	taskID := createTask(t, tasks, "tenant-1", nil)

	// Park a pending UI request so cancellation has something to cascade to.
	_, err := uiRequests.Open(ctx, taskID, "collector", models.UIRequestSpec{
		RequestID:    "ui-1",
		TemplateKind: models.UIKindForm,
		SemanticData: map[string]any{"data_path": "contact"},
	})
	require.NoError(t, err)

	tc, err := tasks.LoadContext(ctx, "tenant-1", taskID)
	require.NoError(t, err)
	require.Equal(t, models.StatusWaitingForInput, tc.State.Status)

	t.Run("cancels task and pending requests together", func(t *testing.T) {
		err := tasks.Cancel(ctx, "tenant-1", taskID, models.UserActor("user-1"), "changed my mind")
		require.NoError(t, err)

		tc, err := tasks.LoadContext(ctx, "tenant-1", taskID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, tc.State.Status)
		assert.Empty(t, tc.State.PendingRequests)

		row, err := uiRequests.Get(ctx, taskID, "ui-1")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", string(row.Status))
		assert.Equal(t, "task_cancelled", row.CancelReason)
	})

	t.Run("terminal task rejects further appends", func(t *testing.T) {
		_, err := entries.Append(ctx, models.AppendEntryRequest{
			TaskID:           taskID,
			ExpectedSequence: -1,
			Actor:            models.SystemActor("dispatcher"),
			Operation:        models.OpPhaseStarted,
			Data:             map[string]any{"phase": "too_late"},
		})
		assert.ErrorIs(t, err, services.ErrTaskTerminal)
	})

	t.Run("cancelling again reports terminal", func(t *testing.T) {
		err := tasks.Cancel(ctx, "tenant-1", taskID, models.UserActor("user-1"), "again")
		assert.ErrorIs(t, err, services.ErrTaskTerminal)
	})

	t.Run("tenant check precedes mutation", func(t *testing.T) {
		otherTask := createTask(t, tasks, "tenant-1", nil)
		err := tasks.Cancel(ctx, "tenant-2", otherTask, models.UserActor("user-1"), "not mine")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
