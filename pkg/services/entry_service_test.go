package services_test

import (
	"context"
	"sync"
	"testing"

	enttask "github.com/gianmatteo-arcana/engine-lever/ent/task"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryServiceAppend(t *testing.T) {
	tasks, entries, _ := newTaskFixture(t)
	ctx := context.Background()
	taskID := createTask(t, tasks, "tenant-1", nil)

	t.Run("sequence numbers are gap-free and monotonic", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			entry, err := entries.Append(ctx, models.AppendEntryRequest{
				TaskID:           taskID,
				ExpectedSequence: -1,
				Actor:            models.SystemActor("dispatcher"),
				Operation:        "annotation",
				Data:             map[string]any{"i": i},
			})
			require.NoError(t, err)
			assert.Equal(t, i+2, entry.SequenceNumber) // task_created took 1
		}

		history, err := entries.List(ctx, taskID)
		require.NoError(t, err)
		require.Len(t, history, 6)
		for i, e := range history {
			assert.Equal(t, i+1, e.SequenceNumber)
		}
	})

	t.Run("stale expected sequence is rejected", func(t *testing.T) {
		_, err := entries.Append(ctx, models.AppendEntryRequest{
			TaskID:           taskID,
			ExpectedSequence: 1,
			Actor:            models.SystemActor("dispatcher"),
			Operation:        "annotation",
		})
		assert.ErrorIs(t, err, services.ErrConcurrentWrite)
	})

	t.Run("matching expected sequence is accepted", func(t *testing.T) {
		tc, err := tasks.LoadContext(ctx, "tenant-1", taskID)
		require.NoError(t, err)

		entry, err := entries.Append(ctx, models.AppendEntryRequest{
			TaskID:           taskID,
			ExpectedSequence: tc.LatestSequence,
			Actor:            models.SystemActor("dispatcher"),
			Operation:        "annotation",
		})
		require.NoError(t, err)
		assert.Equal(t, tc.LatestSequence+1, entry.SequenceNumber)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := entries.Append(ctx, models.AppendEntryRequest{
			TaskID:           "ghost",
			ExpectedSequence: -1,
			Actor:            models.SystemActor("dispatcher"),
			Operation:        "annotation",
		})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := entries.Append(ctx, models.AppendEntryRequest{
			TaskID: taskID,
			Actor:  models.SystemActor("dispatcher"),
		})
		assert.True(t, services.IsValidationError(err))

		_, err = entries.Append(ctx, models.AppendEntryRequest{
			TaskID:    taskID,
			Operation: "annotation",
		})
		assert.True(t, services.IsValidationError(err))
	})
}

func TestEntryServiceConcurrentAppends(t *testing.T) {
	tasks, entries, _ := newTaskFixture(t)
	ctx := context.Background()
	taskID := createTask(t, tasks, "tenant-1", nil)

	// Row lock serializes sequence assignment: all writers succeed, every
	// sequence number is used exactly once.
	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = entries.AppendWithRetry(ctx, models.AppendEntryRequest{
				TaskID:    taskID,
				Actor:     models.SystemActor("dispatcher"),
				Operation: "annotation",
				Data:      map[string]any{"writer": i},
			}, 3)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "writer %d", i)
	}

	history, err := entries.List(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, history, writers+1)
	for i, e := range history {
		assert.Equal(t, i+1, e.SequenceNumber)
	}
}

func TestEntryServiceDerivedColumns(t *testing.T) {
	tasks, entries, _ := newTaskFixture(t)
	ctx := context.Background()

	appendOp := func(taskID, op string, data map[string]any) {
		t.Helper()
		_, err := entries.Append(ctx, models.AppendEntryRequest{
			TaskID:           taskID,
			ExpectedSequence: -1,
			Actor:            models.SystemActor("dispatcher"),
			Operation:        op,
			Data:             data,
		})
		require.NoError(t, err)
	}

	t.Run("phase_started updates current_phase", func(t *testing.T) {
		taskID := createTask(t, tasks, "tenant-1", nil)
		appendOp(taskID, models.OpPhaseStarted, map[string]any{"phase": "data_collection"})

		task, err := tasks.Get(ctx, "tenant-1", taskID)
		require.NoError(t, err)
		assert.Equal(t, "data_collection", task.CurrentPhase)
		assert.Equal(t, 2, task.LatestSequence)
	})

	t.Run("task_failed records message and completed_at", func(t *testing.T) {
		taskID := createTask(t, tasks, "tenant-1", nil)
		appendOp(taskID, models.OpTaskFailed, map[string]any{"message": "planner gave up"})

		task, err := tasks.Get(ctx, "tenant-1", taskID)
		require.NoError(t, err)
		assert.Equal(t, enttask.StatusFailed, task.Status)
		require.NotNil(t, task.ErrorMessage)
		assert.Equal(t, "planner gave up", *task.ErrorMessage)
		assert.NotNil(t, task.CompletedAt)
	})

	t.Run("task_completed sets terminal status", func(t *testing.T) {
		taskID := createTask(t, tasks, "tenant-1", nil)
		appendOp(taskID, models.OpTaskCompleted, nil)

		task, err := tasks.Get(ctx, "tenant-1", taskID)
		require.NoError(t, err)
		assert.Equal(t, enttask.StatusCompleted, task.Status)
		assert.NotNil(t, task.CompletedAt)
	})
}

func TestEntryServiceListSince(t *testing.T) {
	tasks, entries, _ := newTaskFixture(t)
	ctx := context.Background()
	taskID := createTask(t, tasks, "tenant-1", nil)

	for i := 0; i < 3; i++ {
		_, err := entries.Append(ctx, models.AppendEntryRequest{
			TaskID:           taskID,
			ExpectedSequence: -1,
			Actor:            models.SystemActor("dispatcher"),
			Operation:        "annotation",
		})
		require.NoError(t, err)
	}

	since2, err := entries.ListSince(ctx, taskID, 2)
	require.NoError(t, err)
	require.Len(t, since2, 2)
	assert.Equal(t, 3, since2[0].SequenceNumber)
	assert.Equal(t, 4, since2[1].SequenceNumber)

	all, err := entries.ListSince(ctx, taskID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	none, err := entries.ListSince(ctx, taskID, 100)
	require.NoError(t, err)
	assert.Empty(t, none)
}
