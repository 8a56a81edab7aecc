package queue

import (
	"context"
	"testing"
	"time"

	enttask "github.com/gianmatteo-arcana/engine-lever/ent/task"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverStartupTasks(t *testing.T) {
	client := newQueueClient(t)
	ctx := context.Background()
	entries := services.NewEntryService(client, nil)
	now := time.Now()

	claim := func(id, podID string) {
		task, err := client.Task.Get(ctx, id)
		require.NoError(t, err)
		require.NoError(t, task.Update().SetPodID(podID).SetLastInteractionAt(now).Exec(ctx))
	}

	seedTask(t, client, "young", enttask.StatusActive, now.Add(-1*time.Hour))
	claim("young", "pod-1")
	seedTask(t, client, "stale", enttask.StatusActive, now.Add(-48*time.Hour))
	claim("stale", "pod-1")
	seedTask(t, client, "other-pod", enttask.StatusActive, now.Add(-1*time.Hour))
	claim("other-pod", "pod-2")
	seedTask(t, client, "unclaimed", enttask.StatusActive, now.Add(-1*time.Hour))

	require.NoError(t, RecoverStartupTasks(ctx, client, entries, "pod-1", 24*time.Hour))

	t.Run("young task is requeued", func(t *testing.T) {
		task, err := client.Task.Get(ctx, "young")
		require.NoError(t, err)
		assert.Nil(t, task.PodID)
		assert.Equal(t, enttask.StatusActive, task.Status)

		history, err := entries.List(ctx, "young")
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, models.OpRecoveryDecision, history[0].Operation)
		assert.Contains(t, history[0].Reasoning, "Requeued")
	})

	t.Run("task past the window is failed", func(t *testing.T) {
		task, err := client.Task.Get(ctx, "stale")
		require.NoError(t, err)
		assert.Nil(t, task.PodID)
		assert.Equal(t, enttask.StatusFailed, task.Status)
		require.NotNil(t, task.ErrorMessage)
		assert.Contains(t, *task.ErrorMessage, "Recovery window exceeded")

		history, err := entries.List(ctx, "stale")
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, models.OpTaskFailed, history[0].Operation)
		assert.Equal(t, models.ErrKindRecoveryTimeout, history[0].Data["error_kind"])
	})

	t.Run("other pods' claims are untouched", func(t *testing.T) {
		task, err := client.Task.Get(ctx, "other-pod")
		require.NoError(t, err)
		require.NotNil(t, task.PodID)
		assert.Equal(t, "pod-2", *task.PodID)
	})

	t.Run("unclaimed tasks are untouched", func(t *testing.T) {
		task, err := client.Task.Get(ctx, "unclaimed")
		require.NoError(t, err)
		history, err := entries.List(ctx, task.ID)
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}

func TestDetectAndRecoverOrphans(t *testing.T) {
	client := newQueueClient(t)
	ctx := context.Background()
	entries := services.NewEntryService(client, nil)
	now := time.Now()

	cfg := testQueueConfig()
	cfg.OrphanThreshold = time.Minute

	claimAt := func(id, podID string, at time.Time) {
		task, err := client.Task.Get(ctx, id)
		require.NoError(t, err)
		require.NoError(t, task.Update().SetPodID(podID).SetLastInteractionAt(at).Exec(ctx))
	}

	seedTask(t, client, "orphan", enttask.StatusActive, now.Add(-1*time.Hour))
	claimAt("orphan", "dead-pod", now.Add(-10*time.Minute))
	seedTask(t, client, "healthy", enttask.StatusActive, now.Add(-1*time.Hour))
	claimAt("healthy", "pod-2", now)
	seedTask(t, client, "wedged-local", enttask.StatusActive, now.Add(-1*time.Hour))
	claimAt("wedged-local", "pod-1", now.Add(-10*time.Minute))

	pool := NewWorkerPool("pod-1", client, cfg, &stubExecutor{}, entries, 24*time.Hour)

	// The wedged task is still registered here; orphan recovery cancels it
	// locally instead of stealing the claim.
	localCancelled := false
	pool.RegisterTask("wedged-local", func() { localCancelled = true })

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	t.Run("stale claim from a dead pod is requeued", func(t *testing.T) {
		task, err := client.Task.Get(ctx, "orphan")
		require.NoError(t, err)
		assert.Nil(t, task.PodID)
		assert.Equal(t, enttask.StatusActive, task.Status)

		history, err := entries.List(ctx, "orphan")
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, models.OpRecoveryDecision, history[0].Operation)
		assert.Contains(t, history[0].Reasoning, "no heartbeat since")
	})

	t.Run("fresh heartbeat is left alone", func(t *testing.T) {
		task, err := client.Task.Get(ctx, "healthy")
		require.NoError(t, err)
		require.NotNil(t, task.PodID)
		assert.Equal(t, "pod-2", *task.PodID)
	})

	t.Run("locally running task is cancelled, not stolen", func(t *testing.T) {
		assert.True(t, localCancelled)

		task, err := client.Task.Get(ctx, "wedged-local")
		require.NoError(t, err)
		require.NotNil(t, task.PodID, "worker settles its own claim after the cancel")
	})

	t.Run("scan metrics", func(t *testing.T) {
		health := pool.Health()
		assert.False(t, health.LastOrphanScan.IsZero())
		assert.Equal(t, 1, health.OrphansRecovered)
	})
}
