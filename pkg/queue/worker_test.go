package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gianmatteo-arcana/engine-lever/ent"
	enttask "github.com/gianmatteo-arcana/engine-lever/ent/task"
	"github.com/gianmatteo-arcana/engine-lever/pkg/config"
	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
	testdb "github.com/gianmatteo-arcana/engine-lever/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExecutor records executions and returns a scripted result.
type stubExecutor struct {
	mu       sync.Mutex
	executed []string
	run      func(ctx context.Context, task *ent.Task) *ExecutionResult
}

func (s *stubExecutor) Execute(ctx context.Context, task *ent.Task) *ExecutionResult {
	s.mu.Lock()
	s.executed = append(s.executed, task.ID)
	s.mu.Unlock()
	if s.run != nil {
		return s.run(ctx, task)
	}
	return &ExecutionResult{}
}

func (s *stubExecutor) executedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.executed...)
}

// stubRegistry satisfies TaskRegistry for workers tested without a pool.
type stubRegistry struct{}

func (stubRegistry) RegisterTask(string, context.CancelFunc) {}
func (stubRegistry) UnregisterTask(string)                   {}

func newQueueClient(t *testing.T) *ent.Client {
	return testdb.NewTestClient(t).Client
}

func seedTask(t *testing.T, client *ent.Client, id string, status enttask.Status, createdAt time.Time) *ent.Task {
	t.Helper()
	task, err := client.Task.Create().
		SetID(id).
		SetTenantID("tenant-1").
		SetTemplateID("generic").
		SetTemplateSnapshot(map[string]any{"template_id": "generic", "name": "Generic task"}).
		SetStatus(status).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return task
}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.HeartbeatInterval = 20 * time.Millisecond
	cfg.TaskTimeout = 5 * time.Second
	return cfg
}

func TestClaimNextTask(t *testing.T) {
	client := newQueueClient(t)
	ctx := context.Background()
	now := time.Now()

	seedTask(t, client, "newest", enttask.StatusActive, now)
	seedTask(t, client, "oldest", enttask.StatusActive, now.Add(-2*time.Hour))
	seedTask(t, client, "middle", enttask.StatusActive, now.Add(-1*time.Hour))
	seedTask(t, client, "done", enttask.StatusCompleted, now.Add(-3*time.Hour))

	w := NewWorker("w-0", "pod-1", client, testQueueConfig(), &stubExecutor{}, stubRegistry{})

	t.Run("claims oldest claimable first", func(t *testing.T) {
		task, err := w.claimNextTask(ctx)
		require.NoError(t, err)
		assert.Equal(t, "oldest", task.ID)
		require.NotNil(t, task.PodID)
		assert.Equal(t, "pod-1", *task.PodID)
		assert.NotNil(t, task.StartedAt)
		assert.NotNil(t, task.LastInteractionAt)
	})

	t.Run("claimed tasks are skipped", func(t *testing.T) {
		task, err := w.claimNextTask(ctx)
		require.NoError(t, err)
		assert.Equal(t, "middle", task.ID)

		task, err = w.claimNextTask(ctx)
		require.NoError(t, err)
		assert.Equal(t, "newest", task.ID)
	})

	t.Run("no claimable tasks", func(t *testing.T) {
		_, err := w.claimNextTask(ctx)
		assert.ErrorIs(t, err, ErrNoTasksAvailable)
	})

	t.Run("unowned waiting task is claimable", func(t *testing.T) {
		seedTask(t, client, "parked", enttask.StatusWaitingForInput, now.Add(-4*time.Hour))

		task, err := w.claimNextTask(ctx)
		require.NoError(t, err)
		assert.Equal(t, "parked", task.ID)
	})

	t.Run("reclaim preserves the original started_at", func(t *testing.T) {
		task, err := client.Task.Get(ctx, "oldest")
		require.NoError(t, err)
		firstStart := task.StartedAt
		require.NotNil(t, firstStart)

		require.NoError(t, task.Update().ClearPodID().Exec(ctx))

		task, err = w.claimNextTask(ctx)
		require.NoError(t, err)
		assert.Equal(t, "oldest", task.ID)
		require.NotNil(t, task.StartedAt)
		assert.True(t, task.StartedAt.Equal(*firstStart))
	})
}

func TestReleaseTask(t *testing.T) {
	client := newQueueClient(t)
	ctx := context.Background()

	seedTask(t, client, "t-1", enttask.StatusActive, time.Now())
	w := NewWorker("w-0", "pod-1", client, testQueueConfig(), &stubExecutor{}, stubRegistry{})

	task, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	require.NotNil(t, task.PodID)

	require.NoError(t, w.releaseTask(ctx, "t-1"))

	task, err = client.Task.Get(ctx, "t-1")
	require.NoError(t, err)
	assert.Nil(t, task.PodID, "released task is claimable again")
}

func TestPollAndProcess(t *testing.T) {
	t.Run("claims, executes, and releases", func(t *testing.T) {
		client := newQueueClient(t)
		ctx := context.Background()
		seedTask(t, client, "t-1", enttask.StatusActive, time.Now())

		executor := &stubExecutor{}
		w := NewWorker("w-0", "pod-1", client, testQueueConfig(), executor, stubRegistry{})

		require.NoError(t, w.pollAndProcess(ctx))
		assert.Equal(t, []string{"t-1"}, executor.executedIDs())

		task, err := client.Task.Get(ctx, "t-1")
		require.NoError(t, err)
		assert.Nil(t, task.PodID)

		health := w.Health()
		assert.Equal(t, 1, health.TasksProcessed)
	})

	t.Run("at capacity", func(t *testing.T) {
		client := newQueueClient(t)
		ctx := context.Background()
		seedTask(t, client, "t-1", enttask.StatusActive, time.Now())

		cfg := testQueueConfig()
		cfg.MaxConcurrentTasks = 0
		w := NewWorker("w-0", "pod-1", client, cfg, &stubExecutor{}, stubRegistry{})

		err := w.pollAndProcess(ctx)
		assert.ErrorIs(t, err, ErrAtCapacity)
	})

	t.Run("empty queue", func(t *testing.T) {
		client := newQueueClient(t)
		w := NewWorker("w-0", "pod-1", client, testQueueConfig(), &stubExecutor{}, stubRegistry{})

		err := w.pollAndProcess(context.Background())
		assert.ErrorIs(t, err, ErrNoTasksAvailable)
	})

	t.Run("heartbeat refreshes the claim while executing", func(t *testing.T) {
		client := newQueueClient(t)
		ctx := context.Background()
		seedTask(t, client, "t-1", enttask.StatusActive, time.Now())

		var claimedAt, beatAt time.Time
		executor := &stubExecutor{run: func(_ context.Context, task *ent.Task) *ExecutionResult {
			claimedAt = *task.LastInteractionAt
			// Hold the task long enough for at least one heartbeat tick.
			time.Sleep(80 * time.Millisecond)
			reloaded, err := client.Task.Get(context.Background(), task.ID)
			if err == nil && reloaded.LastInteractionAt != nil {
				beatAt = *reloaded.LastInteractionAt
			}
			return &ExecutionResult{}
		}}
		w := NewWorker("w-0", "pod-1", client, testQueueConfig(), executor, stubRegistry{})

		require.NoError(t, w.pollAndProcess(ctx))
		assert.True(t, beatAt.After(claimedAt), "heartbeat advanced last_interaction_at")
	})
}

func TestWorkerPoolCancelTask(t *testing.T) {
	client := newQueueClient(t)
	entries := services.NewEntryService(client, nil)
	pool := NewWorkerPool("pod-1", client, testQueueConfig(), &stubExecutor{}, entries, 24*time.Hour)

	cancelled := false
	pool.RegisterTask("t-1", func() { cancelled = true })

	assert.True(t, pool.CancelTask("t-1"))
	assert.True(t, cancelled)
	assert.False(t, pool.CancelTask("ghost"))

	pool.UnregisterTask("t-1")
	assert.False(t, pool.CancelTask("t-1"))
}

func TestWorkerPoolHealth(t *testing.T) {
	client := newQueueClient(t)
	ctx := context.Background()
	entries := services.NewEntryService(client, nil)

	seedTask(t, client, "queued", enttask.StatusActive, time.Now())
	claimed := seedTask(t, client, "mine", enttask.StatusActive, time.Now())
	require.NoError(t, claimed.Update().SetPodID("pod-1").SetLastInteractionAt(time.Now()).Exec(ctx))

	cfg := testQueueConfig()
	cfg.WorkerCount = 1
	// Long poll keeps the worker from draining the queue mid-assertion.
	cfg.PollInterval = time.Hour
	cfg.MaxConcurrentTasks = 0

	pool := NewWorkerPool("pod-1", client, cfg, &stubExecutor{}, entries, 24*time.Hour)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	health := pool.Health()
	assert.Equal(t, "pod-1", health.PodID)
	assert.Equal(t, 1, health.TotalWorkers)
	assert.True(t, health.DBReachable)
	assert.Equal(t, 1, health.QueueDepth)
	assert.Equal(t, 1, health.ActiveTasks)
	// One claimed task against a zero cap reads as unhealthy.
	assert.False(t, health.IsHealthy)
}
