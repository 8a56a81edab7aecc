package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gianmatteo-arcana/engine-lever/ent"
	"github.com/gianmatteo-arcana/engine-lever/ent/event"
	enttask "github.com/gianmatteo-arcana/engine-lever/ent/task"
	"github.com/gianmatteo-arcana/engine-lever/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes tasks.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor TaskExecutor
	pool     TaskRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// TaskRegistry is the subset of WorkerPool used by Worker for task registration.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor TaskExecutor, pool TaskRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a task, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check (best-effort; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Task.Query().
		Where(
			enttask.StatusIn(enttask.StatusActive, enttask.StatusWaitingForInput),
			enttask.PodIDNotNil(),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active tasks: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentTasks {
		return ErrAtCapacity
	}

	task, err := w.claimNextTask(ctx)
	if err != nil {
		return err
	}

	log := slog.With("task_id", task.ID, "worker_id", w.id)
	log.Info("Task claimed", "status", task.Status, "phase", task.CurrentPhase)

	w.setStatus(WorkerStatusWorking, task.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// Run context with timeout. A run that exceeds it is interrupted and the
	// task released for a later attempt; tasks are resumable.
	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancelTask()

	// Register cancel function for API-triggered cancellation.
	w.pool.RegisterTask(task.ID, cancelTask)
	defer w.pool.UnregisterTask(task.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	go w.runHeartbeat(heartbeatCtx, task.ID)

	result := w.executor.Execute(taskCtx, task)

	cancelHeartbeat()

	if result != nil && result.Err != nil {
		log.Warn("Task run stopped without a terminal status", "error", result.Err)
	}

	// Settle the claim under a background context: taskCtx may be cancelled.
	if err := w.releaseTask(context.Background(), task.ID); err != nil {
		log.Error("Failed to release task claim", "error", err)
		return err
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete")
	return nil
}

// claimNextTask atomically claims the next claimable task using
// FOR UPDATE SKIP LOCKED. Claimable means non-terminal and unowned; a task
// waiting for input whose previous owner died is picked up here and its run
// reattaches to the pending rendezvous.
func (w *Worker) claimNextTask(ctx context.Context) (*ent.Task, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Order by created_at for FIFO processing
	task, err := tx.Task.Query().
		Where(
			enttask.StatusIn(enttask.StatusActive, enttask.StatusWaitingForInput),
			enttask.PodIDIsNil(),
		).
		Order(ent.Asc(enttask.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("failed to query claimable task: %w", err)
	}

	now := time.Now()
	update := task.Update().
		SetPodID(w.podID).
		SetLastInteractionAt(now)
	if task.StartedAt == nil {
		update.SetStartedAt(now)
	}
	task, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return task, nil
}

// runHeartbeat periodically updates last_interaction_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Task.UpdateOneID(taskID).
				SetLastInteractionAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// releaseTask clears this worker's claim. Terminal tasks additionally get
// their transient events garbage-collected after a grace period; clients
// catching up over the events table get that long to drain.
func (w *Worker) releaseTask(ctx context.Context, taskID string) error {
	task, err := w.client.Task.Get(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to reload task: %w", err)
	}

	if err := task.Update().ClearPodID().Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear claim: %w", err)
	}

	switch task.Status {
	case enttask.StatusCompleted, enttask.StatusFailed, enttask.StatusCancelled:
		w.scheduleEventCleanup(taskID)
	}
	return nil
}

// scheduleEventCleanup deletes the task's transient events after the
// configured grace period.
func (w *Worker) scheduleEventCleanup(taskID string) {
	time.AfterFunc(w.config.EventGCGrace, func() {
		_, err := w.client.Event.Delete().
			Where(event.TaskIDEQ(taskID)).
			Exec(context.Background())
		if err != nil {
			slog.Warn("Failed to cleanup task events after grace period",
				"task_id", taskID, "error", err)
		}
	})
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
