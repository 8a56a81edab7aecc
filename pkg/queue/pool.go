package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gianmatteo-arcana/engine-lever/ent"
	enttask "github.com/gianmatteo-arcana/engine-lever/ent/task"
	"github.com/gianmatteo-arcana/engine-lever/pkg/config"
	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID          string
	client         *ent.Client
	config         *config.QueueConfig
	executor       TaskExecutor
	entries        *services.EntryService
	recoveryWindow time.Duration
	workers        []*Worker
	stopCh         chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup

	// Task cancel registry: task_id → cancel function
	activeTasks map[string]context.CancelFunc
	mu          sync.RWMutex
	started     bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool. entries is used by orphan
// recovery to record its decisions; recoveryWindow bounds how old an
// orphaned task may be and still be requeued.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor TaskExecutor, entries *services.EntryService, recoveryWindow time.Duration) *WorkerPool {
	return &WorkerPool{
		podID:          podID,
		client:         client,
		config:         cfg,
		executor:       executor,
		entries:        entries,
		recoveryWindow: recoveryWindow,
		workers:        make([]*Worker, 0, cfg.WorkerCount),
		stopCh:         make(chan struct{}),
		activeTasks:    make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start orphan detection
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current tasks before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveTaskIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active tasks to settle",
			"count", len(active),
			"task_ids", active)
	}

	// Signal all workers to stop (they finish current tasks)
	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal orphan detection to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterTask stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterTask(taskID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeTasks[taskID] = cancel
}

// UnregisterTask removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterTask(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeTasks, taskID)
}

// CancelTask triggers context cancellation for a task running on this pod.
// Returns true if the task was found and cancelled on this pod.
func (p *WorkerPool) CancelTask(taskID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeTasks[taskID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Task.Query().
		Where(
			enttask.StatusIn(enttask.StatusActive, enttask.StatusWaitingForInput),
			enttask.PodIDIsNil(),
		).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeTasks, errA := p.client.Task.Query().
		Where(
			enttask.StatusIn(enttask.StatusActive, enttask.StatusWaitingForInput),
			enttask.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active tasks for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeTasks <= p.config.MaxConcurrentTasks && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active tasks query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveTasks:      activeTasks,
		MaxConcurrent:    p.config.MaxConcurrentTasks,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// getActiveTaskIDs returns IDs of currently processing tasks (for logging).
func (p *WorkerPool) getActiveTaskIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	tasks := make([]string, 0, len(p.activeTasks))
	for id := range p.activeTasks {
		tasks = append(tasks, id)
	}
	return tasks
}
