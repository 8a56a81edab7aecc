// Package queue provides task queue management and processing infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/gianmatteo-arcana/engine-lever/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no claimable tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAtCapacity indicates the global concurrent task limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// TaskExecutor drives one claimed task.
//
// The executor owns the whole run: planning, phase dispatch, agent execution,
// and user-input waits all happen inside Execute, and every outcome is
// recorded as a context entry before Execute returns. The worker only
// handles claiming, heartbeat, releasing the claim, and event cleanup.
type TaskExecutor interface {
	Execute(ctx context.Context, task *ent.Task) *ExecutionResult
}

// ExecutionResult reports how a run ended. Terminal task statuses were
// already written by the executor; Err is set when the run stopped without
// reaching one (interrupted, timed out, or broken infrastructure).
type ExecutionResult struct {
	Err error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveTasks      int            `json:"active_tasks"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
