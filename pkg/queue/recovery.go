package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gianmatteo-arcana/engine-lever/ent"
	enttask "github.com/gianmatteo-arcana/engine-lever/ent/task"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
)

const recoveryActor = "recovery"

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned tasks.
// All pods run this independently; operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds claimed tasks with stale heartbeats and
// settles them: requeued when young enough to resume, failed otherwise.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Task.Query().
		Where(
			enttask.StatusIn(enttask.StatusActive, enttask.StatusWaitingForInput),
			enttask.PodIDNotNil(),
			enttask.LastInteractionAtNotNil(),
			enttask.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned tasks", "count", len(orphans))

	recovered := 0
	for _, task := range orphans {
		if p.CancelTask(task.ID) {
			// Still running on this pod with a wedged heartbeat; the worker
			// settles the claim itself once the cancel lands.
			continue
		}
		cause := fmt.Sprintf("no heartbeat since %s", task.LastInteractionAt.Format(time.RFC3339))
		if err := recoverTask(ctx, p.entries, task, p.recoveryWindow, cause); err != nil {
			slog.Error("Failed to recover orphaned task",
				"task_id", task.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// RecoverStartupTasks settles tasks still claimed by this pod from a
// previous run. Called once during startup, before the worker pool begins
// processing: tasks young enough to resume are requeued (their runs replay
// the history and continue), the rest are failed.
func RecoverStartupTasks(ctx context.Context, client *ent.Client, entries *services.EntryService, podID string, window time.Duration) error {
	claimed, err := client.Task.Query().
		Where(
			enttask.StatusIn(enttask.StatusActive, enttask.StatusWaitingForInput),
			enttask.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup claims: %w", err)
	}

	if len(claimed) == 0 {
		return nil
	}

	slog.Warn("Found in-flight tasks from previous run",
		"pod_id", podID,
		"count", len(claimed))

	for _, task := range claimed {
		cause := fmt.Sprintf("pod %s restarted mid-run", podID)
		if err := recoverTask(ctx, entries, task, window, cause); err != nil {
			slog.Error("Failed to recover startup task",
				"task_id", task.ID,
				"error", err)
		}
	}

	return nil
}

// recoverTask settles one interrupted task. Within the recovery window the
// claim is released and the task requeued; past it the task is failed with
// a recovery_timeout entry. Both outcomes leave a recovery_decision entry
// in the history.
func recoverTask(ctx context.Context, entries *services.EntryService, task *ent.Task, window time.Duration, cause string) error {
	log := slog.With("task_id", task.ID, "old_pod_id", podIDString(task))
	age := time.Since(task.CreatedAt)

	if age <= window {
		if err := task.Update().ClearPodID().Exec(ctx); err != nil {
			return fmt.Errorf("failed to release claim: %w", err)
		}
		_, err := entries.AppendWithRetry(ctx, models.AppendEntryRequest{
			TaskID:    task.ID,
			Actor:     models.SystemActor(recoveryActor),
			Operation: models.OpRecoveryDecision,
			Reasoning: fmt.Sprintf("Requeued for resumption: %s", cause),
			Trigger: models.Trigger{
				Kind:    models.TriggerKindSystemEvent,
				Source:  recoveryActor,
				Details: "requeued",
			},
		}, 3)
		if err != nil {
			slog.Warn("Failed to record recovery decision", "task_id", task.ID, "error", err)
		}
		log.Info("Interrupted task requeued", "age", age, "cause", cause)
		return nil
	}

	message := fmt.Sprintf("Recovery window exceeded (%s old): %s", age.Round(time.Second), cause)
	_, err := entries.AppendWithRetry(ctx, models.AppendEntryRequest{
		TaskID:    task.ID,
		Actor:     models.SystemActor(recoveryActor),
		Operation: models.OpTaskFailed,
		Data: map[string]any{
			"message":    message,
			"error_kind": models.ErrKindRecoveryTimeout,
		},
		Reasoning: message,
		Trigger: models.Trigger{
			Kind:    models.TriggerKindSystemEvent,
			Source:  recoveryActor,
			Details: "failed",
		},
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to record recovery failure: %w", err)
	}
	if err := task.Update().ClearPodID().Exec(ctx); err != nil {
		return fmt.Errorf("failed to release claim: %w", err)
	}
	log.Warn("Interrupted task failed, recovery window exceeded", "age", age, "cause", cause)
	return nil
}

func podIDString(task *ent.Task) string {
	if task.PodID == nil {
		return "unknown"
	}
	return *task.PodID
}
