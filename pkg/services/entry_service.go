package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gianmatteo-arcana/engine-lever/ent"
	"github.com/gianmatteo-arcana/engine-lever/ent/contextentry"
	enttask "github.com/gianmatteo-arcana/engine-lever/ent/task"
	"github.com/gianmatteo-arcana/engine-lever/ent/uirequest"
	"github.com/gianmatteo-arcana/engine-lever/pkg/events"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/google/uuid"
)

// EntryService manages a task's append-only context history.
// Every append assigns the next gap-free sequence number and maintains the
// task row's derived columns (latest_sequence, status, current_phase) in the
// same transaction, so the row always indexes the history it summarizes.
type EntryService struct {
	client    *ent.Client
	publisher *events.EventPublisher
}

// NewEntryService creates a new EntryService.
// The publisher may be nil; appends then skip live-event delivery.
func NewEntryService(client *ent.Client, publisher *events.EventPublisher) *EntryService {
	return &EntryService{client: client, publisher: publisher}
}

// Append appends a single context entry.
//
// When req.ExpectedSequence is non-negative, the append is rejected with
// ErrConcurrentWrite if the task's tail has moved past it; the caller's view
// of the state is stale and must be reloaded. A negative ExpectedSequence
// skips the check; the task row lock still serializes sequence assignment.
func (s *EntryService) Append(httpCtx context.Context, req models.AppendEntryRequest) (*ent.ContextEntry, error) {
	if err := validateAppend(req); err != nil {
		return nil, err
	}

	// Background context with timeout for the critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := appendEntryTx(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit append: %w", err)
	}

	s.publishAppend(httpCtx, res)
	return res.Entry, nil
}

// AppendWithRetry appends with automatic retry on ErrConcurrentWrite,
// re-reading the tail sequence before each attempt. Use this for entries
// whose payload does not depend on projected state (audit records, status
// transitions); state-dependent appends must reload and re-decide instead.
func (s *EntryService) AppendWithRetry(ctx context.Context, req models.AppendEntryRequest, maxAttempts int) (*ent.ContextEntry, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		req.ExpectedSequence = -1
		entry, err := s.Append(ctx, req)
		if err == nil {
			return entry, nil
		}
		lastErr = err
		if err != ErrConcurrentWrite {
			return nil, err
		}
	}
	return nil, lastErr
}

// List returns all entries of a task in sequence order.
func (s *EntryService) List(ctx context.Context, taskID string) ([]*ent.ContextEntry, error) {
	entries, err := s.client.ContextEntry.Query().
		Where(contextentry.TaskIDEQ(taskID)).
		Order(ent.Asc(contextentry.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// ListSince returns entries with sequence_number > since, in sequence order.
// Used by feed consumers to catch up after a wake-up notification.
func (s *EntryService) ListSince(ctx context.Context, taskID string, since int) ([]*ent.ContextEntry, error) {
	entries, err := s.client.ContextEntry.Query().
		Where(
			contextentry.TaskIDEQ(taskID),
			contextentry.SequenceNumberGT(since),
		).
		Order(ent.Asc(contextentry.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries since %d: %w", since, err)
	}
	return entries, nil
}

func (s *EntryService) publishAppend(ctx context.Context, res *appendResult) {
	publishAppendResult(ctx, s.publisher, res)
}

// publishAppendResult publishes the live events for a committed append.
// Best-effort: delivery failures are logged, never propagated; the durable
// history is already committed.
func publishAppendResult(ctx context.Context, publisher *events.EventPublisher, res *appendResult) {
	if publisher == nil {
		return
	}

	entry := res.Entry
	payload := events.EntryAppendedPayload{
		BasePayload:    events.NewBasePayload(events.EventTypeEntryAppended, entry.TaskID),
		EntryID:        entry.ID,
		SequenceNumber: entry.SequenceNumber,
		Operation:      entry.Operation,
		ActorKind:      string(entry.ActorKind),
		ActorID:        entry.ActorID,
	}
	if err := publisher.PublishEntryAppended(ctx, entry.TaskID, payload); err != nil {
		slog.Warn("Failed to publish entry.appended", "task_id", entry.TaskID, "sequence", entry.SequenceNumber, "error", err)
	}

	if res.StatusChanged {
		statusPayload := events.TaskStatusPayload{
			BasePayload: events.NewBasePayload(events.EventTypeTaskStatus, entry.TaskID),
			Status:      res.NewStatus,
			Phase:       res.Phase,
		}
		if err := publisher.PublishTaskStatus(ctx, entry.TaskID, statusPayload); err != nil {
			slog.Warn("Failed to publish task.status", "task_id", entry.TaskID, "status", res.NewStatus, "error", err)
		}
	}
}

func validateAppend(req models.AppendEntryRequest) error {
	if req.TaskID == "" {
		return NewValidationError("task_id", "required")
	}
	if req.Operation == "" {
		return NewValidationError("operation", "required")
	}
	if req.Actor.Kind == "" {
		return NewValidationError("actor.kind", "required")
	}
	if req.Actor.ID == "" {
		return NewValidationError("actor.id", "required")
	}
	return nil
}

// appendResult carries what a transactional append changed, for post-commit
// event publication.
type appendResult struct {
	Entry         *ent.ContextEntry
	StatusChanged bool
	NewStatus     string
	Phase         string
}

// appendEntryTx appends an entry and updates the task row inside an open
// transaction. The task row is locked FOR UPDATE, which serializes sequence
// assignment; the unique (task_id, sequence_number) index backstops it.
// Shared by EntryService, TaskService, and UIRequestService so multi-write
// operations (create + first entry, response row + entry) stay atomic.
func appendEntryTx(ctx context.Context, tx *ent.Tx, req models.AppendEntryRequest) (*appendResult, error) {
	task, err := tx.Task.Query().
		Where(enttask.IDEQ(req.TaskID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock task: %w", err)
	}

	if models.IsTerminalStatus(string(task.Status)) {
		return nil, ErrTaskTerminal
	}

	if req.ExpectedSequence >= 0 && task.LatestSequence != req.ExpectedSequence {
		return nil, ErrConcurrentWrite
	}

	seq := task.LatestSequence + 1
	builder := tx.ContextEntry.Create().
		SetID(uuid.New().String()).
		SetTaskID(req.TaskID).
		SetSequenceNumber(seq).
		SetActorKind(contextentry.ActorKind(req.Actor.Kind)).
		SetActorID(req.Actor.ID).
		SetOperation(req.Operation)

	if req.Actor.Version != "" {
		builder.SetActorVersion(req.Actor.Version)
	}
	if req.Data != nil {
		builder.SetData(req.Data)
	}
	if req.Reasoning != "" {
		builder.SetReasoning(req.Reasoning)
	}
	if req.Trigger.Kind != "" {
		builder.SetTrigger(req.Trigger.Map())
	}

	entry, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrConcurrentWrite
		}
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	update := tx.Task.UpdateOneID(req.TaskID).SetLatestSequence(seq)
	res := &appendResult{Entry: entry, Phase: task.CurrentPhase}

	switch req.Operation {
	case models.OpTaskCreated:
		update.SetStatus(enttask.StatusActive)
		res.StatusChanged = true
		res.NewStatus = models.StatusActive

	case models.OpPhaseStarted:
		if phase, ok := req.Data["phase"].(string); ok && phase != "" {
			update.SetCurrentPhase(phase)
			res.Phase = phase
			res.StatusChanged = true
			res.NewStatus = string(task.Status)
		}

	case models.OpUIRequestCreated:
		if task.Status != enttask.StatusWaitingForInput {
			update.SetStatus(enttask.StatusWaitingForInput)
			res.StatusChanged = true
			res.NewStatus = models.StatusWaitingForInput
		}

	case models.OpUIResponseReceived, models.OpUIRequestCancelled:
		// Leave waiting_for_input only when no other request is pending.
		// Callers update the ui_requests row before appending, so the count
		// reflects this operation.
		pending, err := tx.UIRequest.Query().
			Where(
				uirequest.TaskIDEQ(req.TaskID),
				uirequest.StatusEQ(uirequest.StatusPending),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count pending ui requests: %w", err)
		}
		if pending == 0 && task.Status == enttask.StatusWaitingForInput {
			update.SetStatus(enttask.StatusActive)
			res.StatusChanged = true
			res.NewStatus = models.StatusActive
		}

	case models.OpTaskCompleted:
		update.SetStatus(enttask.StatusCompleted).SetCompletedAt(time.Now())
		res.StatusChanged = true
		res.NewStatus = models.StatusCompleted

	case models.OpTaskFailed:
		update.SetStatus(enttask.StatusFailed).SetCompletedAt(time.Now())
		if msg, ok := req.Data["message"].(string); ok && msg != "" {
			update.SetErrorMessage(msg)
		}
		res.StatusChanged = true
		res.NewStatus = models.StatusFailed

	case models.OpTaskCancelled:
		update.SetStatus(enttask.StatusCancelled).SetCompletedAt(time.Now())
		res.StatusChanged = true
		res.NewStatus = models.StatusCancelled
	}

	if err := update.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update task row: %w", err)
	}

	return res, nil
}
