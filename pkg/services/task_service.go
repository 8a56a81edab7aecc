package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gianmatteo-arcana/engine-lever/ent"
	enttask "github.com/gianmatteo-arcana/engine-lever/ent/task"
	"github.com/gianmatteo-arcana/engine-lever/ent/uirequest"
	"github.com/gianmatteo-arcana/engine-lever/pkg/config"
	"github.com/gianmatteo-arcana/engine-lever/pkg/events"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/gianmatteo-arcana/engine-lever/pkg/projection"
	"github.com/google/uuid"
)

// TaskService manages task lifecycle: creation with a frozen template
// snapshot, tenant-scoped reads, projected context loading, and cancellation.
type TaskService struct {
	client    *ent.Client
	templates *config.TemplateRegistry
	entries   *EntryService
	publisher *events.EventPublisher
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client, templates *config.TemplateRegistry, entries *EntryService, publisher *events.EventPublisher) *TaskService {
	return &TaskService{
		client:    client,
		templates: templates,
		entries:   entries,
		publisher: publisher,
	}
}

// Create creates a task row and its task_created entry in one transaction.
// The template is resolved from the registry and snapshotted onto the row;
// later template edits never affect this task.
func (s *TaskService) Create(httpCtx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	if req.TenantID == "" {
		return nil, NewValidationError("tenant_id", "required")
	}
	if req.TemplateID == "" {
		return nil, NewValidationError("template_id", "required")
	}
	if req.Actor.Kind == "" || req.Actor.ID == "" {
		return nil, NewValidationError("actor", "required")
	}

	tmpl, err := s.templates.Get(req.TemplateID)
	if err != nil {
		return nil, NewValidationError("template_id", fmt.Sprintf("unknown template: %s", req.TemplateID))
	}
	snapshot := tmpl.ToSnapshot(req.TemplateID)
	snapshotMap, err := snapshot.Map()
	if err != nil {
		return nil, fmt.Errorf("failed to encode template snapshot: %w", err)
	}

	taskID := req.TaskID
	if taskID == "" {
		taskID = uuid.New().String()
	}

	// Background context with timeout for the critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Task.Create().
		SetID(taskID).
		SetTenantID(req.TenantID).
		SetTemplateID(req.TemplateID).
		SetTemplateSnapshot(snapshotMap).
		SetStatus(enttask.StatusCreated).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	res, err := appendEntryTx(ctx, tx, models.AppendEntryRequest{
		TaskID:           taskID,
		ExpectedSequence: 0,
		Actor:            req.Actor,
		Operation:        models.OpTaskCreated,
		Data:             req.InitialData,
		Reasoning:        "Task created from template " + req.TemplateID,
		Trigger: models.Trigger{
			Kind:   models.TriggerKindUserAction,
			Source: "api",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to append task_created: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit task creation: %w", err)
	}

	publishAppendResult(httpCtx, s.publisher, res)

	task, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch created task: %w", err)
	}
	return task, nil
}

// Get retrieves a task by ID, scoped to a tenant.
func (s *TaskService) Get(ctx context.Context, tenantID, taskID string) (*ent.Task, error) {
	task, err := s.client.Task.Query().
		Where(
			enttask.IDEQ(taskID),
			enttask.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// LoadContext loads a task and projects its full history into current state.
// The projection runs over the same entries the read returned, so a caller
// always observes its own committed appends (read-your-writes).
func (s *TaskService) LoadContext(ctx context.Context, tenantID, taskID string) (*models.TaskContext, error) {
	task, err := s.Get(ctx, tenantID, taskID)
	if err != nil {
		return nil, err
	}
	return s.loadContext(ctx, task)
}

// LoadContextUnscoped loads a task context without tenant scoping.
// For internal callers (workers, recovery) that claim by task ID.
func (s *TaskService) LoadContextUnscoped(ctx context.Context, taskID string) (*models.TaskContext, error) {
	task, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return s.loadContext(ctx, task)
}

func (s *TaskService) loadContext(ctx context.Context, task *ent.Task) (*models.TaskContext, error) {
	snapshot, err := models.SnapshotFromMap(task.TemplateSnapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to decode template snapshot: %w", err)
	}

	entries, err := s.entries.List(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	return &models.TaskContext{
		TaskID:         task.ID,
		TenantID:       task.TenantID,
		TemplateID:     task.TemplateID,
		CreatedAt:      task.CreatedAt,
		Template:       snapshot,
		State:          projection.Project(snapshot, entries),
		LatestSequence: task.LatestSequence,
	}, nil
}

// List lists tasks for a tenant with filtering and pagination,
// newest first.
func (s *TaskService) List(ctx context.Context, filters models.TaskFilters) ([]*ent.Task, int, error) {
	if filters.TenantID == "" {
		return nil, 0, NewValidationError("tenant_id", "required")
	}

	query := s.client.Task.Query().Where(enttask.TenantIDEQ(filters.TenantID))
	if filters.Status != "" {
		query = query.Where(enttask.StatusEQ(enttask.Status(filters.Status)))
	}
	if filters.TemplateID != "" {
		query = query.Where(enttask.TemplateIDEQ(filters.TemplateID))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(enttask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, totalCount, nil
}

// Cancel cancels a task: every pending UI request is cancelled and a
// task_cancelled entry closes the history, all in one transaction.
func (s *TaskService) Cancel(httpCtx context.Context, tenantID, taskID string, actor models.Actor, reason string) error {
	// Tenant check before mutating anything
	if _, err := s.Get(httpCtx, tenantID, taskID); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	pending, err := tx.UIRequest.Query().
		Where(
			uirequest.TaskIDEQ(taskID),
			uirequest.StatusEQ(uirequest.StatusPending),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending ui requests: %w", err)
	}

	var results []*appendResult
	for _, req := range pending {
		err = tx.UIRequest.UpdateOneID(req.ID).
			SetStatus(uirequest.StatusCancelled).
			SetCancelReason("task_cancelled").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to cancel ui request %s: %w", req.ID, err)
		}

		res, err := appendEntryTx(ctx, tx, models.AppendEntryRequest{
			TaskID:           taskID,
			ExpectedSequence: -1,
			Actor:            actor,
			Operation:        models.OpUIRequestCancelled,
			Data: map[string]any{
				"request_id": req.ID,
				"reason":     "task_cancelled",
			},
			Trigger: models.Trigger{
				Kind:   models.TriggerKindUserAction,
				Source: "cancel",
			},
		})
		if err != nil {
			return fmt.Errorf("failed to append ui_request_cancelled: %w", err)
		}
		results = append(results, res)
	}

	data := map[string]any{}
	if reason != "" {
		data["reason"] = reason
	}
	res, err := appendEntryTx(ctx, tx, models.AppendEntryRequest{
		TaskID:           taskID,
		ExpectedSequence: -1,
		Actor:            actor,
		Operation:        models.OpTaskCancelled,
		Data:             data,
		Reasoning:        reason,
		Trigger: models.Trigger{
			Kind:   models.TriggerKindUserAction,
			Source: "cancel",
		},
	})
	if err != nil {
		if err == ErrTaskTerminal {
			return ErrTaskTerminal
		}
		return fmt.Errorf("failed to append task_cancelled: %w", err)
	}
	results = append(results, res)

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cancellation: %w", err)
	}

	for _, r := range results {
		publishAppendResult(httpCtx, s.publisher, r)
	}
	for _, req := range pending {
		if s.publisher != nil {
			payload := events.UIRequestCancelledPayload{
				BasePayload: events.NewBasePayload(events.EventTypeUIRequestCancelled, taskID),
				RequestID:   req.ID,
				Reason:      "task_cancelled",
			}
			_ = s.publisher.PublishUIRequestCancelled(httpCtx, taskID, payload)
		}
	}

	return nil
}
