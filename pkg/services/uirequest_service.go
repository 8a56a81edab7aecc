package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gianmatteo-arcana/engine-lever/ent"
	"github.com/gianmatteo-arcana/engine-lever/ent/uirequest"
	"github.com/gianmatteo-arcana/engine-lever/pkg/events"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
)

// UIRequestService manages the user-input rendezvous records. A UI request
// row mirrors its ui_request_created entry; only the row's status column
// transitions, guarded by a row lock so duplicate responses are rejected.
type UIRequestService struct {
	client    *ent.Client
	publisher *events.EventPublisher
}

// NewUIRequestService creates a new UIRequestService
func NewUIRequestService(client *ent.Client, publisher *events.EventPublisher) *UIRequestService {
	return &UIRequestService{client: client, publisher: publisher}
}

// Open creates a pending UI request row and its ui_request_created entry in
// one transaction.
//
// Request IDs are deterministic per subtask, so a re-dispatch after a crash
// asks for the same request ID again: Open then finds the existing row and
// returns it without writing anything, which is what lets a restarted task
// reattach to input the user may already have supplied.
func (s *UIRequestService) Open(httpCtx context.Context, taskID, agentID string, spec models.UIRequestSpec) (*ent.UIRequest, error) {
	if spec.RequestID == "" {
		return nil, NewValidationError("request_id", "required")
	}
	if spec.TemplateKind == "" {
		return nil, NewValidationError("template_kind", "required")
	}
	priority := spec.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	// Reattach fast path
	existing, err := s.get(httpCtx, taskID, spec.RequestID)
	if err == nil {
		return existing, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.UIRequest.Create().
		SetID(spec.RequestID).
		SetTaskID(taskID).
		SetTemplateKind(uirequest.TemplateKind(spec.TemplateKind)).
		SetPriority(uirequest.Priority(priority)).
		SetStatus(uirequest.StatusPending)
	if spec.SemanticData != nil {
		builder.SetSemanticData(spec.SemanticData)
	}
	if agentID != "" {
		builder.SetOriginatingAgentID(agentID)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a race against another opener of the same request
			return s.get(httpCtx, taskID, spec.RequestID)
		}
		return nil, fmt.Errorf("failed to create ui request: %w", err)
	}

	res, err := appendEntryTx(ctx, tx, models.AppendEntryRequest{
		TaskID:           taskID,
		ExpectedSequence: -1,
		Actor:            models.AgentActor(agentID, ""),
		Operation:        models.OpUIRequestCreated,
		Data: map[string]any{
			"request_id":           spec.RequestID,
			"template_kind":        spec.TemplateKind,
			"priority":             priority,
			"semantic_data":        spec.SemanticData,
			"originating_agent_id": agentID,
		},
		Trigger: models.Trigger{
			Kind:   models.TriggerKindAgentRequest,
			Source: agentID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to append ui_request_created: %w", err)
	}

	row, err = tx.UIRequest.UpdateOneID(row.ID).
		SetOriginatingEventID(res.Entry.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to link originating event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ui request: %w", err)
	}

	publishAppendResult(httpCtx, s.publisher, res)
	if s.publisher != nil {
		payload := events.UIRequestCreatedPayload{
			BasePayload:  events.NewBasePayload(events.EventTypeUIRequestCreated, taskID),
			RequestID:    spec.RequestID,
			TemplateKind: spec.TemplateKind,
			Priority:     priority,
		}
		if err := s.publisher.PublishUIRequestCreated(httpCtx, taskID, payload); err != nil {
			slog.Warn("Failed to publish ui_request.created", "task_id", taskID, "request_id", spec.RequestID, "error", err)
		}
	}

	return row, nil
}

// Get retrieves a UI request by ID within a task.
func (s *UIRequestService) Get(ctx context.Context, taskID, requestID string) (*ent.UIRequest, error) {
	return s.get(ctx, taskID, requestID)
}

func (s *UIRequestService) get(ctx context.Context, taskID, requestID string) (*ent.UIRequest, error) {
	row, err := s.client.UIRequest.Query().
		Where(
			uirequest.IDEQ(requestID),
			uirequest.TaskIDEQ(taskID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ui request: %w", err)
	}
	return row, nil
}

// ListPending returns a task's pending UI requests, oldest first.
func (s *UIRequestService) ListPending(ctx context.Context, taskID string) ([]*ent.UIRequest, error) {
	rows, err := s.client.UIRequest.Query().
		Where(
			uirequest.TaskIDEQ(taskID),
			uirequest.StatusEQ(uirequest.StatusPending),
		).
		Order(ent.Asc(uirequest.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending ui requests: %w", err)
	}
	return rows, nil
}

// SubmitResponse records a user response to a pending request. The row is
// locked before the status check, so of two concurrent responses exactly one
// wins; the other gets ErrAlreadyResponded.
func (s *UIRequestService) SubmitResponse(httpCtx context.Context, taskID string, resp models.UIResponse) (*ent.UIRequest, error) {
	if resp.RequestID == "" {
		return nil, NewValidationError("request_id", "required")
	}
	if resp.Payload == nil {
		return nil, NewValidationError("payload", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.UIRequest.Query().
		Where(
			uirequest.IDEQ(resp.RequestID),
			uirequest.TaskIDEQ(taskID),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock ui request: %w", err)
	}

	if row.Status != uirequest.StatusPending {
		return nil, ErrAlreadyResponded
	}

	row, err = tx.UIRequest.UpdateOneID(row.ID).
		SetStatus(uirequest.StatusResponded).
		SetResponse(resp.Payload).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update ui request: %w", err)
	}

	dataPath := ""
	if p, ok := row.SemanticData["data_path"].(string); ok {
		dataPath = p
	}

	res, err := appendEntryTx(ctx, tx, models.AppendEntryRequest{
		TaskID:           taskID,
		ExpectedSequence: -1,
		Actor:            resp.Actor,
		Operation:        models.OpUIResponseReceived,
		Data: map[string]any{
			"request_id": resp.RequestID,
			"payload":    resp.Payload,
			"data_path":  dataPath,
		},
		Trigger: models.Trigger{
			Kind:   models.TriggerKindUserAction,
			Source: "ui_response",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to append ui_response_received: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit response: %w", err)
	}

	publishAppendResult(httpCtx, s.publisher, res)
	if s.publisher != nil {
		payload := events.UIResponseReceivedPayload{
			BasePayload: events.NewBasePayload(events.EventTypeUIResponseReceived, taskID),
			RequestID:   resp.RequestID,
		}
		if err := s.publisher.PublishUIResponseReceived(httpCtx, taskID, payload); err != nil {
			slog.Warn("Failed to publish ui_response.received", "task_id", taskID, "request_id", resp.RequestID, "error", err)
		}
	}

	return row, nil
}

// Cancel cancels a pending request (user dismissal, wait expiry, shutdown).
// Only pending requests are cancellable.
func (s *UIRequestService) Cancel(httpCtx context.Context, taskID, requestID, reason string, actor models.Actor) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.UIRequest.Query().
		Where(
			uirequest.IDEQ(requestID),
			uirequest.TaskIDEQ(taskID),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock ui request: %w", err)
	}

	if row.Status != uirequest.StatusPending {
		return ErrNotCancellable
	}

	err = tx.UIRequest.UpdateOneID(row.ID).
		SetStatus(uirequest.StatusCancelled).
		SetCancelReason(reason).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel ui request: %w", err)
	}

	res, err := appendEntryTx(ctx, tx, models.AppendEntryRequest{
		TaskID:           taskID,
		ExpectedSequence: -1,
		Actor:            actor,
		Operation:        models.OpUIRequestCancelled,
		Data: map[string]any{
			"request_id": requestID,
			"reason":     reason,
		},
		Trigger: models.Trigger{
			Kind:   models.TriggerKindSystemEvent,
			Source: "ui_request_cancel",
			Details: reason,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to append ui_request_cancelled: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cancellation: %w", err)
	}

	publishAppendResult(httpCtx, s.publisher, res)
	if s.publisher != nil {
		payload := events.UIRequestCancelledPayload{
			BasePayload: events.NewBasePayload(events.EventTypeUIRequestCancelled, taskID),
			RequestID:   requestID,
			Reason:      reason,
		}
		if err := s.publisher.PublishUIRequestCancelled(httpCtx, taskID, payload); err != nil {
			slog.Warn("Failed to publish ui_request.cancelled", "task_id", taskID, "request_id", requestID, "error", err)
		}
	}

	return nil
}
