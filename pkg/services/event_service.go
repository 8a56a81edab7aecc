package services

import (
	"context"
	"fmt"

	"github.com/gianmatteo-arcana/engine-lever/ent"
	"github.com/gianmatteo-arcana/engine-lever/ent/event"
)

// EventService reads the live event feed that the publisher persists
// alongside each NOTIFY broadcast. Subscribers that connect late, reconnect,
// or drop a notification catch up by row id; rows are garbage-collected a
// grace period after the task turns terminal, so this is a feed, not the
// durable history (that lives in context entries).
type EventService struct {
	client *ent.Client
}

// NewEventService creates an EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// ListSince returns up to limit events for the task with id greater than
// sinceID, in id order. limit <= 0 means no limit.
func (s *EventService) ListSince(ctx context.Context, taskID string, sinceID, limit int) ([]*ent.Event, error) {
	q := s.client.Event.Query().
		Where(
			event.TaskIDEQ(taskID),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return rows, nil
}
