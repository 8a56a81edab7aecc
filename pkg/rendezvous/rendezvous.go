// Package rendezvous pairs an agent's request for user input with the
// response that arrives later, possibly minutes or days later, possibly on a
// different replica than the one that asked.
//
// The wake-up path is the NOTIFY broker; the truth is the ui_requests row.
// Wait subscribes before it reads, so the response cannot slip between the
// check and the wait, and it also polls at a slow interval in case a NOTIFY
// is lost entirely.
package rendezvous

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gianmatteo-arcana/engine-lever/ent"
	"github.com/gianmatteo-arcana/engine-lever/ent/uirequest"
	"github.com/gianmatteo-arcana/engine-lever/pkg/events"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
)

var (
	// ErrWaitTimeout indicates the wait budget expired; the request was
	// cancelled with reason "timeout".
	ErrWaitTimeout = errors.New("timed out waiting for user input")

	// ErrRequestCancelled indicates the request was cancelled while waiting.
	ErrRequestCancelled = errors.New("ui request cancelled")
)

// pollInterval is the slow fallback re-check while waiting on the broker.
const pollInterval = 2 * time.Second

// Rendezvous opens UI requests and waits for their responses.
type Rendezvous struct {
	requests *services.UIRequestService
	broker   *events.Broker
}

// New creates a Rendezvous.
func New(requests *services.UIRequestService, broker *events.Broker) *Rendezvous {
	return &Rendezvous{requests: requests, broker: broker}
}

// Open creates (or reattaches to) a pending UI request.
func (r *Rendezvous) Open(ctx context.Context, taskID, agentID string, spec models.UIRequestSpec) (*ent.UIRequest, error) {
	return r.requests.Open(ctx, taskID, agentID, spec)
}

// Wait blocks until the request is responded to, the timeout expires, or ctx
// is cancelled. On success it returns the response payload. On timeout the
// request is cancelled (reason "timeout") so the user's UI can retire it, and
// ErrWaitTimeout is returned.
//
// Wait works by request ID alone, so a restarted task run reattaches to a
// wait its predecessor started, including one the user answered while no
// process was running.
func (r *Rendezvous) Wait(ctx context.Context, taskID, requestID string, timeout time.Duration) (map[string]any, error) {
	msgs, unsubscribe, err := r.broker.Subscribe(ctx, events.TaskChannel(taskID))
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe for ui response: %w", err)
	}
	defer unsubscribe()

	// Check after subscribing: the response may already be in.
	if payload, done, err := r.check(ctx, taskID, requestID); done {
		return payload, err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case msg := <-msgs:
			if !concernsRequest(msg.Payload, requestID) {
				continue
			}
			if payload, done, err := r.check(ctx, taskID, requestID); done {
				return payload, err
			}

		case <-ticker.C:
			if payload, done, err := r.check(ctx, taskID, requestID); done {
				return payload, err
			}

		case <-timer.C:
			cancelErr := r.requests.Cancel(ctx, taskID, requestID, "timeout", models.SystemActor("rendezvous"))
			if cancelErr != nil && !errors.Is(cancelErr, services.ErrNotCancellable) {
				return nil, fmt.Errorf("wait expired and cancel failed: %w", cancelErr)
			}
			if errors.Is(cancelErr, services.ErrNotCancellable) {
				// Response or cancellation landed at the deadline; take it.
				if payload, done, err := r.check(ctx, taskID, requestID); done {
					return payload, err
				}
			}
			return nil, ErrWaitTimeout

		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// check reads the row and reports whether the wait is over.
func (r *Rendezvous) check(ctx context.Context, taskID, requestID string) (map[string]any, bool, error) {
	row, err := r.requests.Get(ctx, taskID, requestID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, true, fmt.Errorf("ui request vanished: %w", err)
		}
		// Transient read failure; keep waiting.
		return nil, false, nil
	}
	switch row.Status {
	case uirequest.StatusResponded:
		return row.Response, true, nil
	case uirequest.StatusCancelled:
		return nil, true, fmt.Errorf("%w: %s", ErrRequestCancelled, row.CancelReason)
	default:
		return nil, false, nil
	}
}

// concernsRequest filters broker messages down to terminal events for this
// request. Truncated payloads keep request_id, so filtering stays safe.
func concernsRequest(payload []byte, requestID string) bool {
	var m struct {
		Type      string `json:"type"`
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(payload, &m); err != nil {
		return true // undecodable: re-check rather than risk missing it
	}
	switch m.Type {
	case events.EventTypeUIResponseReceived, events.EventTypeUIRequestCancelled:
		return m.RequestID == "" || m.RequestID == requestID
	}
	return false
}
