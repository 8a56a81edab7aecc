package queue

import (
	"context"

	"github.com/gianmatteo-arcana/engine-lever/ent"
	"github.com/gianmatteo-arcana/engine-lever/pkg/orchestrator"
)

// DispatchExecutor runs claimed tasks through the orchestrator.
type DispatchExecutor struct {
	dispatcher *orchestrator.Dispatcher
}

// NewDispatchExecutor creates the production task executor.
func NewDispatchExecutor(dispatcher *orchestrator.Dispatcher) *DispatchExecutor {
	return &DispatchExecutor{dispatcher: dispatcher}
}

// Execute drives the task to a terminal status or to the next interruption.
// All outcomes are recorded as context entries by the dispatcher; Err is set
// only when the run stopped without the history reflecting why.
func (e *DispatchExecutor) Execute(ctx context.Context, task *ent.Task) *ExecutionResult {
	if err := e.dispatcher.Run(ctx, task.ID); err != nil {
		return &ExecutionResult{Err: err}
	}
	return &ExecutionResult{}
}
