package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gianmatteo-arcana/engine-lever/pkg/llm"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
)

// Decisions the advisor may return for a failed subtask.
const (
	DecisionRetry            = "retry"
	DecisionRetryAlternative = "retry_with_alternative_agent"
	DecisionSkipPhase        = "skip_phase"
	DecisionFailTask         = "fail_task"
	DecisionEscalateToUser   = "escalate_to_user"
)

// FailureAdvice is the advisor's verdict on an exhausted or non-retryable
// subtask failure.
type FailureAdvice struct {
	Decision  string `json:"decision"`
	Rationale string `json:"rationale"`
}

// Advisor consults the LLM about how to proceed after a subtask has failed
// beyond mechanical retries. When the LLM is unreachable or answers
// nonsense, a conservative heuristic decides instead.
type Advisor struct {
	gateway *llm.Gateway
	model   string
}

// NewAdvisor creates an advisor. model may be empty to use the gateway default.
func NewAdvisor(gateway *llm.Gateway, model string) *Advisor {
	return &Advisor{gateway: gateway, model: model}
}

// Advise returns a decision for the given failure. It never returns an error:
// a broken advisor falls back to heuristicAdvice.
func (a *Advisor) Advise(ctx context.Context, tc *models.TaskContext, failure models.SubtaskFailure, attempts int) FailureAdvice {
	if a == nil || a.gateway == nil {
		return heuristicAdvice(failure)
	}

	prompt, err := advisorPrompt(tc, failure, attempts)
	if err != nil {
		return heuristicAdvice(failure)
	}

	var advice FailureAdvice
	err = a.gateway.CompleteJSON(ctx, llm.Request{
		Model: a.model,
		Messages: []llm.Message{
			{Role: "system", Content: advisorSystemPrompt},
			{Role: "user", Content: prompt},
		},
	}, &advice)
	if err != nil {
		slog.Warn("Failure advisor unavailable, using heuristic",
			"task_id", tc.TaskID, "phase_id", failure.PhaseID, "error", err)
		return heuristicAdvice(failure)
	}

	advice.Decision = strings.ToLower(strings.TrimSpace(advice.Decision))
	switch advice.Decision {
	case DecisionRetry, DecisionRetryAlternative, DecisionSkipPhase, DecisionFailTask, DecisionEscalateToUser:
		return advice
	default:
		slog.Warn("Failure advisor returned unknown decision, using heuristic",
			"task_id", tc.TaskID, "decision", advice.Decision)
		return heuristicAdvice(failure)
	}
}

// heuristicAdvice is the no-LLM policy: configuration problems go to the
// user, missing agents fail the task, everything else fails the task too
// because mechanical retries were already spent before the advisor runs.
func heuristicAdvice(failure models.SubtaskFailure) FailureAdvice {
	switch {
	case failure.ErrorKind == models.ErrKindNoAgentsAvailable:
		return FailureAdvice{
			Decision:  DecisionFailTask,
			Rationale: "no configured agent can serve this phase",
		}
	case models.NonRetryableErrorKind(failure.ErrorKind):
		return FailureAdvice{
			Decision:  DecisionEscalateToUser,
			Rationale: fmt.Sprintf("non-retryable failure (%s) needs a human decision", failure.ErrorKind),
		}
	default:
		return FailureAdvice{
			Decision:  DecisionFailTask,
			Rationale: "retries exhausted without progress",
		}
	}
}

func advisorPrompt(tc *models.TaskContext, failure models.SubtaskFailure, attempts int) (string, error) {
	dataJSON, err := json.Marshal(tc.State.Data)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Task %s is in phase %q (status %s, completeness %d%%).\n",
		tc.TaskID, tc.State.Phase, tc.State.Status, tc.State.Completeness)
	fmt.Fprintf(&sb, "Subtask %s assigned to agent %s failed %d time(s).\n",
		failure.RequestID, failure.AgentID, attempts)
	fmt.Fprintf(&sb, "Last failure: kind=%s message=%s\n", failure.ErrorKind, failure.Message)
	sb.WriteString("Current task data:\n")
	sb.Write(dataJSON)
	sb.WriteString("\nDecide how the orchestrator should proceed.")
	return sb.String(), nil
}

const advisorSystemPrompt = `You advise a task orchestration engine on failed
subtasks. Respond with a single JSON object:
{"decision": "...", "rationale": "one sentence"}

decision must be one of:
- "retry": try the same agent once more
- "retry_with_alternative_agent": another configured agent may succeed
- "skip_phase": the phase is optional given the data already collected
- "fail_task": no recovery is plausible
- "escalate_to_user": the user must decide or supply something

Prefer the least destructive recovery that is actually plausible. No prose
outside the JSON object.`
