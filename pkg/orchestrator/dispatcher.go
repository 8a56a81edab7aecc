// Package orchestrator drives a task from its creation entry to a terminal
// status: planning, phase dispatch, agent execution, user-input rendezvous,
// and failure recovery. Every decision is recorded as a context entry, so a
// run that stops anywhere can be resumed by replaying the history and
// continuing from the projected state.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gianmatteo-arcana/engine-lever/pkg/agent"
	"github.com/gianmatteo-arcana/engine-lever/pkg/config"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/gianmatteo-arcana/engine-lever/pkg/rendezvous"
	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const dispatcherActor = "dispatcher"

// maxDelegationHops bounds agent-to-agent handoffs within one subtask.
const maxDelegationHops = 5

// Control-flow sentinels inside a run. Neither escapes Run.
var (
	errTaskHalted = errors.New("task reached a terminal state")
	errSkipPhase  = errors.New("phase skipped by failure policy")
)

// Dispatcher executes tasks phase by phase against the execution plan.
type Dispatcher struct {
	tasks    *services.TaskService
	entries  *services.EntryService
	runtime  *agent.Runtime
	planner  *Planner
	advisor  *Advisor
	rdv      *rendezvous.Rendezvous
	agents   *config.AgentRegistry
	defaults *config.Defaults
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(
	tasks *services.TaskService,
	entries *services.EntryService,
	runtime *agent.Runtime,
	planner *Planner,
	advisor *Advisor,
	rdv *rendezvous.Rendezvous,
	agents *config.AgentRegistry,
	defaults *config.Defaults,
) *Dispatcher {
	if defaults == nil {
		defaults = config.DefaultDefaults()
	}
	return &Dispatcher{
		tasks:    tasks,
		entries:  entries,
		runtime:  runtime,
		planner:  planner,
		advisor:  advisor,
		rdv:      rdv,
		agents:   agents,
		defaults: defaults,
	}
}

// SubtaskRequestID derives the request id for a subtask. The same task,
// phase, and agent always yield the same id, so a run resumed after a crash
// re-dispatches under the identity its predecessor used and reattaches to
// whatever that dispatch already created.
func SubtaskRequestID(taskID, phaseID, agentID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(taskID+"/"+phaseID+"/"+agentID)).String()
}

// Run drives the task to a terminal status or to the next point where it has
// to wait on something Run cannot provide (a cancelled context). Run is
// resume-safe: it loads the projected state first and skips whatever already
// happened, so calling it on a half-finished task continues rather than
// restarts.
func (d *Dispatcher) Run(ctx context.Context, taskID string) error {
	tc, err := d.tasks.LoadContextUnscoped(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to load task context: %w", err)
	}
	if models.IsTerminalStatus(tc.State.Status) {
		return nil
	}
	slog.Debug("Dispatching task", "task_id", taskID, "state", debugState(tc.State))

	if tc.State.Plan == nil {
		if _, err := d.planner.Plan(ctx, tc); err != nil {
			d.failTask(ctx, taskID, fmt.Sprintf("planning failed: %v", err))
			return nil
		}
		if tc, err = d.tasks.LoadContextUnscoped(ctx, taskID); err != nil {
			return fmt.Errorf("failed to reload task context: %w", err)
		}
	}

	order, err := TopoSort(tc.State.Plan)
	if err != nil {
		// A recorded plan that no longer sorts means the history is corrupt.
		d.failTask(ctx, taskID, fmt.Sprintf("recorded plan is not executable: %v", err))
		return nil
	}

	for _, phaseID := range order {
		tc, err = d.tasks.LoadContextUnscoped(ctx, taskID)
		if err != nil {
			return fmt.Errorf("failed to reload task context: %w", err)
		}
		if models.IsTerminalStatus(tc.State.Status) {
			return nil
		}
		if tc.State.PhaseTerminal(phaseID) {
			continue
		}

		phase := tc.State.Plan.Phase(phaseID)
		if phase == nil {
			d.failTask(ctx, taskID, fmt.Sprintf("plan order names unknown phase %q", phaseID))
			return nil
		}

		err = d.runPhase(ctx, tc, phase)
		switch {
		case err == nil, errors.Is(err, errSkipPhase):
			// fall through to phase_completed
		case errors.Is(err, errTaskHalted):
			return nil
		default:
			return err
		}

		reasoning := "All phase subtasks completed"
		if errors.Is(err, errSkipPhase) {
			reasoning = "Phase skipped by failure policy"
		}
		if err := d.append(ctx, taskID, models.OpPhaseCompleted,
			map[string]any{"phase": phaseID}, reasoning); err != nil {
			return err
		}
	}

	return d.completeTask(ctx, taskID)
}

// runPhase starts the phase if needed and runs every required agent,
// sequentially or in parallel per the plan.
func (d *Dispatcher) runPhase(ctx context.Context, tc *models.TaskContext, phase *models.PlanPhase) error {
	taskID := tc.TaskID

	if !tc.State.StartedPhases[phase.PhaseID] {
		err := d.append(ctx, taskID, models.OpPhaseStarted,
			map[string]any{"phase": phase.PhaseID}, "Phase "+phase.PhaseID+" started")
		if err != nil {
			return err
		}
	}

	agents, err := d.resolvePhaseAgents(phase)
	if err != nil {
		retryAgent, ferr := d.handleFailure(ctx, taskID, phase, models.SubtaskFailure{
			PhaseID:   phase.PhaseID,
			ErrorKind: models.ErrKindNoAgentsAvailable,
			Message:   err.Error(),
		}, 0, 0)
		if ferr != nil {
			return ferr
		}
		agents = []string{retryAgent}
	}

	if phase.Parallel && len(agents) > 1 {
		g, gctx := errgroup.WithContext(ctx)
		for _, agentID := range agents {
			g.Go(func() error {
				return d.runSubtask(gctx, taskID, phase, agentID)
			})
		}
		return g.Wait()
	}

	for _, agentID := range agents {
		if err := d.runSubtask(ctx, taskID, phase, agentID); err != nil {
			return err
		}
	}
	return nil
}

// runSubtask drives one agent through its subtask: dispatch, execute, and
// settle the outcome. It loops for retries, delegation hops, failure-policy
// rounds, and needs_input round-trips; each iteration re-reads the task
// context so the agent always sees data that includes earlier responses.
func (d *Dispatcher) runSubtask(ctx context.Context, taskID string, phase *models.PlanPhase, agentID string) error {
	hops := 0
	rounds := 0

	// applyPolicy routes a failure through handleFailure and rebinds the
	// agent for the next loop iteration. A false return means the subtask is
	// over and err carries the outcome.
	applyPolicy := func(failure models.SubtaskFailure, attempts int) (bool, error) {
		next, err := d.handleFailure(ctx, taskID, phase, failure, attempts, rounds)
		if err != nil {
			return false, err
		}
		rounds++
		agentID = next
		return true, nil
	}

	for {
		tc, err := d.tasks.LoadContextUnscoped(ctx, taskID)
		if err != nil {
			return fmt.Errorf("failed to reload task context: %w", err)
		}
		if models.IsTerminalStatus(tc.State.Status) {
			return errTaskHalted
		}

		requestID := SubtaskRequestID(taskID, phase.PhaseID, agentID)

		cfg, err := d.agents.Get(agentID)
		if err != nil {
			again, ferr := applyPolicy(models.SubtaskFailure{
				AgentID:   agentID,
				PhaseID:   phase.PhaseID,
				RequestID: requestID,
				ErrorKind: models.ErrKindNoAgentsAvailable,
				Message:   fmt.Sprintf("agent %s is not configured", agentID),
			}, tc.State.SubtaskFailureCount(phase.PhaseID, requestID))
			if !again {
				return ferr
			}
			continue
		}

		if _, active := tc.State.ActiveAgents[requestID]; !active {
			err = d.append(ctx, taskID, models.OpSubtaskDispatched, map[string]any{
				"request_id": requestID,
				"agent_id":   agentID,
				"phase_id":   phase.PhaseID,
			}, "")
			if err != nil {
				return err
			}
		}

		resp, err := d.runtime.Execute(ctx, agent.Request{
			RequestID:   requestID,
			TaskID:      taskID,
			AgentID:     agentID,
			Instruction: primaryInstruction(cfg),
			Data:        tc.State.Data,
			Context: agent.RequestContext{
				SubtaskDescription: phase.Description,
				SuccessCriteria:    strings.Join(phase.Goals, "; "),
			},
		})
		if err != nil {
			// Context cancelled mid-flight. Record the cancellation so the
			// projection does not show a subtask stuck in ActiveAgents.
			d.appendBestEffort(taskID, models.OpSubtaskCancelled, map[string]any{
				"request_id": requestID,
				"agent_id":   agentID,
				"phase_id":   phase.PhaseID,
			}, "Run interrupted: "+err.Error())
			return err
		}

		switch resp.Status {
		case agent.StatusCompleted:
			return d.append(ctx, taskID, models.OpSubtaskCompleted, map[string]any{
				"request_id": requestID,
				"agent_id":   agentID,
				"phase_id":   phase.PhaseID,
				"result":     resp.Data,
			}, resp.Reasoning)

		case agent.StatusNeedsInput:
			if err := d.collectUserInput(ctx, taskID, agentID, resp.UIRequests); err != nil {
				if errors.Is(err, rendezvous.ErrWaitTimeout) {
					again, ferr := applyPolicy(models.SubtaskFailure{
						AgentID:   agentID,
						PhaseID:   phase.PhaseID,
						RequestID: requestID,
						ErrorKind: models.ErrKindTimeout,
						Message:   "user input wait expired",
					}, tc.State.SubtaskFailureCount(phase.PhaseID, requestID))
					if !again {
						return ferr
					}
					continue
				}
				if errors.Is(err, rendezvous.ErrRequestCancelled) {
					// Cancellation usually means the whole task was cancelled;
					// the next loop iteration sees the terminal status. A lone
					// request cancellation just re-invokes the agent.
					continue
				}
				return err
			}
			// Responses are merged into task data; re-invoke with fresh state.
			continue

		case agent.StatusDelegated:
			hops++
			if hops > maxDelegationHops {
				again, ferr := applyPolicy(models.SubtaskFailure{
					AgentID:   agentID,
					PhaseID:   phase.PhaseID,
					RequestID: requestID,
					ErrorKind: models.ErrKindCallFailed,
					Message:   fmt.Sprintf("delegation chain exceeded %d hops", maxDelegationHops),
				}, tc.State.SubtaskFailureCount(phase.PhaseID, requestID))
				if !again {
					return ferr
				}
				continue
			}
			next, err := d.selectAgent(resp.NextAgent, map[string]bool{agentID: true})
			if err != nil {
				again, ferr := applyPolicy(models.SubtaskFailure{
					AgentID:   agentID,
					PhaseID:   phase.PhaseID,
					RequestID: requestID,
					ErrorKind: models.ErrKindNoAgentsAvailable,
					Message:   fmt.Sprintf("delegation target %q: %v", resp.NextAgent, err),
				}, tc.State.SubtaskFailureCount(phase.PhaseID, requestID))
				if !again {
					return ferr
				}
				continue
			}
			// Close out this agent's dispatch; the delegate runs under its
			// own deterministic request id.
			err = d.append(ctx, taskID, models.OpSubtaskCompleted, map[string]any{
				"request_id": requestID,
				"agent_id":   agentID,
				"phase_id":   phase.PhaseID,
				"result":     map[string]any{"delegated_to": next},
			}, resp.Reasoning)
			if err != nil {
				return err
			}
			agentID = next
			continue

		case agent.StatusError:
			failure := models.SubtaskFailure{
				AgentID:   agentID,
				PhaseID:   phase.PhaseID,
				RequestID: requestID,
			}
			if resp.Error != nil {
				failure.ErrorKind = resp.Error.Kind
				failure.Message = resp.Error.Message
			}
			err = d.append(ctx, taskID, models.OpSubtaskFailed, map[string]any{
				"request_id": requestID,
				"agent_id":   agentID,
				"phase_id":   phase.PhaseID,
				"error_kind": failure.ErrorKind,
				"message":    failure.Message,
			}, resp.Reasoning)
			if err != nil {
				return err
			}
			attempts := tc.State.SubtaskFailureCount(phase.PhaseID, requestID) + 1
			if !models.NonRetryableErrorKind(failure.ErrorKind) && attempts <= d.defaults.MaxSubtaskRetries {
				slog.Info("Retrying failed subtask",
					"task_id", taskID, "phase_id", phase.PhaseID, "agent_id", agentID,
					"attempt", attempts, "error_kind", failure.ErrorKind)
				continue
			}
			again, ferr := applyPolicy(failure, attempts)
			if !again {
				return ferr
			}
			continue

		default:
			// checkContract keeps this unreachable; treat it as a violation.
			again, ferr := applyPolicy(models.SubtaskFailure{
				AgentID:   agentID,
				PhaseID:   phase.PhaseID,
				RequestID: requestID,
				ErrorKind: models.ErrKindContractViolation,
				Message:   fmt.Sprintf("unexpected response status %q", resp.Status),
			}, tc.State.SubtaskFailureCount(phase.PhaseID, requestID))
			if !again {
				return ferr
			}
			continue
		}
	}
}

// collectUserInput opens every UI request from a needs_input envelope and
// waits for each in turn. The dispatch thread parks here; the response may
// arrive through any replica's API.
func (d *Dispatcher) collectUserInput(ctx context.Context, taskID, agentID string, specs []models.UIRequestSpec) error {
	for _, spec := range specs {
		if _, err := d.rdv.Open(ctx, taskID, agentID, spec); err != nil {
			return fmt.Errorf("failed to open ui request: %w", err)
		}
	}
	for _, spec := range specs {
		if _, err := d.rdv.Wait(ctx, taskID, spec.RequestID, d.defaults.UIWaitTimeout); err != nil {
			return err
		}
	}
	return nil
}

// handleFailure applies the failure policy after mechanical retries are
// spent (or never applied). It consults the advisor and turns the decision
// into control flow: a non-empty retryAgent tells the caller to run the
// subtask again with that agent; otherwise err carries the outcome
// (errSkipPhase, errTaskHalted, or a real error).
//
// rounds counts earlier policy rounds for the same subtask. Past the cap
// the advisor is not consulted again and the task fails, so an advisor that
// keeps answering retry, or an agent that fails identically after every
// escalation, cannot loop forever.
func (d *Dispatcher) handleFailure(ctx context.Context, taskID string, phase *models.PlanPhase, failure models.SubtaskFailure, attempts, rounds int) (string, error) {
	tc, err := d.tasks.LoadContextUnscoped(ctx, taskID)
	if err != nil {
		return "", fmt.Errorf("failed to reload task context: %w", err)
	}
	if models.IsTerminalStatus(tc.State.Status) {
		return "", errTaskHalted
	}

	if rounds >= d.defaults.MaxFailureRounds {
		d.failTask(ctx, taskID, fmt.Sprintf("failure policy exhausted for phase %s: %s",
			phase.PhaseID, failure.Message))
		return "", errTaskHalted
	}

	advice := d.advisor.Advise(ctx, tc, failure, attempts)
	slog.Info("Failure policy decision",
		"task_id", taskID, "phase_id", phase.PhaseID, "agent_id", failure.AgentID,
		"error_kind", failure.ErrorKind, "decision", advice.Decision, "round", rounds)

	switch advice.Decision {
	case DecisionRetry:
		if failure.AgentID == "" {
			d.failTask(ctx, taskID, advice.Rationale)
			return "", errTaskHalted
		}
		return failure.AgentID, nil

	case DecisionRetryAlternative:
		alt, err := d.alternativeAgent(phase, failure.AgentID)
		if err != nil {
			d.failTask(ctx, taskID, fmt.Sprintf("no alternative agent for phase %s: %v", phase.PhaseID, err))
			return "", errTaskHalted
		}
		return alt, nil

	case DecisionSkipPhase:
		return "", errSkipPhase

	case DecisionEscalateToUser:
		if err := d.escalate(ctx, taskID, phase, failure, advice.Rationale, attempts); err != nil {
			if errors.Is(err, rendezvous.ErrWaitTimeout) || errors.Is(err, rendezvous.ErrRequestCancelled) {
				d.failTask(ctx, taskID, fmt.Sprintf("escalation unanswered for phase %s: %s", phase.PhaseID, failure.Message))
				return "", errTaskHalted
			}
			return "", err
		}
		if failure.AgentID == "" {
			return "", errSkipPhase
		}
		return failure.AgentID, nil

	default: // DecisionFailTask and anything unrecognized
		message := failure.Message
		if message == "" {
			message = advice.Rationale
		}
		d.failTask(ctx, taskID, fmt.Sprintf("phase %s failed: %s", phase.PhaseID, message))
		return "", errTaskHalted
	}
}

// escalate puts the failure in front of the user as an error-kind UI request
// and waits for an acknowledgement. The request id derives from the subtask
// and the attempt count: a crashed escalation reattaches, because the count
// is recomputed from recorded failures, while a fresh failure after an
// answered escalation asks again under a new id.
func (d *Dispatcher) escalate(ctx context.Context, taskID string, phase *models.PlanPhase, failure models.SubtaskFailure, rationale string, attempts int) error {
	requestID := uuid.NewSHA1(uuid.NameSpaceOID,
		fmt.Appendf(nil, "%s/%s/escalation/%d", taskID, phase.PhaseID, attempts)).String()

	spec := models.UIRequestSpec{
		RequestID:    requestID,
		TemplateKind: models.UIKindError,
		Priority:     models.PriorityHigh,
		SemanticData: map[string]any{
			"phase_id":   phase.PhaseID,
			"agent_id":   failure.AgentID,
			"error_kind": failure.ErrorKind,
			"message":    failure.Message,
			"rationale":  rationale,
		},
	}
	if _, err := d.rdv.Open(ctx, taskID, dispatcherActor, spec); err != nil {
		return fmt.Errorf("failed to open escalation request: %w", err)
	}
	_, err := d.rdv.Wait(ctx, taskID, requestID, d.defaults.UIWaitTimeout)
	return err
}

// --- Agent selection ---

// resolvePhaseAgents maps a phase's required_agents entries to concrete
// agent ids, deduplicated in plan order.
func (d *Dispatcher) resolvePhaseAgents(phase *models.PlanPhase) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, want := range phase.RequiredAgents {
		id, err := d.selectAgent(want, nil)
		if err != nil {
			return nil, fmt.Errorf("phase %s: %w", phase.PhaseID, err)
		}
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out, nil
}

// selectAgent resolves a required_agents entry. An exact agent id wins;
// otherwise the entry is treated as a capability and the candidate with the
// highest version is chosen, ties broken by id.
func (d *Dispatcher) selectAgent(want string, exclude map[string]bool) (string, error) {
	if d.agents.Has(want) && !exclude[want] {
		return want, nil
	}

	best := ""
	bestVersion := ""
	for _, id := range d.agents.FindByCapability(want) {
		if exclude[id] {
			continue
		}
		cfg, err := d.agents.Get(id)
		if err != nil {
			continue
		}
		cmp := compareVersions(cfg.Version, bestVersion)
		if best == "" || cmp > 0 || (cmp == 0 && id < best) {
			best = id
			bestVersion = cfg.Version
		}
	}
	if best == "" {
		return "", fmt.Errorf("no agent matches %q", want)
	}
	return best, nil
}

// compareVersions orders dotted version strings segment by segment, numerically
// where both segments parse as integers ("10.0" ranks above "9.1") and as
// strings otherwise. Missing segments compare as empty.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var av, bv string
		if i < len(as) {
			av = as[i]
		}
		if i < len(bs) {
			bv = bs[i]
		}
		an, aerr := strconv.Atoi(av)
		bn, berr := strconv.Atoi(bv)
		switch {
		case aerr == nil && berr == nil:
			if an != bn {
				if an < bn {
					return -1
				}
				return 1
			}
		case av != bv:
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// alternativeAgent finds another agent able to serve the phase.
func (d *Dispatcher) alternativeAgent(phase *models.PlanPhase, failedAgent string) (string, error) {
	exclude := map[string]bool{failedAgent: true}
	for _, want := range phase.RequiredAgents {
		if id, err := d.selectAgent(want, exclude); err == nil {
			return id, nil
		}
	}
	return "", fmt.Errorf("no agent besides %s matches the phase requirements", failedAgent)
}

// primaryInstruction is the instruction a dispatch invokes: the first one
// the agent declares. Config validation guarantees at least one.
func primaryInstruction(cfg *config.AgentConfig) string {
	if len(cfg.Instructions) == 0 {
		return ""
	}
	return cfg.Instructions[0]
}

// --- Terminal transitions and entry helpers ---

func (d *Dispatcher) completeTask(ctx context.Context, taskID string) error {
	tc, err := d.tasks.LoadContextUnscoped(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to reload task context: %w", err)
	}
	if models.IsTerminalStatus(tc.State.Status) {
		return nil
	}

	summary := fmt.Sprintf("All %d phases completed, data %d%% complete",
		len(tc.State.Plan.Phases), tc.State.Completeness)
	return d.append(ctx, taskID, models.OpTaskCompleted,
		map[string]any{"completeness": tc.State.Completeness}, summary)
}

// failTask records a task_failed entry. Best effort: the caller is already
// on a failure path and an append error would only mask the original one.
func (d *Dispatcher) failTask(ctx context.Context, taskID, message string) {
	err := d.append(ctx, taskID, models.OpTaskFailed,
		map[string]any{"message": message}, message)
	if err != nil && !errors.Is(err, services.ErrTaskTerminal) {
		slog.Error("Failed to record task failure",
			"task_id", taskID, "message", message, "error", err)
	}
}

func (d *Dispatcher) append(ctx context.Context, taskID, operation string, data map[string]any, reasoning string) error {
	_, err := d.entries.AppendWithRetry(ctx, models.AppendEntryRequest{
		TaskID:    taskID,
		Actor:     models.SystemActor(dispatcherActor),
		Operation: operation,
		Data:      data,
		Reasoning: reasoning,
		Trigger: models.Trigger{
			Kind:   models.TriggerKindSystemEvent,
			Source: dispatcherActor,
		},
	}, 3)
	if errors.Is(err, services.ErrTaskTerminal) {
		return errTaskHalted
	}
	if err != nil {
		return fmt.Errorf("failed to append %s: %w", operation, err)
	}
	return nil
}

// appendBestEffort records an entry under a fresh short-lived context, for
// paths where the run's own context is already cancelled.
func (d *Dispatcher) appendBestEffort(taskID, operation string, data map[string]any, reasoning string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := d.append(ctx, taskID, operation, data, reasoning); err != nil && !errors.Is(err, errTaskHalted) {
		slog.Warn("Failed to record entry after interruption",
			"task_id", taskID, "operation", operation, "error", err)
	}
}

// debugState renders a compact view of the projection for trace logging.
func debugState(state *models.TaskState) string {
	buf, err := json.Marshal(map[string]any{
		"status":       state.Status,
		"phase":        state.Phase,
		"completeness": state.Completeness,
		"active":       len(state.ActiveAgents),
		"pending_ui":   len(state.PendingRequests),
	})
	if err != nil {
		return ""
	}
	return string(buf)
}
