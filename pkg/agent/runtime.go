package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"text/template"

	"github.com/gianmatteo-arcana/engine-lever/pkg/config"
	"github.com/gianmatteo-arcana/engine-lever/pkg/llm"
	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
	"github.com/gianmatteo-arcana/engine-lever/pkg/tools"
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
)

// noReasoning is recorded when an agent omits its reasoning.
const noReasoning = "No reasoning provided"

// Runtime executes subtasks against configured agents. It enforces the
// response contract: whatever the model says, the dispatcher only ever sees
// a valid envelope or an error envelope with a classified kind.
type Runtime struct {
	registry *config.AgentRegistry
	gateway  *llm.Gateway
	tools    *tools.Gateway
	entries  *services.EntryService

	defaultMaxConcurrent int

	mu   sync.Mutex
	sems map[string]chan struct{}
}

// NewRuntime creates an agent runtime.
func NewRuntime(registry *config.AgentRegistry, gateway *llm.Gateway, toolGW *tools.Gateway, entries *services.EntryService, defaultMaxConcurrent int) *Runtime {
	if defaultMaxConcurrent < 1 {
		defaultMaxConcurrent = 4
	}
	return &Runtime{
		registry:             registry,
		gateway:              gateway,
		tools:                toolGW,
		entries:              entries,
		defaultMaxConcurrent: defaultMaxConcurrent,
		sems:                 make(map[string]chan struct{}),
	}
}

// Execute runs one subtask. The returned response is always a valid envelope;
// infrastructure and contract failures surface as error envelopes with a
// classified kind, never as a Go error. A Go error is returned only when the
// context is cancelled.
func (r *Runtime) Execute(ctx context.Context, req Request) (*Response, error) {
	cfg, err := r.registry.Get(req.AgentID)
	if err != nil {
		return ErrorResponse(models.ErrKindCallFailed, fmt.Sprintf("agent %s not configured", req.AgentID)), nil
	}

	if !cfg.HasInstruction(req.Instruction) {
		resp := ErrorResponse(models.ErrKindUnknownInstruction,
			fmt.Sprintf("agent %s does not accept instruction %q", req.AgentID, req.Instruction))
		r.audit(ctx, req, cfg, resp)
		return resp, nil
	}

	release, ok := r.acquire(req.AgentID, cfg)
	if !ok {
		return ErrorResponse(models.ErrKindBusy,
			fmt.Sprintf("agent %s is at its concurrency limit", req.AgentID)), nil
	}
	defer release()

	if resp := r.validateInput(cfg, req); resp != nil {
		r.audit(ctx, req, cfg, resp)
		return resp, nil
	}

	prompt, err := renderPrompt(cfg, req)
	if err != nil {
		resp := ErrorResponse(models.ErrKindCallFailed, fmt.Sprintf("prompt rendering failed: %v", err))
		r.audit(ctx, req, cfg, resp)
		return resp, nil
	}

	var resp Response
	err = r.gateway.CompleteJSON(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt(cfg)},
			{Role: "user", Content: prompt},
		},
	}, &resp)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		failed := ErrorResponse(classifyLLMError(err), err.Error())
		r.audit(ctx, req, cfg, failed)
		return failed, nil
	}

	normalize(&resp, req)

	if violation := checkContract(cfg, &resp); violation != "" {
		out := ErrorResponse(models.ErrKindContractViolation, violation)
		out.Reasoning = resp.Reasoning
		r.audit(ctx, req, cfg, out)
		return out, nil
	}

	if failed := r.runToolCalls(ctx, cfg, req, &resp); failed != nil {
		r.audit(ctx, req, cfg, failed)
		return failed, nil
	}

	r.audit(ctx, req, cfg, &resp)
	return &resp, nil
}

// acquire takes a slot on the agent's semaphore without blocking.
func (r *Runtime) acquire(agentID string, cfg *config.AgentConfig) (func(), bool) {
	limit := cfg.MaxConcurrent
	if limit <= 0 {
		limit = r.defaultMaxConcurrent
	}

	r.mu.Lock()
	sem, ok := r.sems[agentID]
	if !ok {
		sem = make(chan struct{}, limit)
		r.sems[agentID] = sem
	}
	r.mu.Unlock()

	select {
	case sem <- struct{}{}:
		return func() { <-sem }, true
	default:
		return nil, false
	}
}

func (r *Runtime) validateInput(cfg *config.AgentConfig, req Request) *Response {
	if cfg.InputSchema == nil {
		return nil
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(cfg.InputSchema),
		gojsonschema.NewGoLoader(req.Data),
	)
	if err != nil {
		return ErrorResponse(models.ErrKindValidation, fmt.Sprintf("input schema check failed: %v", err))
	}
	if !result.Valid() {
		return ErrorResponse(models.ErrKindValidation, formatSchemaErrors("input", result))
	}
	return nil
}

// runToolCalls executes the calls the agent requested. Any disallowed or
// failed call converts the whole response into a call_failed envelope; the
// call records are kept on it so the failure is diagnosable.
func (r *Runtime) runToolCalls(ctx context.Context, cfg *config.AgentConfig, req Request, resp *Response) *Response {
	if len(resp.ToolCalls) == 0 || r.tools == nil {
		return nil
	}

	allowed := make(map[string]bool, len(cfg.RequiredTools))
	for _, t := range cfg.RequiredTools {
		allowed[t] = true
	}

	for i := range resp.ToolCalls {
		call := &resp.ToolCalls[i]
		if !allowed[call.Tool] {
			call.Success = false
			call.Error = fmt.Sprintf("tool %s not in agent's required_tools", call.Tool)
		} else {
			result, err := r.tools.Execute(ctx, tools.Call{
				Tool:           call.Tool,
				Args:           call.Args,
				IdempotencyKey: req.RequestID + "/" + strconv.Itoa(i),
			})
			if err != nil {
				call.Success = false
				call.Error = err.Error()
			} else {
				call.Success = result.Success
				call.Result = result.Data
				call.Error = result.Error
			}
		}

		if !call.Success {
			failed := ErrorResponse(models.ErrKindCallFailed,
				fmt.Sprintf("tool call %s failed: %s", call.Tool, call.Error))
			failed.Reasoning = resp.Reasoning
			failed.ToolCalls = resp.ToolCalls
			return failed
		}
	}
	return nil
}

// audit records the agent's envelope as an agent_response entry. The entry
// carries no data payload; it exists for the record, not for state.
func (r *Runtime) audit(ctx context.Context, req Request, cfg *config.AgentConfig, resp *Response) {
	if r.entries == nil {
		return
	}

	details := resp.Status
	if resp.Error != nil {
		details = resp.Status + ":" + resp.Error.Kind
	}
	_, err := r.entries.AppendWithRetry(ctx, models.AppendEntryRequest{
		TaskID:    req.TaskID,
		Actor:     models.AgentActor(req.AgentID, cfg.Version),
		Operation: models.OpAgentResponse,
		Reasoning: resp.Reasoning,
		Trigger: models.Trigger{
			Kind:    models.TriggerKindAgentRequest,
			Source:  req.RequestID,
			Details: details,
		},
	}, 3)
	if err != nil && !errors.Is(err, services.ErrTaskTerminal) {
		slog.Warn("Failed to record agent_response entry",
			"task_id", req.TaskID, "agent_id", req.AgentID, "error", err)
	}
}

// --- Envelope normalization and contract enforcement ---

func normalize(resp *Response, req Request) {
	resp.Status = strings.ToLower(strings.TrimSpace(resp.Status))
	if resp.Reasoning == "" {
		resp.Reasoning = noReasoning
	}
	if resp.Confidence < 0 {
		resp.Confidence = 0
	}
	if resp.Confidence > 1 {
		resp.Confidence = 1
	}

	// Deterministic UI request IDs: re-executing the same subtask after a
	// crash regenerates the same IDs, so the rendezvous reattaches instead
	// of asking the user twice.
	for i := range resp.UIRequests {
		if resp.UIRequests[i].RequestID == "" {
			resp.UIRequests[i].RequestID = uuid.NewSHA1(
				uuid.NameSpaceOID,
				[]byte(req.RequestID+"/ui/"+strconv.Itoa(i)),
			).String()
		}
	}
}

func checkContract(cfg *config.AgentConfig, resp *Response) string {
	switch resp.Status {
	case StatusCompleted:
		if cfg.OutputSchema != nil {
			result, err := gojsonschema.Validate(
				gojsonschema.NewGoLoader(cfg.OutputSchema),
				gojsonschema.NewGoLoader(resp.Data),
			)
			if err != nil {
				return fmt.Sprintf("output schema check failed: %v", err)
			}
			if !result.Valid() {
				return formatSchemaErrors("output", result)
			}
		}
	case StatusNeedsInput:
		if len(resp.UIRequests) == 0 {
			return "needs_input response carries no ui requests"
		}
		for i, spec := range resp.UIRequests {
			if !validUIKind(spec.TemplateKind) {
				return fmt.Sprintf("ui request %d has unknown template kind %q", i, spec.TemplateKind)
			}
		}
	case StatusDelegated:
		if resp.NextAgent == "" {
			return "delegated response names no next agent"
		}
	case StatusError:
		if resp.Error == nil {
			return "error response carries no error"
		}
	default:
		return fmt.Sprintf("unknown response status %q", resp.Status)
	}
	return ""
}

func validUIKind(kind string) bool {
	switch kind {
	case models.UIKindForm, models.UIKindConfirmation, models.UIKindSelection,
		models.UIKindUpload, models.UIKindProgress, models.UIKindError,
		models.UIKindSuccess, models.UIKindWaiting:
		return true
	}
	return false
}

func formatSchemaErrors(which string, result *gojsonschema.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s failed schema validation:", which)
	for _, e := range result.Errors() {
		sb.WriteString(" ")
		sb.WriteString(e.String())
		sb.WriteString(";")
	}
	return sb.String()
}

func classifyLLMError(err error) string {
	switch {
	case errors.Is(err, llm.ErrBusy):
		return models.ErrKindBusy
	case errors.Is(err, llm.ErrRateLimited):
		return models.ErrKindRateLimited
	case errors.Is(err, llm.ErrTimeout):
		return models.ErrKindTimeout
	case errors.Is(err, llm.ErrParseFailed):
		return models.ErrKindParseFailed
	default:
		return models.ErrKindCallFailed
	}
}

// --- Prompt construction ---

// promptView is the data visible to an agent's prompt template.
type promptView struct {
	Instruction string
	DataJSON    string
	Context     RequestContext
	RequestID   string
}

func renderPrompt(cfg *config.AgentConfig, req Request) (string, error) {
	dataJSON, err := json.MarshalIndent(req.Data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode task data: %w", err)
	}

	tmpl, err := template.New(req.AgentID).Parse(cfg.PromptTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, promptView{
		Instruction: req.Instruction,
		DataJSON:    string(dataJSON),
		Context:     req.Context,
		RequestID:   req.RequestID,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// systemPrompt assembles the agent's identity and the envelope contract.
func systemPrompt(cfg *config.AgentConfig) string {
	var sb strings.Builder
	if cfg.Role != "" {
		sb.WriteString(cfg.Role)
		sb.WriteString("\n\n")
	}
	if cfg.Mission != "" {
		sb.WriteString("Mission: ")
		sb.WriteString(cfg.Mission)
		sb.WriteString("\n\n")
	}
	if len(cfg.DecisionRules) > 0 {
		sb.WriteString("Decision rules:\n")
		for _, rule := range cfg.DecisionRules {
			sb.WriteString("- ")
			sb.WriteString(rule)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(envelopeContract)
	return sb.String()
}

const envelopeContract = `Respond with a single JSON object:
{
  "status": "completed" | "needs_input" | "delegated" | "error",
  "data": { ... },            // completed: your result
  "ui_requests": [ ... ],     // needs_input: what to ask the user
  "next_agent": "...",        // delegated: agent to hand off to
  "error": {"kind": "...", "message": "..."},  // error
  "reasoning": "why you decided this",
  "confidence": 0.0-1.0,
  "tool_calls": [{"tool": "...", "args": { ... }}]
}
Each ui_request needs "template_kind" (form, confirmation, selection, upload,
progress, error, success, waiting) and "semantic_data" describing intent, not
presentation. Set "data_path" in semantic_data to say where the answer merges.
No prose outside the JSON object.`
