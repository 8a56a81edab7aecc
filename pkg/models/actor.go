package models

// Actor kinds: who performed an operation.
const (
	ActorKindUser   = "user"
	ActorKindAgent  = "agent"
	ActorKindSystem = "system"
)

// Trigger kinds: what caused an operation.
const (
	TriggerKindUserAction   = "user_action"
	TriggerKindAgentRequest = "agent_request"
	TriggerKindSystemEvent  = "system_event"
)

// Actor identifies who performed an operation on a task.
type Actor struct {
	Kind    string `json:"kind"` // user, agent, system
	ID      string `json:"id"`
	Version string `json:"version,omitempty"`
}

// SystemActor returns the engine's own actor identity.
func SystemActor(id string) Actor {
	return Actor{Kind: ActorKindSystem, ID: id}
}

// AgentActor returns the actor identity for a configured agent.
func AgentActor(agentID, version string) Actor {
	return Actor{Kind: ActorKindAgent, ID: agentID, Version: version}
}

// UserActor returns the actor identity for an authenticated user.
func UserActor(subject string) Actor {
	return Actor{Kind: ActorKindUser, ID: subject}
}

// Trigger records what caused a context entry to be written.
type Trigger struct {
	Kind    string `json:"kind"` // user_action, agent_request, system_event
	Source  string `json:"source"`
	Details string `json:"details,omitempty"`
}

// Map returns the trigger as a generic map for JSON column storage.
func (t Trigger) Map() map[string]any {
	m := map[string]any{
		"kind":   t.Kind,
		"source": t.Source,
	}
	if t.Details != "" {
		m["details"] = t.Details
	}
	return m
}
