package models

// ExecutionPlan is an ordered, DAG-structured set of phases with agent
// assignments, produced by the planner and recorded as a plan_created entry.
type ExecutionPlan struct {
	Phases []PlanPhase `json:"phases"`
}

// PlanPhase is one stage of an execution plan.
type PlanPhase struct {
	PhaseID           string   `json:"phase_id"`
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	RequiredAgents    []string `json:"required_agents"`
	Prerequisites     []string `json:"prerequisites,omitempty"`
	EstimatedDuration string   `json:"estimated_duration,omitempty"`
	Goals             []string `json:"goals,omitempty"`
	Parallel          bool     `json:"parallel,omitempty"`
}

// Phase returns the phase with the given id, or nil.
func (p *ExecutionPlan) Phase(phaseID string) *PlanPhase {
	for i := range p.Phases {
		if p.Phases[i].PhaseID == phaseID {
			return &p.Phases[i]
		}
	}
	return nil
}
