package orchestrator

import (
	"fmt"
	"sort"

	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
)

// TopoSort orders plan phases so every phase follows its prerequisites.
// Kahn's algorithm with a sorted ready set: the same plan always yields the
// same order, which keeps re-runs after a crash walking the same path.
func TopoSort(plan *models.ExecutionPlan) ([]string, error) {
	indegree := make(map[string]int, len(plan.Phases))
	dependents := make(map[string][]string)

	for i := range plan.Phases {
		phase := &plan.Phases[i]
		if _, dup := indegree[phase.PhaseID]; dup {
			return nil, fmt.Errorf("duplicate phase id %q", phase.PhaseID)
		}
		indegree[phase.PhaseID] = 0
	}

	for i := range plan.Phases {
		phase := &plan.Phases[i]
		for _, prereq := range phase.Prerequisites {
			if _, ok := indegree[prereq]; !ok {
				return nil, fmt.Errorf("phase %q requires undeclared phase %q", phase.PhaseID, prereq)
			}
			indegree[phase.PhaseID]++
			dependents[prereq] = append(dependents[prereq], phase.PhaseID)
		}
	}

	var ready []string
	for id, deg := range indegree {
		if deg == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(plan.Phases))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		var unlocked []string
		for _, dep := range dependents[id] {
			indegree[dep]--
			if indegree[dep] == 0 {
				unlocked = append(unlocked, dep)
			}
		}
		sort.Strings(unlocked)
		ready = mergeSorted(ready, unlocked)
	}

	if len(order) != len(plan.Phases) {
		return nil, fmt.Errorf("plan has a prerequisite cycle involving %d phases", len(plan.Phases)-len(order))
	}
	return order, nil
}

func mergeSorted(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
