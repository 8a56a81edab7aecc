package orchestrator

import (
	"testing"

	"github.com/gianmatteo-arcana/engine-lever/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planOf(phases ...models.PlanPhase) *models.ExecutionPlan {
	return &models.ExecutionPlan{Phases: phases}
}

func TestTopoSort(t *testing.T) {
	t.Run("linear chain", func(t *testing.T) {
		order, err := TopoSort(planOf(
			models.PlanPhase{PhaseID: "collect"},
			models.PlanPhase{PhaseID: "verify", Prerequisites: []string{"collect"}},
			models.PlanPhase{PhaseID: "finish", Prerequisites: []string{"verify"}},
		))
		require.NoError(t, err)
		assert.Equal(t, []string{"collect", "verify", "finish"}, order)
	})

	t.Run("independent phases come out sorted", func(t *testing.T) {
		order, err := TopoSort(planOf(
			models.PlanPhase{PhaseID: "zeta"},
			models.PlanPhase{PhaseID: "alpha"},
			models.PlanPhase{PhaseID: "mid"},
		))
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "mid", "zeta"}, order)
	})

	t.Run("diamond respects prerequisites and stays deterministic", func(t *testing.T) {
		plan := planOf(
			models.PlanPhase{PhaseID: "d", Prerequisites: []string{"b", "c"}},
			models.PlanPhase{PhaseID: "b", Prerequisites: []string{"a"}},
			models.PlanPhase{PhaseID: "c", Prerequisites: []string{"a"}},
			models.PlanPhase{PhaseID: "a"},
		)
		first, err := TopoSort(plan)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c", "d"}, first)

		for i := 0; i < 5; i++ {
			again, err := TopoSort(plan)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("duplicate phase id", func(t *testing.T) {
		_, err := TopoSort(planOf(
			models.PlanPhase{PhaseID: "x"},
			models.PlanPhase{PhaseID: "x"},
		))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate phase id")
	})

	t.Run("undeclared prerequisite", func(t *testing.T) {
		_, err := TopoSort(planOf(
			models.PlanPhase{PhaseID: "x", Prerequisites: []string{"ghost"}},
		))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "undeclared")
	})

	t.Run("cycle", func(t *testing.T) {
		_, err := TopoSort(planOf(
			models.PlanPhase{PhaseID: "a", Prerequisites: []string{"b"}},
			models.PlanPhase{PhaseID: "b", Prerequisites: []string{"a"}},
		))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cycle")
	})
}
