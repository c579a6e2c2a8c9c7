package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/ports"
)

// Small clue sets with a known solution count.
var countCases = []struct {
	name string
	rows []domain.ClueSequence
	cols []domain.ClueSequence
	size int
	want int
}{
	{
		name: "unique 2x2",
		rows: []domain.ClueSequence{{2}, {1}},
		cols: []domain.ClueSequence{{2}, {1}},
		size: 2,
		want: 1,
	},
	{
		name: "two diagonals",
		rows: []domain.ClueSequence{{1}, {1}},
		cols: []domain.ClueSequence{{1}, {1}},
		size: 2,
		want: 2,
	},
	{
		name: "contradictory",
		rows: []domain.ClueSequence{{2}, {2}},
		cols: []domain.ClueSequence{{1}, {1}},
		size: 2,
		want: 0,
	},
	{
		name: "unique 3x3 cross",
		rows: []domain.ClueSequence{{1}, {3}, {1}},
		cols: []domain.ClueSequence{{1}, {3}, {1}},
		size: 3,
		want: 1,
	},
	{
		name: "ambiguous 3x3 singles",
		rows: []domain.ClueSequence{{1}, {1}, {1}},
		cols: []domain.ClueSequence{{1}, {1}, {1}},
		size: 3,
		want: 2,
	},
}

// Both backends must agree on small grids.
func TestCountSolutionsBackendsAgree(t *testing.T) {
	backends := []struct {
		name string
		s    ports.Solver
	}{
		{"propagation", NewPropagationSolver()},
		{"sat", NewSATSolver(nil)},
	}
	for _, b := range backends {
		for _, tc := range countCases {
			t.Run(b.name+"/"+tc.name, func(t *testing.T) {
				n, st, err := b.s.CountSolutions(context.Background(), tc.rows, tc.cols, tc.size)
				require.NoError(t, err)
				assert.Equal(t, tc.want, n)
				assert.GreaterOrEqual(t, st.Nodes, 0)
			})
		}
	}
}

func TestSolveExtractsSolution(t *testing.T) {
	rows := []domain.ClueSequence{{2}, {1}}
	cols := []domain.ClueSequence{{2}, {1}}
	want := [][]bool{{true, true}, {true, false}}

	for name, s := range map[string]ports.Solver{
		"propagation": NewPropagationSolver(),
		"sat":         NewSATSolver(nil),
	} {
		t.Run(name, func(t *testing.T) {
			sol, ok, _, err := s.Solve(context.Background(), rows, cols, 2)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, want, sol)
		})
	}
}

func TestSolveNoSolution(t *testing.T) {
	rows := []domain.ClueSequence{{2}, {2}}
	cols := []domain.ClueSequence{{1}, {1}}

	for name, s := range map[string]ports.Solver{
		"propagation": NewPropagationSolver(),
		"sat":         NewSATSolver(nil),
	} {
		t.Run(name, func(t *testing.T) {
			sol, ok, _, err := s.Solve(context.Background(), rows, cols, 2)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, sol)
		})
	}
}

func TestCountSolutionsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, s := range map[string]ports.Solver{
		"propagation": NewPropagationSolver(),
		"sat":         NewSATSolver(nil),
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := s.CountSolutions(ctx, []domain.ClueSequence{{1}, {1}}, []domain.ClueSequence{{1}, {1}}, 2)
			require.ErrorIs(t, err, context.Canceled)
		})
	}
}
