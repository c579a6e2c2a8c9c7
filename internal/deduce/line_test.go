package deduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/nonogram/internal/domain"
)

const (
	u = domain.CellUnknown
	f = domain.CellFilled
	e = domain.CellEmpty
)

func TestAnalyzeLineForcedOverlap(t *testing.T) {
	// [4] in 5 cells: both arrangements overlap in the middle three.
	res := AnalyzeLine([]domain.CellState{u, u, u, u, u}, domain.ClueSequence{4})
	assert.Equal(t, []int{1, 2, 3}, res.ForcedFill)
	assert.Empty(t, res.ForcedEmpty)
}

func TestAnalyzeLineForcedEmptyAfterPlacedRun(t *testing.T) {
	// The single [1] run is already placed, so the rest is forced empty.
	res := AnalyzeLine([]domain.CellState{f, u, u}, domain.ClueSequence{1})
	assert.Empty(t, res.ForcedFill)
	assert.Equal(t, []int{1, 2}, res.ForcedEmpty)
}

func TestAnalyzeLineContradictionIsGraceful(t *testing.T) {
	// A filled cell on a [0] line leaves no consistent arrangement.
	res := AnalyzeLine([]domain.CellState{f, u}, domain.ClueSequence{0})
	assert.Empty(t, res.ForcedFill)
	assert.Empty(t, res.ForcedEmpty)
	assert.Empty(t, res.Completed)
}

func TestAnalyzeLineEmptyClueMarksImmediately(t *testing.T) {
	res := AnalyzeLine([]domain.CellState{u, u, u}, domain.ClueSequence{0})
	assert.Equal(t, []int{0, 1, 2}, res.ForcedEmpty)
	require.Len(t, res.Completed, 1)
	assert.False(t, res.Completed[0])

	res = AnalyzeLine([]domain.CellState{e, e, e}, domain.ClueSequence{0})
	require.Len(t, res.Completed, 1)
	assert.True(t, res.Completed[0])
}

func TestAnalyzeLineCompletedRuns(t *testing.T) {
	// Run 0 is pinned and sealed by empties; run 1 is filled but its
	// left neighbour is still unknown, so it must not count as done.
	res := AnalyzeLine([]domain.CellState{e, f, e, u, f}, domain.ClueSequence{1, 1})
	require.Len(t, res.Completed, 2)
	assert.True(t, res.Completed[0])
	assert.False(t, res.Completed[1])
	assert.Equal(t, []int{3}, res.ForcedEmpty)
}

func TestAnalyzeLineAmbiguousEqualRunsNotCompleted(t *testing.T) {
	// Two [1] runs, one filled cell in the middle: the filled cell can
	// belong to either run, so neither is completed.
	res := AnalyzeLine([]domain.CellState{u, u, f, u, u}, domain.ClueSequence{1, 1})
	require.Len(t, res.Completed, 2)
	assert.False(t, res.Completed[0])
	assert.False(t, res.Completed[1])
}
