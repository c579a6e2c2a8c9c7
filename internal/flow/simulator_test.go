package flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/nonogram/internal/domain"
)

func TestAnalyzeAmbiguousPuzzleScoresZero(t *testing.T) {
	// Three [1] rows and columns: no line ever yields a deduction.
	clues := []domain.ClueSequence{{1}, {1}, {1}}
	a, err := NewSimulator().Analyze(context.Background(), clues, clues, 3)
	require.NoError(t, err)
	assert.False(t, a.Solved)
	assert.Zero(t, a.FlowScore)
	assert.Zero(t, a.EntryPoints)
	assert.Zero(t, a.QuadrantSpread)
	assert.Zero(t, a.SpatialVariance)
}

func TestAnalyzeSolvablePuzzle(t *testing.T) {
	// 2x2: row 0 full, then the last cell falls out in a second wave.
	rows := []domain.ClueSequence{{2}, {1}}
	cols := []domain.ClueSequence{{2}, {1}}
	a, err := NewSimulator().Analyze(context.Background(), rows, cols, 2)
	require.NoError(t, err)

	assert.True(t, a.Solved)
	require.Len(t, a.Waves, 2)
	assert.Equal(t, 3, a.EntryPoints)
	assert.Greater(t, a.FlowScore, 0.0)
	assert.LessOrEqual(t, a.FlowScore, 1.0)
}

func TestAnalyzeCrossPuzzleMetrics(t *testing.T) {
	rows := []domain.ClueSequence{{1}, {3}, {1}}
	cols := []domain.ClueSequence{{1}, {3}, {1}}
	a, err := NewSimulator().Analyze(context.Background(), rows, cols, 3)
	require.NoError(t, err)

	require.True(t, a.Solved)
	assert.Greater(t, a.QuadrantSpread, 0.0)
	assert.Greater(t, a.FlowScore, 0.0)
	// Every wave's deduction count sums to the full grid.
	total := 0
	for _, w := range a.Waves {
		total += len(w)
	}
	assert.Equal(t, 9, total)
}

func TestQuadrantBoundary(t *testing.T) {
	// Even size: the cell on both midlines resolves to bottom-right.
	assert.Equal(t, 3, Quadrant(2, 2, 4))
	assert.Equal(t, 0, Quadrant(0, 0, 4))
	assert.Equal(t, 1, Quadrant(1, 2, 4))
	assert.Equal(t, 2, Quadrant(2, 1, 4))

	// Odd size: the cut sits at size/2 by integer division.
	assert.Equal(t, 0, Quadrant(1, 1, 5))
	assert.Equal(t, 3, Quadrant(2, 2, 5))
	assert.Equal(t, 2, Quadrant(4, 0, 5))
}
