package deduce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/nonogram/internal/domain"
)

func TestHintPrefersFillOverMark(t *testing.T) {
	// Row 0's placed run yields marks, row 1's full run yields fills.
	g := domain.NewGrid(3)
	g[0][0] = domain.CellFilled
	rows := []domain.ClueSequence{{1}, {3}, {1}}
	cols := []domain.ClueSequence{{1}, {1}, {1}}

	h, ok, err := NewAnalyzer().Hint(context.Background(), g, rows, cols)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.HintFill, h.Kind)
	assert.Equal(t, 1, h.Row)
	assert.Equal(t, domain.LineRow, h.Line.Kind)
}

func TestHintFallsBackToMark(t *testing.T) {
	g := domain.NewGrid(3)
	g[0][0] = domain.CellFilled
	// Only mark deductions exist: every line is a placed single.
	rows := []domain.ClueSequence{{1}, {1}, {1}}
	cols := []domain.ClueSequence{{1}, {1}, {1}}

	h, ok, err := NewAnalyzer().Hint(context.Background(), g, rows, cols)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.HintMark, h.Kind)
	// Row-major discovery order: the first mark is row 0, col 1.
	assert.Equal(t, 0, h.Row)
	assert.Equal(t, 1, h.Col)
}

func TestHintNoneAvailable(t *testing.T) {
	g := domain.NewGrid(2)
	rows := []domain.ClueSequence{{1}, {1}}
	cols := []domain.ClueSequence{{1}, {1}}

	_, ok, err := NewAnalyzer().Hint(context.Background(), g, rows, cols)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAutoFillMarksForcedEmpties(t *testing.T) {
	g := domain.NewGrid(3)
	g[0][0] = domain.CellFilled
	rows := []domain.ClueSequence{{1}, {1}, {1}}
	cols := []domain.ClueSequence{{1}, {1}, {1}}

	n, err := NewAnalyzer().AutoFill(context.Background(), g, rows, cols)
	require.NoError(t, err)
	// Row 0 marks (0,1) and (0,2); column 0 marks (1,0) and (2,0).
	assert.Equal(t, 4, n)
	for _, c := range []domain.CellCoord{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 2, Col: 0}} {
		assert.Equal(t, domain.CellEmpty, g[c.Row][c.Col], "cell %+v", c)
	}
	assert.Equal(t, domain.CellFilled, g[0][0])
	assert.Equal(t, domain.CellUnknown, g[1][1])
}
