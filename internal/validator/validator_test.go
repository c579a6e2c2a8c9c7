package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/nonogram/internal/domain"
)

func gridFromBools(sol [][]bool) domain.Grid {
	g := domain.NewGrid(len(sol))
	for r, row := range sol {
		for c, filled := range row {
			if filled {
				g[r][c] = domain.CellFilled
			} else {
				g[r][c] = domain.CellEmpty
			}
		}
	}
	return g
}

func TestValidate(t *testing.T) {
	rows := []domain.ClueSequence{{2}, {1}}
	cols := []domain.ClueSequence{{2}, {1}}
	v := New()

	t.Run("correct grid", func(t *testing.T) {
		g := gridFromBools([][]bool{{true, true}, {true, false}})
		ok, conflicts, err := v.Validate(context.Background(), g, rows, cols)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, conflicts)
	})

	t.Run("wrong cell reports offending lines", func(t *testing.T) {
		g := gridFromBools([][]bool{{true, false}, {true, true}})
		ok, conflicts, err := v.Validate(context.Background(), g, rows, cols)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, conflicts, domain.LineRef{Kind: domain.LineRow, Index: 0})
		assert.Contains(t, conflicts, domain.LineRef{Kind: domain.LineRow, Index: 1})
	})

	t.Run("incomplete grid is not ok", func(t *testing.T) {
		g := domain.NewGrid(2)
		g[0][0] = domain.CellFilled
		ok, _, err := v.Validate(context.Background(), g, rows, cols)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
