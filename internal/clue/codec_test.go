package clue

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/nonogram/internal/domain"
)

func toCells(arr []bool) []domain.CellState {
	out := make([]domain.CellState, len(arr))
	for i, f := range arr {
		if f {
			out[i] = domain.CellFilled
		} else {
			out[i] = domain.CellEmpty
		}
	}
	return out
}

func TestArrangementsRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		clues  domain.ClueSequence
		length int
		want   int
	}{
		{"empty clue", domain.ClueSequence{0}, 5, 1},
		{"single tight", domain.ClueSequence{5}, 5, 1},
		{"single loose", domain.ClueSequence{4}, 5, 2},
		{"two runs", domain.ClueSequence{2, 1}, 5, 3},
		{"two runs tight", domain.ClueSequence{2, 2}, 5, 1},
		{"no fit", domain.ClueSequence{3, 3}, 5, 0},
		{"three runs", domain.ClueSequence{1, 1, 1}, 7, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			arrs := Arrangements(tc.clues, tc.length)
			require.Len(t, arrs, tc.want)

			seen := make(map[string]bool)
			for _, a := range arrs {
				require.Len(t, a, tc.length)

				key := fmt.Sprint(a)
				require.False(t, seen[key], "duplicate arrangement %v", a)
				seen[key] = true

				// Round-trip law: every arrangement reproduces its clue.
				got, err := Compute(toCells(a))
				require.NoError(t, err)
				if tc.clues.Empty() {
					assert.True(t, got.Empty())
				} else {
					assert.Equal(t, tc.clues, got)
				}
			}
		})
	}
}

func TestComputeRequiresKnownLine(t *testing.T) {
	_, err := Compute([]domain.CellState{domain.CellFilled, domain.CellUnknown})
	require.ErrorIs(t, err, ErrUnknownCell)
}

func TestComputeBools(t *testing.T) {
	assert.Equal(t, domain.ClueSequence{0}, ComputeBools([]bool{false, false, false}))
	assert.Equal(t, domain.ClueSequence{3}, ComputeBools([]bool{true, true, true}))
	assert.Equal(t, domain.ClueSequence{1, 2}, ComputeBools([]bool{true, false, true, true}))
}

func TestMinSpace(t *testing.T) {
	assert.Equal(t, 0, domain.ClueSequence{0}.MinSpace())
	assert.Equal(t, 4, domain.ClueSequence{4}.MinSpace())
	assert.Equal(t, 5, domain.ClueSequence{2, 2}.MinSpace())
	assert.Equal(t, 5, domain.ClueSequence{1, 1, 1}.MinSpace())
}

// A clue whose minimum space is below the line length must admit more
// than one arrangement; at exactly the line length, exactly one.
func TestUniqueMatchesEnumeration(t *testing.T) {
	cases := []domain.ClueSequence{{0}, {1}, {3}, {5}, {2, 2}, {1, 1}, {1, 2}}
	const length = 5
	for _, c := range cases {
		n := len(Arrangements(c, length))
		if Unique(c, length) {
			assert.Equal(t, 1, n, "clues %v", c)
		} else {
			assert.Greater(t, n, 1, "clues %v", c)
		}
	}
}

func TestFilterConsistency(t *testing.T) {
	arrs := Arrangements(domain.ClueSequence{2}, 4) // 3 arrangements
	require.Len(t, arrs, 3)

	line := []domain.CellState{domain.CellFilled, domain.CellUnknown, domain.CellUnknown, domain.CellUnknown}
	got := Filter(arrs, line)
	require.Len(t, got, 1)
	assert.Equal(t, []bool{true, true, false, false}, got[0])

	contradiction := []domain.CellState{domain.CellEmpty, domain.CellFilled, domain.CellUnknown, domain.CellFilled}
	assert.Empty(t, Filter(arrs, contradiction))
}
