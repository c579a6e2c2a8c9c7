package validator

import (
	"context"

	"svw.info/nonogram/internal/clue"
	"svw.info/nonogram/internal/domain"
)

// FastValidator checks a player grid against the puzzle clues by
// re-deriving each fully-known line's clue sequence. Lines that still
// contain unknown cells are not judged, but leave the grid invalid
// overall.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate returns ok only for a complete grid whose every line
// reproduces its clue sequence; conflicts lists the lines that do not.
func (v *FastValidator) Validate(ctx context.Context, g domain.Grid, rowClues, colClues []domain.ClueSequence) (bool, []domain.LineRef, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	size := g.Size()
	conflicts := make([]domain.LineRef, 0, 4)
	complete := true

	for r := 0; r < size; r++ {
		got, err := clue.Compute(g[r])
		if err != nil {
			complete = false
			continue
		}
		if !equal(got, rowClues[r]) {
			conflicts = append(conflicts, domain.LineRef{Kind: domain.LineRow, Index: r})
		}
	}
	for c := 0; c < size; c++ {
		got, err := clue.Compute(g.Column(c))
		if err != nil {
			complete = false
			continue
		}
		if !equal(got, colClues[c]) {
			conflicts = append(conflicts, domain.LineRef{Kind: domain.LineCol, Index: c})
		}
	}
	return complete && len(conflicts) == 0, conflicts, nil
}

func equal(a, b domain.ClueSequence) bool {
	if a.Empty() && b.Empty() {
		return true
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
