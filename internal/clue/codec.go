// Package clue converts between fully-known lines and their clue
// sequences and enumerates every arrangement a clue sequence admits at
// a given line length.
package clue

import (
	"errors"

	"svw.info/nonogram/internal/domain"
)

// ErrUnknownCell is returned by Compute when the line is not fully determined.
var ErrUnknownCell = errors.New("clue: line contains unknown cells")

// Compute derives the clue sequence of a fully-known line by scanning
// consecutive filled runs left to right. A line with no filled cells
// yields the sentinel [0].
func Compute(line []domain.CellState) (domain.ClueSequence, error) {
	clues := domain.ClueSequence{}
	run := 0
	for _, c := range line {
		switch c {
		case domain.CellUnknown:
			return nil, ErrUnknownCell
		case domain.CellFilled:
			run++
		default:
			if run > 0 {
				clues = append(clues, run)
				run = 0
			}
		}
	}
	if run > 0 {
		clues = append(clues, run)
	}
	if len(clues) == 0 {
		clues = domain.ClueSequence{0}
	}
	return clues, nil
}

// ComputeBools is Compute for a boolean line, used on generator samples
// where every cell is determined by construction.
func ComputeBools(line []bool) domain.ClueSequence {
	clues := domain.ClueSequence{}
	run := 0
	for _, filled := range line {
		if filled {
			run++
		} else if run > 0 {
			clues = append(clues, run)
			run = 0
		}
	}
	if run > 0 {
		clues = append(clues, run)
	}
	if len(clues) == 0 {
		clues = domain.ClueSequence{0}
	}
	return clues
}

// Arrangements enumerates every boolean line of the given length whose
// filled runs realize clues in order, separated by at least one gap.
// Placement is leftmost-first and exhaustive, so the result is ordered
// and duplicate-free. An empty clue yields the single all-empty line;
// a clue that cannot fit yields no arrangements.
func Arrangements(clues domain.ClueSequence, length int) [][]bool {
	if clues.Empty() {
		return [][]bool{make([]bool, length)}
	}
	var out [][]bool
	cur := make([]bool, length)

	var place func(idx, start int)
	place = func(idx, start int) {
		if idx == len(clues) {
			arr := make([]bool, length)
			copy(arr, cur)
			out = append(out, arr)
			return
		}
		size := clues[idx]
		rest := clues[idx+1:]
		// Latest start leaving room for the remaining runs and the gap
		// separating them from this one.
		last := length - size - domain.ClueSequence(rest).MinSpace()
		if len(rest) > 0 {
			last--
		}
		for s := start; s <= last; s++ {
			for i := s; i < s+size; i++ {
				cur[i] = true
			}
			place(idx+1, s+size+1)
			for i := s; i < s+size; i++ {
				cur[i] = false
			}
		}
	}
	place(0, 0)
	return out
}

// Unique reports whether the clue sequence admits exactly one
// arrangement at the given length, without enumerating. An empty clue
// always does; otherwise the runs must occupy the whole line.
func Unique(clues domain.ClueSequence, length int) bool {
	return clues.Empty() || clues.MinSpace() == length
}

// Consistent reports whether an arrangement agrees with every known
// cell of a partially-known line.
func Consistent(arr []bool, line []domain.CellState) bool {
	for i, c := range line {
		if c == domain.CellFilled && !arr[i] {
			return false
		}
		if c == domain.CellEmpty && arr[i] {
			return false
		}
	}
	return true
}

// Filter returns the arrangements consistent with the known cells of line.
func Filter(arrs [][]bool, line []domain.CellState) [][]bool {
	out := arrs[:0:0]
	for _, a := range arrs {
		if Consistent(a, line) {
			out = append(out, a)
		}
	}
	return out
}
