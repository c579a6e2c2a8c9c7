// Package deduce implements per-line logical deduction over partially
// known lines, and the grid-wide hint and auto-fill queries built on it.
//
// Marking policy: permissive. A cell is forced as soon as every
// arrangement consistent with the known cells agrees on it; once a
// line's filled runs exactly match its clue sequence, every remaining
// unknown cell is therefore forced empty in one step. The same policy
// backs hints, auto-fill and the flow simulator. A [0] clue line marks
// all of its cells empty immediately for the same reason: its single
// arrangement is the all-empty one.
package deduce

import (
	"svw.info/nonogram/internal/clue"
	"svw.info/nonogram/internal/domain"
)

// LineResult holds the deductions available on one line.
type LineResult struct {
	// ForcedFill and ForcedEmpty list the unknown positions every
	// consistent arrangement agrees on, in ascending order.
	ForcedFill  []int
	ForcedEmpty []int
	// Completed[i] reports whether clue run i is unambiguously placed,
	// fully filled, and sealed on both sides by an edge or an explicit
	// empty mark. For the [0] clue it has a single entry that is true
	// once every cell is explicitly empty.
	Completed []bool
}

// AnalyzeLine filters the clue's arrangements down to those consistent
// with the known cells and reports what they all agree on. A line with
// no consistent arrangement (the player contradicted the clue) yields
// an empty result rather than an error.
func AnalyzeLine(line []domain.CellState, clues domain.ClueSequence) LineResult {
	n := len(line)
	arrs := clue.Filter(clue.Arrangements(clues, n), line)
	if len(arrs) == 0 {
		return LineResult{}
	}

	var res LineResult
	for i, c := range line {
		if c != domain.CellUnknown {
			continue
		}
		allFill, allEmpty := true, true
		for _, a := range arrs {
			if a[i] {
				allEmpty = false
			} else {
				allFill = false
			}
		}
		if allFill {
			res.ForcedFill = append(res.ForcedFill, i)
		} else if allEmpty {
			res.ForcedEmpty = append(res.ForcedEmpty, i)
		}
	}

	if clues.Empty() {
		done := true
		for _, c := range line {
			if c != domain.CellEmpty {
				done = false
				break
			}
		}
		res.Completed = []bool{done}
		return res
	}

	res.Completed = make([]bool, len(clues))
	for i := range clues {
		res.Completed[i] = runCompleted(line, arrs, i, clues[i])
	}
	return res
}

// runCompleted reports whether run i sits at the same span in every
// consistent arrangement, that span is currently all filled, and the
// span is bounded on both sides by the line edge or an explicit empty
// mark. The bounding requirement prevents premature completion when
// equal-length runs could still shift.
func runCompleted(line []domain.CellState, arrs [][]bool, i, size int) bool {
	start := runStart(arrs[0], i)
	for _, a := range arrs[1:] {
		if runStart(a, i) != start {
			return false
		}
	}
	end := start + size
	for p := start; p < end; p++ {
		if line[p] != domain.CellFilled {
			return false
		}
	}
	if start > 0 && line[start-1] != domain.CellEmpty {
		return false
	}
	if end < len(line) && line[end] != domain.CellEmpty {
		return false
	}
	return true
}

// runStart returns the starting index of the i-th filled run.
func runStart(arr []bool, i int) int {
	run := -1
	for p := 0; p < len(arr); p++ {
		if arr[p] && (p == 0 || !arr[p-1]) {
			run++
			if run == i {
				return p
			}
		}
	}
	return -1
}
