// Package solver provides the two uniqueness-verification backends:
// iterative constraint propagation with bounded backtracking, and a
// boolean-satisfiability encoding. Both count solutions as exactly
// 0, 1 or 2, where 2 means "two or more".
package solver

import (
	"context"
	"time"

	"svw.info/nonogram/internal/clue"
	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/ports"
)

// PropagationSolver narrows a private grid per line until fixpoint and
// backtracks on the first unknown cell when propagation stalls. It is
// the backend of choice for large grids, where the SAT encoding's
// arrangement-count memory cost is prohibitive.
type PropagationSolver struct{}

func NewPropagationSolver() *PropagationSolver { return &PropagationSolver{} }

// propagation holds the working state of one solving run.
type propagation struct {
	rows  []domain.ClueSequence
	cols  []domain.ClueSequence
	size  int
	grid  domain.Grid
	nodes int
}

// CountSolutions counts distinct full solutions, stopping at 2.
func (s *PropagationSolver) CountSolutions(ctx context.Context, rowClues, colClues []domain.ClueSequence, size int) (int, ports.Stats, error) {
	start := time.Now()
	p := &propagation{rows: rowClues, cols: colClues, size: size, grid: domain.NewGrid(size)}
	n := p.count(ctx, 2)
	if err := ctx.Err(); err != nil {
		return 0, ports.Stats{Nodes: p.nodes, Duration: time.Since(start)}, err
	}
	return n, ports.Stats{Nodes: p.nodes, Duration: time.Since(start)}, nil
}

// Solve finds one full solution, or reports ok == false.
func (s *PropagationSolver) Solve(ctx context.Context, rowClues, colClues []domain.ClueSequence, size int) ([][]bool, bool, ports.Stats, error) {
	start := time.Now()
	p := &propagation{rows: rowClues, cols: colClues, size: size, grid: domain.NewGrid(size)}
	sol := p.solve(ctx)
	if err := ctx.Err(); err != nil {
		return nil, false, ports.Stats{Nodes: p.nodes, Duration: time.Since(start)}, err
	}
	return sol, sol != nil, ports.Stats{Nodes: p.nodes, Duration: time.Since(start)}, nil
}

// propagate narrows the grid to a fixpoint. For every row and column it
// filters the full arrangement list down to those consistent with the
// known cells; positions on which all survivors agree become known.
// It returns false on a contradiction (some line has no consistent
// arrangement left).
func (p *propagation) propagate(ctx context.Context) bool {
	for {
		if ctx.Err() != nil {
			return false
		}
		changed := false
		for r := 0; r < p.size; r++ {
			ok, ch := p.narrowLine(p.grid[r], p.rows[r], func(i int, v domain.CellState) {
				p.grid[r][i] = v
			})
			if !ok {
				return false
			}
			changed = changed || ch
		}
		for c := 0; c < p.size; c++ {
			ok, ch := p.narrowLine(p.grid.Column(c), p.cols[c], func(i int, v domain.CellState) {
				p.grid[i][c] = v
			})
			if !ok {
				return false
			}
			changed = changed || ch
		}
		if !changed {
			return true
		}
	}
}

func (p *propagation) narrowLine(line []domain.CellState, clues domain.ClueSequence, set func(i int, v domain.CellState)) (ok, changed bool) {
	arrs := clue.Filter(clue.Arrangements(clues, p.size), line)
	if len(arrs) == 0 {
		return false, false
	}
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
		switch {
		case allFill:
			set(i, domain.CellFilled)
		case allEmpty:
			set(i, domain.CellEmpty)
		default:
			continue
		}
		p.nodes++
		changed = true
	}
	return true, changed
}

// count counts solutions up to limit. Branching snapshots the grid
// explicitly and restores it after each arm, so the recursion carries
// no hidden state beyond the call itself.
func (p *propagation) count(ctx context.Context, limit int) int {
	if ctx.Err() != nil {
		return 0
	}
	if !p.propagate(ctx) {
		return 0
	}
	if p.grid.Complete() {
		if p.valid() {
			return 1
		}
		return 0
	}
	r, c := p.firstUnknown()
	total := 0
	for _, v := range []domain.CellState{domain.CellFilled, domain.CellEmpty} {
		snap := p.grid.Clone()
		p.grid[r][c] = v
		p.nodes++
		total += p.count(ctx, limit-total)
		p.grid = snap
		if total >= limit {
			return limit
		}
	}
	return total
}

// solve is count's sibling that keeps the first full solution found.
func (p *propagation) solve(ctx context.Context) [][]bool {
	if ctx.Err() != nil {
		return nil
	}
	if !p.propagate(ctx) {
		return nil
	}
	if p.grid.Complete() {
		if !p.valid() {
			return nil
		}
		sol := make([][]bool, p.size)
		for r := 0; r < p.size; r++ {
			sol[r] = make([]bool, p.size)
			for c := 0; c < p.size; c++ {
				sol[r][c] = p.grid[r][c] == domain.CellFilled
			}
		}
		return sol
	}
	r, c := p.firstUnknown()
	for _, v := range []domain.CellState{domain.CellFilled, domain.CellEmpty} {
		snap := p.grid.Clone()
		p.grid[r][c] = v
		p.nodes++
		if sol := p.solve(ctx); sol != nil {
			return sol
		}
		p.grid = snap
	}
	return nil
}

func (p *propagation) firstUnknown() (int, int) {
	for r := 0; r < p.size; r++ {
		for c := 0; c < p.size; c++ {
			if p.grid[r][c] == domain.CellUnknown {
				return r, c
			}
		}
	}
	return -1, -1
}

// valid re-derives every line's clues from the fully-assigned grid and
// exact-matches them against the targets.
func (p *propagation) valid() bool {
	for r := 0; r < p.size; r++ {
		got, err := clue.Compute(p.grid[r])
		if err != nil || !equalClues(got, p.rows[r]) {
			return false
		}
	}
	for c := 0; c < p.size; c++ {
		got, err := clue.Compute(p.grid.Column(c))
		if err != nil || !equalClues(got, p.cols[c]) {
			return false
		}
	}
	return true
}

func equalClues(a, b domain.ClueSequence) bool {
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
