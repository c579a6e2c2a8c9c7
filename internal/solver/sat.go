package solver

import (
	"context"
	"log/slog"
	"time"

	gophersat "github.com/crillab/gophersat/solver"

	"svw.info/nonogram/internal/clue"
	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/ports"
)

// SATSolver encodes the puzzle as CNF over one variable per cell plus
// one selector variable per line arrangement, then counts solutions by
// solve-then-block. Memory grows with the total arrangement count
// across all lines, so the generator only uses it below a size
// threshold; exhaustiveness within that range is its selling point.
type SATSolver struct {
	Logger *slog.Logger
}

func NewSATSolver(logger *slog.Logger) *SATSolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SATSolver{Logger: logger}
}

// cnf accumulates clauses over integer literals, DIMACS-style:
// variable v is the literal v, its negation -v. Cell variables occupy
// 1..size²; fresh variables (selectors and the odd helper) follow.
type cnf struct {
	clauses [][]int
	next    int
}

func newCNF(cells int) *cnf { return &cnf{next: cells + 1} }

func (f *cnf) fresh() int {
	v := f.next
	f.next++
	return v
}

func (f *cnf) add(lits ...int) { f.clauses = append(f.clauses, lits) }

// unsat injects an always-false constraint via a fresh variable, the
// resolution of the "exactly one of zero selectors" edge required by
// a clue with no valid arrangement.
func (f *cnf) unsat() {
	v := f.fresh()
	f.add(v)
	f.add(-v)
}

// exactlyOne requires precisely one of vars to be true, using the
// at-least-one clause plus pairwise at-most-one clauses. Zero vars
// degrade to an unsatisfiable constraint rather than a crash.
func (f *cnf) exactlyOne(vars []int) {
	if len(vars) == 0 {
		f.unsat()
		return
	}
	f.add(append([]int(nil), vars...)...)
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			f.add(-vars[i], -vars[j])
		}
	}
}

// equivOr requires v ↔ (w1 ∨ w2 ∨ …).
func (f *cnf) equivOr(v int, ws []int) {
	rev := make([]int, 0, len(ws)+1)
	rev = append(rev, -v)
	for _, w := range ws {
		f.add(-w, v)
		rev = append(rev, w)
	}
	f.add(rev...)
}

// encode builds the CNF for the whole puzzle. Per line: no arrangement
// makes the formula unsatisfiable, a single arrangement fixes each cell
// directly, and multiple arrangements get selector variables with an
// exactly-one constraint and per-cell equivalences.
func (s *SATSolver) encode(rowClues, colClues []domain.ClueSequence, size int) *cnf {
	f := newCNF(size * size)
	cellVar := func(r, c int) int { return r*size + c + 1 }

	encodeLine := func(clues domain.ClueSequence, cell func(i int) int) {
		arrs := clue.Arrangements(clues, size)
		switch len(arrs) {
		case 0:
			f.unsat()
		case 1:
			for i, filled := range arrs[0] {
				if filled {
					f.add(cell(i))
				} else {
					f.add(-cell(i))
				}
			}
		default:
			sels := make([]int, len(arrs))
			for k := range arrs {
				sels[k] = f.fresh()
			}
			f.exactlyOne(sels)
			for i := 0; i < size; i++ {
				var filling []int
				for k, a := range arrs {
					if a[i] {
						filling = append(filling, sels[k])
					}
				}
				switch len(filling) {
				case 0:
					f.add(-cell(i))
				case len(arrs):
					f.add(cell(i))
				default:
					f.equivOr(cell(i), filling)
				}
			}
		}
	}

	for r := 0; r < size; r++ {
		row := r
		encodeLine(rowClues[row], func(i int) int { return cellVar(row, i) })
	}
	for c := 0; c < size; c++ {
		col := c
		encodeLine(colClues[col], func(i int) int { return cellVar(i, col) })
	}
	return f
}

// runSAT solves one clause set, returning the model when satisfiable.
// The encoder stays independent of any richer incremental API: callers
// block a found model by re-running with the blocking clause appended.
func runSAT(clauses [][]int) ([]bool, bool) {
	pb := gophersat.ParseSlice(clauses)
	s := gophersat.New(pb)
	if s.Solve() != gophersat.Sat {
		return nil, false
	}
	return s.Model(), true
}

// CountSolutions solves once, and if satisfiable re-solves with a
// clause forbidding exactly the found cell assignment. A second UNSAT
// means the solution was unique.
func (s *SATSolver) CountSolutions(ctx context.Context, rowClues, colClues []domain.ClueSequence, size int) (int, ports.Stats, error) {
	start := time.Now()
	f := s.encode(rowClues, colClues, size)
	stats := ports.Stats{Nodes: len(f.clauses)}
	s.Logger.Debug("sat encode", "size", size, "vars", f.next-1, "clauses", len(f.clauses))
	if err := ctx.Err(); err != nil {
		return 0, stats, err
	}

	model, ok := runSAT(f.clauses)
	if !ok {
		stats.Duration = time.Since(start)
		return 0, stats, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, stats, err
	}

	// Block only the cell variables: selector assignments are a
	// function of the cells, so two models differing solely in
	// selectors describe the same grid.
	blocking := make([]int, size*size)
	for v := 1; v <= size*size; v++ {
		if model[v-1] {
			blocking[v-1] = -v
		} else {
			blocking[v-1] = v
		}
	}
	clauses := make([][]int, len(f.clauses), len(f.clauses)+1)
	copy(clauses, f.clauses)
	clauses = append(clauses, blocking)

	_, again := runSAT(clauses)
	stats.Duration = time.Since(start)
	if again {
		return 2, stats, nil
	}
	return 1, stats, nil
}

// Solve solves the encoding once and extracts the grid from the cell
// variables; ok == false signals "no solution".
func (s *SATSolver) Solve(ctx context.Context, rowClues, colClues []domain.ClueSequence, size int) ([][]bool, bool, ports.Stats, error) {
	start := time.Now()
	f := s.encode(rowClues, colClues, size)
	stats := ports.Stats{Nodes: len(f.clauses)}
	if err := ctx.Err(); err != nil {
		return nil, false, stats, err
	}

	model, ok := runSAT(f.clauses)
	stats.Duration = time.Since(start)
	if !ok {
		return nil, false, stats, nil
	}
	grid := make([][]bool, size)
	for r := 0; r < size; r++ {
		grid[r] = make([]bool, size)
		for c := 0; c < size; c++ {
			grid[r][c] = model[r*size+c]
		}
	}
	return grid, true, stats, nil
}
