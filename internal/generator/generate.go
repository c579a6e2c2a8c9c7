package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/nonogram/internal/clue"
	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/ports"
)

// Generate runs the bounded generate-and-test loop. Exhausting the
// attempt budget is not a failure: the last-sampled candidate comes
// back with its Diagnostic field set and no uniqueness/flow guarantee.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, size int, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	params := g.Config.Params(diff)
	nodes := 0

	attempts := g.Config.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	var last *domain.Puzzle
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}

		sol := g.sample(rng, size, params.FillDensity)
		rows, cols := deriveClues(sol)
		p := &domain.Puzzle{
			Seed:       seed,
			Size:       size,
			Difficulty: diff,
			Solution:   sol,
			RowClues:   rows,
			ColClues:   cols,
			CreatedAt:  time.Now().UnixNano(),
		}
		last = p

		// A line with exactly one possible arrangement hands the player
		// a whole row or column for free.
		if hasFreeLine(rows, cols, size) {
			continue
		}

		if size <= g.Config.UniquenessMaxSize {
			n, st, err := g.solverFor(size).CountSolutions(ctx, rows, cols, size)
			nodes += st.Nodes
			if err != nil {
				return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
			}
			if n != 1 {
				continue
			}
			p.Unique = true
		}

		if g.Flow != nil && params.MinFlowScore > 0 {
			fa, err := g.Flow.Analyze(ctx, rows, cols, size)
			if err != nil {
				return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
			}
			p.FlowScore = fa.FlowScore
			if fa.FlowScore < params.MinFlowScore {
				continue
			}
		}

		p.ID = uuid.NewString()
		g.Logger.Debug("puzzle accepted",
			"size", size, "difficulty", diff.String(),
			"attempt", attempt+1, "flowScore", p.FlowScore, "unique", p.Unique)
		return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
	}

	last.ID = uuid.NewString()
	last.Diagnostic = fmt.Sprintf("attempt budget of %d exhausted; returning last candidate without uniqueness or flow guarantee", attempts)
	g.Logger.Warn("generation budget exhausted",
		"size", size, "difficulty", diff.String(), "attempts", attempts)
	return last, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// sample draws a random solution at the difficulty's fill density and
// repairs fully-empty rows and columns by flipping one random cell in
// each, bounded by Config.RepairRetries passes. A candidate that still
// has an empty line after repair is caught by the free-line rejection.
func (g *UniqueGenerator) sample(rng *rand.Rand, size int, density float64) [][]bool {
	sol := make([][]bool, size)
	for r := range sol {
		sol[r] = make([]bool, size)
		for c := range sol[r] {
			sol[r][c] = rng.Float64() < density
		}
	}

	for pass := 0; pass < g.Config.RepairRetries; pass++ {
		repaired := false
		for r := 0; r < size; r++ {
			if emptyRow(sol, r) {
				sol[r][rng.Intn(size)] = true
				repaired = true
			}
		}
		for c := 0; c < size; c++ {
			if emptyCol(sol, c) {
				sol[rng.Intn(size)][c] = true
				repaired = true
			}
		}
		if !repaired {
			break
		}
	}
	return sol
}

func emptyRow(sol [][]bool, r int) bool {
	for _, f := range sol[r] {
		if f {
			return false
		}
	}
	return true
}

func emptyCol(sol [][]bool, c int) bool {
	for r := range sol {
		if sol[r][c] {
			return false
		}
	}
	return true
}

func deriveClues(sol [][]bool) (rows, cols []domain.ClueSequence) {
	size := len(sol)
	rows = make([]domain.ClueSequence, size)
	cols = make([]domain.ClueSequence, size)
	for r := 0; r < size; r++ {
		rows[r] = clue.ComputeBools(sol[r])
	}
	for c := 0; c < size; c++ {
		col := make([]bool, size)
		for r := 0; r < size; r++ {
			col[r] = sol[r][c]
		}
		cols[c] = clue.ComputeBools(col)
	}
	return rows, cols
}

func hasFreeLine(rows, cols []domain.ClueSequence, size int) bool {
	for _, c := range rows {
		if clue.Unique(c, size) {
			return true
		}
	}
	for _, c := range cols {
		if clue.Unique(c, size) {
			return true
		}
	}
	return false
}
