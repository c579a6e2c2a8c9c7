package ports

import (
	"context"
	"time"

	"svw.info/nonogram/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver counts and extracts solutions for a clue set.
//
// CountSolutions returns exactly 0, 1 or 2, where 2 means "two or more".
// Solve returns ok == false when no solution exists; the only error a
// solver reports is context cancellation.
type Solver interface {
	CountSolutions(ctx context.Context, rowClues, colClues []domain.ClueSequence, size int) (int, Stats, error)
	Solve(ctx context.Context, rowClues, colClues []domain.ClueSequence, size int) ([][]bool, bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty. Exhausting the
// attempt budget is not an error: the last candidate is returned with
// its Diagnostic field set.
type Generator interface {
	Generate(ctx context.Context, seed int64, size int, d domain.Difficulty) (*domain.Puzzle, Stats, error)
	GenerateOptimalFlow(ctx context.Context, seed int64, size int, d domain.Difficulty, candidates int) (*domain.Puzzle, Stats, error)
}

// Hinter answers hint and auto-fill queries against a live player grid.
// Hint treats the grid as read-only; AutoFill mutates it in place and
// returns the number of cells it marked.
type Hinter interface {
	Hint(ctx context.Context, g domain.Grid, rowClues, colClues []domain.ClueSequence) (domain.Hint, bool, error)
	AutoFill(ctx context.Context, g domain.Grid, rowClues, colClues []domain.ClueSequence) (int, error)
}

// FlowAnalyzer simulates a full logical solve and scores it.
type FlowAnalyzer interface {
	Analyze(ctx context.Context, rowClues, colClues []domain.ClueSequence, size int) (*domain.FlowAnalysis, error)
}

// Validator checks a player grid against the puzzle clues, reporting
// the lines whose recomputed clues disagree.
type Validator interface {
	Validate(ctx context.Context, g domain.Grid, rowClues, colClues []domain.ClueSequence) (bool, []domain.LineRef, error)
}
