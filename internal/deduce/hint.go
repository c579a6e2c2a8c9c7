package deduce

import (
	"context"

	"svw.info/nonogram/internal/domain"
)

// Analyzer aggregates per-line deduction across the whole grid and
// answers the hint and auto-fill queries. It is stateless; the grid
// passed to Hint is read-only, the grid passed to AutoFill is the
// caller's mutable working copy.
type Analyzer struct{}

func NewAnalyzer() *Analyzer { return &Analyzer{} }

// scan runs AnalyzeLine over every row then every column, collecting
// fill and mark deductions in discovery order and deduplicating by
// cell. The first line to force a cell wins, which fixes the
// tie-breaking order for hints.
func scan(ctx context.Context, g domain.Grid, rowClues, colClues []domain.ClueSequence) (fills, marks []domain.Deduction, err error) {
	size := g.Size()
	seen := make(map[domain.CellCoord]bool)
	record := func(d domain.Deduction) {
		key := domain.CellCoord{Row: d.Row, Col: d.Col}
		if seen[key] {
			return
		}
		seen[key] = true
		if d.Value == domain.CellFilled {
			fills = append(fills, d)
		} else {
			marks = append(marks, d)
		}
	}

	for r := 0; r < size; r++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		res := AnalyzeLine(g[r], rowClues[r])
		for _, i := range res.ForcedFill {
			record(domain.Deduction{Row: r, Col: i, Value: domain.CellFilled, LineKind: domain.LineRow, LineIndex: r})
		}
		for _, i := range res.ForcedEmpty {
			record(domain.Deduction{Row: r, Col: i, Value: domain.CellEmpty, LineKind: domain.LineRow, LineIndex: r})
		}
	}
	for c := 0; c < size; c++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		res := AnalyzeLine(g.Column(c), colClues[c])
		for _, i := range res.ForcedFill {
			record(domain.Deduction{Row: i, Col: c, Value: domain.CellFilled, LineKind: domain.LineCol, LineIndex: c})
		}
		for _, i := range res.ForcedEmpty {
			record(domain.Deduction{Row: i, Col: c, Value: domain.CellEmpty, LineKind: domain.LineCol, LineIndex: c})
		}
	}
	return fills, marks, nil
}

// Hint picks one deterministic hint: the first fill deduction in
// rows-then-columns discovery order if any exist (fills carry more
// information than marks), else the first mark deduction. The second
// return is false when no deduction is currently available; that is
// not an error.
func (a *Analyzer) Hint(ctx context.Context, g domain.Grid, rowClues, colClues []domain.ClueSequence) (domain.Hint, bool, error) {
	fills, marks, err := scan(ctx, g, rowClues, colClues)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if len(fills) > 0 {
		d := fills[0]
		return domain.Hint{Row: d.Row, Col: d.Col, Kind: domain.HintFill, Line: domain.LineRef{Kind: d.LineKind, Index: d.LineIndex}}, true, nil
	}
	if len(marks) > 0 {
		d := marks[0]
		return domain.Hint{Row: d.Row, Col: d.Col, Kind: domain.HintMark, Line: domain.LineRef{Kind: d.LineKind, Index: d.LineIndex}}, true, nil
	}
	return domain.Hint{}, false, nil
}

// AutoFill marks every currently-forced-empty cell in g and returns how
// many cells it marked. Only one pass is made; newly marked cells may
// enable further deductions on a subsequent call.
func (a *Analyzer) AutoFill(ctx context.Context, g domain.Grid, rowClues, colClues []domain.ClueSequence) (int, error) {
	_, marks, err := scan(ctx, g, rowClues, colClues)
	if err != nil {
		return 0, err
	}
	for _, d := range marks {
		g[d.Row][d.Col] = domain.CellEmpty
	}
	return len(marks), nil
}
