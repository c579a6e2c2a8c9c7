// Package flow simulates a full logical solve wave by wave and scores
// how spatially and temporally spread out the solve path is. The score
// feeds the generator's quality gate; the multi-line report is an
// observability aid only.
package flow

import (
	"context"
	"math"

	"svw.info/nonogram/internal/deduce"
	"svw.info/nonogram/internal/domain"
)

// Simulator replays the same per-line deduction technique the hint
// layer uses, starting from an all-unknown grid and applying each full
// pass's deductions atomically as one wave.
type Simulator struct{}

func NewSimulator() *Simulator { return &Simulator{} }

// Quadrant maps a cell to one of four grid regions, quartered at both
// midlines with integer division: rows below size/2 are "top", columns
// below size/2 are "left". Indexes run 0 top-left, 1 top-right,
// 2 bottom-left, 3 bottom-right; for even sizes the cell at
// (size/2, size/2) lands in quadrant 3.
func Quadrant(row, col, size int) int {
	q := 0
	if row >= size/2 {
		q += 2
	}
	if col >= size/2 {
		q++
	}
	return q
}

// Analyze runs waves of deduction until a wave comes up empty or the
// iteration cap of size² is hit, then computes the metrics. A puzzle
// the waves cannot finish scores zero across the board.
func (s *Simulator) Analyze(ctx context.Context, rowClues, colClues []domain.ClueSequence, size int) (*domain.FlowAnalysis, error) {
	g := domain.NewGrid(size)
	a := &domain.FlowAnalysis{Size: size}

	for iter := 0; iter < size*size; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		wave := collectWave(g, rowClues, colClues)
		if len(wave) == 0 {
			break
		}
		for _, d := range wave {
			g[d.Row][d.Col] = d.Value
		}
		a.Waves = append(a.Waves, wave)
	}

	a.Solved = g.Complete()
	if !a.Solved {
		return a, nil
	}
	s.score(a)
	return a, nil
}

// collectWave gathers every deduction currently derivable across all
// rows then all columns, deduplicated by cell in discovery order.
func collectWave(g domain.Grid, rowClues, colClues []domain.ClueSequence) domain.Wave {
	size := g.Size()
	var wave domain.Wave
	seen := make(map[domain.CellCoord]bool)
	record := func(d domain.Deduction) {
		key := domain.CellCoord{Row: d.Row, Col: d.Col}
		if seen[key] {
			return
		}
		seen[key] = true
		wave = append(wave, d)
	}

	for r := 0; r < size; r++ {
		res := deduce.AnalyzeLine(g[r], rowClues[r])
		for _, i := range res.ForcedFill {
			record(domain.Deduction{Row: r, Col: i, Value: domain.CellFilled, LineKind: domain.LineRow, LineIndex: r})
		}
		for _, i := range res.ForcedEmpty {
			record(domain.Deduction{Row: r, Col: i, Value: domain.CellEmpty, LineKind: domain.LineRow, LineIndex: r})
		}
	}
	for c := 0; c < size; c++ {
		res := deduce.AnalyzeLine(g.Column(c), colClues[c])
		for _, i := range res.ForcedFill {
			record(domain.Deduction{Row: i, Col: c, Value: domain.CellFilled, LineKind: domain.LineCol, LineIndex: c})
		}
		for _, i := range res.ForcedEmpty {
			record(domain.Deduction{Row: i, Col: c, Value: domain.CellEmpty, LineKind: domain.LineCol, LineIndex: c})
		}
	}
	return wave
}

// score fills in the metrics of a solved analysis.
//
// flowScore = 0.15·entry + 0.25·spread + 0.30·switches + 0.15·variance + 0.15·length
// with each term normalized to [0,1] as below.
func (s *Simulator) score(a *domain.FlowAnalysis) {
	size := float64(a.Size)
	total := len(a.Waves)

	a.EntryPoints = len(a.Waves[0])

	// Mean distinct quadrants touched per wave, and dominant-quadrant
	// switches between consecutive waves (ties resolve to the lowest
	// quadrant index).
	spreadSum := 0
	prevDominant := -1
	for w, wave := range a.Waves {
		var counts [4]int
		for _, d := range wave {
			counts[Quadrant(d.Row, d.Col, a.Size)]++
		}
		distinct, dominant := 0, 0
		for q, n := range counts {
			if n > 0 {
				distinct++
			}
			if n > counts[dominant] {
				dominant = q
			}
		}
		spreadSum += distinct
		if w > 0 && dominant != prevDominant {
			a.QuadrantSwitches++
		}
		prevDominant = dominant
	}
	a.QuadrantSpread = float64(spreadSum) / float64(total)

	// Mean of per-wave positional variance (row variance plus column
	// variance) over waves with at least two deductions; the averaging
	// denominator still counts every wave.
	varSum := 0.0
	for _, wave := range a.Waves {
		if len(wave) < 2 {
			continue
		}
		n := float64(len(wave))
		var mr, mc float64
		for _, d := range wave {
			mr += float64(d.Row)
			mc += float64(d.Col)
		}
		mr /= n
		mc /= n
		var vr, vc float64
		for _, d := range wave {
			vr += (float64(d.Row) - mr) * (float64(d.Row) - mr)
			vc += (float64(d.Col) - mc) * (float64(d.Col) - mc)
		}
		varSum += vr/n + vc/n
	}
	a.SpatialVariance = varSum / float64(total)

	entryTarget := 0.4 * size
	entryScore := math.Max(0, 1-math.Abs(float64(a.EntryPoints)-entryTarget)/entryTarget)
	switchScore := float64(a.QuadrantSwitches) / math.Max(float64(total-1), 1)
	varianceScore := math.Min(a.SpatialVariance/(size*size/2), 1)
	lengthScore := math.Min(float64(total)/(0.8*size), 1.5) / 1.5

	a.FlowScore = 0.15*entryScore +
		0.25*(a.QuadrantSpread/4) +
		0.30*switchScore +
		0.15*varianceScore +
		0.15*lengthScore
}
