package flow

import (
	"fmt"
	"strings"

	"svw.info/nonogram/internal/domain"
)

// Report renders a flow analysis as human-readable text, one wave per
// line plus the aggregate metrics.
func Report(a *domain.FlowAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "flow analysis (%dx%d)\n", a.Size, a.Size)
	if !a.Solved {
		fmt.Fprintf(&b, "  not solvable by line deduction alone after %d wave(s); flow score 0\n", len(a.Waves))
		return b.String()
	}
	for w, wave := range a.Waves {
		var counts [4]int
		fills := 0
		for _, d := range wave {
			counts[Quadrant(d.Row, d.Col, a.Size)]++
			if d.Value == domain.CellFilled {
				fills++
			}
		}
		fmt.Fprintf(&b, "  wave %2d: %3d deductions (%d fill, %d mark), quadrants %v\n",
			w, len(wave), fills, len(wave)-fills, counts)
	}
	fmt.Fprintf(&b, "  entry points:      %d\n", a.EntryPoints)
	fmt.Fprintf(&b, "  quadrant spread:   %.2f\n", a.QuadrantSpread)
	fmt.Fprintf(&b, "  quadrant switches: %d\n", a.QuadrantSwitches)
	fmt.Fprintf(&b, "  spatial variance:  %.2f\n", a.SpatialVariance)
	fmt.Fprintf(&b, "  flow score:        %.3f\n", a.FlowScore)
	return b.String()
}
