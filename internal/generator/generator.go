// Package generator ties the solvers, the clue codec and the flow
// simulator together in a generate-and-test loop that emits puzzles
// with a verified unique solution and a non-trivial solve path.
package generator

import (
	"log/slog"

	"svw.info/nonogram/internal/config"
	"svw.info/nonogram/internal/ports"
)

// UniqueGenerator samples random solutions and keeps the first one that
// survives the rejection rules, the uniqueness check and the flow gate.
// The SAT backend verifies uniqueness up to Config.SATMaxSize;
// propagation takes over above that.
type UniqueGenerator struct {
	SAT         ports.Solver
	Propagation ports.Solver
	Flow        ports.FlowAnalyzer
	Config      config.Config
	Logger      *slog.Logger
}

// NewUniqueGenerator wires a generator with both solver backends.
func NewUniqueGenerator(sat, prop ports.Solver, flow ports.FlowAnalyzer, cfg config.Config, logger *slog.Logger) *UniqueGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &UniqueGenerator{SAT: sat, Propagation: prop, Flow: flow, Config: cfg, Logger: logger}
}

// solverFor picks the uniqueness backend by grid size.
func (g *UniqueGenerator) solverFor(size int) ports.Solver {
	if size <= g.Config.SATMaxSize {
		return g.SAT
	}
	return g.Propagation
}
