package generator

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/ports"
)

// seedStride derives independent per-candidate seeds from the base seed.
const seedStride int64 = -0x61c8864680b583eb // 0x9e3779b97f4a7c15 as int64

// GenerateOptimalFlow runs several independent candidate searches and
// keeps the fully-validated result with the highest flow score. Each
// search uses its own solver state, so they run concurrently. When no
// search produces a validated puzzle it falls back to a plain Generate
// call, which at worst returns a diagnostic-carrying candidate.
func (g *UniqueGenerator) GenerateOptimalFlow(ctx context.Context, seed int64, size int, diff domain.Difficulty, candidates int) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if candidates <= 0 {
		candidates = g.Config.FlowCandidates
	}
	if candidates <= 1 {
		return g.Generate(ctx, seed, size, diff)
	}

	var (
		mu    sync.Mutex
		best  *domain.Puzzle
		nodes int
	)
	grp, gctx := errgroup.WithContext(ctx)
	for i := 0; i < candidates; i++ {
		candSeed := seed + int64(i)*seedStride
		grp.Go(func() error {
			p, st, err := g.Generate(gctx, candSeed, size, diff)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			nodes += st.Nodes
			if p.Diagnostic == "" && (best == nil || p.FlowScore > best.FlowScore) {
				best = p
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	if best != nil {
		g.Logger.Debug("optimal-flow candidate selected",
			"size", size, "candidates", candidates, "flowScore", best.FlowScore)
		return best, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
	}

	g.Logger.Warn("optimal-flow search found no validated candidate; falling back",
		"size", size, "candidates", candidates)
	p, st, err := g.Generate(ctx, seed, size, diff)
	return p, ports.Stats{Nodes: nodes + st.Nodes, Duration: time.Since(start)}, err
}
