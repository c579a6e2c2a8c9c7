package usecase

import (
	"context"
	"errors"

	"svw.info/nonogram/internal/config"
	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/ports"
)

// Service is the facade the delivery layers (CLI, HTTP) talk to. It
// owns solver selection for direct solve requests, mirroring the
// generator's size threshold.
type Service struct {
	SAT         ports.Solver
	Propagation ports.Solver
	Generator   ports.Generator
	Hinter      ports.Hinter
	Flow        ports.FlowAnalyzer
	Validator   ports.Validator
	Config      config.Config
}

func NewService(sat, prop ports.Solver, g ports.Generator, h ports.Hinter, f ports.FlowAnalyzer, v ports.Validator, cfg config.Config) *Service {
	return &Service{SAT: sat, Propagation: prop, Generator: g, Hinter: h, Flow: f, Validator: v, Config: cfg}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) solverFor(size int) ports.Solver {
	if size <= u.Config.SATMaxSize && u.SAT != nil {
		return u.SAT
	}
	return u.Propagation
}

func (u *Service) Solve(ctx context.Context, rowClues, colClues []domain.ClueSequence, size int) ([][]bool, bool, ports.Stats, error) {
	s := u.solverFor(size)
	if s == nil {
		return nil, false, ports.Stats{}, errNotConfigured
	}
	return s.Solve(ctx, rowClues, colClues, size)
}

func (u *Service) CountSolutions(ctx context.Context, rowClues, colClues []domain.ClueSequence, size int) (int, ports.Stats, error) {
	s := u.solverFor(size)
	if s == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return s.CountSolutions(ctx, rowClues, colClues, size)
}

func (u *Service) Generate(ctx context.Context, seed int64, size int, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, size, d)
}

func (u *Service) GenerateOptimalFlow(ctx context.Context, seed int64, size int, d domain.Difficulty, candidates int) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.GenerateOptimalFlow(ctx, seed, size, d, candidates)
}

func (u *Service) Hint(ctx context.Context, g domain.Grid, rowClues, colClues []domain.ClueSequence) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g, rowClues, colClues)
}

func (u *Service) AutoFill(ctx context.Context, g domain.Grid, rowClues, colClues []domain.ClueSequence) (int, error) {
	if u.Hinter == nil {
		return 0, errNotConfigured
	}
	return u.Hinter.AutoFill(ctx, g, rowClues, colClues)
}

func (u *Service) Analyze(ctx context.Context, rowClues, colClues []domain.ClueSequence, size int) (*domain.FlowAnalysis, error) {
	if u.Flow == nil {
		return nil, errNotConfigured
	}
	return u.Flow.Analyze(ctx, rowClues, colClues, size)
}

func (u *Service) Validate(ctx context.Context, g domain.Grid, rowClues, colClues []domain.ClueSequence) (bool, []domain.LineRef, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g, rowClues, colClues)
}
