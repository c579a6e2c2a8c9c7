// Command nonogram is the engine's CLI: serve the JSON API, generate
// puzzles, solve clue sets and print flow analyses.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/nonogram/internal/config"
	"svw.info/nonogram/internal/deduce"
	"svw.info/nonogram/internal/flow"
	"svw.info/nonogram/internal/generator"
	"svw.info/nonogram/internal/solver"
	"svw.info/nonogram/internal/usecase"
	"svw.info/nonogram/internal/validator"
)

var (
	flagConfig   string
	flagLogLevel string
)

func main() {
	root := &cobra.Command{
		Use:           "nonogram",
		Short:         "Nonogram puzzle generation and solving engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "engine config file (YAML), defaults apply when empty")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "debug|info|warn|error")
	root.AddCommand(newServeCmd(), newGenerateCmd(), newSolveCmd(), newAnalyzeCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(flagLogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// newService wires solvers → generator → use cases.
func newService() (*usecase.Service, config.Config, *slog.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, cfg, nil, err
	}
	logger := newLogger()

	sat := solver.NewSATSolver(logger)
	prop := solver.NewPropagationSolver()
	sim := flow.NewSimulator()
	gen := generator.NewUniqueGenerator(sat, prop, sim, cfg, logger)
	uc := usecase.NewService(sat, prop, gen, deduce.NewAnalyzer(), sim, validator.New(), cfg)
	return uc, cfg, logger, nil
}
