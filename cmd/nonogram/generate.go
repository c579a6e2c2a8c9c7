package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/nonogram/internal/domain"
)

func newGenerateCmd() *cobra.Command {
	var (
		size       int
		difficulty string
		seed       int64
		optimal    bool
		candidates int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, _, logger, err := newService()
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			diff := domain.ParseDifficulty(difficulty)

			var p *domain.Puzzle
			if optimal {
				p, _, err = uc.GenerateOptimalFlow(cmd.Context(), seed, size, diff, candidates)
			} else {
				p, _, err = uc.Generate(cmd.Context(), seed, size, diff)
			}
			if err != nil {
				return err
			}
			logger.Info("generated", "id", p.ID, "seed", p.Seed,
				"flowScore", p.FlowScore, "unique", p.Unique)
			if p.Diagnostic != "" {
				logger.Warn("diagnostic", "msg", p.Diagnostic)
			}
			fmt.Print(renderPuzzle(p))
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 10, "grid size")
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "easy|medium|hard")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().BoolVar(&optimal, "optimal-flow", false, "keep the best of several candidate searches")
	cmd.Flags().IntVar(&candidates, "candidates", 0, "candidate searches for --optimal-flow (0 = config default)")
	return cmd
}

func renderPuzzle(p *domain.Puzzle) string {
	var b strings.Builder
	for r, row := range p.Solution {
		for _, filled := range row {
			if filled {
				b.WriteString("# ")
			} else {
				b.WriteString(". ")
			}
		}
		fmt.Fprintf(&b, "  %v\n", []int(p.RowClues[r]))
	}
	b.WriteString("cols:")
	for _, c := range p.ColClues {
		fmt.Fprintf(&b, " %v", []int(c))
	}
	b.WriteString("\n")
	return b.String()
}

func renderSolution(sol [][]bool) string {
	var b strings.Builder
	for _, row := range sol {
		for _, filled := range row {
			if filled {
				b.WriteString("# ")
			} else {
				b.WriteString(". ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
