package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"svw.info/nonogram/internal/domain"
)

// clueFile is the YAML shape for solve/analyze inputs:
//
//	size: 5
//	rowClues: [[2], [1, 1], ...]
//	colClues: [[3], [1], ...]
type clueFile struct {
	Size     int                   `yaml:"size"`
	RowClues []domain.ClueSequence `yaml:"rowClues"`
	ColClues []domain.ClueSequence `yaml:"colClues"`
}

func readClueFile(path string) (*clueFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f clueFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if f.Size <= 0 || len(f.RowClues) != f.Size || len(f.ColClues) != f.Size {
		return nil, fmt.Errorf("%s: need size and exactly size row/col clue sequences", path)
	}
	return &f, nil
}

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <clues.yaml>",
		Short: "Solve a clue set and print the grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, _, logger, err := newService()
			if err != nil {
				return err
			}
			f, err := readClueFile(args[0])
			if err != nil {
				return err
			}
			sol, ok, st, err := uc.Solve(cmd.Context(), f.RowClues, f.ColClues, f.Size)
			if err != nil {
				return err
			}
			if !ok {
				logger.Info("no solution", "dur", st.Duration)
				fmt.Println("no solution")
				return nil
			}
			n, _, err := uc.CountSolutions(cmd.Context(), f.RowClues, f.ColClues, f.Size)
			if err != nil {
				return err
			}
			logger.Info("solved", "dur", st.Duration, "nodes", st.Nodes, "unique", n == 1)
			fmt.Print(renderSolution(sol))
			return nil
		},
	}
	return cmd
}
