package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/nonogram/internal/flow"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <clues.yaml>",
		Short: "Simulate a logical solve and print the flow report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, _, _, err := newService()
			if err != nil {
				return err
			}
			f, err := readClueFile(args[0])
			if err != nil {
				return err
			}
			a, err := uc.Analyze(cmd.Context(), f.RowClues, f.ColClues, f.Size)
			if err != nil {
				return err
			}
			fmt.Print(flow.Report(a))
			return nil
		},
	}
	return cmd
}
