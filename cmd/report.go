package cmd

import (
	"fmt"

	"github.com/jsphweid/chordgrid/layout"
	"github.com/jsphweid/chordgrid/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Creates a report on the song seeded from config: how full the grid is and which roots it uses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report(cmd, layout.Summarize(NewGrid(cfg, logger).Song()))
		return nil
	},
}

func report(cmd *cobra.Command, sum layout.Summary) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "parts: %v\n", sum.Parts)
	fmt.Fprintf(w, "measures: %v (%v filled, %v split, %v oval)\n", sum.Measures, sum.Filled, sum.Split, sum.Oval)
	fmt.Fprintf(w, "chords: %v\n", sum.Chords)

	var counts []int
	for _, root := range sum.RootsInOrder() {
		counts = append(counts, sum.Roots[root])
		fmt.Fprintf(w, "  %-2v %v\n", root, sum.Roots[root])
	}
	fmt.Fprintf(w, "recognized: %v\n", util.Sum(counts))
	if len(sum.Unrecognized) > 0 {
		fmt.Fprintf(w, "unrecognized: %v\n", sum.Unrecognized)
	}
}
