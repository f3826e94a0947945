package cmd

import (
	"fmt"

	"github.com/jsphweid/chordgrid/export"
	"github.com/jsphweid/chordgrid/grid"
	"github.com/jsphweid/chordgrid/layout"
	"github.com/spf13/cobra"
)

func init() {
	renderCmd.Flags().Int("steps", 0, "semitones to transpose by before rendering")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Prints the seeded song as a grid",
	Long:  `Prints the song seeded from config as a grid of measures in the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := cmd.Flags().GetInt("steps")
		if err != nil {
			return err
		}
		song := grid.TransposeSong(NewGrid(cfg, logger).Song(), steps)
		fmt.Fprintln(cmd.OutOrStdout(), export.Terminal(layout.ProjectSong(song)))
		return nil
	},
}
