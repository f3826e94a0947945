package cmd

import (
	"errors"
	"fmt"

	"github.com/jsphweid/chordgrid/export"
	"github.com/jsphweid/chordgrid/grid"
	"github.com/jsphweid/chordgrid/layout"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	exportCmd.Flags().StringP("out", "o", "", "where to write the page (defaults to export_path from config)")
	exportCmd.Flags().Int("steps", 0, "semitones to transpose by before exporting")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes a printable HTML page",
	Long:  `Writes the song seeded from config as a printable HTML page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = cfg.ExportPath
		}
		if out == "" {
			return errors.New("no output path: pass --out or set export_path")
		}
		steps, _ := cmd.Flags().GetInt("steps")

		song := grid.TransposeSong(NewGrid(cfg, logger).Song(), steps)
		if err := export.WriteHTMLFile(out, layout.ProjectSong(song)); err != nil {
			return err
		}
		logger.Info("exported", zap.String("path", out))
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}
