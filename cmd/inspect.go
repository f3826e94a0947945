package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordgrid/chord"
	"github.com/spf13/cobra"
)

func init() {
	inspectCmd.Flags().Bool("split", false, "treat the input as a split measure")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [chord...]",
	Short: "Shows how chord text is read",
	Long:  `Shows how chord text is read: the root, the suffix and the normalized spelling.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		split, _ := cmd.Flags().GetBool("split")
		w := cmd.OutOrStdout()

		if split {
			m := chord.ParseMeasure(strings.Join(args, " "), true, false)
			fmt.Fprintf(w, "measure: %v\n", chord.MeasureText(m))
			for _, c := range m.Chords() {
				printChord(cmd, c.String())
			}
			return nil
		}
		for _, arg := range args {
			printChord(cmd, arg)
		}
		return nil
	},
}

func printChord(cmd *cobra.Command, text string) {
	c := chord.Parse(text)
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "input: %q\n", text)
	if !c.Recognized() {
		fmt.Fprintf(w, "  unrecognized, kept as %q\n", c.Suffix)
		return
	}
	fmt.Fprintf(w, "  root: %v\n", c.Root)
	fmt.Fprintf(w, "  suffix: %q\n", c.Suffix)
	fmt.Fprintf(w, "  normalized: %v\n", c.String())
}
