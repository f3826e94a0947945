package cmd

import (
	"github.com/jsphweid/chordgrid/config"
	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/grid"
	"github.com/jsphweid/chordgrid/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	cfg        *config.Config
	logger     = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "chordgrid",
	Short: "Chord grid editor",
	Long: `chordgrid edits song chord charts made of named parts laid out as
grids of measures, and renders them for print or the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		l, err := logging.New(c.LogLevel)
		if err != nil {
			return err
		}
		cfg, logger = c, l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", constants.GetConfigPath(), "path to a YAML config file")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// NewGrid builds an editing session seeded from c.
func NewGrid(c *config.Config, l *zap.Logger) *grid.Model {
	g := grid.New(
		grid.WithNameLimit(c.NameLimit),
		grid.WithMaxMeasuresTotal(c.MaxMeasures),
		grid.WithLogger(l),
	)
	c.Song.Apply(g)
	return g
}
