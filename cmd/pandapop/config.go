package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/panda-pop/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after applying
the config file, PANDAPOP_* environment variables and --difficulty.
The difficulty is printed as the preset field; board and timing values
are shown before the preset adjusts them, so the output can be saved
and loaded again unchanged.

With --defaults, print the built-in pandas.yaml instead. Copy it to
~/.pandapop/configs/pandas.yaml or ./configs/pandas.yaml to customise.

Examples:
  pandapop config
  pandapop config --difficulty hard
  pandapop config --defaults > ~/.pandapop/configs/pandas.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	logger, closeLog, err := newLogger("pandapop", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	// Fails the same way a game would on a bad file.
	if _, err := loadGameConfig(logger); err != nil {
		return err
	}
	cfg, err := config.Resolve(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
