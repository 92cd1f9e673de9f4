// pandapop is a terminal match-3 game: swap pandas into lines of three
// before the clock runs out.
//
// Usage:
//
//	pandapop                   - Start the mode picker menu
//	pandapop list              - List available modes
//	pandapop play [mode]       - Play a mode directly (default: pandas)
//	pandapop serve             - Start SSH server for remote play
//	pandapop scores [mode]     - Show high scores and recent runs
//	pandapop config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set database path (default: ~/.pandapop/scores.db)
//	--config <path>     - Use a custom pandas.yaml
//	--difficulty <name> - Difficulty preset: easy, normal, hard
//	--log <path>        - Write logs to a file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/panda-pop/internal/config"
	"github.com/vovakirdan/panda-pop/internal/games/pandas"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pandapop",
	Short: "Panda Pop - a match-3 puzzle in your terminal",
	Long: `Panda Pop is a timed match-3 game. Swap two neighbouring pandas to
line up three or more of the same colour; matched pandas pop, the rest fall
and new ones drop in from the top. Score as much as you can before the
clock runs out.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  config   - Print the effective configuration

Examples:
  pandapop
  pandapop play pandas_blitz
  pandapop play --difficulty hard --seed 42
  pandapop serve --ssh :2222
  pandapop scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.pandapop/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom pandas.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogFile, "log", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. It writes to --log when given and to
// fallback otherwise. The returned func closes the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() } //nolint:errcheck // best-effort
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig resolves pandas.yaml, the environment and --difficulty, and
// hands the result to the game package.
func loadGameConfig(logger *log.Logger) (config.PandasConfig, error) {
	cfg, err := config.Load(flagConfig, flagDifficulty)
	if err != nil {
		return cfg, err
	}
	for _, w := range cfg.Warnings() {
		logger.Warn("config", "warning", w)
	}
	pandas.SetConfig(cfg.Engine())
	logger.Debug("config loaded",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"kinds", cfg.Board.Kinds,
		"time_limit", cfg.Timing.TimeLimit,
		"difficulty", cfg.Difficulty.Preset,
	)
	return cfg, nil
}
