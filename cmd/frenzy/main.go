// frenzy is a terminal arcade shooter: a turret in the middle of an arena
// holds off hostiles that keep walking toward it.
//
// Usage:
//
//	frenzy play [game]        - Play (default: frenzy)
//	frenzy list               - List available variants
//	frenzy sim                - Run a session headless
//	frenzy replay <id>        - Re-run a stored recording
//	frenzy recordings         - Browse stored recordings
//	frenzy serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.frenzy/recordings.db)
//	--config <path>  - Use a custom tuning file
//	--log <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bullet-frenzy/internal/games/frenzy"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frenzy",
	Short: "Bullet Frenzy - hold the arena in your terminal",
	Long: `Bullet Frenzy is a terminal arcade shooter. You are a turret in the
middle of a square arena; hostiles spawn on a ring around you and walk
straight at you. Shoot them before they touch you.

Available commands:
  play        - Play a game
  list        - Show all available variants
  sim         - Run a session without a terminal UI
  replay      - Re-run a stored recording
  recordings  - Browse stored recordings
  serve       - Start SSH server for remote play

Examples:
  frenzy play
  frenzy play frenzy_demo
  frenzy play --record --seed 42
  frenzy sim --ticks 3600 --cheat
  frenzy serve --ssh :2222`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		frenzy.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.frenzy/recordings.db", "Path to recordings database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Log file (default: stderr for headless commands, off for the UI)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(recordingsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the command logger. Without --log, headless commands log
// to stderr and interactive ones discard output so the UI stays intact.
// The returned func closes the log file, if any.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogPath != "":
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "frenzy",
	})
	return logger, closeFn, nil
}
