package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bullet-frenzy/internal/config"
	"github.com/vovakirdan/bullet-frenzy/internal/core"
	"github.com/vovakirdan/bullet-frenzy/internal/games/frenzy"
	"github.com/vovakirdan/bullet-frenzy/internal/platform/tui"
	"github.com/vovakirdan/bullet-frenzy/internal/registry"
	"github.com/vovakirdan/bullet-frenzy/internal/storage"
)

var (
	flagRecord bool
	flagMenu   bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to "frenzy"; "frenzy_demo" plays itself.

Controls:
  W/S          - Move along/against heading
  A/D          - Rotate
  Space/Click  - Fire
  Arrows       - Move the camera
  M/Right click - Toggle first/third person
  C            - Cheat mode (autofire and spin)
  V            - Auto-follow
  R            - Restart
  P/Esc        - Pause
  Q/Ctrl+C     - Quit

Examples:
  frenzy play
  frenzy play frenzy_demo
  frenzy play --menu
  frenzy play --record --seed 42
  frenzy play --config ./my-frenzy.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the session's input to the recordings database")
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Start with the variant picker")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := frenzy.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'frenzy list' to see available games.")
		os.Exit(1)
	}

	if err := play(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs gameID, or the variant picker with --menu, in the terminal UI.
func play(gameID string) error {
	// Surface a broken --config instead of silently playing with defaults
	tuning, err := config.LoadFrenzy(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var store *storage.Store
	if flagRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open recordings database: %v\n", err)
			// Continue without recording - game still works
			store = nil
		} else {
			defer store.Close()
		}
	}

	opts := tui.Options{
		Store:  store,
		Record: store != nil,
		Logger: logger,
	}

	if flagMenu {
		if err := tui.RunMenu(cfg, opts); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	if fg, ok := game.(*frenzy.Game); ok {
		fg.UseConfig(tuning)
	}

	savedID, err := tui.Run(game, cfg, opts)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if savedID != "" {
		fmt.Printf("Recording saved: %s\n", savedID)
		fmt.Printf("Watch it with 'frenzy replay --watch %s'\n", savedID[:8])
	}
	return nil
}
