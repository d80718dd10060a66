package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bullet-frenzy/internal/config"
	"github.com/vovakirdan/bullet-frenzy/internal/core"
	"github.com/vovakirdan/bullet-frenzy/internal/games/frenzy"
	"github.com/vovakirdan/bullet-frenzy/internal/registry"
	"github.com/vovakirdan/bullet-frenzy/internal/replay"
	"github.com/vovakirdan/bullet-frenzy/internal/storage"
)

var (
	flagSimTicks  uint64
	flagSimCheat  bool
	flagSimRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim [game]",
	Short: "Run a session without a terminal UI",
	Long: `Run the simulation headless for a fixed number of ticks, or until
game over, and print the final state.

With --cheat the turret fires and rotates on its own; without it nobody
shoots and the hostiles eventually win.

Examples:
  frenzy sim --ticks 3600 --cheat
  frenzy sim --seed 7 --record`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 3600, "Maximum number of ticks to run")
	simCmd.Flags().BoolVar(&flagSimCheat, "cheat", false, "Turn cheat mode on before the first tick")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the run to the recordings database")
}

func runSim(cmd *cobra.Command, args []string) {
	gameID := frenzy.GameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if err := simulate(os.Stdout, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// simulate runs gameID headless and writes the summary to w.
func simulate(w io.Writer, gameID string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	tuning, err := config.LoadFrenzy(flagConfig)
	if err != nil {
		return err
	}

	g, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	game, ok := g.(*frenzy.Game)
	if !ok {
		return fmt.Errorf("game %q cannot run headless", gameID)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.DefaultConfig()
	cfg.Seed = seed
	game.UseConfig(tuning)
	game.Reset(cfg)

	var events core.InputLog
	if flagSimCheat && !game.Snapshot().CheatMode {
		game.Apply(core.ActionToggleCheat)
		events.Append(game.Tick(), core.ActionToggleCheat)
	}

	logger.Info("simulation started", "game", gameID, "seed", seed, "ticks", flagSimTicks)
	start := time.Now()

	var hits, misses, contacts int
	for game.Tick() < flagSimTicks {
		report := game.StepReport()
		hits += report.Hits
		misses += report.Misses
		contacts += report.Contacts
		if report.Ended {
			logger.Info("game over", "tick", game.Tick())
			break
		}
	}

	logger.Info("simulation finished", "elapsed", time.Since(start))

	printSnapshot(w, game.Snapshot(), seed)
	fmt.Fprintf(w, "  Hits:      %d\n", hits)
	fmt.Fprintf(w, "  Misses:    %d\n", misses)
	fmt.Fprintf(w, "  Contacts:  %d\n", contacts)

	if !flagSimRecord {
		return nil
	}

	rec, err := replay.Build(game, seed, events.Events())
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening recordings database: %w", err)
	}
	defer store.Close()

	id, err := store.SaveRecording(rec)
	if err != nil {
		return fmt.Errorf("saving recording: %w", err)
	}
	logger.Info("recording saved", "id", id[:8], "events", events.Len())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Recording saved: %s\n", id)
	return nil
}

// printSnapshot writes the end-of-run summary.
func printSnapshot(w io.Writer, snap frenzy.Snapshot, seed int64) {
	status := "running"
	if snap.GameOver {
		status = "game over"
	}

	fmt.Fprintf(w, "Bullet Frenzy - %s after %d ticks\n", status, snap.Tick)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Seed:      %d\n", seed)
	fmt.Fprintf(w, "  Score:     %d\n", snap.Player.Score)
	fmt.Fprintf(w, "  Missed:    %d\n", snap.Player.Missed)
	fmt.Fprintf(w, "  Life:      %d\n", snap.Player.Life)
	fmt.Fprintf(w, "  Heading:   %.0f\n", snap.Player.Heading)
	fmt.Fprintf(w, "  Position:  (%.1f, %.1f)\n", snap.Player.Pos.X, snap.Player.Pos.Z)
	fmt.Fprintf(w, "  In flight: %d\n", len(snap.Projectiles))
}
