package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bullet-frenzy/internal/core"
	"github.com/vovakirdan/bullet-frenzy/internal/platform/tui"
	"github.com/vovakirdan/bullet-frenzy/internal/replay"
	"github.com/vovakirdan/bullet-frenzy/internal/storage"
)

var flagWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a stored recording",
	Long: `Re-run a recording and check that it ends where it did when it was
recorded. The ID may be any unique prefix, e.g. the 8 characters shown
by 'frenzy recordings'.

With --watch the recording plays back in the terminal UI at --fps.

Examples:
  frenzy replay 3f9c2a1b
  frenzy replay 3f9c --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the recording back in the terminal UI")
}

func runReplay(cmd *cobra.Command, args []string) {
	if err := replayRecording(os.Stdout, args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// replayRecording re-runs the recording matching id and writes the result to w.
func replayRecording(w io.Writer, id string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening recordings database: %w", err)
	}
	defer store.Close()

	rec, err := store.LoadRecording(id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("no recording %q, run 'frenzy recordings' to see stored recordings", id)
	case errors.Is(err, storage.ErrAmbiguous):
		return fmt.Errorf("%q matches more than one recording, use a longer prefix", id)
	case err != nil:
		return fmt.Errorf("loading recording: %w", err)
	}

	if flagWatch {
		return watchRecording(rec)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("replaying", "id", rec.ShortID(), "events", len(rec.Events), "ticks", rec.Ticks)

	game, err := replay.Run(rec)
	if err != nil {
		return err
	}

	printSnapshot(w, game.Snapshot(), rec.Seed)
	fmt.Fprintln(w)

	if err := replay.Verify(rec, game); err != nil {
		return err
	}
	fmt.Fprintln(w, "Replay matches the recording.")
	return nil
}

// watchRecording plays rec back in the terminal UI.
func watchRecording(rec *storage.Recording) error {
	game, err := replay.Prepare(rec)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     rec.Seed,
	}

	_, err = tui.Run(game, cfg, tui.Options{Logger: logger, Playback: rec})
	return err
}
