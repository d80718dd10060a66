package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bullet-frenzy/internal/platform/tui"
	"github.com/vovakirdan/bullet-frenzy/internal/storage"
)

var (
	flagPlain  bool
	flagLimit  int
	flagDelete string
)

var recordingsCmd = &cobra.Command{
	Use:   "recordings",
	Short: "Browse stored recordings",
	Long: `Browse recordings, newest first. Enter plays the selected recording
back; d deletes it.

Examples:
  frenzy recordings
  frenzy recordings --plain --limit 5
  frenzy recordings --delete 3f9c2a1b`,
	Run: runRecordings,
}

func init() {
	recordingsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text list instead of the browser")
	recordingsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of recordings to print with --plain")
	recordingsCmd.Flags().StringVar(&flagDelete, "delete", "", "Delete the recording with this ID or prefix")
}

func runRecordings(_ *cobra.Command, _ []string) {
	if err := browseRecordings(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// browseRecordings deletes, prints or browses recordings depending on flags.
func browseRecordings(w io.Writer) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening recordings database: %w", err)
	}
	defer store.Close()

	if flagDelete != "" {
		rec, err := store.LoadRecording(flagDelete)
		if err != nil {
			return err
		}
		if err := store.DeleteRecording(rec.ID); err != nil {
			return err
		}
		fmt.Fprintf(w, "Deleted %s\n", rec.ID)
		return nil
	}

	if flagPlain {
		return printRecordings(w, store)
	}

	width, height := 80, 24
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = tw
		height = th
	}

	// Browse, watch the chosen recording, then come back to the list
	for {
		selected, err := tui.RunRecordings(store, width, height)
		if err != nil {
			return err
		}
		if selected == "" {
			return nil
		}

		rec, err := store.LoadRecording(selected)
		if err != nil {
			return fmt.Errorf("loading recording: %w", err)
		}
		if err := watchRecording(rec); err != nil {
			return fmt.Errorf("running playback: %w", err)
		}
	}
}

// printRecordings writes the newest recordings as a text table.
func printRecordings(w io.Writer, store *storage.Store) error {
	recs, err := store.ListRecordings(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving recordings: %w", err)
	}

	if len(recs) == 0 {
		fmt.Fprintln(w, "No recordings yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'frenzy play --record' to save one!")
		return nil
	}

	fmt.Fprintf(w, "  %-8s  %-12s  %8s  %6s  %6s  %4s  %s\n", "ID", "Game", "Ticks", "Score", "Missed", "Life", "Date")
	fmt.Fprintf(w, "  %-8s  %-12s  %8s  %6s  %6s  %4s  %s\n", "--", "----", "-----", "-----", "------", "----", "----")

	for _, r := range recs {
		fmt.Fprintf(w, "  %-8s  %-12s  %8d  %6d  %6d  %4d  %s\n",
			r.ShortID(), r.GameID, r.Ticks, r.Score, r.Missed, r.Life,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
