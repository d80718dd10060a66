// Package replay turns sessions into stored recordings and plays them back.
// A recording replays exactly because the simulation draws every random
// number from its seed and intents are applied between ticks.
package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/bullet-frenzy/internal/config"
	"github.com/vovakirdan/bullet-frenzy/internal/core"
	"github.com/vovakirdan/bullet-frenzy/internal/games/frenzy"
	"github.com/vovakirdan/bullet-frenzy/internal/registry"
	"github.com/vovakirdan/bullet-frenzy/internal/storage"
)

// ErrDiverged is returned by Verify when a replay does not end with the
// stored summary.
var ErrDiverged = errors.New("replay: diverged from recording")

// Build assembles a recording of game's session so far.
func Build(game *frenzy.Game, seed int64, events []core.InputEvent) (storage.Recording, error) {
	yml, err := config.Marshal(game.Config())
	if err != nil {
		return storage.Recording{}, fmt.Errorf("replay: %w", err)
	}

	snap := game.Snapshot()
	return storage.Recording{
		GameID: game.ID(),
		Seed:   seed,
		Config: string(yml),
		Ticks:  snap.Tick,
		Score:  snap.Player.Score,
		Missed: snap.Player.Missed,
		Life:   snap.Player.Life,
		Events: events,
	}, nil
}

// Prepare creates the recorded game variant, reset with the recorded seed and
// tuning, ready for Replay or interactive playback.
func Prepare(rec *storage.Recording) (*frenzy.Game, error) {
	cfg, err := config.Parse([]byte(rec.Config))
	if err != nil {
		return nil, fmt.Errorf("replay: recording %s: %w", rec.ShortID(), err)
	}

	g, err := registry.Create(rec.GameID)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	game, ok := g.(*frenzy.Game)
	if !ok {
		return nil, fmt.Errorf("replay: game %q cannot be replayed", rec.GameID)
	}

	rt := core.DefaultConfig()
	rt.Seed = rec.Seed
	game.UseConfig(cfg)
	game.Reset(rt)
	return game, nil
}

// Run replays a recording headless and returns the game at its final tick.
func Run(rec *storage.Recording) (*frenzy.Game, error) {
	game, err := Prepare(rec)
	if err != nil {
		return nil, err
	}
	game.Replay(rec.Events, rec.Ticks)
	return game, nil
}

// Verify checks that a replayed game ended where the recording says it did.
func Verify(rec *storage.Recording, game *frenzy.Game) error {
	snap := game.Snapshot()
	if snap.Tick != rec.Ticks || snap.Player.Score != rec.Score ||
		snap.Player.Missed != rec.Missed || snap.Player.Life != rec.Life {
		return fmt.Errorf("%w: got tick=%d score=%d missed=%d life=%d, recorded tick=%d score=%d missed=%d life=%d",
			ErrDiverged,
			snap.Tick, snap.Player.Score, snap.Player.Missed, snap.Player.Life,
			rec.Ticks, rec.Score, rec.Missed, rec.Life)
	}
	return nil
}
