package replay

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/bullet-frenzy/internal/config"
	"github.com/vovakirdan/bullet-frenzy/internal/core"
	"github.com/vovakirdan/bullet-frenzy/internal/games/frenzy"
	"github.com/vovakirdan/bullet-frenzy/internal/storage"
)

// playSession runs a short scripted session and returns the game and its log.
func playSession(t *testing.T, g *frenzy.Game, seed int64, cfg config.FrenzyConfig) core.InputLog {
	t.Helper()
	g.UseConfig(cfg)
	rt := core.DefaultConfig()
	rt.Seed = seed
	g.Reset(rt)

	var log core.InputLog
	script := []core.Action{
		core.ActionFire, core.ActionRotateLeft, core.ActionForward,
		core.ActionToggleCheat, core.ActionFire, core.ActionCameraMode,
	}
	for frame := 0; frame < 600; frame++ {
		if frame%50 == 0 {
			a := script[(frame/50)%len(script)]
			if g.Apply(a) {
				log.Append(g.Tick(), a)
			}
		}
		g.Step()
	}
	return log
}

func TestBuildAndRun(t *testing.T) {
	cfg := config.DefaultFrenzyConfig()
	cfg.Cheat.FireChance = 0.3
	cfg.Rules.ClampLife = true

	live := frenzy.New()
	log := playSession(t, live, 99, cfg)

	rec, err := Build(live, 99, log.Events())
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if rec.GameID != frenzy.GameID || rec.Seed != 99 || rec.Ticks != 600 {
		t.Errorf("unexpected recording header: %+v", rec)
	}
	if len(rec.Events) != log.Len() {
		t.Errorf("expected %d events, got %d", log.Len(), len(rec.Events))
	}

	replayed, err := Run(&rec)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if err := Verify(&rec, replayed); err != nil {
		t.Error(err)
	}
	if !reflect.DeepEqual(replayed.Snapshot(), live.Snapshot()) {
		t.Error("replayed snapshot differs from the live session")
	}
	if replayed.Config() != cfg {
		t.Error("replay should use the recorded tuning")
	}
}

func TestRoundTripThroughStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "rec.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	live := frenzy.NewDemo()
	log := playSession(t, live, 7, config.DefaultFrenzyConfig())

	rec, err := Build(live, 7, log.Events())
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	id, err := store.SaveRecording(rec)
	if err != nil {
		t.Fatalf("SaveRecording() failed: %v", err)
	}

	loaded, err := store.LoadRecording(id)
	if err != nil {
		t.Fatalf("LoadRecording() failed: %v", err)
	}
	replayed, err := Run(loaded)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if err := Verify(loaded, replayed); err != nil {
		t.Error(err)
	}
	if replayed.ID() != frenzy.DemoGameID {
		t.Errorf("expected demo variant, got %s", replayed.ID())
	}
}

func TestVerifyDetectsDivergence(t *testing.T) {
	live := frenzy.New()
	log := playSession(t, live, 1, config.DefaultFrenzyConfig())

	rec, err := Build(live, 1, log.Events())
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	rec.Score += 1000
	replayed, err := Run(&rec)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if err := Verify(&rec, replayed); !errors.Is(err, ErrDiverged) {
		t.Errorf("expected ErrDiverged, got %v", err)
	}
}

func TestPrepareErrors(t *testing.T) {
	tests := []struct {
		name string
		rec  storage.Recording
	}{
		{"unknown game", storage.Recording{GameID: "pinball", Config: ""}},
		{"invalid config", storage.Recording{GameID: frenzy.GameID, Config: "projectile:\n  speed: -1\n"}},
		{"malformed config", storage.Recording{GameID: frenzy.GameID, Config: "player: ["}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Prepare(&tc.rec); err == nil {
				t.Error("expected error")
			}
		})
	}
}
