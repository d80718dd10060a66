// Package frenzy implements Bullet Frenzy: a turret in the middle of a square
// arena shoots at hostiles that keep walking toward it from a spawn ring.
package frenzy

import (
	"github.com/vovakirdan/bullet-frenzy/internal/config"
	"github.com/vovakirdan/bullet-frenzy/internal/core"
	"github.com/vovakirdan/bullet-frenzy/internal/registry"
)

// Registered game IDs.
const (
	GameID     = "frenzy"
	DemoGameID = "frenzy_demo"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// actionCommands maps platform actions to simulation commands.
// Pause and restart are handled by the Game itself.
var actionCommands = map[core.Action]Command{
	core.ActionForward:      CmdMoveForward,
	core.ActionBackward:     CmdMoveBackward,
	core.ActionRotateLeft:   CmdRotateLeft,
	core.ActionRotateRight:  CmdRotateRight,
	core.ActionFire:         CmdFire,
	core.ActionToggleCheat:  CmdToggleCheat,
	core.ActionToggleFollow: CmdToggleAutoFollow,
	core.ActionCameraUp:     CmdCameraUp,
	core.ActionCameraDown:   CmdCameraDown,
	core.ActionCameraLeft:   CmdCameraLeft,
	core.ActionCameraRight:  CmdCameraRight,
	core.ActionCameraMode:   CmdCameraMode,
}

// Game adapts the simulation to the platform Game interface.
type Game struct {
	id      string
	title   string
	demo    bool                 // Start every session with cheat mode on
	pinned  *config.FrenzyConfig // Tuning set via UseConfig, bypasses loading
	cfg     config.FrenzyConfig
	state   *State
	runtime core.RuntimeConfig
	paused  bool
}

// New creates a regular Bullet Frenzy game.
func New() *Game {
	return &Game{id: GameID, title: "Bullet Frenzy"}
}

// NewDemo creates the attract-mode variant that plays itself.
func NewDemo() *Game {
	return &Game{id: DemoGameID, title: "Bullet Frenzy (demo)", demo: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// UseConfig pins the tuning used by the next Reset, e.g. the one stored with
// a recording.
func (g *Game) UseConfig(cfg config.FrenzyConfig) {
	g.pinned = &cfg
}

// Config returns the tuning of the current session.
func (g *Game) Config() config.FrenzyConfig {
	return g.cfg
}

// Reset builds a new simulation from the runtime seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	switch {
	case g.pinned != nil:
		g.cfg = *g.pinned
	default:
		cfg, err := config.LoadFrenzy(configPath)
		if err != nil {
			cfg = config.DefaultFrenzyConfig()
		}
		g.cfg = cfg
	}

	g.state = NewState(g.cfg, runtime.Seed)
	g.paused = false
	if g.demo {
		g.state.Apply(CmdToggleCheat)
	}
}

// Apply executes an action right away. It reports whether the action had an
// effect; unknown actions, fire after game over and anything but pause or
// restart while paused are ignored.
func (g *Game) Apply(a core.Action) bool {
	switch a {
	case core.ActionPause:
		g.paused = !g.paused
		return true
	case core.ActionRestart:
		g.paused = false
		return g.state.Apply(CmdReset)
	}

	if g.paused {
		return false
	}
	cmd, ok := actionCommands[a]
	if !ok {
		return false
	}
	return g.state.Apply(cmd)
}

// Step advances the simulation by one tick unless paused.
func (g *Game) Step() core.StepResult {
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	report := g.state.Tick()
	return core.StepResult{State: g.State(), Ended: report.Ended}
}

// StepReport advances one tick and returns the detailed report.
// Paused games return an empty report.
func (g *Game) StepReport() TickReport {
	if g.paused {
		return TickReport{}
	}
	return g.state.Tick()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.player.Score,
		GameOver: g.state.gameOver,
		Paused:   g.paused,
	}
}

// Tick returns the number of completed simulation ticks.
func (g *Game) Tick() uint64 {
	return g.state.Ticks()
}

// Snapshot returns a read-only copy of the simulation.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}

// Replay applies recorded events and steps until ticks ticks have completed.
// Events stamped with tick n are applied, in order, before tick n+1 runs.
func (g *Game) Replay(events []core.InputEvent, ticks uint64) core.GameState {
	i := 0
	for {
		now := g.Tick()
		for i < len(events) && events[i].Tick <= now {
			g.Apply(events[i].Action)
			i++
		}
		if now >= ticks {
			break
		}
		g.Step()
		if g.Tick() == now {
			// Paused with nothing left to resume it.
			break
		}
	}
	return g.State()
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(DemoGameID, func() registry.Game {
		return NewDemo()
	})
}
