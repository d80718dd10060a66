// Package registry provides a global registry for game factories.
// Game variants register themselves in init() functions, so the CLI and the
// SSH server can discover and instantiate them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bullet-frenzy/internal/core"
)

// Game is the interface between a simulation and the platform.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier (e.g. "frenzy").
	// Used for CLI commands and stored recordings.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh session from the runtime seed.
	Reset(cfg core.RuntimeConfig)

	// Apply executes a control action immediately and reports whether it
	// had any effect. Rejected actions are not recorded.
	Apply(a core.Action) bool

	// Step advances the simulation by one fixed tick.
	Step() core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState

	// Tick returns the number of completed simulation ticks.
	Tick() uint64
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
