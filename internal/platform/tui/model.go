package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bullet-frenzy/internal/core"
	"github.com/vovakirdan/bullet-frenzy/internal/games/frenzy"
	"github.com/vovakirdan/bullet-frenzy/internal/registry"
	"github.com/vovakirdan/bullet-frenzy/internal/replay"
	"github.com/vovakirdan/bullet-frenzy/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game Model.
type Options struct {
	Store    *storage.Store     // Recording database; nil disables saving
	Record   bool               // Save the session's intents on exit
	Logger   *log.Logger        // nil discards log output
	Menu     bool               // B returns to the menu when paused or over
	Playback *storage.Recording // Watch this recording instead of playing
}

// Model is the Bubble Tea model for running a game.
// Actions are applied to the game as soon as they arrive; ticks only step
// the simulation.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keyMapper  *KeyMapper
	help       help.Model
	inputLog   *core.InputLog
	next       int // Next playback event
	gameState  core.GameState
	width      int
	height     int
	quitting   bool
	backToMenu bool
	savedID    string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Playback != nil {
		cfg.Seed = opts.Playback.Seed
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		opts:      opts,
		logger:    logger,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		inputLog:  &core.InputLog{},
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.opts.Playback == nil {
			m.apply(m.keyMapper.MapMouse(msg))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsHelp(msg) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.finish()
		m.quitting = true
		return m, tea.Quit
	}

	if m.opts.Menu && m.keyMapper.IsBack(msg) && (m.gameState.GameOver || m.gameState.Paused) {
		m.finish()
		m.backToMenu = true
		return m, nil
	}

	if m.opts.Playback == nil {
		m.apply(action)
	}
	return m, nil
}

// apply executes an action and records it if the game accepted it.
func (m *Model) apply(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !m.game.Apply(a) {
		return
	}
	m.inputLog.Append(m.game.Tick(), a)
	m.gameState = m.game.State()

	if a == core.ActionRestart {
		m.logger.Info("session reset", "game", m.game.ID(), "tick", m.game.Tick())
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if rec := m.opts.Playback; rec != nil {
		for m.next < len(rec.Events) && rec.Events[m.next].Tick <= m.game.Tick() {
			m.game.Apply(rec.Events[m.next].Action)
			m.next++
		}
		if m.game.Tick() >= rec.Ticks {
			m.gameState = m.game.State()
			return m, tickCmd(m.config.TickRate)
		}
	}

	result := m.game.Step()
	m.gameState = result.State

	if result.Ended {
		m.logger.Info("game over",
			"game", m.game.ID(),
			"score", result.State.Score,
			"tick", m.game.Tick(),
		)
	}

	return m, tickCmd(m.config.TickRate)
}

// finish saves the recording once when recording is enabled.
func (m *Model) finish() {
	if !m.opts.Record || m.opts.Store == nil || m.opts.Playback != nil || m.savedID != "" {
		return
	}

	fg, ok := m.game.(*frenzy.Game)
	if !ok {
		m.logger.Warn("game does not support recordings", "game", m.game.ID())
		return
	}

	rec, err := replay.Build(fg, m.config.Seed, m.inputLog.Events())
	if err != nil {
		m.logger.Error("could not build recording", "error", err)
		return
	}
	id, err := m.opts.Store.SaveRecording(rec)
	if err != nil {
		m.logger.Error("could not save recording", "error", err)
		return
	}

	m.savedID = id
	m.logger.Info("recording saved",
		"id", rec.ShortID(),
		"events", len(rec.Events),
		"ticks", rec.Ticks,
		"score", rec.Score,
	)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	helpView := helpStyle.Render(m.help.View(m.keyMapper.Keys()))
	m.screen.Resize(m.width, max(m.height-lipgloss.Height(helpView), 1))

	m.game.Render(m.screen)
	if rec := m.opts.Playback; rec != nil {
		label := "REPLAY " + rec.ShortID()
		m.screen.DrawTextColored(m.screen.Width()-len(label)-1, 0, label, core.ColorMagenta)
	}

	return RenderScreen(m.screen) + "\n" + helpView
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// SavedRecording returns the ID of the saved recording, or "" if none.
func (m Model) SavedRecording() string {
	return m.savedID
}

// Events returns the recorded intents so far.
func (m Model) Events() []core.InputEvent {
	return m.inputLog.Events()
}

// Seed returns the seed the session runs with.
func (m Model) Seed() int64 {
	return m.config.Seed
}

// Run starts the Bubble Tea program with the given game.
// Returns the ID of the saved recording, if any.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (string, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click fires, right click switches camera
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(Model); ok {
		return m.SavedRecording(), nil
	}
	return "", nil
}
