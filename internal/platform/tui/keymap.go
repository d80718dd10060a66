package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bullet-frenzy/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Forward     key.Binding
	Backward    key.Binding
	RotateLeft  key.Binding
	RotateRight key.Binding
	Fire        key.Binding
	Cheat       key.Binding
	Follow      key.Binding
	Restart     key.Binding
	CameraUp    key.Binding
	CameraDown  key.Binding
	CameraLeft  key.Binding
	CameraRight key.Binding
	CameraMode  key.Binding
	Pause       key.Binding
	Back        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.RotateLeft, k.Fire, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Backward, k.RotateLeft, k.RotateRight, k.Fire},
		{k.CameraUp, k.CameraDown, k.CameraLeft, k.CameraRight, k.CameraMode},
		{k.Cheat, k.Follow, k.Restart, k.Pause, k.Back, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forward: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w/s", "move"),
		),
		Backward: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "back"),
		),
		RotateLeft: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a/d", "rotate"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "rotate right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Cheat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cheat"),
		),
		Follow: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "auto-follow"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		CameraUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "camera up"),
		),
		CameraDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "camera down"),
		),
		CameraLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "orbit left"),
		),
		CameraRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "orbit right"),
		),
		CameraMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "camera mode"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu (paused/over)"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes bindings and makes them testable.
type KeyMapper struct {
	keys     KeyMap
	bindings []binding
}

type binding struct {
	key    *key.Binding
	action core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{keys: DefaultKeyMap()}
	k := &km.keys
	km.bindings = []binding{
		{&k.Forward, core.ActionForward},
		{&k.Backward, core.ActionBackward},
		{&k.RotateLeft, core.ActionRotateLeft},
		{&k.RotateRight, core.ActionRotateRight},
		{&k.Fire, core.ActionFire},
		{&k.Cheat, core.ActionToggleCheat},
		{&k.Follow, core.ActionToggleFollow},
		{&k.Restart, core.ActionRestart},
		{&k.CameraUp, core.ActionCameraUp},
		{&k.CameraDown, core.ActionCameraDown},
		{&k.CameraLeft, core.ActionCameraLeft},
		{&k.CameraRight, core.ActionCameraRight},
		{&k.CameraMode, core.ActionCameraMode},
		{&k.Pause, core.ActionPause},
		{&k.Quit, core.ActionQuit},
	}
	return km
}

// Keys returns the bindings used by the mapper, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.bindings {
		if key.Matches(msg, *b.key) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// IsBack reports whether the key asks to return to the menu.
func (km *KeyMapper) IsBack(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Back)
}

// IsHelp reports whether the key toggles the full help view.
func (km *KeyMapper) IsHelp(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Help)
}

// MapMouse translates a mouse press: left fires, right switches camera mode.
// Releases and motion map to ActionNone.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action != tea.MouseActionPress {
		return core.ActionNone
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return core.ActionFire
	case tea.MouseButtonRight:
		return core.ActionCameraMode
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
