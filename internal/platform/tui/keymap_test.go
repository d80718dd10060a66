package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bullet-frenzy/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey("w"), core.ActionForward, false},
		{"s", runeKey("s"), core.ActionBackward, false},
		{"a", runeKey("a"), core.ActionRotateLeft, false},
		{"d", runeKey("d"), core.ActionRotateRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"c", runeKey("c"), core.ActionToggleCheat, false},
		{"v", runeKey("v"), core.ActionToggleFollow, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionCameraUp, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionCameraDown, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionCameraLeft, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionCameraRight, false},
		{"m", runeKey("m"), core.ActionCameraMode, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("x"), core.ActionNone, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, want %v", tt.msg.String(), action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, want %v", tt.msg.String(), quit, tt.quit)
			}
		})
	}
}

func TestBackAndHelpKeys(t *testing.T) {
	km := NewKeyMapper()

	if !km.IsBack(runeKey("b")) {
		t.Error("b should be the back key")
	}
	if km.IsBack(runeKey("q")) {
		t.Error("q should not be the back key")
	}
	if !km.IsHelp(runeKey("?")) {
		t.Error("? should toggle help")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		action core.Action
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionFire},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.ActionCameraMode},
		{"middle press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonMiddle}, core.ActionNone},
		{"left release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.ActionNone},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapMouse(tt.msg); got != tt.action {
				t.Errorf("MapMouse() = %v, want %v", got, tt.action)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{runeKey("w"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, MenuActionSelect},
		{runeKey("q"), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
