package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionForward             // W - move along heading
	ActionBackward            // S - move against heading
	ActionRotateLeft          // A - turn counter-clockwise
	ActionRotateRight         // D - turn clockwise
	ActionFire                // Space, left mouse - shoot
	ActionToggleCheat         // C - autonomous fire and rotation
	ActionToggleFollow        // V - auto-follow flag
	ActionRestart             // R - reset the session
	ActionCameraUp            // Up arrow - raise camera
	ActionCameraDown          // Down arrow - lower camera
	ActionCameraLeft          // Left arrow - orbit camera left
	ActionCameraRight         // Right arrow - orbit camera right
	ActionCameraMode          // M, right mouse - third/first person
	ActionPause               // P - pause/unpause
	ActionQuit                // Q, Ctrl+C - exit game/session
)

var actionNames = map[Action]string{
	ActionNone:         "None",
	ActionForward:      "Forward",
	ActionBackward:     "Backward",
	ActionRotateLeft:   "RotateLeft",
	ActionRotateRight:  "RotateRight",
	ActionFire:         "Fire",
	ActionToggleCheat:  "ToggleCheat",
	ActionToggleFollow: "ToggleFollow",
	ActionRestart:      "Restart",
	ActionCameraUp:     "CameraUp",
	ActionCameraDown:   "CameraDown",
	ActionCameraLeft:   "CameraLeft",
	ActionCameraRight:  "CameraRight",
	ActionCameraMode:   "CameraMode",
	ActionPause:        "Pause",
	ActionQuit:         "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ParseAction is the inverse of String. Unknown names map to ActionNone.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}

// InputEvent is an action stamped with the number of ticks completed when it
// was applied. Events with the same tick keep their arrival order.
type InputEvent struct {
	Tick   uint64
	Action Action
}

// InputLog is an ordered record of applied actions.
type InputLog struct {
	events []InputEvent
}

// Append records an action applied after tick ticks.
func (l *InputLog) Append(tick uint64, a Action) {
	l.events = append(l.events, InputEvent{Tick: tick, Action: a})
}

// Events returns a copy of the recorded events.
func (l *InputLog) Events() []InputEvent {
	out := make([]InputEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of recorded events.
func (l *InputLog) Len() int {
	return len(l.events)
}
