package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Up arrow, W, K
	ActionDown               // Down arrow, S, J
	ActionLeft               // Left arrow, A, H
	ActionRight              // Right arrow, D, L
	ActionActivate           // Space, Enter - start or restart
	ActionLeaderboard        // Tab - toggle the leaderboard
	ActionQuit               // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionActivate:
		return "Activate"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions delivered during one display frame.
// Actions keep their arrival order, which matters for games that buffer
// only the first directional input between simulation ticks.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Actions returns the actions of this frame in arrival order.
func (f InputFrame) Actions() []Action {
	out := make([]Action, len(f.actions))
	copy(out, f.actions)
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
