package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move left while held
	ActionRight          // Right arrow, D - move right while held
	ActionConfirm        // Space, Enter - start or restart
	ActionQuit           // Esc, Q, Ctrl+C - exit the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intents is the decoded input for a single frame.
// Movement intents are level-triggered (held this frame); Confirm and Quit
// are edge-triggered (pressed this frame).
type Intents struct {
	MoveLeft  bool
	MoveRight bool
	Confirm   bool
	Quit      bool
}

// Set marks an action as active for this frame.
func (in *Intents) Set(a Action) {
	switch a {
	case ActionLeft:
		in.MoveLeft = true
	case ActionRight:
		in.MoveRight = true
	case ActionConfirm:
		in.Confirm = true
	case ActionQuit:
		in.Quit = true
	}
}

// Clear resets all actions for the next frame.
func (in *Intents) Clear() {
	*in = Intents{}
}
