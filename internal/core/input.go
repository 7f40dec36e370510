package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; games only see intents.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, Up arrow - move build cursor up
	ActionDown               // S, Down arrow - move build cursor down
	ActionLeft               // A, Left arrow - move build cursor left
	ActionRight              // D, Right arrow - move build cursor right
	ActionConfirm            // Enter, Space - place the selected tower
	ActionNextTower          // Tab - cycle the tower type to build
	ActionUpgrade            // U - upgrade tower under cursor
	ActionSell               // X - sell tower under cursor
	ActionTargetMode         // T - cycle target mode of tower under cursor
	ActionSpeedToggle        // F - toggle fast-forward
	ActionPause              // P, Escape - pause/unpause
	ActionRestart            // R - restart after win/defeat
	ActionBack               // B - back to menu
	ActionQuit               // Q, Ctrl+C - exit
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
	case ActionConfirm:
		return "Confirm"
	case ActionNextTower:
		return "NextTower"
	case ActionUpgrade:
		return "Upgrade"
	case ActionSell:
		return "Sell"
	case ActionTargetMode:
		return "TargetMode"
	case ActionSpeedToggle:
		return "SpeedToggle"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
