package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - menu up, cursor up
	ActionDown           // S, Down arrow - menu down, cursor down
	ActionLeft           // A, Left arrow - cursor left
	ActionRight          // D, Right arrow - cursor right
	ActionTap            // Space - tap the tile under the cursor
	ActionConfirm        // Enter - confirm selection in menu, acknowledge round end
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionKey1           // Keypad 1 - bottom-left tile
	ActionKey2
	ActionKey3
	ActionKey4
	ActionKey5
	ActionKey6
	ActionKey7 // Keypad 7 - top-left tile
	ActionKey8
	ActionKey9 // Keypad 9 - top-right tile
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
	case ActionTap:
		return "Tap"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	}
	if n, ok := a.KeyNumber(); ok {
		return "Key" + string(rune('0'+n))
	}
	return "Unknown"
}

// KeyAction returns the keypad action for digit n (1-9).
func KeyAction(n int) (Action, bool) {
	if n < 1 || n > 9 {
		return ActionNone, false
	}
	return ActionKey1 + Action(n-1), true
}

// KeyNumber returns the keypad digit for a keypad action.
func (a Action) KeyNumber() (int, bool) {
	if a < ActionKey1 || a > ActionKey9 {
		return 0, false
	}
	return int(a-ActionKey1) + 1, true
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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

// Keys returns the keypad digits pressed this frame in ascending order.
func (f InputFrame) Keys() []int {
	var keys []int
	for n := 1; n <= 9; n++ {
		a, _ := KeyAction(n)
		if f.Has(a) {
			keys = append(keys, n)
		}
	}
	return keys
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
