package core

import "github.com/vovakirdan/hostcost/internal/form"

// Action represents a semantic form action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow, k, shift+tab - previous field
	ActionDown             // Down arrow, j, tab - next field
	ActionDigit            // 0-9 - append to the selected field
	ActionBackspace        // Backspace - delete last character
	ActionQuit             // Q, Esc, Ctrl+C - leave the estimator
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
	case ActionDigit:
		return "Digit"
	case ActionBackspace:
		return "Backspace"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputEvent is one discrete input event. Rune is only meaningful for ActionDigit.
type InputEvent struct {
	Action Action
	Rune   rune
}

// Digit returns the event for typing r.
func Digit(r rune) InputEvent {
	return InputEvent{Action: ActionDigit, Rune: r}
}

// Apply forwards ev to the form mutators.
// Returns true if the event asks to leave the estimator.
func Apply(f *form.Form, ev InputEvent) (quit bool) {
	switch ev.Action {
	case ActionUp:
		f.MoveUp()
	case ActionDown:
		f.MoveDown()
	case ActionDigit:
		f.AppendDigit(ev.Rune)
	case ActionBackspace:
		f.Backspace()
	case ActionQuit:
		return true
	}
	return false
}
