package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hostcost/internal/core"
)

// KeyMap defines the key bindings for the estimator.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Digits    key.Binding
	Backspace key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Digits, k.Backspace, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Digits, k.Backspace},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("up/k", "prev field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab", "enter"),
			key.WithHelp("down/j", "next field"),
		),
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "edit"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to form input events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper over the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an input event.
// Keys with no binding map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.InputEvent {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.InputEvent{Action: core.ActionQuit}
	case key.Matches(msg, km.keys.Up):
		return core.InputEvent{Action: core.ActionUp}
	case key.Matches(msg, km.keys.Down):
		return core.InputEvent{Action: core.ActionDown}
	case key.Matches(msg, km.keys.Backspace):
		return core.InputEvent{Action: core.ActionBackspace}
	case key.Matches(msg, km.keys.Digits):
		return core.Digit(msg.Runes[0])
	}

	return core.InputEvent{Action: core.ActionNone}
}
