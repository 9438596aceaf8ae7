package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ecosort/internal/core"
)

// KeyMap defines the key bindings for a game session.
// Sorting itself is done with the mouse; keys only drive the buttons.
type KeyMap struct {
	Confirm key.Binding
	Pause   key.Binding
	Mute    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Pause, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Pause},
		{k.Mute, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start/next"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Mute):
		return core.ActionMute, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse converts a mouse event on a screen of w x h cells into a
// pointer event in field units. The cell center is used so that a click
// lands inside whatever the renderer drew in that cell.
// Returns false for events that carry no pointer meaning or fall
// outside the game area.
func MapMouse(msg tea.MouseMsg, w, h int, field core.Vec) (core.PointerEvent, bool) {
	if w <= 0 || h <= 0 || msg.X < 0 || msg.Y < 0 || msg.X >= w || msg.Y >= h {
		return core.PointerEvent{}, false
	}

	var kind core.PointerKind
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		kind = core.PointerDown
	case msg.Action == tea.MouseActionRelease:
		kind = core.PointerUp
	case msg.Action == tea.MouseActionMotion:
		kind = core.PointerMove
	default:
		return core.PointerEvent{}, false
	}

	pos := core.Vec{
		X: (float64(msg.X) + 0.5) * field.X / float64(w),
		Y: (float64(msg.Y) + 0.5) * field.Y / float64(h),
	}
	return core.PointerEvent{Kind: kind, Pos: pos}, true
}
