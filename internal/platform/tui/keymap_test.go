package tui

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ecosort/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		wantAct  core.Action
		wantQuit bool
	}{
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space confirms", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{"m mutes", runeKey('m'), core.ActionMute, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act, quit := km.MapKey(tt.msg)
			if act != tt.wantAct || quit != tt.wantQuit {
				t.Errorf("MapKey() = (%v, %v), want (%v, %v)", act, quit, tt.wantAct, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrameSkipsQuit(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should report quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not reach the game")
	}

	km.MapKeyToFrame(runeKey('m'), &frame)
	if !frame.Has(core.ActionMute) {
		t.Error("m should set mute")
	}
}

func TestMapMouse(t *testing.T) {
	field := core.Vec{X: 800, Y: 600}

	tests := []struct {
		name     string
		msg      tea.MouseMsg
		wantOK   bool
		wantKind core.PointerKind
		wantPos  core.Vec
	}{
		{
			name:     "left press at origin cell",
			msg:      tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			wantOK:   true,
			wantKind: core.PointerDown,
			wantPos:  core.Vec{X: 5, Y: 12.5},
		},
		{
			name:     "motion in last cell",
			msg:      tea.MouseMsg{X: 79, Y: 23, Action: tea.MouseActionMotion},
			wantOK:   true,
			wantKind: core.PointerMove,
			wantPos:  core.Vec{X: 795, Y: 587.5},
		},
		{
			name:     "release",
			msg:      tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionRelease},
			wantOK:   true,
			wantKind: core.PointerUp,
			wantPos:  core.Vec{X: 405, Y: 312.5},
		},
		{
			name:   "right press ignored",
			msg:    tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			wantOK: false,
		},
		{
			name:   "below game area",
			msg:    tea.MouseMsg{X: 1, Y: 24, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := MapMouse(tt.msg, 80, 24, field)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if ev.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", ev.Kind, tt.wantKind)
			}
			if math.Abs(ev.Pos.X-tt.wantPos.X) > 1e-9 || math.Abs(ev.Pos.Y-tt.wantPos.Y) > 1e-9 {
				t.Errorf("pos = %+v, want %+v", ev.Pos, tt.wantPos)
			}
		})
	}
}
