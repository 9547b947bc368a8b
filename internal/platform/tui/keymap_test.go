package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-racer/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"l", runeKey('l'), core.ActionRight},
		{"p", runeKey('p'), core.ActionPause},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionAnyKey},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionAnyKey},
		{"x", runeKey('x'), core.ActionAnyKey},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionAnyKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestMapKeyToFramePreservesOrder(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	frame := core.NewInputFrame()

	keys := []tea.KeyMsg{
		{Type: tea.KeyLeft},
		{Type: tea.KeyCtrlS},
		{Type: tea.KeyRight},
		{Type: tea.KeyLeft},
	}
	for _, k := range keys {
		if km.MapKeyToFrame(k, &frame) {
			t.Fatalf("%q reported as quit", k.String())
		}
	}

	want := []core.Action{core.ActionLeft, core.ActionRight, core.ActionLeft}
	if len(frame.Actions) != len(want) {
		t.Fatalf("Actions = %v, expected %v", frame.Actions, want)
	}
	for i := range want {
		if frame.Actions[i] != want[i] {
			t.Errorf("Actions[%d] = %v, expected %v", i, frame.Actions[i], want[i])
		}
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should report quit")
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) != 4 {
		t.Errorf("ShortHelp has %d bindings, expected 4", len(keys.ShortHelp()))
	}

	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 5 {
		t.Errorf("FullHelp has %d bindings, expected 5", n)
	}
}
