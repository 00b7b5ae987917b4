package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var specialKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+l":    tea.KeyCtrlL,
	"ctrl+r":    tea.KeyCtrlR,
}

func press(k string) tea.KeyMsg {
	if t, ok := specialKeys[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// collect runs cmd and returns the messages it produces, expanding batches.
// Commands that block on a timer, such as cursor blink or status expiry,
// are skipped.
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(t, c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(200 * time.Millisecond):
		return nil
	}
}

func find[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// deliver feeds every message of cmd back into model once.
func deliver(t *testing.T, model tea.Model, cmd tea.Cmd) (tea.Model, []tea.Cmd) {
	t.Helper()
	var next []tea.Cmd
	for _, msg := range collect(t, cmd) {
		var c tea.Cmd
		model, c = model.Update(msg)
		next = append(next, c)
	}
	return model, next
}

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := writeClipboard
	writeClipboard = fn
	t.Cleanup(func() { writeClipboard = orig })
}
