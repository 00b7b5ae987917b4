package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
)

const statusTTL = 2 * time.Second

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// copied shows the outcome of a clipboard write.
func (s *statusLine) copied(msg copiedMsg) tea.Cmd {
	if msg.err != nil {
		s.fail(app.FallbackClipboardUnavailable)
		return nil
	}
	s.ok("Copied!")
	return cmdClearStatus()
}
