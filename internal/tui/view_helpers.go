package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-fin-tracker/models"
)

const (
	uiDivider  = "──────────────────────────────────────────────────────"
	dateLayout = "2006-01-02"
)

// renderPage lays out a screen: title, body, status lines and hot keys.
func renderPage(title, data string, line statusLine, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, l := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(l)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	if v := line.View(); v != "" {
		b.WriteString("\n  ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// statusLine is the transient message area shared by all screens.
type statusLine struct {
	status string
	errMsg string
}

func (s *statusLine) ok(text string) {
	s.status = text
	s.errMsg = ""
}

func (s *statusLine) fail(text string) {
	s.errMsg = text
	s.status = ""
}

func (s *statusLine) clear() {
	s.status = ""
	s.errMsg = ""
}

func (s statusLine) View() string {
	switch {
	case s.errMsg != "":
		return errorStyle.Render("Error: " + s.errMsg)
	case s.status != "":
		return statusStyle.Render(s.status)
	default:
		return ""
	}
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

// formatSigned renders an amount with its sign and colour.
func formatSigned(m models.Money) string {
	if m < 0 {
		return expenseStyle.Render(m.String())
	}
	return incomeStyle.Render("+" + m.String())
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

// moveCursor returns idx moved by delta and clamped to [0, n).
func moveCursor(idx, delta, n int) int {
	idx += delta
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
