package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-fin-tracker/internal/guard"
	"github.com/MKhiriev/go-fin-tracker/models"
)

type menuItem struct {
	title string
	path  guard.Path
}

// MenuModel is the home screen listing the sections of the app.
type MenuModel struct {
	user func() (models.User, bool)

	items []menuItem
	idx   int
	line  statusLine
}

// NewMenuModel returns the home screen. user reports the signed-in profile.
func NewMenuModel(user func() (models.User, bool)) *MenuModel {
	return &MenuModel{
		user: user,
		items: []menuItem{
			{"Transactions", guard.PathTransactions},
			{"Categories", guard.PathCategories},
			{"Accounts", guard.PathAccounts},
			{"Dashboard", guard.PathDashboard},
			{"Sign out", ""},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.line.ok(msg.text)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			m.idx = moveCursor(m.idx, -1, len(m.items))
		case key.Matches(msg, keys.down):
			m.idx = moveCursor(m.idx, 1, len(m.items))
		case key.Matches(msg, keys.enter):
			m.line.clear()
			item := m.items[m.idx]
			if item.path == "" {
				return m, func() tea.Msg { return logoutRequestMsg{} }
			}
			return m, func() tea.Msg { return NavigateTo{Path: item.path} }
		}
	}
	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if user, ok := m.user(); ok {
		b.WriteString("Signed in as ")
		b.WriteString(selectedStyle.Render(user.DisplayName()))
		b.WriteString("\n\n")
	}

	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items))) + 2
	for i, item := range m.items {
		idCell := fmt.Sprintf("%s%d", cursor(i == m.idx), i+1)
		title := item.title
		if i == m.idx {
			title = selectedStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%-*s │ %s\n", idColWidth, idCell, title))
	}

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), m.line,
		"enter: open │ ↑/↓: navigate │ v: version │ ctrl+l: sign out")
}
