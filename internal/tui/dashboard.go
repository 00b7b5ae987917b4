package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/guard"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// DefaultChartPath is where the balance chart is exported when no path is
// configured.
const DefaultChartPath = "balance.png"

// DashboardModel shows totals, spending per category and the latest
// transactions, and exports the balance chart as PNG.
type DashboardModel struct {
	ctx       context.Context
	dashboard service.ClientDashboardService
	chartPath string

	summary models.DashboardSummary
	loaded  bool
	loading bool
	spinner spinner.Model
	line    statusLine
}

func NewDashboardModel(ctx context.Context, dashboard service.ClientDashboardService, chartPath string) *DashboardModel {
	if chartPath == "" {
		chartPath = DefaultChartPath
	}
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &DashboardModel{
		ctx:       ctx,
		dashboard: dashboard,
		chartPath: chartPath,
		spinner:   s,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.line.clear()
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case summaryLoadedMsg:
		m.loading = false
		if msg.err != nil {
			text, cmd := failure(msg.err, app.FallbackLoadDashboard)
			m.line.fail(text)
			return m, cmd
		}
		m.summary = msg.summary
		m.loaded = true
		return m, nil

	case chartExportedMsg:
		if msg.err != nil {
			m.line.fail(service.UserMessage(msg.err, app.FallbackExportChart))
			return m, nil
		}
		m.line.ok("Chart saved to " + msg.path)
		return m, nil

	case copiedMsg:
		return m, m.line.copied(msg)

	case clearStatusMsg:
		m.line.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Path: guard.PathHome} }
		case key.Matches(msg, keys.reload):
			return m, m.Init()
		case key.Matches(msg, keys.export):
			if !m.loaded {
				return m, nil
			}
			return m, m.cmdExport()
		case key.Matches(msg, keys.copy):
			if !m.loaded {
				return m, nil
			}
			return m, cmdCopyToClipboard(summaryText(m.summary))
		}
	}
	return m, nil
}

func (m *DashboardModel) View() string {
	var body string
	switch {
	case m.loading:
		body = m.spinner.View() + " Loading..."
	case m.loaded:
		body = m.summaryView()
	}
	return renderPage("DASHBOARD", body, m.line, "x: export chart │ c: copy totals │ r: reload │ esc: back")
}

func (m *DashboardModel) summaryView() string {
	s := m.summary
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%-14s %14s\n", "Total balance", s.TotalBalance))
	b.WriteString(fmt.Sprintf("%-14s %14s\n", "Income", incomeStyle.Render(s.Income.String())))
	b.WriteString(fmt.Sprintf("%-14s %14s\n", "Expense", expenseStyle.Render(s.Expense.String())))
	b.WriteString(fmt.Sprintf("%-14s %14s\n", "Net", s.Net()))

	if len(s.ExpenseByCategory) > 0 {
		b.WriteString("\nSpending by category\n")
		for _, ct := range s.ExpenseByCategory {
			b.WriteString(fmt.Sprintf("  %-20s %12s\n", fitText(ct.Category.Name, 20), ct.Total))
		}
	}

	b.WriteString("\nRecent transactions\n")
	if len(s.Recent) == 0 {
		b.WriteString("  none\n")
	}
	for _, tx := range s.Recent {
		b.WriteString(fmt.Sprintf("  %-10s %12s  %s\n", formatDate(tx.Date), formatSigned(tx.SignedAmount()), fitText(tx.Description, 30)))
	}

	return strings.TrimRight(b.String(), "\n")
}

func summaryText(s models.DashboardSummary) string {
	return fmt.Sprintf("balance %s, income %s, expense %s, net %s", s.TotalBalance, s.Income, s.Expense, s.Net())
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.dashboard

	return func() tea.Msg {
		summary, err := svc.Summary(ctx)
		return summaryLoadedMsg{summary: summary, err: err}
	}
}

func (m *DashboardModel) cmdExport() tea.Cmd {
	svc := m.dashboard
	summary := m.summary
	path := m.chartPath

	return func() tea.Msg {
		return chartExportedMsg{path: path, err: exportChart(svc, summary, path)}
	}
}

// exportChart renders the chart into path. A failed render leaves no file.
func exportChart(svc service.ClientDashboardService, summary models.DashboardSummary, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return svc.RenderBalanceChart(summary, f)
}
