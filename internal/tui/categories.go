package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/guard"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/models"
)

const (
	catFieldName = iota
	catFieldType
)

// categoryFilters is the cycle of the "f" key; "" shows every category.
var categoryFilters = []models.EntryType{"", models.Expense, models.Income}

// CategoriesModel lists categories, optionally only those of one type.
type CategoriesModel struct {
	ctx        context.Context
	categories service.ClientCategoryService

	items   []models.Category
	idx     int
	filter  int
	loading bool

	mode    screenMode
	form    formModel
	editing models.ID
	line    statusLine
}

func NewCategoriesModel(ctx context.Context, categories service.ClientCategoryService) *CategoriesModel {
	return &CategoriesModel{
		ctx:        ctx,
		categories: categories,
	}
}

func (m *CategoriesModel) Init() tea.Cmd {
	m.mode = modeList
	m.line.clear()
	return m.reload()
}

func (m *CategoriesModel) reload() tea.Cmd {
	m.loading = true
	return m.cmdLoad(categoryFilters[m.filter])
}

func (m *CategoriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			text, cmd := failure(msg.err, app.FallbackLoadCategories)
			m.line.fail(text)
			return m, cmd
		}
		m.items = msg.categories
		m.idx = moveCursor(m.idx, 0, len(m.items))
		return m, nil

	case savedMsg:
		m.form.submitting = false
		deleting := m.mode == modeConfirm
		if msg.err != nil {
			fallback := app.FallbackSaveCategory
			if deleting {
				fallback = app.FallbackDeleteCategory
				m.mode = modeList
			}
			text, cmd := failure(msg.err, fallback)
			m.line.fail(text)
			return m, cmd
		}
		m.mode = modeList
		m.line.ok(savedText(deleting))
		return m, tea.Batch(m.reload(), cmdClearStatus())

	case copiedMsg:
		return m, m.line.copied(msg)

	case clearStatusMsg:
		m.line.status = ""
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.mode == modeForm {
		cmd, _ := m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *CategoriesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Path: guard.PathHome} }
	case key.Matches(msg, keys.up):
		m.idx = moveCursor(m.idx, -1, len(m.items))
	case key.Matches(msg, keys.down):
		m.idx = moveCursor(m.idx, 1, len(m.items))
	case key.Matches(msg, keys.filter):
		m.filter = (m.filter + 1) % len(categoryFilters)
		m.idx = 0
		return m, m.reload()
	case key.Matches(msg, keys.reload):
		m.line.clear()
		return m, m.reload()
	case key.Matches(msg, keys.newItem):
		m.line.clear()
		m.openForm(models.Category{Type: models.Expense})
	case key.Matches(msg, keys.edit):
		if c, ok := m.selected(); ok {
			m.line.clear()
			m.openForm(c)
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.selected(); ok {
			m.mode = modeConfirm
		}
	case key.Matches(msg, keys.copy):
		if c, ok := m.selected(); ok {
			return m, cmdCopyToClipboard(c.Name)
		}
	}
	return m, nil
}

func (m *CategoriesModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		c, ok := m.selected()
		if !ok {
			m.mode = modeList
			return m, nil
		}
		return m, m.cmdDelete(c.ID)
	case key.Matches(msg, keys.no):
		m.mode = modeList
	}
	return m, nil
}

func (m *CategoriesModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		m.line.clear()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.submitting {
			return m, nil
		}
		m.line.clear()
		m.form.submitting = true
		return m, m.cmdSave(models.Category{
			ID:   m.editing,
			Name: m.form.value(catFieldName),
			Type: models.EntryType(m.form.choiceValue(catFieldType)),
		})
	}

	cmd, _ := m.form.update(msg)
	return m, cmd
}

func (m *CategoriesModel) selected() (models.Category, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Category{}, false
	}
	return m.items[m.idx], true
}

func (m *CategoriesModel) openForm(c models.Category) {
	m.form = newForm(
		textField("Name", "name", false),
		choiceField("Type", typeChoices()),
	)
	m.form.setValue(catFieldName, c.Name)
	m.form.selectValue(catFieldType, string(c.Type))
	m.editing = c.ID
	m.mode = modeForm
}

func filterLabel(t models.EntryType) string {
	switch t {
	case models.Income:
		return "income"
	case models.Expense:
		return "expense"
	default:
		return "all"
	}
}

func (m *CategoriesModel) View() string {
	switch m.mode {
	case modeForm:
		title := "NEW CATEGORY"
		if !m.editing.IsZero() {
			title = "EDIT CATEGORY"
		}
		return renderPage(title, m.form.View("Save"), m.line,
			"esc: cancel │ tab: next field │ ←/→: change type │ enter: save")
	case modeConfirm:
		c, _ := m.selected()
		return renderPage("CATEGORIES", m.listView()+"\n\n"+confirmView(c.Name), m.line, "")
	default:
		return renderPage("CATEGORIES", m.listView(), m.line,
			"↑/↓: navigate │ f: filter │ n: new │ e: edit │ d: delete │ c: copy │ esc: back")
	}
}

func (m *CategoriesModel) listView() string {
	var b strings.Builder
	b.WriteString("Showing: " + filterLabel(categoryFilters[m.filter]) + "\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(m.items) == 0:
		b.WriteString("No categories")
	}
	for i, c := range m.items {
		style := expenseStyle
		if c.Type == models.Income {
			style = incomeStyle
		}
		row := fmt.Sprintf("%s%-24s │ %s", cursor(i == m.idx), fitText(c.Name, 24), style.Render(string(c.Type)))
		b.WriteString(row)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *CategoriesModel) cmdLoad(t models.EntryType) tea.Cmd {
	ctx := m.ctx
	svc := m.categories

	return func() tea.Msg {
		var (
			categories []models.Category
			err        error
		)
		if t == "" {
			categories, err = svc.List(ctx)
		} else {
			categories, err = svc.ListByType(ctx, t)
		}
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (m *CategoriesModel) cmdSave(c models.Category) tea.Cmd {
	ctx := m.ctx
	svc := m.categories

	return func() tea.Msg {
		return savedMsg{err: svc.Save(ctx, c)}
	}
}

func (m *CategoriesModel) cmdDelete(id models.ID) tea.Cmd {
	ctx := m.ctx
	svc := m.categories

	return func() tea.Msg {
		return savedMsg{err: svc.Delete(ctx, id)}
	}
}
