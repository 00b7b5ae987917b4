package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/guard"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/models"
)

var errInvalidBalanceInput = errors.New("balance is not a valid number")

const (
	accFieldName = iota
	accFieldBalance
)

// AccountsModel lists the user's accounts with their balances. The backend
// has no account deletion.
type AccountsModel struct {
	ctx      context.Context
	accounts service.ClientAccountService

	items   []models.Account
	idx     int
	loading bool

	mode    screenMode
	form    formModel
	editing models.ID
	line    statusLine
}

func NewAccountsModel(ctx context.Context, accounts service.ClientAccountService) *AccountsModel {
	return &AccountsModel{
		ctx:      ctx,
		accounts: accounts,
	}
}

func (m *AccountsModel) Init() tea.Cmd {
	m.mode = modeList
	m.line.clear()
	m.loading = true
	return m.cmdLoad()
}

func (m *AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case accountsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			text, cmd := failure(msg.err, app.FallbackLoadAccounts)
			m.line.fail(text)
			return m, cmd
		}
		m.items = msg.accounts
		m.idx = moveCursor(m.idx, 0, len(m.items))
		return m, nil

	case savedMsg:
		m.form.submitting = false
		if msg.err != nil {
			text, cmd := failure(msg.err, app.FallbackSaveAccount)
			m.line.fail(text)
			return m, cmd
		}
		m.mode = modeList
		m.line.ok(savedText(false))
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())

	case copiedMsg:
		return m, m.line.copied(msg)

	case clearStatusMsg:
		m.line.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	if m.mode == modeForm {
		cmd, _ := m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *AccountsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Path: guard.PathHome} }
	case key.Matches(msg, keys.up):
		m.idx = moveCursor(m.idx, -1, len(m.items))
	case key.Matches(msg, keys.down):
		m.idx = moveCursor(m.idx, 1, len(m.items))
	case key.Matches(msg, keys.reload):
		m.line.clear()
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(msg, keys.newItem):
		m.line.clear()
		m.openForm(models.Account{})
	case key.Matches(msg, keys.edit):
		if a, ok := m.selected(); ok {
			m.line.clear()
			m.openForm(a)
		}
	case key.Matches(msg, keys.copy):
		if a, ok := m.selected(); ok {
			return m, cmdCopyToClipboard(a.Name + " " + a.Balance.String())
		}
	}
	return m, nil
}

func (m *AccountsModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		m.line.clear()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.submitting {
			return m, nil
		}
		account, err := m.formAccount()
		if err != nil {
			m.line.fail(err.Error())
			return m, nil
		}
		m.line.clear()
		m.form.submitting = true
		return m, m.cmdSave(account)
	}

	cmd, _ := m.form.update(msg)
	return m, cmd
}

func (m *AccountsModel) formAccount() (models.Account, error) {
	account := models.Account{ID: m.editing, Name: m.form.value(accFieldName)}
	if raw := m.form.value(accFieldBalance); raw != "" {
		balance, err := models.ParseMoney(raw)
		if err != nil {
			return models.Account{}, errInvalidBalanceInput
		}
		account.Balance = balance
	}
	return account, nil
}

func (m *AccountsModel) selected() (models.Account, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Account{}, false
	}
	return m.items[m.idx], true
}

func (m *AccountsModel) openForm(a models.Account) {
	m.form = newForm(
		textField("Name", "name", false),
		textField("Balance", "0.00", false),
	)
	m.form.setValue(accFieldName, a.Name)
	if !a.ID.IsZero() {
		m.form.setValue(accFieldBalance, a.Balance.String())
	}
	m.editing = a.ID
	m.mode = modeForm
}

func (m *AccountsModel) View() string {
	if m.mode == modeForm {
		title := "NEW ACCOUNT"
		if !m.editing.IsZero() {
			title = "EDIT ACCOUNT"
		}
		return renderPage(title, m.form.View("Save"), m.line, "esc: cancel │ tab: next field │ enter: save")
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(m.items) == 0:
		b.WriteString("No accounts")
	}
	var total models.Money
	for i, a := range m.items {
		total += a.Balance
		b.WriteString(fmt.Sprintf("%s%-24s │ %14s\n", cursor(i == m.idx), fitText(a.Name, 24), a.Balance))
	}
	if len(m.items) > 1 {
		b.WriteString(fmt.Sprintf("  %-24s │ %14s", "Total", total))
	}

	return renderPage("ACCOUNTS", strings.TrimRight(b.String(), "\n"), m.line,
		"↑/↓: navigate │ n: new │ e: edit │ c: copy │ r: reload │ esc: back")
}

func (m *AccountsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.accounts

	return func() tea.Msg {
		accounts, err := svc.List(ctx)
		return accountsLoadedMsg{accounts: accounts, err: err}
	}
}

func (m *AccountsModel) cmdSave(a models.Account) tea.Cmd {
	ctx := m.ctx
	svc := m.accounts

	return func() tea.Msg {
		return savedMsg{err: svc.Save(ctx, a)}
	}
}
