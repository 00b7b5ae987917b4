package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/guard"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/models"
)

var (
	errInvalidAmountInput = errors.New("amount is not a valid number")
	errInvalidDateInput   = errors.New("date must look like " + dateLayout)
	errNoLookups          = errors.New("add an account and a category first")
)

// TransactionFeed is the paginated transaction list.
type TransactionFeed interface {
	Reload(ctx context.Context) (service.FeedState, error)
	LoadNext(ctx context.Context) (service.FeedState, error)
}

type screenMode int

const (
	modeList screenMode = iota
	modeForm
	modeConfirm
)

const (
	txAmount = iota
	txDate
	txDescription
	txType
	txAccount
	txCategory
)

// TransactionsModel lists transactions newest first and loads further pages
// on request.
type TransactionsModel struct {
	ctx          context.Context
	feed         TransactionFeed
	transactions service.ClientTransactionService
	accounts     service.ClientAccountService
	categories   service.ClientCategoryService

	items   []models.Transaction
	hasMore bool
	idx     int
	loading bool
	spinner spinner.Model

	accountList  []models.Account
	categoryList []models.Category

	mode    screenMode
	form    formModel
	editing models.ID
	line    statusLine
}

func NewTransactionsModel(ctx context.Context, feed TransactionFeed, services *service.ClientServices) *TransactionsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &TransactionsModel{
		ctx:          ctx,
		feed:         feed,
		transactions: services.TransactionService,
		accounts:     services.AccountService,
		categories:   services.CategoryService,
		spinner:      s,
	}
}

// Init reloads the first page and the lookups every time the screen opens.
func (m *TransactionsModel) Init() tea.Cmd {
	m.mode = modeList
	m.loading = true
	m.line.clear()
	return tea.Batch(m.spinner.Tick, m.cmdReload(), m.cmdLookups())
}

func (m *TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case feedLoadedMsg:
		if ignorable(msg.err) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			text, cmd := failure(msg.err, app.FallbackLoadTransactions)
			m.line.fail(text)
			return m, cmd
		}
		m.items = msg.state.Items
		m.hasMore = msg.state.HasMore
		m.idx = moveCursor(m.idx, 0, len(m.items))
		return m, nil

	case lookupsLoadedMsg:
		if msg.err != nil {
			text, cmd := failure(msg.err, app.FallbackLoadTransactions)
			m.line.fail(text)
			return m, cmd
		}
		m.accountList = msg.accounts
		m.categoryList = msg.categories
		return m, nil

	case savedMsg:
		m.form.submitting = false
		deleting := m.mode == modeConfirm
		if msg.err != nil {
			fallback := app.FallbackSaveTransaction
			if deleting {
				fallback = app.FallbackDeleteTransaction
				m.mode = modeList
			}
			text, cmd := failure(msg.err, fallback)
			m.line.fail(text)
			return m, cmd
		}
		m.mode = modeList
		m.line.ok(savedText(deleting))
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdReload(), cmdClearStatus())

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

func (m *TransactionsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Path: guard.PathHome} }
	case key.Matches(msg, keys.up):
		m.idx = moveCursor(m.idx, -1, len(m.items))
	case key.Matches(msg, keys.down):
		m.idx = moveCursor(m.idx, 1, len(m.items))
	case key.Matches(msg, keys.more):
		if !m.hasMore || m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadNext())
	case key.Matches(msg, keys.reload):
		m.loading = true
		m.line.clear()
		return m, tea.Batch(m.spinner.Tick, m.cmdReload(), m.cmdLookups())
	case key.Matches(msg, keys.newItem):
		if len(m.accountList) == 0 || len(m.categoryList) == 0 {
			m.line.fail(errNoLookups.Error())
			return m, nil
		}
		m.line.clear()
		m.openForm(models.Transaction{})
	case key.Matches(msg, keys.edit):
		if tx, ok := m.selected(); ok {
			m.line.clear()
			m.openForm(tx)
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.selected(); ok {
			m.mode = modeConfirm
		}
	case key.Matches(msg, keys.copy):
		if tx, ok := m.selected(); ok {
			return m, cmdCopyToClipboard(m.describe(tx))
		}
	}
	return m, nil
}

func (m *TransactionsModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		tx, ok := m.selected()
		if !ok {
			m.mode = modeList
			return m, nil
		}
		return m, m.cmdDelete(tx.ID)
	case key.Matches(msg, keys.no):
		m.mode = modeList
	}
	return m, nil
}

func (m *TransactionsModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		m.line.clear()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.submitting {
			return m, nil
		}
		tx, err := m.formTransaction()
		if err != nil {
			m.line.fail(err.Error())
			return m, nil
		}
		m.line.clear()
		m.form.submitting = true
		return m, m.cmdSave(tx)
	}

	cmd, changed := m.form.update(msg)
	if changed && m.form.focus == txType {
		m.refreshCategoryChoices()
	}
	return m, cmd
}

func (m *TransactionsModel) selected() (models.Transaction, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Transaction{}, false
	}
	return m.items[m.idx], true
}

func (m *TransactionsModel) openForm(tx models.Transaction) {
	m.form = newForm(
		textField("Amount", "0.00", false),
		textField("Date", dateLayout, false),
		textField("Description", "description", false),
		choiceField("Type", typeChoices()),
		choiceField("Account", accountChoices(m.accountList)),
		choiceField("Category", nil),
	)
	m.editing = tx.ID

	if tx.ID.IsZero() {
		m.form.setValue(txDate, time.Now().Format(dateLayout))
		m.form.selectValue(txType, string(models.Expense))
	} else {
		m.form.setValue(txAmount, tx.Amount.Abs().String())
		m.form.setValue(txDate, formatDate(tx.Date))
		m.form.setValue(txDescription, tx.Description)
		m.form.selectValue(txType, string(tx.Type))
		m.form.selectValue(txAccount, tx.AccountID.String())
	}

	m.refreshCategoryChoices()
	if !tx.ID.IsZero() {
		m.form.selectValue(txCategory, tx.CategoryID.String())
	}
	m.mode = modeForm
}

// refreshCategoryChoices offers only the categories of the selected type.
func (m *TransactionsModel) refreshCategoryChoices() {
	t := models.EntryType(m.form.choiceValue(txType))
	m.form.setOptions(txCategory, categoryChoices(service.FilterCategories(m.categoryList, t)))
}

// formTransaction converts the form input. Empty fields are passed through
// so the service reports what is missing.
func (m *TransactionsModel) formTransaction() (models.Transaction, error) {
	tx := models.Transaction{
		ID:          m.editing,
		Description: m.form.value(txDescription),
		Type:        models.EntryType(m.form.choiceValue(txType)),
		AccountID:   models.ID(m.form.choiceValue(txAccount)),
		CategoryID:  models.ID(m.form.choiceValue(txCategory)),
	}

	if raw := m.form.value(txAmount); raw != "" {
		amount, err := models.ParseMoney(raw)
		if err != nil {
			return models.Transaction{}, errInvalidAmountInput
		}
		tx.Amount = amount.Abs()
	}

	if raw := m.form.value(txDate); raw != "" {
		date, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return models.Transaction{}, errInvalidDateInput
		}
		tx.Date = date
	}

	return tx, nil
}

func (m *TransactionsModel) accountName(id models.ID) string {
	for _, a := range m.accountList {
		if a.ID == id {
			return a.Name
		}
	}
	return service.UnknownCategoryName
}

func (m *TransactionsModel) categoryName(id models.ID) string {
	for _, c := range m.categoryList {
		if c.ID == id {
			return c.Name
		}
	}
	return service.UnknownCategoryName
}

func (m *TransactionsModel) describe(tx models.Transaction) string {
	return fmt.Sprintf("%s %s %s %s %s",
		formatDate(tx.Date), tx.SignedAmount(), m.categoryName(tx.CategoryID), m.accountName(tx.AccountID), tx.Description)
}

func (m *TransactionsModel) View() string {
	switch m.mode {
	case modeForm:
		title := "NEW TRANSACTION"
		if !m.editing.IsZero() {
			title = "EDIT TRANSACTION"
		}
		return renderPage(title, m.form.View("Save"), m.line,
			"esc: cancel │ tab: next field │ ←/→: change choice │ enter: save")
	case modeConfirm:
		tx, _ := m.selected()
		return renderPage("TRANSACTIONS", m.listView()+"\n\n"+confirmView(m.describe(tx)), m.line, "")
	default:
		hotKeys := "↑/↓: navigate │ n: new │ e: edit │ d: delete │ c: copy │ r: reload │ esc: back"
		if m.hasMore {
			hotKeys = "m: load more │ " + hotKeys
		}
		return renderPage("TRANSACTIONS", m.listView(), m.line, hotKeys)
	}
}

func (m *TransactionsModel) listView() string {
	var b strings.Builder

	if len(m.items) == 0 && !m.loading {
		b.WriteString("No transactions yet")
	}
	for i, tx := range m.items {
		row := fmt.Sprintf("%s%-10s │ %12s │ %-16s │ %-12s │ %s",
			cursor(i == m.idx),
			formatDate(tx.Date),
			formatSigned(tx.SignedAmount()),
			fitText(m.categoryName(tx.CategoryID), 16),
			fitText(m.accountName(tx.AccountID), 12),
			fitText(tx.Description, 30),
		)
		if i == m.idx {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	switch {
	case m.loading:
		b.WriteString("\n" + m.spinner.View() + " Loading...")
	case m.hasMore:
		b.WriteString("\n(more available, press m)")
	}

	return strings.TrimRight(b.String(), "\n")
}

// ── commands ────────────────────────────────────────────────────────────────

func (m *TransactionsModel) cmdReload() tea.Cmd {
	ctx := m.ctx
	feed := m.feed

	return func() tea.Msg {
		state, err := feed.Reload(ctx)
		return feedLoadedMsg{state: state, err: err}
	}
}

func (m *TransactionsModel) cmdLoadNext() tea.Cmd {
	ctx := m.ctx
	feed := m.feed

	return func() tea.Msg {
		state, err := feed.LoadNext(ctx)
		return feedLoadedMsg{state: state, err: err}
	}
}

func (m *TransactionsModel) cmdLookups() tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts
	categories := m.categories

	return func() tea.Msg {
		accountList, err := accounts.List(ctx)
		if err != nil {
			return lookupsLoadedMsg{err: err}
		}
		categoryList, err := categories.List(ctx)
		if err != nil {
			return lookupsLoadedMsg{err: err}
		}
		return lookupsLoadedMsg{accounts: accountList, categories: categoryList}
	}
}

func (m *TransactionsModel) cmdSave(tx models.Transaction) tea.Cmd {
	ctx := m.ctx
	svc := m.transactions

	return func() tea.Msg {
		return savedMsg{err: svc.Save(ctx, tx)}
	}
}

func (m *TransactionsModel) cmdDelete(id models.ID) tea.Cmd {
	ctx := m.ctx
	svc := m.transactions

	return func() tea.Msg {
		return savedMsg{err: svc.Delete(ctx, id)}
	}
}

func savedText(deleted bool) string {
	if deleted {
		return "Deleted"
	}
	return "Saved"
}

// ── choices ─────────────────────────────────────────────────────────────────

func typeChoices() []choice {
	return []choice{
		{label: "Expense", value: string(models.Expense)},
		{label: "Income", value: string(models.Income)},
	}
}

func accountChoices(accounts []models.Account) []choice {
	out := make([]choice, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, choice{label: a.Name, value: a.ID.String()})
	}
	return out
}

func categoryChoices(categories []models.Category) []choice {
	out := make([]choice, 0, len(categories))
	for _, c := range categories {
		out = append(out, choice{label: c.Name, value: c.ID.String()})
	}
	return out
}
