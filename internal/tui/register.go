package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/guard"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/models"
)

const (
	registerName = iota
	registerEmail
	registerPassword
	registerConfirm
)

// RegisterModel is the sign-up screen. On success it resets the form and
// opens the sign-in screen with the e-mail filled in; registering does not
// sign the user in.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form formModel
	line statusLine
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newRegisterForm(),
	}
}

func newRegisterForm() formModel {
	return newForm(
		textField("Name", "name", false),
		textField("Email", "email", false),
		textField("Password", "password", true),
		textField("Repeat password", "repeat password", true),
	)
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.line.fail(service.UserMessage(msg.err, app.FallbackRegister))
			return m, nil
		}

		m.line.clear()
		m.form = newRegisterForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Path:    guard.PathLogin,
				Payload: noticeMsg{text: "Account created, please sign in", email: msg.email},
			}
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.line.clear()
			return m, func() tea.Msg { return NavigateTo{Path: guard.PathLogin} }
		case key.Matches(msg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			m.line.clear()
			m.form.submitting = true
			return m, m.cmdRegister(models.RegisterRequest{
				Name:            m.form.value(registerName),
				Email:           m.form.value(registerEmail),
				Password:        m.form.fields[registerPassword].input.Value(),
				ConfirmPassword: m.form.fields[registerConfirm].input.Value(),
			})
		}
	}

	cmd, _ := m.form.update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	return renderPage("CREATE ACCOUNT", m.form.View("Create account"), m.line,
		"esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		err := auth.Register(ctx, req)
		return registerResultMsg{email: req.Email, err: err}
	}
}
