// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	loginEmail = iota
	loginPassword
)

// LoginModel is the sign-in screen. A successful [loginResultMsg] is picked
// up by [RootModel], which moves on to the page the user originally asked
// for.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form formModel
	line statusLine
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newLoginForm(),
	}
}

func newLoginForm() formModel {
	return newForm(
		textField("Email", "email", false),
		textField("Password", "password", true),
	)
}

func (m *LoginModel) Init() tea.Cmd {
	m.form.submitting = false
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.line.ok(msg.text)
		if msg.email != "" {
			m.form.setValue(loginEmail, msg.email)
			m.form.focusField(loginPassword)
		}
		return m, nil
	case loginResultMsg:
		m.form.submitting = false
		if msg.err != nil {
			// a 401 here means wrong credentials, not an expired session
			m.line.fail(service.UserMessage(msg.err, app.FallbackLogin))
			return m, nil
		}
		m.line.clear()
		m.form = newLoginForm()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.register):
			m.line.clear()
			return m, func() tea.Msg { return NavigateTo{Path: guard.PathRegister} }
		case key.Matches(msg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			m.line.clear()
			m.form.submitting = true
			return m, m.cmdLogin(models.Credentials{
				Email:    m.form.value(loginEmail),
				Password: m.form.fields[loginPassword].input.Value(),
			})
		}
	}

	cmd, _ := m.form.update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	return renderPage("SIGN IN", m.form.View("Sign in"), m.line,
		"tab: next field │ enter: sign in │ ctrl+r: create account")
}

func (m *LoginModel) cmdLogin(credentials models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Login(ctx, credentials)
		return loginResultMsg{user: user, err: err}
	}
}
