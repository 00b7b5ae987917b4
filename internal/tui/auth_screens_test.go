package tui

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/internal/guard"
	"github.com/MKhiriev/go-fin-tracker/internal/mock"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// ── login ───────────────────────────────────────────────────────────────────

func TestLogin_SubmitsTrimmedEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	m := NewLoginModel(context.Background(), auth)

	m.form.setValue(loginEmail, "  alice@example.com ")
	m.form.setValue(loginPassword, " secret1 ")

	auth.EXPECT().
		Login(gomock.Any(), models.Credentials{Email: "alice@example.com", Password: " secret1 "}).
		Return(models.User{ID: "1"}, nil)

	_, cmd := m.Update(press("enter"))
	require.True(t, m.form.submitting)

	result, ok := find[loginResultMsg](collect(t, cmd))
	require.True(t, ok)
	assert.NoError(t, result.err)

	_, again := m.Update(press("enter"))
	assert.Nil(t, again, "no second request while submitting")

	m.Update(result)
	assert.False(t, m.form.submitting)
	assert.Empty(t, m.form.value(loginEmail), "form is reset after sign-in")
}

func TestLogin_RejectedCredentialsDoNotExpireSession(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)
	m.form.submitting = true

	_, cmd := m.Update(loginResultMsg{err: adapter.NewRequestError(http.StatusUnauthorized, "invalid email/password")})

	assert.Nil(t, cmd)
	assert.False(t, m.form.submitting)
	assert.Equal(t, "invalid email/password", m.line.errMsg)
}

func TestLogin_ValidationMessage(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	m.Update(loginResultMsg{err: &service.ValidationError{Field: "email", Reason: "is required"}})
	assert.Equal(t, "email is required", m.line.errMsg)
	assert.Contains(t, m.View(), "email is required")
}

func TestLogin_NoticePrefillsEmail(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	m.Update(noticeMsg{text: "Account created, please sign in", email: "bob@example.com"})

	assert.Equal(t, "bob@example.com", m.form.value(loginEmail))
	assert.Equal(t, loginPassword, m.form.focus)
	assert.Equal(t, "Account created, please sign in", m.line.status)
}

func TestLogin_RegisterShortcut(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	_, cmd := m.Update(press("ctrl+r"))
	nav, ok := find[NavigateTo](collect(t, cmd))
	require.True(t, ok)
	assert.Equal(t, guard.PathRegister, nav.Path)
}

// ── register ────────────────────────────────────────────────────────────────

func TestRegister_SuccessOpensLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	m := NewRegisterModel(context.Background(), auth)

	m.form.setValue(registerName, "Bob")
	m.form.setValue(registerEmail, "bob@example.com")
	m.form.setValue(registerPassword, "secret1")
	m.form.setValue(registerConfirm, "secret1")

	auth.EXPECT().Register(gomock.Any(), models.RegisterRequest{
		Name:            "Bob",
		Email:           "bob@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}).Return(nil)

	_, cmd := m.Update(press("enter"))
	result, ok := find[registerResultMsg](collect(t, cmd))
	require.True(t, ok)

	_, cmd = m.Update(result)
	nav, ok := find[NavigateTo](collect(t, cmd))
	require.True(t, ok)
	assert.Equal(t, guard.PathLogin, nav.Path)
	assert.Equal(t, noticeMsg{text: "Account created, please sign in", email: "bob@example.com"}, nav.Payload)
	assert.Empty(t, m.form.value(registerName))
}

func TestRegister_FailureKeepsForm(t *testing.T) {
	m := NewRegisterModel(context.Background(), nil)
	m.form.setValue(registerName, "Bob")
	m.form.submitting = true

	_, cmd := m.Update(registerResultMsg{err: &service.ValidationError{Field: "confirmation", Reason: "does not match the password"}})

	assert.Nil(t, cmd)
	assert.Equal(t, "confirmation does not match the password", m.line.errMsg)
	assert.Equal(t, "Bob", m.form.value(registerName))
	assert.False(t, m.form.submitting)
}

func TestRegister_Conflict(t *testing.T) {
	m := NewRegisterModel(context.Background(), nil)

	m.Update(registerResultMsg{err: adapter.NewRequestError(http.StatusConflict, "email already exists")})
	assert.Equal(t, "email already exists", m.line.errMsg)
}
