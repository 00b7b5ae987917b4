package tui

import (
	"github.com/MKhiriev/go-fin-tracker/internal/guard"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// NavigateTo asks the router to open Path. Payload, when set, is delivered
// to the opened page right after its Init.
type NavigateTo struct {
	Path    guard.Path
	Payload any
}

// sessionReadyMsg reports that the persisted session has been read.
type sessionReadyMsg struct {
	err error
}

// sessionExpiredMsg is emitted by a page whose request was rejected with 401.
type sessionExpiredMsg struct{}

// loggedOutMsg reports a finished logout. from is the page to come back to
// after the next login.
type loggedOutMsg struct {
	expired bool
	from    guard.Path
}

type loginResultMsg struct {
	user models.User
	err  error
}

type registerResultMsg struct {
	email string
	err   error
}

// noticeMsg carries a one-off status line for the page it is delivered to.
type noticeMsg struct {
	text string
	// email pre-fills the login form.
	email string
}

type feedLoadedMsg struct {
	state service.FeedState
	err   error
}

type lookupsLoadedMsg struct {
	accounts   []models.Account
	categories []models.Category
	err        error
}

type accountsLoadedMsg struct {
	accounts []models.Account
	err      error
}

type categoriesLoadedMsg struct {
	categories []models.Category
	err        error
}

type summaryLoadedMsg struct {
	summary models.DashboardSummary
	err     error
}

// savedMsg reports a finished create, update or delete.
type savedMsg struct {
	err error
}

type chartExportedMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

// logoutRequestMsg asks the router to sign the user out.
type logoutRequestMsg struct{}
