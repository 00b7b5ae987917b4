package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/guard"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/internal/session"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// Session is the part of [session.Session] the UI reads.
type Session interface {
	Init(ctx context.Context) error
	State() session.State
	User() (models.User, bool)
}

// RootModel is the TUI router:
//  1. reads the persisted session while showing a placeholder
//  2. runs every navigation through [guard.Evaluate]
//  3. handles global keys, sign-in, sign-out and expired sessions
//  4. delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	session Session
	auth    service.ClientAuthService
	logger  *logger.Logger

	pages   map[guard.Path]tea.Model
	current guard.Path

	// pending is the page requested while the session was initializing.
	pending guard.Path
	// from is the protected page the user was redirected away from.
	from guard.Path

	spinner   spinner.Model
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers pages and asks for startPath once the session is
// ready.
func NewRootModel(ctx context.Context, sess Session, auth service.ClientAuthService, pages map[guard.Path]tea.Model,
	startPath guard.Path, buildInfo models.AppBuildInfo, logger *logger.Logger) RootModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return RootModel{
		ctx:       ctx,
		session:   sess,
		auth:      auth,
		logger:    logger,
		pages:     pages,
		pending:   startPath,
		spinner:   s,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(r.spinner.Tick, r.cmdInitSession())
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(msg, keys.version) && r.current == guard.PathHome:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(msg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		case key.Matches(msg, keys.logout) && r.session.State() == session.Authenticated:
			return r, r.cmdLogout(false)
		}
		if r.showBuildInfo || r.session.State() == session.Initializing {
			return r, nil
		}

	case spinner.TickMsg:
		if r.session.State() != session.Initializing {
			return r.delegate(msg)
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd

	case sessionReadyMsg:
		if msg.err != nil {
			r.logger.Warn().Err(msg.err).Msg("session restore failed")
		}
		return r.navigate(r.pending, nil)

	case NavigateTo:
		return r.navigate(msg.Path, msg.Payload)

	case loginResultMsg:
		next, cmd := r.delegate(msg)
		if msg.err != nil {
			return next, cmd
		}
		root := next.(RootModel)
		target := guard.ReturnPath(root.from)
		root.from = ""
		opened, navCmd := root.navigate(target, nil)
		return opened, tea.Batch(cmd, navCmd)

	case logoutRequestMsg:
		return r, r.cmdLogout(false)

	case sessionExpiredMsg:
		return r, r.cmdLogout(true)

	case loggedOutMsg:
		var payload any
		if msg.expired {
			r.from = msg.from
			payload = noticeMsg{text: app.FallbackSessionExpired}
		} else {
			r.from = ""
		}
		return r.navigate(guard.PathLogin, payload)
	}

	return r.delegate(msg)
}

// navigate opens path if the guard lets the current session see it.
func (r RootModel) navigate(path guard.Path, payload any) (tea.Model, tea.Cmd) {
	decision := guard.Evaluate(r.session.State(), path)
	r.logger.Debug().
		Str("path", string(path)).
		Str("action", decision.Action.String()).
		Msg("navigation")

	switch decision.Action {
	case guard.Placeholder:
		r.pending = path
		return r, nil
	case guard.Redirect:
		r.from = decision.From
		path = decision.Target
	}

	page, ok := r.pages[path]
	if !ok {
		path = guard.PathHome
		page = r.pages[path]
	}

	r.showBuildInfo = false
	r.current = path

	cmds := []tea.Cmd{page.Init()}
	if payload != nil {
		cmds = append(cmds, func() tea.Msg { return payload })
	}
	return r, tea.Batch(cmds...)
}

func (r RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.session.State() == session.Initializing {
		return appStyle.Render(r.spinner.View() + " Restoring session...")
	}
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	page, ok := r.pages[r.current]
	if !ok {
		return appStyle.Render(renderPage("FIN TRACKER", "", statusLine{}, ""))
	}
	return appStyle.Render(page.View())
}

func (r RootModel) cmdInitSession() tea.Cmd {
	ctx := r.ctx
	sess := r.session

	return func() tea.Msg {
		return sessionReadyMsg{err: sess.Init(ctx)}
	}
}

func (r RootModel) cmdLogout(expired bool) tea.Cmd {
	ctx := r.ctx
	auth := r.auth
	log := r.logger
	from := r.current

	return func() tea.Msg {
		if err := auth.Logout(ctx); err != nil {
			log.Warn().Err(err).Msg("logout did not clear the local store")
		}
		return loggedOutMsg{expired: expired, from: from}
	}
}
