// Package tui is the terminal front end of the client: a bubbletea program
// whose router sends every navigation through the route guard.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fin-tracker/internal/guard"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// Options tune the UI.
type Options struct {
	// ChartPath is where the dashboard writes the balance chart.
	ChartPath string
	BuildInfo models.AppBuildInfo
}

type TUI struct {
	services *service.ClientServices
	session  Session
	opts     Options
	logger   *logger.Logger
}

func New(services *service.ClientServices, sess Session, opts Options, logger *logger.Logger) *TUI {
	return &TUI{
		services: services,
		session:  sess,
		opts:     opts,
		logger:   logger,
	}
}

// newRoot builds the router and every page.
func (t *TUI) newRoot(ctx context.Context) RootModel {
	pages := map[guard.Path]tea.Model{
		guard.PathLogin:        NewLoginModel(ctx, t.services.AuthService),
		guard.PathRegister:     NewRegisterModel(ctx, t.services.AuthService),
		guard.PathHome:         NewMenuModel(t.session.User),
		guard.PathTransactions: NewTransactionsModel(ctx, t.services.TransactionFeed, t.services),
		guard.PathCategories:   NewCategoriesModel(ctx, t.services.CategoryService),
		guard.PathAccounts:     NewAccountsModel(ctx, t.services.AccountService),
		guard.PathDashboard:    NewDashboardModel(ctx, t.services.DashboardService, t.opts.ChartPath),
	}

	return NewRootModel(ctx, t.session, t.services.AuthService, pages, guard.PathHome, t.opts.BuildInfo, t.logger)
}

// Run shows the UI until the user quits. It returns [ErrUserQuit] when the
// user pressed ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRoot(ctx)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
