package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/internal/session"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/internal/tui"
	"github.com/MKhiriev/go-fin-tracker/models"
)

var _ Client = (*App)(nil)

// App owns the client's storages, session and UI.
type App struct {
	storages *store.ClientStorages
	session  *session.Session
	ui       *tui.TUI

	logger *logger.Logger
}

// NewApp opens the token store and wires the session, the HTTP adapter, the
// services and the UI on top of it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	sess := session.New(storages.TokenStore, logger)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, sess, logger)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create server adapter: %w", err), storages.Close())
	}

	services := service.NewClientServices(serverAdapter, sess, cfg.App.PageSize, logger)
	ui := tui.New(services, sess, tui.Options{
		ChartPath: cfg.App.ChartPath,
		BuildInfo: buildInfo,
	}, logger)

	return &App{
		storages: storages,
		session:  sess,
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run shows the UI until the user quits and closes the storages. Quitting
// with ctrl+c is not an error.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := a.storages.Close(); closeErr != nil {
			a.logger.Err(closeErr).Msg("error closing client storages")
			err = errors.Join(err, closeErr)
		}
	}()

	a.logger.Info().Msg("client started")
	err = a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client stopped by user")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
