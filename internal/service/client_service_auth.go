package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/session"
	"github.com/MKhiriev/go-fin-tracker/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	session SessionManager
	logger  *logger.Logger

	// onLogout drops data cached for the signed-out user.
	onLogout func()
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, sessions SessionManager, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, session: sessions, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := validateRegister(req); err != nil {
		return err
	}

	if err := a.adapter.Register(ctx, req); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	a.logger.Info().Str("func", "clientAuthService.Register").Msg("user registered")
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	credentials.Email = strings.TrimSpace(credentials.Email)

	if err := validateCredentials(credentials); err != nil {
		return models.User{}, err
	}

	result, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	if err = a.session.Login(ctx, result.User, result.Token); err != nil {
		// Deliberately stricter than the extraction rule: a token with an
		// empty profile ({"user":{}}) cannot form a session.
		if errors.Is(err, session.ErrEmptyUser) || errors.Is(err, session.ErrEmptyToken) {
			return models.User{}, fmt.Errorf("login: %w: %w", adapter.ErrInvalidCredentialResponse, err)
		}
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	a.logger.Info().Str("func", "clientAuthService.Login").Str("user_id", result.User.ID.String()).Msg("signed in")
	return result.User, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if a.onLogout != nil {
		a.onLogout()
	}
	if err := a.session.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	a.logger.Info().Str("func", "clientAuthService.Logout").Msg("signed out")
	return nil
}
