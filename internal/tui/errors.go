// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
)

// ErrUserQuit is returned by [TUI.Run] when the user pressed ctrl+c.
var ErrUserQuit = errors.New("user quit")

// failure turns err into the text of a screen's error line. A request
// rejected with 401 also ends the session.
func failure(err error, fallback string) (string, tea.Cmd) {
	if service.SessionExpired(err) {
		return app.FallbackSessionExpired, func() tea.Msg { return sessionExpiredMsg{} }
	}
	return service.UserMessage(err, fallback), nil
}

// ignorable reports feed errors that must not reach the screen.
func ignorable(err error) bool {
	return errors.Is(err, service.ErrSuperseded) || errors.Is(err, service.ErrLoadInProgress)
}
