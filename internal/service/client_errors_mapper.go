// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/internal/app"
)

// UserMessage turns a service error into the text shown on screen.
// fallback is used for failed requests whose body carried no message.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message()
	case errors.Is(err, adapter.ErrInvalidCredentialResponse), errors.Is(err, adapter.ErrInvalidResponse):
		return app.FallbackInvalidResponse
	case errors.Is(err, adapter.ErrServerUnavailable):
		return app.FallbackServerUnavailable
	case errors.Is(err, ErrNotEnoughData):
		return err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return app.FallbackServerUnavailable
	}

	return adapter.ServerMessage(err, fallback)
}

// SessionExpired reports whether err means the backend rejected the bearer
// token of a signed-in user.
func SessionExpired(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized)
}
