// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import "errors"

var (
	ErrInvalidData         = errors.New("invalid data provided")
	ErrInvalidPagination   = errors.New("invalid pagination")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid email/password")
	ErrInvalidToken        = errors.New("token is expired or invalid")
	ErrNotFound            = errors.New("not found")
	ErrTokenCreationFailed = errors.New("token creation failed")
)
