// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrEmptyToken is returned by Login when the token is empty.
	ErrEmptyToken = errors.New("empty token")
	// ErrEmptyUser is returned by Login when the user profile carries no data.
	ErrEmptyUser = errors.New("empty user")
)
