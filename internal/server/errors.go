// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoAddress = errors.New("dev backend address is not configured")
	errNoHandler = errors.New("dev backend has no routes")
)
