// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It wires the persisted token store, the session, the HTTP adapter and the
// services into the terminal UI and owns their lifecycle.
package client
