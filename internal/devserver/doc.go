// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devserver is an in-memory finance backend for local development
// and end-to-end tests of the client.
//
// It keeps users, accounts, categories and transactions in process memory,
// hashes passwords with bcrypt and issues HS256 JWT bearer tokens. Nothing
// survives a restart. The HTTP surface lives in package handler/http.
package devserver
