// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message constants.
//
// Msg* constants are written by the development backend into response bodies.
// Fallback* constants are shown by the terminal client when a failed request
// carries no message of its own. Keeping both in one place keeps the wording
// consistent between the two sides.
package app

// Messages written by the development backend.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied e-mail/password
	// combination does not match any existing user.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoToken is returned when a protected endpoint is called without an
	// Authorization header.
	MsgNoToken = "authorization token is required"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the e-mail is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgNotFound is returned when the addressed record does not exist for
	// the current user.
	MsgNotFound = "not found"

	// MsgInvalidPagination is returned for non-positive page or limit.
	MsgInvalidPagination = "page and limit must be positive integers"
)

// Fallback messages shown by the client.
const (
	FallbackRequestFailed        = "request failed"
	FallbackInvalidResponse      = "invalid response from server"
	FallbackServerUnavailable    = "server is unavailable, check that it is running and try again"
	FallbackLogin                = "could not sign in"
	FallbackRegister             = "could not create the account"
	FallbackLoadAccounts         = "could not load accounts"
	FallbackSaveAccount          = "could not save the account"
	FallbackLoadCategories       = "could not load categories"
	FallbackSaveCategory         = "could not save the category"
	FallbackDeleteCategory       = "could not delete the category"
	FallbackLoadTransactions     = "could not load transactions"
	FallbackSaveTransaction      = "could not save the transaction"
	FallbackDeleteTransaction    = "could not delete the transaction"
	FallbackLoadDashboard        = "could not load the dashboard"
	FallbackExportChart          = "could not export the chart"
	FallbackClipboardUnavailable = "clipboard is not available"
	FallbackSessionExpired       = "session expired, please sign in again"
)
