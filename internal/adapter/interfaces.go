// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the finance backend.
//
// [ServerAdapter] decouples the service layer from HTTP. The implementation
// ([NewHTTPServerAdapter]) is a single resty pipeline: every request passes
// through a hook that attaches the bearer token held by a [TokenSource], and
// every non-2xx response is mapped to a [*RequestError] that matches
// [ErrRequestFailed] and a status sentinel such as [ErrUnauthorized] via
// [errors.Is]. Collection responses are normalised with package normalize.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fin-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// TokenSource supplies the bearer token for outgoing requests. An empty
// token means the request is sent without credentials.
type TokenSource interface {
	Token() string
}

// ServerAdapter defines communication with the finance backend.
type ServerAdapter interface {
	// Register creates a user. The backend does not sign the user in.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login exchanges credentials for a token and a user profile. Returns
	// [ErrInvalidCredentialResponse] when a 2xx body carries no token.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error)

	// ListCategories returns all categories of the current user.
	ListCategories(ctx context.Context) ([]models.Category, error)
	// CreateCategory creates a category.
	CreateCategory(ctx context.Context, category models.Category) error
	// UpdateCategory replaces the category with the given id.
	UpdateCategory(ctx context.Context, id models.ID, category models.Category) error
	// DeleteCategory removes the category with the given id.
	DeleteCategory(ctx context.Context, id models.ID) error

	// ListAccounts returns the accounts of the current user.
	ListAccounts(ctx context.Context) ([]models.Account, error)
	// CreateAccount creates an account.
	CreateAccount(ctx context.Context, account models.Account) error
	// UpdateAccount updates an account; the id travels in the body.
	UpdateAccount(ctx context.Context, account models.Account) error

	// ListTransactions returns one page (1-based) of transactions.
	ListTransactions(ctx context.Context, page, limit int) (models.TransactionPage, error)
	// CreateTransaction creates a transaction.
	CreateTransaction(ctx context.Context, transaction models.Transaction) error
	// UpdateTransaction replaces the transaction with the given id.
	UpdateTransaction(ctx context.Context, id models.ID, transaction models.Transaction) error
	// DeleteTransaction removes the transaction with the given id.
	DeleteTransaction(ctx context.Context, id models.ID) error
}
