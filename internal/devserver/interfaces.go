// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"context"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// Service is what the HTTP handler of the development backend needs. Every
// record operation is scoped to the user the bearer token was issued to.
type Service interface {
	// Register creates a user. The password is stored as a bcrypt hash.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login checks the credentials and issues a token.
	Login(ctx context.Context, credentials models.Credentials) (string, models.User, error)
	// ParseToken validates a token and returns the user it was issued to.
	ParseToken(ctx context.Context, token string) (models.ID, error)

	ListAccounts(ctx context.Context, userID models.ID) ([]models.Account, error)
	CreateAccount(ctx context.Context, userID models.ID, account models.Account) (models.Account, error)
	UpdateAccount(ctx context.Context, userID models.ID, account models.Account) (models.Account, error)

	ListCategories(ctx context.Context, userID models.ID) ([]models.Category, error)
	CreateCategory(ctx context.Context, userID models.ID, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, userID, id models.ID, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, userID, id models.ID) error

	// ListTransactions returns one page, newest first. page and limit are
	// 1-based and must be positive.
	ListTransactions(ctx context.Context, userID models.ID, page, limit int) (models.TransactionPage, error)
	CreateTransaction(ctx context.Context, userID models.ID, transaction models.Transaction) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id models.ID, transaction models.Transaction) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id models.ID) error
}
