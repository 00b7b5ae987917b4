package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-fin-tracker/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionManager is the part of the session the auth service drives.
// *session.Session implements it.
type SessionManager interface {
	// Login persists the pair and marks the session authenticated.
	Login(ctx context.Context, user models.User, token string) error
	// Logout forgets the pair and marks the session anonymous.
	Logout(ctx context.Context) error
}

// ClientAuthService defines sign-up, sign-in and sign-out.
type ClientAuthService interface {
	// Register validates the form and creates the user on the backend. It
	// does not sign the user in.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login validates the credentials, exchanges them for a token and
	// stores the token and profile in the session. The session is left
	// untouched on any failure.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Logout signs the user out. The session ends up anonymous even when
	// clearing the local store fails.
	Logout(ctx context.Context) error
}

// ClientAccountService manages accounts.
type ClientAccountService interface {
	// List returns all accounts of the current user.
	List(ctx context.Context) ([]models.Account, error)

	// Save creates the account when it has no ID and updates it otherwise.
	Save(ctx context.Context, account models.Account) error
}

// ClientCategoryService manages categories.
type ClientCategoryService interface {
	// List returns all categories of the current user.
	List(ctx context.Context) ([]models.Category, error)

	// ListByType returns only categories of entry type t.
	ListByType(ctx context.Context, t models.EntryType) ([]models.Category, error)

	// Save creates the category when it has no ID and updates it otherwise.
	Save(ctx context.Context, category models.Category) error

	// Delete removes a category.
	Delete(ctx context.Context, id models.ID) error
}

// ClientTransactionService manages single transactions. Listing goes
// through [TransactionFeed].
type ClientTransactionService interface {
	// Save creates the transaction when it has no ID and updates it
	// otherwise.
	Save(ctx context.Context, transaction models.Transaction) error

	// Delete removes a transaction.
	Delete(ctx context.Context, id models.ID) error
}

// ClientDashboardService builds the dashboard.
type ClientDashboardService interface {
	// Summary loads accounts, categories and the first transaction page
	// concurrently and aggregates them.
	Summary(ctx context.Context) (models.DashboardSummary, error)

	// RenderBalanceChart writes a PNG line chart of the balance over the
	// transactions in summary.
	RenderBalanceChart(summary models.DashboardSummary, w io.Writer) error
}
