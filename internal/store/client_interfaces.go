package store

import (
	"context"

	"github.com/MKhiriev/go-fin-tracker/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// TokenStore persists the authentication token and the user profile across
// restarts. The two values are written, read and cleared as a pair.
type TokenStore interface {
	// Save writes the pair in a single unit of work.
	Save(ctx context.Context, user models.User, token string) error
	// Load returns the persisted pair and true, or a zero value and false
	// when nothing usable is stored. A half-present or unparseable record is
	// purged and reported as absent. The error is non-nil only for I/O
	// failures of the underlying storage.
	Load(ctx context.Context) (models.PersistedSession, bool, error)
	// Clear removes both values.
	Clear(ctx context.Context) error
}
