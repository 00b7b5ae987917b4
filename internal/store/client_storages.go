package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
)

// ClientStorages groups the client-side storage components.
type ClientStorages struct {
	// TokenStore keeps the authentication token and user profile.
	TokenStore TokenStore

	db *DB
}

// NewClientStorages initialises the client storage layer. For the
// [config.MemoryDSN] DSN it returns an in-memory token store; otherwise it
// opens the SQLite file, creating it if necessary, and runs the embedded
// migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	if cfg.DB.DSN == config.MemoryDSN {
		return &ClientStorages{TokenStore: NewMemoryTokenStore()}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TokenStore: NewSQLiteTokenStore(db, logger),
		db:         db,
	}, nil
}

// Close releases the underlying connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
