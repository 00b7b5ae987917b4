package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/models"
)

type sqliteTokenStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteTokenStore returns a [TokenStore] backed by the local_session
// table of db.
func NewSQLiteTokenStore(db *DB, log *logger.Logger) TokenStore {
	return &sqliteTokenStore{
		db:     db,
		logger: log,
	}
}

func (s *sqliteTokenStore) Save(ctx context.Context, user models.User, token string) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteTokenStore.Save").Msg("error beginning transaction")
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, entry := range [][2]string{{keyAuthToken, token}, {keyUser, string(rawUser)}} {
		query, args, err := buildUpsertEntryQuery(entry[0], entry[1])
		if err != nil {
			return fmt.Errorf("build upsert query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			s.logger.Err(err).Str("func", "sqliteTokenStore.Save").Str("key", entry[0]).Msg("error writing session entry")
			return fmt.Errorf("write %s: %w", entry[0], err)
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Err(err).Str("func", "sqliteTokenStore.Save").Msg("error committing transaction")
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (s *sqliteTokenStore) Load(ctx context.Context) (models.PersistedSession, bool, error) {
	query, args, err := buildSelectEntriesQuery()
	if err != nil {
		return models.PersistedSession{}, false, fmt.Errorf("build select query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteTokenStore.Load").Msg("error reading session entries")
		return models.PersistedSession{}, false, fmt.Errorf("read session: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]string, 2)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return models.PersistedSession{}, false, fmt.Errorf("scan session entry: %w", err)
		}
		entries[key] = value
	}
	if err = rows.Err(); err != nil {
		return models.PersistedSession{}, false, fmt.Errorf("iterate session entries: %w", err)
	}

	return s.restore(ctx, entries)
}

// restore turns raw entries into a session, purging anything half-present or
// unparseable.
func (s *sqliteTokenStore) restore(ctx context.Context, entries map[string]string) (models.PersistedSession, bool, error) {
	if len(entries) == 0 {
		return models.PersistedSession{}, false, nil
	}

	// a missing entry decodes as empty and is rejected
	session, err := decodePersisted(entries[keyAuthToken], entries[keyUser])
	if err == nil {
		return session, true, nil
	}

	s.logger.Warn().Err(err).Str("func", "sqliteTokenStore.Load").Msg("purging persisted session")
	if clearErr := s.Clear(ctx); clearErr != nil {
		return models.PersistedSession{}, false, clearErr
	}

	return models.PersistedSession{}, false, nil
}

func (s *sqliteTokenStore) Clear(ctx context.Context) error {
	query, args, err := buildDeleteEntriesQuery()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteTokenStore.Clear").Msg("error clearing session")
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

// decodePersisted validates a (token, user JSON) pair. Both parts must be
// non-empty and the user must decode into a non-empty profile.
func decodePersisted(token, rawUser string) (models.PersistedSession, error) {
	if token == "" {
		return models.PersistedSession{}, fmt.Errorf("%w: empty token", ErrCorruptSession)
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return models.PersistedSession{}, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	if user.IsEmpty() {
		return models.PersistedSession{}, fmt.Errorf("%w: empty user", ErrCorruptSession)
	}

	return models.PersistedSession{Token: token, User: user}, nil
}
