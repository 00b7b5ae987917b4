package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// memoryTokenStore keeps the pair for the lifetime of the process. The user
// is held in its serialized form so it goes through the same decode path as
// the SQLite store.
type memoryTokenStore struct {
	mu      sync.Mutex
	entries map[string]string
}

// NewMemoryTokenStore returns a process-lifetime [TokenStore].
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{entries: make(map[string]string, 2)}
}

func (m *memoryTokenStore) Save(_ context.Context, user models.User, token string) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[keyAuthToken] = token
	m.entries[keyUser] = string(rawUser)
	return nil
}

func (m *memoryTokenStore) Load(_ context.Context) (models.PersistedSession, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.entries) == 0 {
		return models.PersistedSession{}, false, nil
	}

	session, err := decodePersisted(m.entries[keyAuthToken], m.entries[keyUser])
	if err != nil {
		clear(m.entries)
		return models.PersistedSession{}, false, nil
	}

	return session, true, nil
}

func (m *memoryTokenStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.entries)
	return nil
}
