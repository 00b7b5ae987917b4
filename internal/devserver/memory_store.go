package devserver

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-fin-tracker/models"
)

type userRecord struct {
	user         models.User
	passwordHash []byte
}

// ledger holds the records of one user in insertion order.
type ledger struct {
	accounts     []models.Account
	categories   []models.Category
	transactions []models.Transaction
}

type memoryStore struct {
	mu sync.RWMutex

	seq     int64
	users   map[models.ID]userRecord
	emails  map[string]models.ID
	ledgers map[models.ID]*ledger
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:   make(map[models.ID]userRecord),
		emails:  make(map[string]models.ID),
		ledgers: make(map[models.ID]*ledger),
	}
}

// nextIDLocked must be called with mu held for writing.
func (s *memoryStore) nextIDLocked() models.ID {
	s.seq++
	return models.ID(strconv.FormatInt(s.seq, 10))
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *memoryStore) createUser(user models.User, passwordHash []byte) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := emailKey(user.Email)
	if _, ok := s.emails[key]; ok {
		return models.User{}, ErrEmailAlreadyExists
	}

	user.ID = s.nextIDLocked()
	s.users[user.ID] = userRecord{user: user, passwordHash: passwordHash}
	s.emails[key] = user.ID
	s.ledgers[user.ID] = &ledger{}
	return user, nil
}

func (s *memoryStore) userByEmail(email string) (userRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[emailKey(email)]
	if !ok {
		return userRecord{}, false
	}
	rec, ok := s.users[id]
	return rec, ok
}

func (s *memoryStore) userExists(id models.ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[id]
	return ok
}

// read runs fn with the user's ledger under a read lock.
func (s *memoryStore) read(userID models.ID, fn func(l *ledger) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.ledgers[userID]
	if !ok {
		return ErrNotFound
	}
	return fn(l)
}

// write runs fn with the user's ledger under the write lock.
func (s *memoryStore) write(userID models.ID, fn func(l *ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.ledgers[userID]
	if !ok {
		return ErrNotFound
	}
	return fn(l)
}

func indexByID[T any](items []T, id models.ID, idOf func(T) models.ID) int {
	return slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
}

func accountID(a models.Account) models.ID         { return a.ID }
func categoryID(c models.Category) models.ID       { return c.ID }
func transactionID(t models.Transaction) models.ID { return t.ID }
