package devserver

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
)

const (
	minPasswordLength = 6
	// MaxPageLimit caps the page size of the transaction listing.
	MaxPageLimit = 100
)

var _ Service = (*Backend)(nil)

// Backend is the in-memory implementation of [Service].
type Backend struct {
	store *memoryStore
	cfg   config.DevServerConfig
	cost  int

	logger *logger.Logger
}

// Option customises a [Backend].
type Option func(*Backend)

// WithPasswordCost sets the bcrypt cost. Tests use bcrypt.MinCost.
func WithPasswordCost(cost int) Option {
	return func(b *Backend) {
		b.cost = cost
	}
}

// New returns an empty backend signing tokens with the settings in cfg.
func New(cfg config.DevServerConfig, logger *logger.Logger, opts ...Option) *Backend {
	b := &Backend{
		store:  newMemoryStore(),
		cfg:    cfg,
		cost:   bcrypt.DefaultCost,
		logger: logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || utf8.RuneCountInString(req.Password) < minPasswordLength {
		return models.User{}, ErrInvalidData
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), b.cost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := b.store.createUser(models.User{Name: name, Email: email}, hash)
	if err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Info().Str("user_id", user.ID.String()).Msg("user registered")
	return user, nil
}

func (b *Backend) Login(ctx context.Context, credentials models.Credentials) (string, models.User, error) {
	if strings.TrimSpace(credentials.Email) == "" || credentials.Password == "" {
		return "", models.User{}, ErrInvalidData
	}

	rec, ok := b.store.userByEmail(credentials.Email)
	if !ok {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(credentials.Password)); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(b.cfg.TokenIssuer, rec.user.ID, b.cfg.TokenDuration, b.cfg.TokenSignKey)
	if err != nil {
		return "", models.User{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	logger.FromContext(ctx).Info().Str("user_id", rec.user.ID.String()).Msg("user logged in")
	return token, rec.user, nil
}

func (b *Backend) ParseToken(_ context.Context, token string) (models.ID, error) {
	userID, err := utils.ValidateAndParseJWTToken(token, b.cfg.TokenSignKey, b.cfg.TokenIssuer)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	// tokens of a previous process refer to users that no longer exist
	if !b.store.userExists(userID) {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// ── accounts ────────────────────────────────────────────────────────────────

func (b *Backend) ListAccounts(_ context.Context, userID models.ID) ([]models.Account, error) {
	var out []models.Account
	err := b.store.read(userID, func(l *ledger) error {
		out = slices.Clone(l.accounts)
		return nil
	})
	return nonNil(out), err
}

func (b *Backend) CreateAccount(_ context.Context, userID models.ID, account models.Account) (models.Account, error) {
	account.Name = strings.TrimSpace(account.Name)
	if account.Name == "" {
		return models.Account{}, ErrInvalidData
	}

	err := b.store.write(userID, func(l *ledger) error {
		account.ID = b.store.nextIDLocked()
		l.accounts = append(l.accounts, account)
		return nil
	})
	return account, err
}

func (b *Backend) UpdateAccount(_ context.Context, userID models.ID, account models.Account) (models.Account, error) {
	account.Name = strings.TrimSpace(account.Name)
	if account.ID.IsZero() || account.Name == "" {
		return models.Account{}, ErrInvalidData
	}

	err := b.store.write(userID, func(l *ledger) error {
		i := indexByID(l.accounts, account.ID, accountID)
		if i < 0 {
			return ErrNotFound
		}
		l.accounts[i] = account
		return nil
	})
	return account, err
}

// ── categories ──────────────────────────────────────────────────────────────

func (b *Backend) ListCategories(_ context.Context, userID models.ID) ([]models.Category, error) {
	var out []models.Category
	err := b.store.read(userID, func(l *ledger) error {
		out = slices.Clone(l.categories)
		return nil
	})
	return nonNil(out), err
}

func validCategory(c models.Category) bool {
	return strings.TrimSpace(c.Name) != "" && c.Type.Valid()
}

func (b *Backend) CreateCategory(_ context.Context, userID models.ID, category models.Category) (models.Category, error) {
	if !validCategory(category) {
		return models.Category{}, ErrInvalidData
	}
	category.Name = strings.TrimSpace(category.Name)

	err := b.store.write(userID, func(l *ledger) error {
		category.ID = b.store.nextIDLocked()
		l.categories = append(l.categories, category)
		return nil
	})
	return category, err
}

func (b *Backend) UpdateCategory(_ context.Context, userID, id models.ID, category models.Category) (models.Category, error) {
	if !validCategory(category) {
		return models.Category{}, ErrInvalidData
	}
	category.Name = strings.TrimSpace(category.Name)
	category.ID = id

	err := b.store.write(userID, func(l *ledger) error {
		i := indexByID(l.categories, id, categoryID)
		if i < 0 {
			return ErrNotFound
		}
		l.categories[i] = category
		return nil
	})
	return category, err
}

func (b *Backend) DeleteCategory(_ context.Context, userID, id models.ID) error {
	return b.store.write(userID, func(l *ledger) error {
		i := indexByID(l.categories, id, categoryID)
		if i < 0 {
			return ErrNotFound
		}
		l.categories = slices.Delete(l.categories, i, i+1)
		return nil
	})
}

// ── transactions ────────────────────────────────────────────────────────────

func (b *Backend) ListTransactions(_ context.Context, userID models.ID, page, limit int) (models.TransactionPage, error) {
	if page < 1 || limit < 1 {
		return models.TransactionPage{}, ErrInvalidPagination
	}
	limit = min(limit, MaxPageLimit)

	var ordered []models.Transaction
	err := b.store.read(userID, func(l *ledger) error {
		ordered = slices.Clone(l.transactions)
		return nil
	})
	if err != nil {
		return models.TransactionPage{}, err
	}

	// newest first; insertion order breaks ties
	slices.SortStableFunc(ordered, func(x, y models.Transaction) int {
		return cmp.Compare(y.Date.UnixNano(), x.Date.UnixNano())
	})

	start := min((page-1)*limit, len(ordered))
	end := min(start+limit, len(ordered))

	return models.TransactionPage{
		Page:         page,
		Transactions: nonNil(ordered[start:end]),
		HasMore:      end < len(ordered),
	}, nil
}

// checkTransactionLocked verifies the references of t. It must run inside a
// store callback.
func checkTransactionLocked(l *ledger, t models.Transaction) error {
	if t.Amount == 0 || t.Date.IsZero() || !t.Type.Valid() {
		return ErrInvalidData
	}
	if indexByID(l.accounts, t.AccountID, accountID) < 0 {
		return fmt.Errorf("%w: unknown account", ErrInvalidData)
	}
	if indexByID(l.categories, t.CategoryID, categoryID) < 0 {
		return fmt.Errorf("%w: unknown category", ErrInvalidData)
	}
	return nil
}

func (b *Backend) CreateTransaction(_ context.Context, userID models.ID, transaction models.Transaction) (models.Transaction, error) {
	transaction.Description = strings.TrimSpace(transaction.Description)

	err := b.store.write(userID, func(l *ledger) error {
		if err := checkTransactionLocked(l, transaction); err != nil {
			return err
		}
		transaction.ID = b.store.nextIDLocked()
		l.transactions = append(l.transactions, transaction)
		return nil
	})
	return transaction, err
}

func (b *Backend) UpdateTransaction(_ context.Context, userID, id models.ID, transaction models.Transaction) (models.Transaction, error) {
	transaction.Description = strings.TrimSpace(transaction.Description)
	transaction.ID = id

	err := b.store.write(userID, func(l *ledger) error {
		i := indexByID(l.transactions, id, transactionID)
		if i < 0 {
			return ErrNotFound
		}
		if err := checkTransactionLocked(l, transaction); err != nil {
			return err
		}
		l.transactions[i] = transaction
		return nil
	})
	return transaction, err
}

func (b *Backend) DeleteTransaction(_ context.Context, userID, id models.ID) error {
	return b.store.write(userID, func(l *ledger) error {
		i := indexByID(l.transactions, id, transactionID)
		if i < 0 {
			return ErrNotFound
		}
		l.transactions = slices.Delete(l.transactions, i, i+1)
		return nil
	})
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
