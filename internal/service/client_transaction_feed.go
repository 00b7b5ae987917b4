package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/workers"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// FeedState is a copy of what the transaction list shows.
type FeedState struct {
	// Items are all loaded transactions: page 1 first, later pages appended
	// in the order they arrived.
	Items []models.Transaction
	// Page is the last page applied, 0 before the first load.
	Page int
	// HasMore comes from the latest applied response only.
	HasMore bool
}

// TransactionFeed accumulates the paginated transaction listing.
//
// Reload fetches page 1 and replaces the list; LoadNext fetches the next
// page and appends it. Every load cancels the one before it. A response that
// arrives after a newer load has started is dropped with [ErrSuperseded].
type TransactionFeed struct {
	adapter  adapter.ServerAdapter
	pageSize int
	logger   *logger.Logger

	loads workers.Latest[models.TransactionPage]

	mu sync.Mutex
	// loading is cleared only after the current page has been applied, so
	// LoadNext never computes its page number from a stale state.
	loading bool
	state   FeedState
}

// NewTransactionFeed returns an empty feed requesting pageSize records per
// page.
func NewTransactionFeed(serverAdapter adapter.ServerAdapter, pageSize int, logger *logger.Logger) *TransactionFeed {
	return &TransactionFeed{
		adapter:  serverAdapter,
		pageSize: pageSize,
		logger:   logger,
		state:    FeedState{Items: []models.Transaction{}},
	}
}

// Reload fetches page 1 and replaces the list. It supersedes any load in
// flight.
func (f *TransactionFeed) Reload(ctx context.Context) (FeedState, error) {
	f.mu.Lock()
	task := f.startLocked(ctx, 1)
	f.mu.Unlock()

	return f.await(ctx, task, 1)
}

// LoadNext fetches the page after the last applied one and appends it. It
// returns [ErrLoadInProgress] while another load runs and is a no-op when
// the last response reported no further page.
func (f *TransactionFeed) LoadNext(ctx context.Context) (FeedState, error) {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return f.State(), ErrLoadInProgress
	}
	if f.state.Page > 0 && !f.state.HasMore {
		state := f.copyStateLocked()
		f.mu.Unlock()
		return state, nil
	}

	page := f.state.Page + 1
	task := f.startLocked(ctx, page)
	f.mu.Unlock()

	return f.await(ctx, task, page)
}

// State returns a copy of the current list.
func (f *TransactionFeed) State() FeedState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.copyStateLocked()
}

// Reset cancels any load and empties the list.
func (f *TransactionFeed) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.loads.Cancel()
	f.loading = false
	f.state = FeedState{Items: []models.Transaction{}}
}

func (f *TransactionFeed) startLocked(ctx context.Context, page int) *workers.Task[models.TransactionPage] {
	f.loading = true
	return f.loads.Start(ctx, func(ctx context.Context) (models.TransactionPage, error) {
		return f.adapter.ListTransactions(ctx, page, f.pageSize)
	})
}

func (f *TransactionFeed) await(ctx context.Context, task *workers.Task[models.TransactionPage], page int) (FeedState, error) {
	result, err := task.Wait(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.loads.IsCurrent(task) {
		f.logger.Debug().Str("func", "TransactionFeed.await").Int("page", page).Msg("dropping superseded page")
		return f.copyStateLocked(), ErrSuperseded
	}
	f.loading = false

	if err != nil {
		return f.copyStateLocked(), fmt.Errorf("load transactions page %d: %w", page, err)
	}

	f.applyLocked(page, result)
	return f.copyStateLocked(), nil
}

func (f *TransactionFeed) applyLocked(page int, result models.TransactionPage) {
	if page == 1 {
		f.state.Items = slices.Clone(result.Transactions)
		if f.state.Items == nil {
			f.state.Items = []models.Transaction{}
		}
	} else {
		f.state.Items = append(f.state.Items, result.Transactions...)
	}
	f.state.Page = page
	f.state.HasMore = result.HasMore
}

func (f *TransactionFeed) copyStateLocked() FeedState {
	return FeedState{
		Items:   append(make([]models.Transaction, 0, len(f.state.Items)), f.state.Items...),
		Page:    f.state.Page,
		HasMore: f.state.HasMore,
	}
}
