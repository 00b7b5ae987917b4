package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// RecentLimit is how many transactions the dashboard lists.
const RecentLimit = 5

// UnknownCategoryName labels expenses whose category is not loaded.
const UnknownCategoryName = "N/A"

type clientDashboardService struct {
	adapter  adapter.ServerAdapter
	pageSize int
}

func NewClientDashboardService(serverAdapter adapter.ServerAdapter, pageSize int) ClientDashboardService {
	return &clientDashboardService{adapter: serverAdapter, pageSize: pageSize}
}

func (s *clientDashboardService) Summary(ctx context.Context) (models.DashboardSummary, error) {
	var (
		accounts   []models.Account
		categories []models.Category
		page       models.TransactionPage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = s.adapter.ListAccounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.adapter.ListCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		page, err = s.adapter.ListTransactions(gctx, 1, s.pageSize)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.DashboardSummary{}, fmt.Errorf("load dashboard: %w", err)
	}

	return Summarize(accounts, categories, page.Transactions), nil
}

// Summarize aggregates already loaded records into a dashboard summary.
func Summarize(accounts []models.Account, categories []models.Category, transactions []models.Transaction) models.DashboardSummary {
	summary := models.DashboardSummary{
		Accounts:     slices.Clone(accounts),
		Transactions: slices.Clone(transactions),
	}

	for _, a := range accounts {
		summary.TotalBalance += a.Balance
	}

	names := make(map[models.ID]models.Category, len(categories))
	for _, c := range categories {
		names[c.ID] = c
	}

	byCategory := make(map[models.ID]models.Money)
	for _, t := range transactions {
		switch t.Type {
		case models.Income:
			summary.Income += t.Amount.Abs()
		case models.Expense:
			summary.Expense += t.Amount.Abs()
			byCategory[t.CategoryID] += t.Amount.Abs()
		}
	}

	for id, total := range byCategory {
		category, ok := names[id]
		if !ok {
			category = models.Category{ID: id, Name: UnknownCategoryName, Type: models.Expense}
		}
		summary.ExpenseByCategory = append(summary.ExpenseByCategory, models.CategoryTotal{Category: category, Total: total})
	}
	slices.SortFunc(summary.ExpenseByCategory, func(a, b models.CategoryTotal) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Category.Name, b.Category.Name)
	})

	recent := slices.Clone(transactions)
	slices.SortStableFunc(recent, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	summary.Recent = recent

	return summary
}
