package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/models"
)

type clientCategoryService struct {
	adapter adapter.ServerAdapter
}

func NewClientCategoryService(serverAdapter adapter.ServerAdapter) ClientCategoryService {
	return &clientCategoryService{adapter: serverAdapter}
}

func (s *clientCategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.adapter.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *clientCategoryService) ListByType(ctx context.Context, t models.EntryType) ([]models.Category, error) {
	categories, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCategories(categories, t), nil
}

func (s *clientCategoryService) Save(ctx context.Context, category models.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if err := validateCategory(category); err != nil {
		return err
	}

	if category.ID.IsZero() {
		return s.adapter.CreateCategory(ctx, category)
	}
	return s.adapter.UpdateCategory(ctx, category.ID, category)
}

func (s *clientCategoryService) Delete(ctx context.Context, id models.ID) error {
	return s.adapter.DeleteCategory(ctx, id)
}

// FilterCategories returns the categories of entry type t in their original
// order. The result is never nil.
func FilterCategories(categories []models.Category, t models.EntryType) []models.Category {
	filtered := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if c.Type == t {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
