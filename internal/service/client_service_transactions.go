package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/models"
)

type clientTransactionService struct {
	adapter adapter.ServerAdapter
}

func NewClientTransactionService(serverAdapter adapter.ServerAdapter) ClientTransactionService {
	return &clientTransactionService{adapter: serverAdapter}
}

func (s *clientTransactionService) Save(ctx context.Context, transaction models.Transaction) error {
	transaction.Description = strings.TrimSpace(transaction.Description)
	if err := validateTransaction(transaction); err != nil {
		return err
	}

	if transaction.ID.IsZero() {
		return s.adapter.CreateTransaction(ctx, transaction)
	}
	return s.adapter.UpdateTransaction(ctx, transaction.ID, transaction)
}

func (s *clientTransactionService) Delete(ctx context.Context, id models.ID) error {
	return s.adapter.DeleteTransaction(ctx, id)
}
