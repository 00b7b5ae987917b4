package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/models"
)

type clientAccountService struct {
	adapter adapter.ServerAdapter
}

func NewClientAccountService(serverAdapter adapter.ServerAdapter) ClientAccountService {
	return &clientAccountService{adapter: serverAdapter}
}

func (s *clientAccountService) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.adapter.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (s *clientAccountService) Save(ctx context.Context, account models.Account) error {
	account.Name = strings.TrimSpace(account.Name)
	if err := validateAccount(account); err != nil {
		return err
	}

	if account.ID.IsZero() {
		return s.adapter.CreateAccount(ctx, account)
	}
	return s.adapter.UpdateAccount(ctx, account)
}
