// Package service holds the client's use cases: validation, auth, CRUD over
// the backend, transaction pagination and the dashboard.
package service

import (
	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
)

type ClientServices struct {
	AuthService        ClientAuthService
	AccountService     ClientAccountService
	CategoryService    ClientCategoryService
	TransactionService ClientTransactionService
	DashboardService   ClientDashboardService
	TransactionFeed    *TransactionFeed
}

func NewClientServices(serverAdapter adapter.ServerAdapter, sessions SessionManager, pageSize int, logger *logger.Logger) *ClientServices {
	feed := NewTransactionFeed(serverAdapter, pageSize, logger)
	auth := &clientAuthService{
		adapter:  serverAdapter,
		session:  sessions,
		logger:   logger,
		onLogout: feed.Reset,
	}

	return &ClientServices{
		AuthService:        auth,
		AccountService:     NewClientAccountService(serverAdapter),
		CategoryService:    NewClientCategoryService(serverAdapter),
		TransactionService: NewClientTransactionService(serverAdapter),
		DashboardService:   NewClientDashboardService(serverAdapter, pageSize),
		TransactionFeed:    feed,
	}
}
