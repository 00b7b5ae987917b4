package config

import (
	"fmt"
	"time"
)

// ClientApp holds client application settings.
type ClientApp struct {
	// LogFile is the path of the client log file.
	LogFile string
	// PageSize is the transaction page size.
	PageSize int
	// ChartPath is the balance chart export path.
	ChartPath string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base address.
	HTTPAddress string
	// RequestTimeout is the timeout of every outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains local database settings for the token store.
type ClientDB struct {
	// DSN is the SQLite file path or ":memory:".
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile:   cfg.App.LogFile,
			PageSize:  cfg.App.PageSize,
			ChartPath: cfg.App.ChartPath,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}
}
