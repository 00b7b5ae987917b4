package config

import (
	"fmt"
	"time"
)

// DevServerConfig is the development backend view of [StructuredConfig].
type DevServerConfig struct {
	HTTPAddress    string
	TokenSignKey   string
	TokenIssuer    string
	TokenDuration  time.Duration
	RequestTimeout time.Duration
}

// GetDevServerConfig builds and validates the development backend
// configuration.
func GetDevServerConfig(args []string) (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &DevServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		TokenSignKey:   cfg.Server.TokenSignKey,
		TokenIssuer:    cfg.Server.TokenIssuer,
		TokenDuration:  cfg.Server.TokenDuration,
		RequestTimeout: cfg.Server.RequestTimeout,
	}
	return serverCfg, serverCfg.validate()
}
