// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
)

// MemoryDSN selects the process-lifetime token store.
const MemoryDSN = ":memory:"

// validate checks source-independent invariants of the merged
// [StructuredConfig]. Role-specific checks live in the narrow views.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.PageSize < 0 {
		return ErrInvalidAppConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.PageSize <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *DevServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenDuration <= 0 {
		return ErrInvalidTokenConfigs
	}

	return nil
}
