package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing or non-http base address, or zero timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty token store DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// such as a non-positive page size.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or
	// request timeout of the development backend.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTokenConfigs indicates incomplete token issuing settings.
	ErrInvalidTokenConfigs = errors.New("invalid token configuration")
)
