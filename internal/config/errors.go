package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStatusConfigs indicates a non-positive status clear delay.
	ErrInvalidStatusConfigs = errors.New("invalid status configuration")
	// ErrInvalidServerConfigs indicates invalid server settings (empty
	// address, non-positive timeout or an impossible rate limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive max note size).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
