package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or an unsupported driver name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
