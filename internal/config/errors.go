package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidVaultConfigs indicates an unsupported cipher or passphrase
	// policy.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidKDFConfigs indicates Argon2id parameters outside the
	// accepted range or above the configured ceiling.
	ErrInvalidKDFConfigs = errors.New("invalid kdf configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown driver or an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid AI proxy settings
	// (for example, a relative URL or a zero timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
