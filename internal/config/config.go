// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// FamilyConnect vault client. It aggregates all sub-configurations and is
// populated by merging values from a JSON file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Vault holds the passphrase policy and the vault identity.
	Vault Vault `envPrefix:"VAULT_"`

	// KDF holds the Argon2id cost used for new seals and the ceiling
	// accepted when reading a stored vault.
	KDF KDF `envPrefix:"KDF_"`

	// Storage selects and configures the local key-value persistence.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings for the remote AI proxy.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logging destination settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Command holds the positional arguments left after flag parsing
	// (e.g. "list" or "add Ada mother").
	Command []string
}

// Vault holds the settings of a single encrypted vault.
type Vault struct {
	// ID selects which vault to open. Empty means the default vault stored
	// under the well-known key.
	// Env: VAULT_ID
	ID string `env:"ID"`

	// Cipher is the authenticated cipher used for new seals
	// ("aes-256-gcm" or "xchacha20-poly1305").
	// Env: VAULT_CIPHER
	Cipher string `env:"CIPHER"`

	// MinPassphraseLength is the shortest passphrase accepted when sealing.
	// Env: VAULT_MIN_PASSPHRASE_LENGTH
	MinPassphraseLength int `env:"MIN_PASSPHRASE_LENGTH"`

	// RecommendedPassphraseLength is the length below which a seal logs a
	// weak-passphrase warning. It is advisory only.
	// Env: VAULT_RECOMMENDED_PASSPHRASE_LENGTH
	RecommendedPassphraseLength int `env:"RECOMMENDED_PASSPHRASE_LENGTH"`

	// SkipWriteVerification disables reading the blob back after a seal.
	// Env: VAULT_SKIP_WRITE_VERIFICATION
	SkipWriteVerification bool `env:"SKIP_WRITE_VERIFICATION"`
}

// KDF holds Argon2id parameters.
type KDF struct {
	// Time is the number of Argon2id passes.
	// Env: KDF_TIME
	Time uint32 `env:"TIME"`

	// MemoryKiB is the Argon2id memory cost in KiB.
	// Env: KDF_MEMORY_KIB
	MemoryKiB uint32 `env:"MEMORY_KIB"`

	// Threads is the Argon2id parallelism.
	// Env: KDF_THREADS
	Threads uint8 `env:"THREADS"`

	// MaxTime, MaxMemoryKiB and MaxThreads bound the parameters a stored
	// vault may request on unlock.
	// Env: KDF_MAX_TIME, KDF_MAX_MEMORY_KIB, KDF_MAX_THREADS
	MaxTime      uint32 `env:"MAX_TIME"`
	MaxMemoryKiB uint32 `env:"MAX_MEMORY_KIB"`
	MaxThreads   uint8  `env:"MAX_THREADS"`
}

// Storage configures the key-value persistence backend.
type Storage struct {
	// Driver is one of "memory", "file", "sqlite" or "postgres".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the database connection string for the sqlite and postgres
	// drivers (e.g. "/home/me/.config/FamilyConnect/vault.db").
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`

	// Dir is the directory holding one file per key for the file driver.
	// Env: STORAGE_DIR
	Dir string `env:"DIR"`

	// QuotaBytes caps the total stored bytes for the memory and file
	// drivers, emulating the browser's per-origin limit. Zero disables it.
	// Env: STORAGE_QUOTA_BYTES
	QuotaBytes int64 `env:"QUOTA_BYTES"`
}

// Adapter holds configuration for the remote AI proxy.
type Adapter struct {
	// AIAddress is the base URL of the proxy (e.g. "http://localhost:3001").
	// Env: ADAPTER_AI_ADDRESS
	AIAddress string `env:"AI_ADDRESS"`

	// RequestTimeout is the maximum duration of a single proxy request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logging destination settings.
type Log struct {
	// Dir is the directory of the client log file.
	// Env: LOG_DIR
	Dir string `env:"DIR"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. args are the command-line
// arguments without the program name; the positional remainder is returned
// in [StructuredConfig.Command].
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
