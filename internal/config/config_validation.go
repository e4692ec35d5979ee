// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/crypto"
)

// Storage drivers accepted in [Storage.Driver].
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if _, err := crypto.ParseSuite(cfg.Vault.Cipher); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidVaultConfigs, err)
	}
	if cfg.Vault.MinPassphraseLength < 1 {
		return fmt.Errorf("%w: minimum passphrase length must be positive", ErrInvalidVaultConfigs)
	}

	if err := cfg.KDF.Params().Validate(cfg.KDF.Limits()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKDFConfigs, err)
	}

	switch cfg.Storage.Driver {
	case DriverMemory:
	case DriverFile:
		if cfg.Storage.Dir == "" {
			return fmt.Errorf("%w: file driver needs a directory", ErrInvalidStorageConfigs)
		}
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: %s driver needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}
	if cfg.Storage.QuotaBytes < 0 {
		return fmt.Errorf("%w: negative quota", ErrInvalidStorageConfigs)
	}

	u, err := url.Parse(cfg.Adapter.AIAddress)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: AI address must be an absolute URL", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	return nil
}

// Params returns the Argon2id cost used for new seals.
func (k KDF) Params() crypto.KDFParams {
	return crypto.KDFParams{Time: k.Time, MemoryKiB: k.MemoryKiB, Threads: k.Threads}
}

// Limits returns the ceiling accepted for parameters read from a stored vault.
func (k KDF) Limits() crypto.KDFLimits {
	return crypto.KDFLimits{MaxTime: k.MaxTime, MaxMemoryKiB: k.MaxMemoryKiB, MaxThreads: k.MaxThreads}
}
