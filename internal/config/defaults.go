// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const appDirName = "FamilyConnect"

// DefaultConfig returns the values used for every field no source sets.
// KDF costs follow the OWASP (2024) Argon2id recommendation; the file
// store lives in the user's config directory.
func DefaultConfig() *StructuredConfig {
	base := defaultBaseDir()

	return &StructuredConfig{
		Vault: Vault{
			Cipher:                      "aes-256-gcm",
			MinPassphraseLength:         4,
			RecommendedPassphraseLength: 12,
		},
		KDF: KDF{
			Time:         1,
			MemoryKiB:    64 * 1024,
			Threads:      4,
			MaxTime:      16,
			MaxMemoryKiB: 1024 * 1024,
			MaxThreads:   64,
		},
		Storage: Storage{
			Driver: DriverFile,
			Dir:    filepath.Join(base, "vault"),
		},
		Adapter: Adapter{
			AIAddress:      "http://localhost:3001",
			RequestTimeout: 60 * time.Second,
		},
		Log: Log{Dir: base},
	}
}

func defaultBaseDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "." + appDirName
	}
	return filepath.Join(dir, appDirName)
}
