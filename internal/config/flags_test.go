package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no flags",
			args: nil,
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
		{
			name: "all flags",
			args: []string{
				"-vault", "grandma",
				"-cipher", "xchacha20-poly1305",
				"-min-passphrase", "10",
				"-kdf-time", "2",
				"-kdf-memory", "32768",
				"-kdf-threads", "2",
				"-driver", "sqlite",
				"-d", "/tmp/family.db",
				"-dir", "/tmp/family",
				"-quota", "1048576",
				"-ai-address", "http://ai.local:3001",
				"-request-timeout", "45s",
				"-log-dir", "/tmp/logs",
				"-c", "/etc/familyvault.json",
			},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "grandma", cfg.Vault.ID)
				assert.Equal(t, "xchacha20-poly1305", cfg.Vault.Cipher)
				assert.Equal(t, 10, cfg.Vault.MinPassphraseLength)
				assert.Equal(t, KDF{Time: 2, MemoryKiB: 32768, Threads: 2}, cfg.KDF)
				assert.Equal(t, Storage{Driver: DriverSQLite, DSN: "/tmp/family.db", Dir: "/tmp/family", QuotaBytes: 1048576}, cfg.Storage)
				assert.Equal(t, "http://ai.local:3001", cfg.Adapter.AIAddress)
				assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, "/tmp/logs", cfg.Log.Dir)
				assert.Equal(t, "/etc/familyvault.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/familyvault.json"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/familyvault.json", cfg.JSONFilePath)
			},
		},
		{
			name: "command after flags",
			args: []string{"-vault", "grandma", "import", "tree.json"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, []string{"import", "tree.json"}, cfg.Command)
			},
		},
		{
			name: "flags after the command are arguments",
			args: []string{"add", "-vault", "x"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Vault.ID)
				assert.Equal(t, []string{"add", "-vault", "x"}, cfg.Command)
			},
		},
		{
			name:    "unknown flag",
			args:    []string{"-token-sign-key", "secret"},
			wantErr: true,
		},
		{
			name:    "threads overflow",
			args:    []string{"-kdf-threads", "256"},
			wantErr: true,
		},
		{
			name:    "bad duration",
			args:    []string{"-request-timeout", "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
