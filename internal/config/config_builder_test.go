package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// defaults, which must pass validation on their own.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigOverrides verifies that non-zero fields of later
// sources win and zero fields keep the earlier value.
func TestBuild_LaterConfigOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Vault: Vault{ID: "json", Cipher: "xchacha20-poly1305"}},
		&StructuredConfig{Vault: Vault{ID: "flags"}, Storage: Storage{Driver: DriverMemory}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flags", cfg.Vault.ID)
	assert.Equal(t, "xchacha20-poly1305", cfg.Vault.Cipher)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, DefaultConfig().KDF, cfg.KDF)
}

func TestBuild_ValidatesResult(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{Driver: "redis"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("VAULT_ID", "family")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "family", b.configs[0].Vault.ID)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("KDF_THREADS", "many")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-server-address", "localhost:8080"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_PrependsConfig verifies that the JSON file is merged first so
// env and flags override it.
func TestWithJSON_PrependsConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"vault": map[string]any{"id": "from-json", "cipher": "xchacha20-poly1305"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path, Vault: Vault{ID: "from-flags"}})
	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-json", b.configs[0].Vault.ID)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-flags", cfg.Vault.ID)
	assert.Equal(t, "xchacha20-poly1305", cfg.Vault.Cipher)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"vault": map[string]any{"id": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"vault": map[string]any{"id": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: first}, &StructuredConfig{JSONFilePath: second})
	b.withJSON()
	require.NoError(t, b.err)
	assert.Equal(t, "second", b.configs[0].Vault.ID)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_AllSources(t *testing.T) {
	clearEnvVars(t)
	path := writeTempJSONConfig(t, map[string]any{
		"vault":   map[string]any{"id": "json-vault", "min_passphrase_length": 8},
		"storage": map[string]any{"driver": "sqlite", "dsn": "/tmp/json.db"},
	})
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("CONFIG", path)

	cfg, err := GetStructuredConfig([]string{"-vault", "grandma", "add", "Ada", "mother"})
	require.NoError(t, err)

	assert.Equal(t, "grandma", cfg.Vault.ID)
	assert.Equal(t, 8, cfg.Vault.MinPassphraseLength)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/json.db", cfg.Storage.DSN)
	assert.Equal(t, []string{"add", "Ada", "mother"}, cfg.Command)
	assert.Equal(t, DefaultConfig().Adapter, cfg.Adapter)
}

func TestGetStructuredConfig_Invalid(t *testing.T) {
	clearEnvVars(t)

	_, err := GetStructuredConfig([]string{"-cipher", "rot13"})
	assert.ErrorIs(t, err, ErrInvalidVaultConfigs)
}
