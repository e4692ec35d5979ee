package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/config"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/crypto"
)

func TestOptions_WithDefaults(t *testing.T) {
	got := Options{ID: "work"}.withDefaults()

	want := DefaultOptions()
	want.ID = "work"
	assert.Equal(t, want, got)
}

func TestOptions_WithDefaultsKeepsSetFields(t *testing.T) {
	in := Options{
		Suite:                       crypto.SuiteXChaCha20Poly1305,
		KDF:                         crypto.KDFParams{Time: 3, MemoryKiB: 1024, Threads: 1},
		MinPassphraseLength:         8,
		RecommendedPassphraseLength: 16,
		SkipWriteVerification:       true,
	}

	got := in.withDefaults()
	assert.Equal(t, in.Suite, got.Suite)
	assert.Equal(t, in.KDF, got.KDF)
	assert.Equal(t, crypto.DefaultKDFLimits(), got.Limits)
	assert.Equal(t, 8, got.MinPassphraseLength)
	assert.Equal(t, 16, got.RecommendedPassphraseLength)
	assert.True(t, got.SkipWriteVerification)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Vault.ID = "grandma"
	cfg.Vault.Cipher = "xchacha20-poly1305"
	cfg.Vault.SkipWriteVerification = true

	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "grandma", opts.ID)
	assert.Equal(t, crypto.SuiteXChaCha20Poly1305, opts.Suite)
	assert.Equal(t, crypto.DefaultKDFParams(), opts.KDF)
	assert.Equal(t, crypto.DefaultKDFLimits(), opts.Limits)
	assert.Equal(t, 4, opts.MinPassphraseLength)
	assert.Equal(t, 12, opts.RecommendedPassphraseLength)
	assert.True(t, opts.SkipWriteVerification)
}

func TestOptionsFromConfig_UnknownCipher(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Vault.Cipher = "rot13"

	_, err := OptionsFromConfig(cfg)
	assert.ErrorIs(t, err, crypto.ErrUnsupportedSuite)
}
