package vault

import (
	"fmt"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/config"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/crypto"
)

// KeyPrefix is the persistence key of the default vault. Named vaults are
// stored under KeyPrefix + "." + id.
const KeyPrefix = "familyconnect.vault"

const (
	defaultMinPassphraseLength         = 4
	defaultRecommendedPassphraseLength = 12
)

// Options configures a [Store]. Zero fields take the values of
// [DefaultOptions].
type Options struct {
	// ID selects the vault. Empty is the default vault.
	ID string

	// Suite is the cipher used for new seals. Unlock always uses the suite
	// recorded in the stored blob.
	Suite crypto.Suite

	// KDF is the Argon2id cost used for new seals.
	KDF crypto.KDFParams

	// Limits bound the KDF cost a stored blob may ask for.
	Limits crypto.KDFLimits

	MinPassphraseLength         int
	RecommendedPassphraseLength int

	// SkipWriteVerification disables reading a sealed value back.
	SkipWriteVerification bool
}

// DefaultOptions returns AES-256-GCM, the OWASP Argon2id cost and a
// four-character minimum passphrase.
func DefaultOptions() Options {
	return Options{
		Suite:                       crypto.SuiteAES256GCM,
		KDF:                         crypto.DefaultKDFParams(),
		Limits:                      crypto.DefaultKDFLimits(),
		MinPassphraseLength:         defaultMinPassphraseLength,
		RecommendedPassphraseLength: defaultRecommendedPassphraseLength,
	}
}

// OptionsFromConfig builds vault options from the validated client
// configuration.
func OptionsFromConfig(cfg *config.StructuredConfig) (Options, error) {
	suite, err := crypto.ParseSuite(cfg.Vault.Cipher)
	if err != nil {
		return Options{}, fmt.Errorf("vault options: %w", err)
	}

	return Options{
		ID:                          cfg.Vault.ID,
		Suite:                       suite,
		KDF:                         cfg.KDF.Params(),
		Limits:                      cfg.KDF.Limits(),
		MinPassphraseLength:         cfg.Vault.MinPassphraseLength,
		RecommendedPassphraseLength: cfg.Vault.RecommendedPassphraseLength,
		SkipWriteVerification:       cfg.Vault.SkipWriteVerification,
	}, nil
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Suite == "" {
		o.Suite = d.Suite
	}
	if o.KDF == (crypto.KDFParams{}) {
		o.KDF = d.KDF
	}
	if o.Limits == (crypto.KDFLimits{}) {
		o.Limits = d.Limits
	}
	if o.MinPassphraseLength <= 0 {
		o.MinPassphraseLength = d.MinPassphraseLength
	}
	if o.RecommendedPassphraseLength <= 0 {
		o.RecommendedPassphraseLength = d.RecommendedPassphraseLength
	}
	return o
}

// StorageKey returns the persistence key of the vault named id.
func StorageKey(id string) string {
	if id == "" {
		return KeyPrefix
	}
	return KeyPrefix + "." + id
}
