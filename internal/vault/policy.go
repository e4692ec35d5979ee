package vault

import (
	"fmt"
	"unicode/utf8"
)

// checkSealPassphrase applies the passphrase policy of Seal. Length is
// counted in characters, not bytes. It reports whether the passphrase is
// below the recommended length; that is a warning, not an error.
func (o Options) checkSealPassphrase(passphrase string) (weak bool, err error) {
	if passphrase == "" {
		return false, ErrEmptyPassphrase
	}

	n := utf8.RuneCountInString(passphrase)
	if n < o.MinPassphraseLength {
		return false, fmt.Errorf("%w: at least %d characters required", ErrPassphraseTooShort, o.MinPassphraseLength)
	}

	return n < o.RecommendedPassphraseLength, nil
}
