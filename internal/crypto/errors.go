package crypto

import "errors"

var (
	// ErrUnsupportedSuite is returned for a cipher identifier this build
	// does not implement.
	ErrUnsupportedSuite = errors.New("unsupported cipher suite")

	// ErrDecryptionFailed is returned when authenticated decryption fails.
	// It deliberately does not say whether the key or the data was wrong.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKDFParams is returned when Argon2id parameters are zero or
	// exceed the configured limits.
	ErrInvalidKDFParams = errors.New("invalid kdf parameters")

	// ErrInvalidNonce is returned when a nonce does not match the suite's
	// nonce size.
	ErrInvalidNonce = errors.New("invalid nonce length")
)
