package vault

import "errors"

// Sentinel errors returned by [Store]. Callers match them with [errors.Is].
var (
	// ErrNotFound is returned by Unlock when no vault is stored under the
	// vault key.
	ErrNotFound = errors.New("vault not found")

	// ErrAuthenticationFailed is returned by Unlock when the stored value
	// cannot be opened with the given passphrase. A wrong passphrase, a
	// modified blob and an unparseable blob all produce this same error.
	ErrAuthenticationFailed = errors.New("vault authentication failed")

	// ErrMalformedData is returned when authentic plaintext is not a JSON
	// array of objects, or when Seal is given records that cannot be
	// encoded as one.
	ErrMalformedData = errors.New("malformed vault data")

	// ErrPersistence wraps a failure of the underlying key-value storage.
	// The storage error stays in the chain, so errors.Is also matches
	// store.ErrQuotaExceeded and friends.
	ErrPersistence = errors.New("vault persistence error")

	// ErrEmptyPassphrase is returned by Seal and Unlock for "".
	ErrEmptyPassphrase = errors.New("empty passphrase")

	// ErrPassphraseTooShort is returned by Seal when the passphrase is
	// shorter than Options.MinPassphraseLength.
	ErrPassphraseTooShort = errors.New("passphrase too short")

	// ErrSuperseded is returned by Seal when a newer seal or a Reset reached
	// storage first. Nothing was written for the superseded call.
	ErrSuperseded = errors.New("seal superseded by a newer operation")
)

var errWriteMismatch = errors.New("stored value differs from written value")
