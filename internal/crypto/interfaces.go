package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all vault cryptography. It knows nothing about
// storage, records or users; its only job is to turn a passphrase into a
// key and to seal and open byte strings with an authenticated cipher.
//
// Flow of a seal:
//
//	Salt       = GenerateSalt()                           (step 1, first seal only)
//	Key        = DeriveKey(passphrase, Salt, params)      (step 2)
//	Nonce, CT  = Seal(suite, Key, plaintext, header)      (step 3)
//
// Unlock repeats step 2 with the stored salt and parameters and calls Open.
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes. The salt is not secret; it is
	// stored in the vault blob so identical passphrases in different vaults
	// derive different keys.
	GenerateSalt() ([]byte, error)

	// DeriveKey stretches passphrase and salt into a 32-byte key with
	// Argon2id. The result is deterministic for identical inputs.
	DeriveKey(passphrase string, salt []byte, params KDFParams) []byte

	// Seal encrypts plaintext under key with the given suite, binding aad
	// into the authentication tag. A fresh random nonce is generated for
	// every call and returned separately from the ciphertext.
	Seal(suite Suite, key, plaintext, aad []byte) (nonce, ciphertext []byte, err error)

	// Open verifies and decrypts ciphertext. Any authentication failure
	// (wrong key, modified nonce, ciphertext or aad) returns
	// ErrDecryptionFailed.
	Open(suite Suite, key, nonce, ciphertext, aad []byte) ([]byte, error)
}
