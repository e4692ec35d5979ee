// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	random io.Reader
}

// NewKeyChainService constructs a [KeyChainService] backed by the OS CSPRNG.
func NewKeyChainService() KeyChainService {
	return &keyChainService{random: rand.Reader}
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(k.random, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey implements [KeyChainService]. It derives a 256-bit key from
// passphrase and salt using Argon2id with the supplied parameters. The key
// exists only in memory; callers wipe it with [Zero] when done.
func (k *keyChainService) DeriveKey(passphrase string, salt []byte, params KDFParams) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		params.Time,
		params.MemoryKiB,
		params.Threads,
		KeySize,
	)
}

// Seal implements [KeyChainService]. The nonce is drawn from the CSPRNG on
// every call, so sealing identical plaintext twice yields different output.
func (k *keyChainService) Seal(suite Suite, key, plaintext, aad []byte) ([]byte, []byte, error) {
	aead, err := suite.newAEAD(key)
	if err != nil {
		return nil, nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(k.random, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	return nonce, aead.Seal(nil, nonce, plaintext, aad), nil
}

// Open implements [KeyChainService]. An error from the AEAD almost always
// means a wrong passphrase; it is reported as [ErrDecryptionFailed] either
// way.
func (k *keyChainService) Open(suite Suite, key, nonce, ciphertext, aad []byte) ([]byte, error) {
	aead, err := suite.newAEAD(key)
	if err != nil {
		return nil, err
	}

	if len(nonce) != aead.NonceSize() {
		return nil, ErrInvalidNonce
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
