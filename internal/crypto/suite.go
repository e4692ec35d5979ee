// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Suite identifies an authenticated encryption algorithm. The identifier is
// written into every vault blob.
type Suite string

const (
	// SuiteAES256GCM is AES-256 in Galois/Counter Mode with a 12-byte nonce.
	SuiteAES256GCM Suite = "aes-256-gcm"
	// SuiteXChaCha20Poly1305 is XChaCha20-Poly1305 with a 24-byte nonce.
	SuiteXChaCha20Poly1305 Suite = "xchacha20-poly1305"
)

// KeySize is the symmetric key width shared by all suites.
const KeySize = 32

// ParseSuite validates name and returns the matching [Suite].
func ParseSuite(name string) (Suite, error) {
	switch s := Suite(name); s {
	case SuiteAES256GCM, SuiteXChaCha20Poly1305:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSuite, name)
	}
}

// NonceSize returns the nonce length of the suite.
func (s Suite) NonceSize() (int, error) {
	switch s {
	case SuiteAES256GCM:
		return 12, nil
	case SuiteXChaCha20Poly1305:
		return chacha20poly1305.NonceSizeX, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedSuite, string(s))
	}
}

func (s Suite) newAEAD(key []byte) (cipher.AEAD, error) {
	switch s {
	case SuiteAES256GCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("create cipher: %w", err)
		}
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("create gcm: %w", err)
		}
		return gcm, nil
	case SuiteXChaCha20Poly1305:
		aead, err := chacha20poly1305.NewX(key)
		if err != nil {
			return nil, fmt.Errorf("create xchacha20-poly1305: %w", err)
		}
		return aead, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSuite, string(s))
	}
}
