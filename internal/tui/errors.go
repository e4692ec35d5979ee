// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned when the prompt was left with esc or ctrl+c.
	ErrUserQuit = errors.New("user quit")

	errPassphraseRequired = errors.New("passphrase is required")
	errPassphraseMismatch = errors.New("passphrases do not match")
)
