// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command in args and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// Prompter collects input from the user. The passphrase is returned to the
// caller and never stored by the prompter.
type Prompter interface {
	// Passphrase asks for a passphrase; confirm asks for it twice.
	Passphrase(ctx context.Context, title string, confirm bool) (string, error)

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, question string) (bool, error)
}
