// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command runtime of the vault client.
//
// Every invocation runs one command. Commands that need the family tree go
// through the startup flow first: check whether a vault exists, prompt for
// the passphrase, then unlock it or create a new one. The passphrase is read
// once per command and handed to each vault call explicitly.
package client
