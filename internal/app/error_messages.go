// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording of the FamilyConnect client.
//
// All Msg* constants are human-readable strings shown in the terminal when
// an operation fails. Keeping them in one place ensures consistent wording,
// and [UserMessage] is the only place that decides which one applies.
package app

import (
	"errors"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/adapter"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/profile"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/service"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/store"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/vault"
)

const (
	// MsgVaultLockedOrInvalidKey covers a wrong passphrase and a damaged
	// vault alike; the two are not told apart.
	MsgVaultLockedOrInvalidKey = "vault locked or invalid key"

	// MsgNoSavedData is shown when unlocking before anything was saved.
	MsgNoSavedData = "no saved data yet"

	// MsgStorageError is shown when the local storage refused a read or
	// write, most often because it is full.
	MsgStorageError = "storage error, please free space"

	// MsgMalformedData is shown when the vault opened but its contents are
	// not a family tree this version understands.
	MsgMalformedData = "vault contents could not be read"

	// MsgEmptyPassphrase is shown when no passphrase was entered.
	MsgEmptyPassphrase = "passphrase must not be empty"

	// MsgPassphraseTooShort is shown when a new passphrase is below the
	// configured minimum length.
	MsgPassphraseTooShort = "passphrase is too short"

	// MsgSaveSuperseded is shown when a newer save or a reset replaced the
	// change before it was written.
	MsgSaveSuperseded = "change not saved, the vault was changed meanwhile"

	// MsgVaultIsLocked is shown when a member operation runs before unlock.
	MsgVaultIsLocked = "vault is locked"

	// MsgVaultExists is shown when creating a vault over an existing one.
	MsgVaultExists = "a vault already exists"

	// MsgMemberNotFound is shown for an unknown member id.
	MsgMemberNotFound = "family member not found"

	// MsgDuplicateMember is shown when a member id is already taken.
	MsgDuplicateMember = "family member already exists"

	// MsgInvalidMember is shown for a member without a name.
	MsgInvalidMember = "invalid family member"

	// MsgNoProfile is shown when no profile was saved yet.
	MsgNoProfile = "no profile saved yet"

	// MsgProfileCorrupted is shown when the stored profile cannot be read.
	MsgProfileCorrupted = "profile could not be read"

	// MsgAIUnavailable is shown when the AI proxy cannot be reached or
	// failed.
	MsgAIUnavailable = "AI service unavailable, try again later"

	// MsgAIBadRequest is shown when the AI proxy rejected the request.
	MsgAIBadRequest = "AI service rejected the request"

	// MsgUnexpectedError is the fallback for anything else.
	MsgUnexpectedError = "unexpected error"
)

// UserMessage returns the terminal message for err, or "" for nil.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, vault.ErrAuthenticationFailed):
		return MsgVaultLockedOrInvalidKey
	case errors.Is(err, vault.ErrNotFound):
		return MsgNoSavedData
	case errors.Is(err, vault.ErrPersistence):
		return MsgStorageError
	case errors.Is(err, vault.ErrMalformedData):
		return MsgMalformedData
	case errors.Is(err, vault.ErrEmptyPassphrase):
		return MsgEmptyPassphrase
	case errors.Is(err, vault.ErrPassphraseTooShort):
		return MsgPassphraseTooShort
	case errors.Is(err, vault.ErrSuperseded):
		return MsgSaveSuperseded
	case errors.Is(err, service.ErrLocked):
		return MsgVaultIsLocked
	case errors.Is(err, service.ErrVaultExists):
		return MsgVaultExists
	case errors.Is(err, service.ErrMemberNotFound):
		return MsgMemberNotFound
	case errors.Is(err, service.ErrDuplicateMember):
		return MsgDuplicateMember
	case errors.Is(err, service.ErrInvalidMember):
		return MsgInvalidMember
	case errors.Is(err, profile.ErrProfileNotFound):
		return MsgNoProfile
	case errors.Is(err, profile.ErrProfileCorrupted):
		return MsgProfileCorrupted
	case errors.Is(err, adapter.ErrBackendUnavailable), errors.Is(err, adapter.ErrInvalidResponse):
		return MsgAIUnavailable
	case errors.Is(err, adapter.ErrBadRequest):
		return MsgAIBadRequest
	case errors.Is(err, store.ErrQuotaExceeded), errors.Is(err, store.ErrStorageUnavailable):
		return MsgStorageError
	default:
		return MsgUnexpectedError
	}
}
