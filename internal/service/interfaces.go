package service

import (
	"context"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/models"
)

// State is the lifecycle state of the family session.
type State int

const (
	// StateNoVault means nothing is stored yet; Create must run first.
	StateNoVault State = iota
	// StateLocked means a vault is stored but not loaded into memory.
	StateLocked
	// StateUnlocked means the members are loaded and can be changed.
	StateUnlocked
)

func (s State) String() string {
	switch s {
	case StateNoVault:
		return "no vault"
	case StateLocked:
		return "locked"
	case StateUnlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// FamilyService is the in-memory family tree session on top of the vault.
// Members live in memory between Unlock and Lock; every change is sealed
// back as the whole collection. The passphrase is passed to every call that
// touches the vault and is never kept.
type FamilyService interface {
	// State reports whether a vault exists and whether it is unlocked.
	State(ctx context.Context) (State, error)

	// Create seals an empty family tree. Fails with ErrVaultExists when a
	// vault is already stored.
	Create(ctx context.Context, passphrase string) error

	// Unlock loads the members of the stored vault into memory.
	Unlock(ctx context.Context, passphrase string) error

	// Members returns a copy of the loaded members in stored order.
	Members() ([]models.FamilyMember, error)

	// AddMember appends m, assigning a new id when m.ID is empty, and
	// seals. On failure the in-memory tree is left unchanged.
	AddMember(ctx context.Context, m models.FamilyMember, passphrase string) (models.FamilyMember, error)

	// ImportMembers appends several members with a single seal.
	ImportMembers(ctx context.Context, members []models.FamilyMember, passphrase string) ([]models.FamilyMember, error)

	// UpdateMember replaces the member with the same id and seals. Fields
	// the member type does not know about are kept.
	UpdateMember(ctx context.Context, m models.FamilyMember, passphrase string) error

	// RemoveMember deletes the member with the given id and seals.
	RemoveMember(ctx context.Context, id string, passphrase string) error

	// Lock drops the loaded members from memory.
	Lock()

	// Forget deletes the stored vault and locks the session.
	Forget(ctx context.Context) error
}

// IDGenerator produces member ids.
type IDGenerator interface {
	Generate() string
}
