package service

import "errors"

var (
	// ErrLocked is returned by member operations while no vault is unlocked.
	ErrLocked = errors.New("vault is locked")

	// ErrVaultExists is returned by Create when a vault is already stored.
	ErrVaultExists = errors.New("vault already exists")

	// ErrMemberNotFound is returned when no member has the given id.
	ErrMemberNotFound = errors.New("family member not found")

	// ErrDuplicateMember is returned when a new member reuses an existing id.
	ErrDuplicateMember = errors.New("family member already exists")

	// ErrInvalidMember is returned for a member without a name, or for a
	// stored record that cannot be read as a member.
	ErrInvalidMember = errors.New("invalid family member")
)
