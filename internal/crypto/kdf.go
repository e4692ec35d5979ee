package crypto

import "fmt"

// MinSaltSize is the shortest salt accepted when reading a stored vault.
const MinSaltSize = 16

// KDFParams are the Argon2id cost parameters. They are stored in every vault
// blob so a vault keeps opening after the defaults change.
type KDFParams struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// KDFLimits caps the parameters a stored blob may request. A modified blob
// asking for gigabytes of memory is rejected before Argon2id runs.
type KDFLimits struct {
	MaxTime      uint32
	MaxMemoryKiB uint32
	MaxThreads   uint8
}

// DefaultKDFParams returns the Argon2id parameters recommended by OWASP
// (2024): 1 pass, 64 MiB, 4 lanes.
func DefaultKDFParams() KDFParams {
	return KDFParams{Time: 1, MemoryKiB: 64 * 1024, Threads: 4}
}

// DefaultKDFLimits returns generous ceilings for desktop hardware.
func DefaultKDFLimits() KDFLimits {
	return KDFLimits{MaxTime: 16, MaxMemoryKiB: 1024 * 1024, MaxThreads: 64}
}

// Validate checks that p is usable by Argon2id and within limits.
func (p KDFParams) Validate(limits KDFLimits) error {
	switch {
	case p.Time == 0 || p.Threads == 0:
		return fmt.Errorf("%w: time and threads must be positive", ErrInvalidKDFParams)
	case p.MemoryKiB < 8*uint32(p.Threads):
		return fmt.Errorf("%w: memory must be at least 8 KiB per thread", ErrInvalidKDFParams)
	case p.Time > limits.MaxTime:
		return fmt.Errorf("%w: time %d above limit %d", ErrInvalidKDFParams, p.Time, limits.MaxTime)
	case p.MemoryKiB > limits.MaxMemoryKiB:
		return fmt.Errorf("%w: memory %d KiB above limit %d KiB", ErrInvalidKDFParams, p.MemoryKiB, limits.MaxMemoryKiB)
	case p.Threads > limits.MaxThreads:
		return fmt.Errorf("%w: threads %d above limit %d", ErrInvalidKDFParams, p.Threads, limits.MaxThreads)
	}
	return nil
}
