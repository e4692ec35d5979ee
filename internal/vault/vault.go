// Package vault seals an ordered collection of records under a passphrase
// into a single authenticated blob kept in a key-value store, and opens it
// again.
//
// The passphrase is an argument of every call. It is never stored on the
// vault, never written to persistence and never logged.
package vault

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/crypto"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/logger"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/store"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/models"
)

//go:generate mockgen -source=vault.go -destination=../mock/vault_store_mock.go -package=mock

// Store is the encrypted vault of one vault ID.
type Store interface {
	// Exists reports whether a value is stored under the vault key.
	Exists(ctx context.Context) (bool, error)

	// Seal encrypts records under passphrase and replaces the stored vault
	// as a unit. Seals are applied in the order they were issued: a seal
	// that finishes after a newer seal or a Reset has reached storage is
	// dropped with ErrSuperseded.
	Seal(ctx context.Context, records models.RecordCollection, passphrase string) error

	// Unlock decrypts the stored vault. It never returns an empty
	// collection in place of an error.
	Unlock(ctx context.Context, passphrase string) (models.RecordCollection, error)

	// Reset deletes the stored vault together with its salt.
	Reset(ctx context.Context) error
}

type secureVault struct {
	kv     store.KeyValuePersistence
	keys   crypto.KeyChainService
	opts   Options
	key    string
	logger *logger.Logger

	tickets atomic.Uint64

	mu      sync.Mutex
	written uint64 // newest ticket whose write or delete reached storage
}

// New returns a [Store] for the vault selected by opts.ID.
func New(kv store.KeyValuePersistence, keys crypto.KeyChainService, opts Options, log *logger.Logger) Store {
	opts = opts.withDefaults()
	return &secureVault{
		kv:     kv,
		keys:   keys,
		opts:   opts,
		key:    StorageKey(opts.ID),
		logger: log,
	}
}

func (v *secureVault) Exists(ctx context.Context) (bool, error) {
	_, err := v.kv.Get(ctx, v.key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return true, nil
}

func (v *secureVault) Seal(ctx context.Context, records models.RecordCollection, passphrase string) error {
	ticket := v.tickets.Add(1)

	weak, err := v.opts.checkSealPassphrase(passphrase)
	if err != nil {
		return err
	}
	if weak {
		v.logger.Warn().
			Str("func", "secureVault.Seal").
			Str("key", v.key).
			Int("recommended_length", v.opts.RecommendedPassphraseLength).
			Msg("passphrase is shorter than recommended")
	}

	plaintext, err := encodeRecords(records)
	if err != nil {
		return err
	}
	defer crypto.Zero(plaintext)

	salt, err := v.sealSalt(ctx)
	if err != nil {
		return err
	}

	env := envelope{suite: v.opts.Suite, params: v.opts.KDF, salt: salt}
	key := v.keys.DeriveKey(passphrase, salt, env.params)
	defer crypto.Zero(key)

	env.nonce, env.ciphertext, err = v.keys.Seal(env.suite, key, plaintext, []byte(env.header()))
	if err != nil {
		v.logger.Err(err).Str("func", "secureVault.Seal").Str("key", v.key).Msg("error encrypting vault")
		return fmt.Errorf("encrypt vault: %w", err)
	}
	blob := env.String()

	v.mu.Lock()
	defer v.mu.Unlock()

	if ticket < v.written {
		v.logger.Debug().
			Str("func", "secureVault.Seal").
			Str("key", v.key).
			Uint64("ticket", ticket).
			Uint64("written", v.written).
			Msg("seal superseded by a newer operation, dropped")
		return ErrSuperseded
	}

	if err = v.kv.Set(ctx, v.key, blob); err != nil {
		v.logger.Err(err).Str("func", "secureVault.Seal").Str("key", v.key).Msg("error writing vault")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	v.written = ticket

	if !v.opts.SkipWriteVerification {
		if err = v.verify(ctx, blob); err != nil {
			v.logger.Err(err).Str("func", "secureVault.Seal").Str("key", v.key).Msg("vault write verification failed")
			return err
		}
	}

	v.logger.Info().
		Str("func", "secureVault.Seal").
		Str("key", v.key).
		Int("records", len(records)).
		Int("bytes", len(blob)).
		Msg("vault sealed")
	return nil
}

// sealSalt returns the salt of the stored vault, or a fresh one when
// nothing parseable is stored. The read happens under the write lock so it
// cannot interleave with Reset.
func (v *secureVault) sealSalt(ctx context.Context) ([]byte, error) {
	v.mu.Lock()
	blob, err := v.kv.Get(ctx, v.key)
	v.mu.Unlock()

	switch {
	case errors.Is(err, store.ErrKeyNotFound):
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	default:
		if env, _, perr := parseEnvelope(blob, v.opts.Limits); perr == nil {
			return env.salt, nil
		}
		v.logger.Warn().Str("func", "secureVault.sealSalt").Str("key", v.key).Msg("stored vault unreadable, using a new salt")
	}

	salt, err := v.keys.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

func (v *secureVault) verify(ctx context.Context, blob string) error {
	got, err := v.kv.Get(ctx, v.key)
	if err != nil {
		return fmt.Errorf("%w: read back: %w", ErrPersistence, err)
	}
	if got != blob {
		return fmt.Errorf("%w: %w", ErrPersistence, errWriteMismatch)
	}
	return nil
}

func (v *secureVault) Unlock(ctx context.Context, passphrase string) (models.RecordCollection, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	blob, err := v.kv.Get(ctx, v.key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		v.logger.Err(err).Str("func", "secureVault.Unlock").Str("key", v.key).Msg("error reading vault")
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	env, aad, err := parseEnvelope(blob, v.opts.Limits)
	if err != nil {
		v.logger.Debug().Err(err).Str("func", "secureVault.Unlock").Str("key", v.key).Msg("stored vault rejected")
		return nil, ErrAuthenticationFailed
	}

	key := v.keys.DeriveKey(passphrase, env.salt, env.params)
	defer crypto.Zero(key)

	plaintext, err := v.keys.Open(env.suite, key, env.nonce, env.ciphertext, aad)
	if err != nil {
		v.logger.Debug().Err(err).Str("func", "secureVault.Unlock").Str("key", v.key).Msg("vault did not open")
		return nil, ErrAuthenticationFailed
	}
	defer crypto.Zero(plaintext)

	records, err := decodeRecords(plaintext)
	if err != nil {
		v.logger.Err(err).Str("func", "secureVault.Unlock").Str("key", v.key).Msg("authentic vault holds malformed data")
		return nil, err
	}

	v.logger.Debug().Str("func", "secureVault.Unlock").Str("key", v.key).Int("records", len(records)).Msg("vault unlocked")
	return records, nil
}

func (v *secureVault) Reset(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	ticket := v.tickets.Add(1)

	if err := v.kv.Delete(ctx, v.key); err != nil {
		v.logger.Err(err).Str("func", "secureVault.Reset").Str("key", v.key).Msg("error deleting vault")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	// seals issued before a completed reset must not bring the vault back
	v.written = ticket

	v.logger.Info().Str("func", "secureVault.Reset").Str("key", v.key).Msg("vault reset")
	return nil
}
