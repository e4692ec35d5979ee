// Package profile keeps the user's non-sensitive preferences as plaintext
// JSON next to the vault. Nothing stored here is encrypted.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/logger"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/store"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/models"
)

// KeyPrefix is the persistence key of the default profile.
const KeyPrefix = "familyconnect.profile"

var (
	// ErrProfileNotFound is returned by Load when no profile is stored.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileCorrupted is returned by Load when the stored value is not
	// a profile document.
	ErrProfileCorrupted = errors.New("profile corrupted")
)

// Store reads and writes one profile.
type Store interface {
	Load(ctx context.Context) (models.Profile, error)
	Save(ctx context.Context, p models.Profile) (models.Profile, error)
	Clear(ctx context.Context) error
}

type profileStore struct {
	kv     store.KeyValuePersistence
	key    string
	logger *logger.Logger
	now    func() time.Time
}

// New returns a [Store] for the profile paired with vault id.
func New(kv store.KeyValuePersistence, id string, log *logger.Logger) Store {
	return &profileStore{
		kv:     kv,
		key:    StorageKey(id),
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// StorageKey returns the persistence key of the profile named id.
func StorageKey(id string) string {
	if id == "" {
		return KeyPrefix
	}
	return KeyPrefix + "." + id
}

func (s *profileStore) Load(ctx context.Context) (models.Profile, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("load profile: %w", err)
	}

	var p models.Profile
	if err = json.Unmarshal([]byte(raw), &p); err != nil {
		s.logger.Warn().Err(err).Str("func", "profileStore.Load").Str("key", s.key).Msg("stored profile is not valid json")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrProfileCorrupted, err)
	}
	return p, nil
}

// Save stamps UpdatedAt and replaces the stored profile.
func (s *profileStore) Save(ctx context.Context, p models.Profile) (models.Profile, error) {
	p.UpdatedAt = s.now()

	data, err := json.Marshal(p)
	if err != nil {
		return models.Profile{}, fmt.Errorf("encode profile: %w", err)
	}
	if err = s.kv.Set(ctx, s.key, string(data)); err != nil {
		s.logger.Err(err).Str("func", "profileStore.Save").Str("key", s.key).Msg("error saving profile")
		return models.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

func (s *profileStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}
