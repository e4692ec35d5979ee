package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/logger"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/store"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/models"
)

var fixedNow = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

func newTestProfileStore(kv store.KeyValuePersistence, id string) *profileStore {
	s := New(kv, id, logger.Nop()).(*profileStore)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestProfileStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStorage(0)
	s := newTestProfileStore(kv, "")

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	in := models.Profile{
		DisplayName: "Ada",
		Locale:      "en-GB",
		Theme:       "dark",
		Preferences: map[string]string{"treeLayout": "vertical"},
	}
	saved, err := s.Save(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, saved.UpdatedAt)

	raw, err := kv.Get(ctx, "familyconnect.profile")
	require.NoError(t, err)
	assert.Contains(t, raw, `"displayName":"Ada"`, "profile is stored as plaintext json")

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	require.NoError(t, s.Clear(ctx))
	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileStore_Corrupted(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStorage(0)
	require.NoError(t, kv.Set(ctx, "familyconnect.profile", "{not json"))

	_, err := newTestProfileStore(kv, "").Load(ctx)
	assert.ErrorIs(t, err, ErrProfileCorrupted)
}

func TestProfileStore_SaveFailure(t *testing.T) {
	s := newTestProfileStore(store.NewMemoryStorage(10), "")

	_, err := s.Save(context.Background(), models.Profile{DisplayName: "Ada"})
	assert.ErrorIs(t, err, store.ErrQuotaExceeded)
}

func TestProfileStore_IDs(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStorage(0)

	_, err := newTestProfileStore(kv, "work").Save(ctx, models.Profile{DisplayName: "W"})
	require.NoError(t, err)

	_, err = newTestProfileStore(kv, "").Load(ctx)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = kv.Get(ctx, "familyconnect.profile.work")
	assert.NoError(t, err)
}
