package pet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotworks/PixieBot_Go/internal/domain"
)

func newTestService(store *fakeStore) *service {
	svc := NewService(store).(*service)
	svc.rnd = func() float64 { return 0.0 }
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestGrantPet(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	first, err := svc.GrantPet(ctx, "alice", domain.TierCommon)
	require.NoError(t, err)
	assert.Equal(t, "Moss Sprite", first.Species)
	assert.True(t, first.IsActive, "first pet becomes active")
	assert.Equal(t, 1.0, first.Level)

	second, err := svc.GrantPet(ctx, "alice", domain.TierRare)
	require.NoError(t, err)
	assert.False(t, second.IsActive, "later pets stay inactive")

	_, err = svc.GrantPet(ctx, "alice", domain.PetTier("mythic"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOpenPetBox(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	store.give("alice", 3, 2) // two rare pet boxes

	first, err := svc.OpenPetBox(ctx, "alice", domain.ItemPetBoxRare)
	require.NoError(t, err)
	assert.Equal(t, domain.TierRare, first.Tier)
	assert.Equal(t, "Storm Owl", first.Species)
	assert.True(t, first.IsActive, "first pet becomes active")
	assert.Equal(t, 1, store.inventory["alice"][3], "one box consumed")

	second, err := svc.OpenPetBox(ctx, "alice", domain.ItemPetBoxRare)
	require.NoError(t, err)
	assert.False(t, second.IsActive, "later pets stay inactive")
	assert.Zero(t, store.inventory["alice"][3])
}

func TestOpenPetBox_Failures(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.OpenPetBox(ctx, "alice", domain.ItemPetBoxRare)
	assert.ErrorIs(t, err, domain.ErrNoBoxOwned)

	store.give("alice", 1, 1) // pet food is not openable
	_, err = svc.OpenPetBox(ctx, "alice", domain.ItemPetFood)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.OpenPetBox(ctx, "alice", "Slime Crate")
	assert.ErrorIs(t, err, domain.ErrCatalogMissing)
}

func TestSetActivePet(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	first, err := svc.GrantPet(ctx, "alice", domain.TierCommon)
	require.NoError(t, err)
	second, err := svc.GrantPet(ctx, "alice", domain.TierUncommon)
	require.NoError(t, err)

	activated, err := svc.SetActivePet(ctx, "alice", second.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)
	assert.False(t, store.pets[first.ID].IsActive)

	// Re-activating is a no-op.
	again, err := svc.SetActivePet(ctx, "alice", second.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, again.ID)

	// Foreign pets are rejected.
	_, err = svc.SetActivePet(ctx, "bob", second.ID)
	assert.ErrorIs(t, err, domain.ErrPetNotOwned)
}

func TestFeedActivePet(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	pet, err := svc.GrantPet(ctx, "alice", domain.TierCommon)
	require.NoError(t, err)
	store.give("alice", 1, 2) // two pet food

	result, err := svc.FeedActivePet(ctx, "alice")
	require.NoError(t, err)
	// Level 1 feeds at the full 1.9 gain.
	assert.InDelta(t, 1.9, result.Gain, 1e-9)
	assert.InDelta(t, 2.9, result.NewLevel, 1e-9)
	assert.InDelta(t, 2.9, store.pets[pet.ID].Level, 1e-9)
	assert.Equal(t, 1, store.inventory["alice"][1], "one food consumed")

	// Gains diminish as the pet levels.
	store.pets[pet.ID].Level = 30
	result, err = svc.FeedActivePet(ctx, "alice")
	require.NoError(t, err)
	assert.InDelta(t, 0.2, result.Gain, 1e-9, "gain bottoms out at 0.2")
}

func TestFeedActivePet_Failures(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	// No active pet at all.
	_, err := svc.FeedActivePet(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrNoActivePet)

	// Active pet but no food.
	_, err = svc.GrantPet(ctx, "alice", domain.TierCommon)
	require.NoError(t, err)
	_, err = svc.FeedActivePet(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrNoFoodOwned)
}

func TestRenamePet(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	pet, err := svc.GrantPet(ctx, "alice", domain.TierCommon)
	require.NoError(t, err)

	// No scroll owned.
	err = svc.RenamePet(ctx, "alice", pet.ID, "Sir Fluff")
	assert.ErrorIs(t, err, domain.ErrItemNotOwned)

	store.give("alice", 2, 1) // one rename scroll
	require.NoError(t, svc.RenamePet(ctx, "alice", pet.ID, "Sir Fluff"))
	assert.Equal(t, "Sir Fluff", store.pets[pet.ID].Name)
	assert.Equal(t, 0, store.inventory["alice"][2], "scroll consumed")

	// Not the owner.
	err = svc.RenamePet(ctx, "bob", pet.ID, "Stolen")
	assert.ErrorIs(t, err, domain.ErrPetNotOwned)

	err = svc.RenamePet(ctx, "alice", pet.ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRemovePet(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	pet, err := svc.GrantPet(ctx, "alice", domain.TierCommon)
	require.NoError(t, err)

	err = svc.RemovePet(ctx, "bob", pet.ID)
	assert.ErrorIs(t, err, domain.ErrPetNotOwned)

	require.NoError(t, svc.RemovePet(ctx, "alice", pet.ID))
	assert.Empty(t, store.pets)
}

func TestRunHourlyGrowth(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	active, err := svc.GrantPet(ctx, "alice", domain.TierCommon)
	require.NoError(t, err)
	idle, err := svc.GrantPet(ctx, "alice", domain.TierCommon)
	require.NoError(t, err)

	grown, err := svc.RunHourlyGrowth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, grown)
	assert.InDelta(t, 1+domain.HourlyGrowthIncrement, store.pets[active.ID].Level, 1e-9)
	assert.Equal(t, 1.0, store.pets[idle.ID].Level)
}

func TestRoll_PoolBounds(t *testing.T) {
	now := time.Now()

	low := Roll("alice", domain.TierLegendary, func() float64 { return 0.0 }, now)
	assert.Equal(t, "Aurora Phoenix", low.Species)

	// A draw of exactly 1.0 still lands on a real species.
	high := Roll("alice", domain.TierLegendary, func() float64 { return 1.0 }, now)
	assert.Equal(t, "Eclipse Dragon", high.Species)

	for tier, pool := range map[domain.PetTier]int{
		domain.TierCommon: 4, domain.TierUncommon: 3, domain.TierRare: 3,
		domain.TierEpic: 2, domain.TierLegendary: 2,
	} {
		assert.Len(t, Pool(tier), pool)
	}
}
