package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eveuniverse/internal/universe/models"
)

func TestGetOrCreateEntities(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves names and categories in bulk", func(t *testing.T) {
		fake := newFakeESI()
		fake.addName(1001, "Bruce Wayne", "character")
		fake.addName(2001, "Wayne Technologies", "corporation")
		eng := newTestEngine(t, fake)

		entities, err := eng.GetOrCreateEntities(ctx, []int64{1001, 2001, 1001})
		require.NoError(t, err)
		require.Len(t, entities, 2, "duplicate IDs collapse")
		assert.Equal(t, "Bruce Wayne", entities[0].Name)
		assert.True(t, entities[0].IsCharacter())
		assert.Equal(t, "Wayne Technologies", entities[1].Name)
		assert.True(t, entities[1].IsCorporation())
	})

	t.Run("known rows are served without a remote call", func(t *testing.T) {
		fake := newFakeESI()
		fake.addName(1001, "Bruce Wayne", "character")
		eng := newTestEngine(t, fake)

		_, err := eng.GetOrCreateEntities(ctx, []int64{1001})
		require.NoError(t, err)
		calls := fake.callCount("Universe.post_universe_names")

		_, err = eng.GetOrCreateEntities(ctx, []int64{1001})
		require.NoError(t, err)
		assert.Equal(t, calls, fake.callCount("Universe.post_universe_names"))
	})

	t.Run("unknown IDs are isolated by splitting and stay placeholders", func(t *testing.T) {
		fake := newFakeESI()
		fake.addName(1001, "Bruce Wayne", "character")
		fake.addName(2001, "Wayne Technologies", "corporation")
		eng := newTestEngine(t, fake)

		resolved, err := eng.UpdateEntitiesFromESI(ctx, []int64{1001, 9999, 2001})
		require.NoError(t, err)
		assert.Equal(t, 2, resolved)

		var placeholder models.EveEntity
		require.NoError(t, eng.db.First(&placeholder, "id = ?", 9999).Error)
		assert.Empty(t, placeholder.Name)
		assert.Nil(t, placeholder.Category)

		var named models.EveEntity
		require.NoError(t, eng.db.First(&named, "id = ?", 1001).Error)
		assert.Equal(t, "Bruce Wayne", named.Name)
	})

	t.Run("placeholders are retried on the next request", func(t *testing.T) {
		fake := newFakeESI()
		eng := newTestEngine(t, fake)

		resolved, err := eng.UpdateEntitiesFromESI(ctx, []int64{1001})
		require.NoError(t, err)
		assert.Zero(t, resolved)

		fake.addName(1001, "Bruce Wayne", "character")
		entities, err := eng.GetOrCreateEntities(ctx, []int64{1001})
		require.NoError(t, err)
		require.Len(t, entities, 1)
		assert.Equal(t, "Bruce Wayne", entities[0].Name)
	})

	t.Run("NPC windows classify corporations and characters", func(t *testing.T) {
		fake := newFakeESI()
		fake.addName(1000035, "Caldari Navy", "corporation")
		fake.addName(98000001, "Some Player Corp", "corporation")
		eng := newTestEngine(t, fake)

		entities, err := eng.GetOrCreateEntities(ctx, []int64{1000035, 98000001})
		require.NoError(t, err)
		require.Len(t, entities, 2)
		assert.True(t, entities[0].IsNPC())
		assert.False(t, entities[1].IsNPC())
	})
}

func TestUpdateAllEntitiesFromESI(t *testing.T) {
	ctx := context.Background()

	fake := newFakeESI()
	fake.addName(1001, "Bruce Wayne", "character")
	eng := newTestEngine(t, fake)
	require.NoError(t, eng.db.Create(&models.EveEntity{ID: 1001, Name: "Old Name"}).Error)

	resolved, err := eng.UpdateAllEntitiesFromESI(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resolved)

	var entity models.EveEntity
	require.NoError(t, eng.db.First(&entity, "id = ?", 1001).Error)
	assert.Equal(t, "Bruce Wayne", entity.Name)
}

func TestFetchNameResolver(t *testing.T) {
	ctx := context.Background()

	fake := newFakeESI()
	fake.addName(1001, "Bruce Wayne", "character")
	eng := newTestEngine(t, fake)

	resolver, err := eng.FetchNameResolver(ctx, []int64{1001, 9999})
	require.NoError(t, err)
	assert.Equal(t, "Bruce Wayne", resolver.Name(1001))
	assert.Empty(t, resolver.Name(9999), "unresolvable ID answers with an empty name")
	assert.Empty(t, resolver.Name(42), "unrequested ID answers with an empty name")
}
