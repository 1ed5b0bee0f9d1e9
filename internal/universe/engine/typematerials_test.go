package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eveuniverse/internal/infrastructure/sde"
	"eveuniverse/internal/shared/errors"
	"eveuniverse/internal/universe/models"
	"eveuniverse/internal/universe/schema"
)

type fakeMaterials struct {
	table map[int64][]sde.Material
}

func (f *fakeMaterials) TypeMaterials(context.Context) (map[int64][]sde.Material, error) {
	return f.table, nil
}

func TestTypeMaterialsSection(t *testing.T) {
	ctx := context.Background()
	load := LoadOptions{Sections: []schema.Section{schema.SectionTypeMaterials}}

	newFixtures := func() *fakeESI {
		fake := newFakeESI()
		seedShipFixtures(fake)
		fake.addObject("Universe.get_universe_types_type_id", 34, map[string]any{
			"type_id": 34, "name": "Tritanium", "group_id": 18, "published": true,
		})
		fake.addObject("Universe.get_universe_groups_group_id", 18, map[string]any{
			"group_id": 18, "name": "Mineral", "category_id": 4, "published": true,
		})
		fake.addObject("Universe.get_universe_categories_category_id", 4, map[string]any{
			"category_id": 4, "name": "Material", "published": true,
		})
		return fake
	}

	t.Run("stores the bill of materials and its type rows", func(t *testing.T) {
		materials := &fakeMaterials{table: map[int64][]sde.Material{
			603: {{MaterialTypeID: 34, Quantity: 21000}},
		}}
		eng := newTestEngine(t, newFixtures(), WithMaterials(materials))

		model, _, err := eng.GetOrCreate(ctx, "EveType", 603, load)
		require.NoError(t, err)
		assert.True(t, model.(*models.EveType).EnabledSections.Has(1<<3))

		var rows []models.EveTypeMaterial
		require.NoError(t, eng.db.Find(&rows).Error)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(603), rows[0].EveTypeID)
		assert.Equal(t, int64(34), rows[0].MaterialEveTypeID)
		assert.Equal(t, int64(21000), rows[0].Quantity)

		var material models.EveType
		require.NoError(t, eng.db.First(&material, "id = ?", 34).Error,
			"material types are created on first sight")
	})

	t.Run("types without materials get no rows", func(t *testing.T) {
		materials := &fakeMaterials{table: map[int64][]sde.Material{}}
		eng := newTestEngine(t, newFixtures(), WithMaterials(materials))

		_, _, err := eng.GetOrCreate(ctx, "EveType", 603, load)
		require.NoError(t, err)
		var count int64
		eng.db.Model(&models.EveTypeMaterial{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("section without a source is a configuration error", func(t *testing.T) {
		eng := newTestEngine(t, newFixtures())
		_, _, err := eng.GetOrCreate(ctx, "EveType", 603, load)
		assert.True(t, errors.IsConfigurationError(err))
	})
}
