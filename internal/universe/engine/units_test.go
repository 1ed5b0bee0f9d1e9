package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eveuniverse/internal/universe/models"
)

func TestLoadUnits(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, newFakeESI())

	count, err := eng.LoadUnits(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(eveUnits), count)

	var unit models.EveUnit
	require.NoError(t, eng.db.First(&unit, "id = ?", 104).Error)
	assert.Equal(t, "Multiplier", unit.Name)
	assert.Equal(t, "x", unit.DisplayName)

	// reloading is idempotent
	_, err = eng.LoadUnits(ctx)
	require.NoError(t, err)
	var total int64
	eng.db.Model(&models.EveUnit{}).Count(&total)
	assert.Equal(t, int64(len(eveUnits)), total)
}

func TestDogmaAttributeUnitReference(t *testing.T) {
	ctx := context.Background()

	fake := newFakeESI()
	fake.addObject("Dogma.get_dogma_attributes_attribute_id", 277, map[string]any{
		"attribute_id": 277, "name": "requiredSkill1Level",
		"display_name": "Required Skill 1 Level", "unit_id": 140,
	})
	eng := newTestEngine(t, fake)

	t.Run("reference is null until units are loaded", func(t *testing.T) {
		model, _, err := eng.UpdateOrCreate(ctx, "EveDogmaAttribute", 277, LoadOptions{})
		require.NoError(t, err)
		assert.Nil(t, model.(*models.EveDogmaAttribute).EveUnitID)
	})

	t.Run("reference is stored once the unit row exists", func(t *testing.T) {
		_, err := eng.LoadUnits(ctx)
		require.NoError(t, err)

		model, _, err := eng.UpdateOrCreate(ctx, "EveDogmaAttribute", 277, LoadOptions{})
		require.NoError(t, err)
		attribute := model.(*models.EveDogmaAttribute)
		require.NotNil(t, attribute.EveUnitID)
		assert.Equal(t, int64(140), *attribute.EveUnitID)
	})
}
