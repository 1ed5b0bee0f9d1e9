package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"eveuniverse/internal/infrastructure/esi"
	"eveuniverse/internal/shared/config"
	"eveuniverse/internal/shared/errors"
	"eveuniverse/internal/shared/logger"
	"eveuniverse/internal/universe/models"
	"eveuniverse/internal/universe/schema"
)

// fakeESI serves canned payloads the way the real transport would,
// including the all-or-nothing 404 behavior of the names endpoint.
type fakeESI struct {
	mu      sync.Mutex
	objects map[esi.Operation]map[int64]any
	lists   map[esi.Operation]any
	names   map[int64]map[string]any
	calls   map[string]int
}

func newFakeESI() *fakeESI {
	return &fakeESI{
		objects: make(map[esi.Operation]map[int64]any),
		lists:   make(map[esi.Operation]any),
		names:   make(map[int64]map[string]any),
		calls:   make(map[string]int),
	}
}

func (f *fakeESI) addObject(op esi.Operation, id int64, payload map[string]any) {
	if f.objects[op] == nil {
		f.objects[op] = make(map[int64]any)
	}
	f.objects[op][id] = payload
}

func (f *fakeESI) addList(op esi.Operation, payload any) {
	f.lists[op] = payload
}

func (f *fakeESI) addName(id int64, name, category string) {
	f.names[id] = map[string]any{"id": id, "name": name, "category": category}
}

func (f *fakeESI) callCount(op esi.Operation) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[string(op)]
}

func (f *fakeESI) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeESI) Call(_ context.Context, op esi.Operation, params esi.Params) (any, error) {
	f.mu.Lock()
	f.calls[string(op)]++
	f.mu.Unlock()

	if op == "Universe.post_universe_names" {
		ids, _ := params["ids"].([]int64)
		out := make([]any, 0, len(ids))
		for _, id := range ids {
			record, ok := f.names[id]
			if !ok {
				return nil, errors.NewNotFoundError("names request failed")
			}
			out = append(out, record)
		}
		return out, nil
	}
	if len(params) == 0 {
		payload, ok := f.lists[op]
		if !ok {
			return nil, errors.NewNotFoundError(fmt.Sprintf("no fixture for %s", op))
		}
		return payload, nil
	}
	for _, v := range params {
		id, _ := v.(int64)
		payload, ok := f.objects[op][id]
		if !ok {
			return nil, errors.NewNotFoundError(fmt.Sprintf("no fixture for %s %d", op, id))
		}
		return payload, nil
	}
	return nil, errors.NewTransportPermanentError("unexpected call")
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func newTestEngine(t *testing.T, fake *fakeESI, opts ...Option) *Engine {
	t.Helper()
	eng, err := New(newTestDB(t), fake, &config.UniverseConfig{BatchSize: 500}, logger.NewLogger(), opts...)
	require.NoError(t, err)
	return eng
}

// seedMapFixtures registers a minimal region, constellation and system.
func seedMapFixtures(fake *fakeESI) {
	fake.addObject("Universe.get_universe_regions_region_id", 10000002, map[string]any{
		"region_id": 10000002, "name": "The Forge",
		"description":    "The Forge region.",
		"constellations": []any{20000020},
	})
	fake.addObject("Universe.get_universe_constellations_constellation_id", 20000020, map[string]any{
		"constellation_id": 20000020, "name": "Kimotoro", "region_id": 10000002,
		"position": map[string]any{"x": -1.0e17, "y": 6.7e16, "z": -8.8e16},
		"systems":  []any{30000142},
	})
	fake.addObject("Universe.get_universe_systems_system_id", 30000142, map[string]any{
		"system_id": 30000142, "name": "Jita", "constellation_id": 20000020,
		"position":        map[string]any{"x": -1.29e17, "y": 6.07e16, "z": 1.17e17},
		"security_status": 0.9459,
		"star_id":         40009076,
		"planets": []any{
			map[string]any{"planet_id": 40009077, "moons": []any{40009078}},
		},
		"stargates": []any{50001248},
	})
}

// seedShipFixtures registers a frigate type with its group, category and
// dogma data.
func seedShipFixtures(fake *fakeESI) {
	fake.addObject("Universe.get_universe_categories_category_id", 6, map[string]any{
		"category_id": 6, "name": "Ship", "published": true,
		"groups": []any{25},
	})
	fake.addObject("Universe.get_universe_groups_group_id", 25, map[string]any{
		"group_id": 25, "name": "Frigate", "category_id": 6, "published": true,
		"types": []any{603},
	})
	fake.addObject("Universe.get_universe_types_type_id", 603, map[string]any{
		"type_id": 603, "name": "Merlin", "group_id": 25, "published": true,
		"capacity": 150.0, "mass": 997000.0, "volume": 16500.0, "portion_size": 1,
		"dogma_attributes": []any{
			map[string]any{"attribute_id": 588, "value": 5.0},
		},
		"dogma_effects": []any{
			map[string]any{"effect_id": 101, "is_default": false},
		},
	})
	fake.addObject("Dogma.get_dogma_attributes_attribute_id", 588, map[string]any{
		"attribute_id": 588, "name": "requiredSkill1Level",
		"display_name": "Required Skill 1 Level",
		"published":    true, "stackable": true, "high_is_good": false,
	})
	fake.addObject("Dogma.get_dogma_effects_effect_id", 101, map[string]any{
		"effect_id": 101, "name": "loPower", "effect_category": 0,
		"modifiers": []any{
			map[string]any{
				"func": "ItemModifier", "domain": "shipID",
				"modified_attribute_id": 588, "operator": 2,
			},
		},
	})
}

func TestGetOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("existing row is served without a remote call", func(t *testing.T) {
		fake := newFakeESI()
		eng := newTestEngine(t, fake)
		require.NoError(t, eng.db.Create(&models.EveRegion{ID: 10000002, Name: "The Forge"}).Error)

		model, created, err := eng.GetOrCreate(ctx, "EveRegion", 10000002, LoadOptions{})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "The Forge", model.(*models.EveRegion).Name)
		assert.Zero(t, fake.totalCalls())
	})

	t.Run("missing row is fetched with its FK chain", func(t *testing.T) {
		fake := newFakeESI()
		seedMapFixtures(fake)
		eng := newTestEngine(t, fake)

		model, created, err := eng.GetOrCreate(ctx, "EveSolarSystem", 30000142, LoadOptions{})
		require.NoError(t, err)
		assert.True(t, created)

		system := model.(*models.EveSolarSystem)
		assert.Equal(t, "Jita", system.Name)
		assert.Equal(t, int64(20000020), system.EveConstellationID)
		assert.InDelta(t, 0.9459, system.SecurityStatus, 1e-9)
		require.NotNil(t, system.PositionX)
		assert.InDelta(t, -1.29e17, *system.PositionX, 1e9)
		assert.Nil(t, system.EveStarID, "stars section not enabled")
		assert.True(t, system.IsHighSec())

		var constellation models.EveConstellation
		require.NoError(t, eng.db.First(&constellation, "id = ?", 20000020).Error)
		assert.Equal(t, "Kimotoro", constellation.Name)
		assert.Equal(t, int64(10000002), constellation.EveRegionID)

		var region models.EveRegion
		require.NoError(t, eng.db.First(&region, "id = ?", 10000002).Error)
		assert.Equal(t, "The Forge", region.Name)
	})

	t.Run("unknown ID propagates not found", func(t *testing.T) {
		fake := newFakeESI()
		eng := newTestEngine(t, fake)

		_, _, err := eng.GetOrCreate(ctx, "EveRegion", 999, LoadOptions{})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("unknown type is invalid input", func(t *testing.T) {
		eng := newTestEngine(t, newFakeESI())
		_, _, err := eng.GetOrCreate(ctx, "EveWormhole", 1, LoadOptions{})
		assert.True(t, errors.IsInvalidInputError(err))
	})

	t.Run("inline type is invalid input", func(t *testing.T) {
		eng := newTestEngine(t, newFakeESI())
		_, _, err := eng.GetOrCreate(ctx, "EveTypeDogmaAttribute", 1, LoadOptions{})
		assert.True(t, errors.IsInvalidInputError(err))
	})
}

func TestSectionGating(t *testing.T) {
	ctx := context.Background()

	t.Run("dogmas section controls inline rows and the bitfield", func(t *testing.T) {
		fake := newFakeESI()
		seedShipFixtures(fake)
		eng := newTestEngine(t, fake)

		// without the section: no dogma data, no dogma calls
		model, _, err := eng.GetOrCreate(ctx, "EveType", 603, LoadOptions{})
		require.NoError(t, err)
		assert.Zero(t, model.(*models.EveType).EnabledSections)
		var count int64
		eng.db.Model(&models.EveTypeDogmaAttribute{}).Count(&count)
		assert.Zero(t, count)
		assert.Zero(t, fake.callCount("Dogma.get_dogma_attributes_attribute_id"))

		// requesting the section refetches and loads the inline rows
		model, _, err = eng.GetOrCreate(ctx, "EveType", 603, LoadOptions{
			Sections: []schema.Section{schema.SectionDogmas},
		})
		require.NoError(t, err)
		eveType := model.(*models.EveType)
		assert.True(t, eveType.EnabledSections.Has(1<<0))

		var attrs []models.EveTypeDogmaAttribute
		require.NoError(t, eng.db.Find(&attrs).Error)
		require.Len(t, attrs, 1)
		assert.Equal(t, int64(603), attrs[0].EveTypeID)
		assert.Equal(t, int64(588), attrs[0].EveDogmaAttributeID)
		assert.InDelta(t, 5.0, attrs[0].Value, 1e-9)

		var effects []models.EveTypeDogmaEffect
		require.NoError(t, eng.db.Find(&effects).Error)
		require.Len(t, effects, 1)
		assert.Equal(t, int64(101), effects[0].EveDogmaEffectID)

		var modifiers []models.EveDogmaEffectModifier
		require.NoError(t, eng.db.Find(&modifiers).Error)
		require.Len(t, modifiers, 1)
		assert.Equal(t, "ItemModifier", modifiers[0].Func)
		require.NotNil(t, modifiers[0].ModifiedAttributeID)
		assert.Equal(t, int64(588), *modifiers[0].ModifiedAttributeID)

		// a third call with the same section is now a cache hit
		calls := fake.callCount("Universe.get_universe_types_type_id")
		_, created, err := eng.GetOrCreate(ctx, "EveType", 603, LoadOptions{
			Sections: []schema.Section{schema.SectionDogmas},
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, calls, fake.callCount("Universe.get_universe_types_type_id"))
	})

	t.Run("globally enabled sections apply without being requested", func(t *testing.T) {
		fake := newFakeESI()
		seedShipFixtures(fake)
		db := newTestDB(t)
		eng, err := New(db, fake, &config.UniverseConfig{BatchSize: 500, LoadDogmas: true}, logger.NewLogger())
		require.NoError(t, err)

		_, _, err = eng.GetOrCreate(ctx, "EveType", 603, LoadOptions{})
		require.NoError(t, err)
		var count int64
		db.Model(&models.EveTypeDogmaAttribute{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("section bits accumulate", func(t *testing.T) {
		fake := newFakeESI()
		seedShipFixtures(fake)
		eng := newTestEngine(t, fake)

		_, _, err := eng.UpdateOrCreate(ctx, "EveType", 603, LoadOptions{
			Sections: []schema.Section{schema.SectionDogmas},
		})
		require.NoError(t, err)
		model, _, err := eng.UpdateOrCreate(ctx, "EveType", 603, LoadOptions{})
		require.NoError(t, err)
		assert.True(t, model.(*models.EveType).EnabledSections.Has(1<<0),
			"a later load without the section keeps the bit")
	})

	t.Run("sections requested on a parent reach its descendants", func(t *testing.T) {
		fake := newFakeESI()
		seedShipFixtures(fake)
		eng := newTestEngine(t, fake)

		// categories and groups declare no sections themselves; the
		// request still has to arrive at the types below them
		model, _, err := eng.UpdateOrCreate(ctx, "EveCategory", 6, LoadOptions{
			Sections:        []schema.Section{schema.SectionDogmas},
			IncludeChildren: true,
			WaitForChildren: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "Ship", model.(*models.EveCategory).Name)

		var attrs int64
		eng.db.Model(&models.EveTypeDogmaAttribute{}).
			Where("eve_type_id = ?", 603).Count(&attrs)
		assert.Equal(t, int64(1), attrs, "dogma attributes should be stored for type 603")

		eveType := &models.EveType{}
		require.NoError(t, eng.db.First(eveType, "id = ?", 603).Error)
		assert.True(t, eveType.EnabledSections.Has(1<<0))
	})
}

func TestChildrenFanOut(t *testing.T) {
	ctx := context.Background()

	t.Run("category loads groups and types when waiting", func(t *testing.T) {
		fake := newFakeESI()
		seedShipFixtures(fake)
		eng := newTestEngine(t, fake)

		_, _, err := eng.UpdateOrCreate(ctx, "EveCategory", 6, LoadOptions{
			IncludeChildren: true,
			WaitForChildren: true,
		})
		require.NoError(t, err)

		var group models.EveGroup
		require.NoError(t, eng.db.First(&group, "id = ?", 25).Error)
		assert.Equal(t, "Frigate", group.Name)

		var eveType models.EveType
		require.NoError(t, eng.db.First(&eveType, "id = ?", 603).Error)
		assert.Equal(t, "Merlin", eveType.Name)
	})

	t.Run("children are skipped without include children", func(t *testing.T) {
		fake := newFakeESI()
		seedShipFixtures(fake)
		eng := newTestEngine(t, fake)

		_, _, err := eng.UpdateOrCreate(ctx, "EveCategory", 6, LoadOptions{})
		require.NoError(t, err)
		var count int64
		eng.db.Model(&models.EveGroup{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("children go to the runtime when not waiting", func(t *testing.T) {
		fake := newFakeESI()
		seedShipFixtures(fake)
		rt := &recordingRuntime{}
		eng := newTestEngine(t, fake, WithRuntime(rt))

		_, _, err := eng.UpdateOrCreate(ctx, "EveCategory", 6, LoadOptions{IncludeChildren: true})
		require.NoError(t, err)
		require.Len(t, rt.tasks, 1)
		assert.Equal(t, "EveGroup", rt.tasks[0].EntityType)
		assert.Equal(t, int64(25), rt.tasks[0].ID)
		assert.True(t, rt.tasks[0].IncludeChildren)
	})
}

type recordingRuntime struct {
	mu    sync.Mutex
	tasks []Task
}

func (r *recordingRuntime) Submit(_ context.Context, task Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, task)
	return nil
}

func TestPlanetChildPayloads(t *testing.T) {
	ctx := context.Background()

	fake := newFakeESI()
	seedMapFixtures(fake)
	fake.addObject("Universe.get_universe_planets_planet_id", 40009077, map[string]any{
		"planet_id": 40009077, "name": "Jita IV", "system_id": 30000142, "type_id": 2015,
		"position": map[string]any{"x": 1.0e11, "y": 2.0e10, "z": -1.0e11},
	})
	fake.addObject("Universe.get_universe_moons_moon_id", 40009078, map[string]any{
		"moon_id": 40009078, "name": "Jita IV - Moon 4", "system_id": 30000142,
		"position": map[string]any{"x": 1.1e11, "y": 2.0e10, "z": -1.0e11},
	})
	fake.addObject("Universe.get_universe_types_type_id", 2015, map[string]any{
		"type_id": 2015, "name": "Planet (Barren)", "group_id": 7, "published": true,
	})
	fake.addObject("Universe.get_universe_groups_group_id", 7, map[string]any{
		"group_id": 7, "name": "Planet", "category_id": 2, "published": true,
	})
	fake.addObject("Universe.get_universe_categories_category_id", 2, map[string]any{
		"category_id": 2, "name": "Celestial", "published": true,
	})
	eng := newTestEngine(t, fake)

	model, _, err := eng.GetOrCreate(ctx, "EveMoon", 40009078, LoadOptions{})
	require.NoError(t, err)
	moon := model.(*models.EveMoon)
	assert.Equal(t, "Jita IV - Moon 4", moon.Name)
	assert.Equal(t, int64(40009077), moon.EvePlanetID,
		"planet resolved by scanning the owning system payload")

	var planet models.EvePlanet
	require.NoError(t, eng.db.First(&planet, "id = ?", 40009077).Error)
	assert.Equal(t, int64(30000142), planet.EveSolarSystemID)
}

func TestStargateLinking(t *testing.T) {
	ctx := context.Background()

	fake := newFakeESI()
	seedMapFixtures(fake)
	fake.addObject("Universe.get_universe_systems_system_id", 30000144, map[string]any{
		"system_id": 30000144, "name": "Perimeter", "constellation_id": 20000020,
		"security_status": 0.9505,
	})
	fake.addObject("Universe.get_universe_stargates_stargate_id", 50001248, map[string]any{
		"stargate_id": 50001248, "name": "Stargate (Perimeter)",
		"system_id": 30000142, "type_id": 16,
		"destination": map[string]any{"stargate_id": 50001249, "system_id": 30000144},
	})
	fake.addObject("Universe.get_universe_stargates_stargate_id", 50001249, map[string]any{
		"stargate_id": 50001249, "name": "Stargate (Jita)",
		"system_id": 30000144, "type_id": 16,
		"destination": map[string]any{"stargate_id": 50001248, "system_id": 30000142},
	})
	fake.addObject("Universe.get_universe_types_type_id", 16, map[string]any{
		"type_id": 16, "name": "Stargate (Caldari System)", "group_id": 10, "published": true,
	})
	fake.addObject("Universe.get_universe_groups_group_id", 10, map[string]any{
		"group_id": 10, "name": "Stargate", "category_id": 2, "published": true,
	})
	fake.addObject("Universe.get_universe_categories_category_id", 2, map[string]any{
		"category_id": 2, "name": "Celestial", "published": true,
	})
	eng := newTestEngine(t, fake)

	// first endpoint: destination gate does not exist yet
	model, _, err := eng.GetOrCreate(ctx, "EveStargate", 50001248, LoadOptions{})
	require.NoError(t, err)
	first := model.(*models.EveStargate)
	assert.Nil(t, first.DestinationEveStargateID)
	assert.Nil(t, first.DestinationEveSolarSystemID)

	// second endpoint closes the pair in both directions
	model, _, err = eng.GetOrCreate(ctx, "EveStargate", 50001249, LoadOptions{})
	require.NoError(t, err)
	second := model.(*models.EveStargate)
	require.NotNil(t, second.DestinationEveStargateID)
	assert.Equal(t, int64(50001248), *second.DestinationEveStargateID)
	require.NotNil(t, second.DestinationEveSolarSystemID)
	assert.Equal(t, int64(30000142), *second.DestinationEveSolarSystemID)

	require.NoError(t, eng.db.First(first, "id = ?", 50001248).Error)
	require.NotNil(t, first.DestinationEveStargateID)
	assert.Equal(t, int64(50001249), *first.DestinationEveStargateID)
	require.NotNil(t, first.DestinationEveSolarSystemID)
	assert.Equal(t, int64(30000144), *first.DestinationEveSolarSystemID)
}

func TestListOnlyTypes(t *testing.T) {
	ctx := context.Background()

	fake := newFakeESI()
	fake.addList("Universe.get_universe_races", []any{
		map[string]any{
			"race_id": 1, "name": "Caldari", "alliance_id": 500001,
			"description": "The Caldari State.",
		},
		map[string]any{
			"race_id": 2, "name": "Minmatar", "alliance_id": 500002,
			"description": "The Minmatar Republic.",
		},
	})
	eng := newTestEngine(t, fake)

	t.Run("ID is scanned out of the index payload", func(t *testing.T) {
		model, created, err := eng.GetOrCreate(ctx, "EveRace", 2, LoadOptions{})
		require.NoError(t, err)
		assert.True(t, created)
		race := model.(*models.EveRace)
		assert.Equal(t, "Minmatar", race.Name)
		assert.Equal(t, int64(500002), race.AllianceID)
	})

	t.Run("absent ID is not found", func(t *testing.T) {
		_, _, err := eng.GetOrCreate(ctx, "EveRace", 99, LoadOptions{})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("update or create all stores every index element", func(t *testing.T) {
		count, err := eng.UpdateOrCreateAll(ctx, "EveRace", LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		var stored int64
		eng.db.Model(&models.EveRace{}).Count(&stored)
		assert.Equal(t, int64(2), stored)
	})
}

func TestUpdateOrCreateAllDispatch(t *testing.T) {
	ctx := context.Background()

	fake := newFakeESI()
	seedMapFixtures(fake)
	fake.addList("Universe.get_universe_regions", []any{int64(10000002)})

	t.Run("catalogue IDs go to the runtime when not waiting", func(t *testing.T) {
		rt := &recordingRuntime{}
		eng := newTestEngine(t, fake, WithRuntime(rt))

		count, err := eng.UpdateOrCreateAll(ctx, "EveRegion", LoadOptions{IncludeChildren: true})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		require.Len(t, rt.tasks, 1)
		assert.Equal(t, "EveRegion", rt.tasks[0].EntityType)
		assert.Equal(t, int64(10000002), rt.tasks[0].ID)
		assert.True(t, rt.tasks[0].IncludeChildren)

		var stored int64
		eng.db.Model(&models.EveRegion{}).Count(&stored)
		assert.Zero(t, stored, "rows are written by the runtime, not the catalogue loop")
	})

	t.Run("waiting loads every ID in call", func(t *testing.T) {
		rt := &recordingRuntime{}
		eng := newTestEngine(t, fake, WithRuntime(rt))

		count, err := eng.UpdateOrCreateAll(ctx, "EveRegion", LoadOptions{WaitForChildren: true})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Empty(t, rt.tasks)

		var stored int64
		eng.db.Model(&models.EveRegion{}).Count(&stored)
		assert.Equal(t, int64(1), stored)
	})
}

func TestListOnlyParentResolution(t *testing.T) {
	ctx := context.Background()

	fake := newFakeESI()
	seedShipFixtures(fake)
	fake.addList("Universe.get_universe_races", []any{
		map[string]any{
			"race_id": 1, "name": "Caldari", "alliance_id": 500001,
			"description": "The Caldari State.",
		},
	})
	fake.addList("Universe.get_universe_bloodlines", []any{
		map[string]any{
			"bloodline_id": 2, "name": "Civire", "race_id": 1, "ship_type_id": 603,
			"corporation_id": 1000009, "description": "The Civire bloodline.",
			"charisma": 6, "intelligence": 6, "memory": 8, "perception": 11, "willpower": 8,
		},
	})
	fake.addList("Universe.get_universe_ancestries", []any{
		map[string]any{
			"id": 8, "name": "Mercs", "bloodline_id": 2, "icon_id": 1648,
			"description": "Guns for hire.", "short_description": "Free agents.",
		},
	})
	eng := newTestEngine(t, fake)

	model, created, err := eng.GetOrCreate(ctx, "EveAncestry", 8, LoadOptions{})
	require.NoError(t, err)
	assert.True(t, created)
	ancestry := model.(*models.EveAncestry)
	assert.Equal(t, "Mercs", ancestry.Name)
	assert.Equal(t, int64(2), ancestry.EveBloodlineID)

	// the bloodline and its own parents were created on the way
	bloodline := &models.EveBloodline{}
	require.NoError(t, eng.db.First(bloodline, "id = ?", 2).Error)
	assert.Equal(t, "Civire", bloodline.Name)
	require.NotNil(t, bloodline.EveRaceID)
	assert.Equal(t, int64(1), *bloodline.EveRaceID)
	assert.Equal(t, int64(603), bloodline.EveShipTypeID)

	eveType := &models.EveType{}
	require.NoError(t, eng.db.First(eveType, "id = ?", 603).Error)
	assert.Equal(t, "Merlin", eveType.Name)
}

func TestStationServices(t *testing.T) {
	ctx := context.Background()

	fake := newFakeESI()
	seedMapFixtures(fake)
	fake.addObject("Universe.get_universe_stations_station_id", 60003760, map[string]any{
		"station_id": 60003760,
		"name":       "Jita IV - Moon 4 - Caldari Navy Assembly Plant",
		"system_id":  30000142, "type_id": 1529, "race_id": 1,
		"max_dockable_ship_volume":   50000000.0,
		"office_rental_cost":         10000.0,
		"owner":                      1000035,
		"reprocessing_efficiency":    0.5,
		"reprocessing_stations_take": 0.05,
		"services":                   []any{"market", "fitting", "repair-facilities"},
	})
	fake.addObject("Universe.get_universe_types_type_id", 1529, map[string]any{
		"type_id": 1529, "name": "Caldari Station Hub", "group_id": 15, "published": true,
	})
	fake.addObject("Universe.get_universe_groups_group_id", 15, map[string]any{
		"group_id": 15, "name": "Station", "category_id": 3, "published": true,
	})
	fake.addObject("Universe.get_universe_categories_category_id", 3, map[string]any{
		"category_id": 3, "name": "Station", "published": true,
	})
	fake.addList("Universe.get_universe_races", []any{
		map[string]any{"race_id": 1, "name": "Caldari", "alliance_id": 500001, "description": ""},
	})
	eng := newTestEngine(t, fake)

	_, _, err := eng.GetOrCreate(ctx, "EveStation", 60003760, LoadOptions{})
	require.NoError(t, err)

	var station models.EveStation
	require.NoError(t,
		eng.db.Preload("Services").First(&station, "id = ?", 60003760).Error)
	assert.Equal(t, int64(1000035), *station.OwnerID)
	require.Len(t, station.Services, 3)
	names := make([]string, 0, 3)
	for _, service := range station.Services {
		names = append(names, service.Name)
	}
	assert.ElementsMatch(t, []string{"market", "fitting", "repair-facilities"}, names)

	// a second load with fewer services replaces the links, not the rows
	fake.addObject("Universe.get_universe_stations_station_id", 60003760, map[string]any{
		"station_id": 60003760,
		"name":       "Jita IV - Moon 4 - Caldari Navy Assembly Plant",
		"system_id":  30000142, "type_id": 1529,
		"max_dockable_ship_volume":   50000000.0,
		"office_rental_cost":         10000.0,
		"reprocessing_efficiency":    0.5,
		"reprocessing_stations_take": 0.05,
		"services":                   []any{"market"},
	})
	_, _, err = eng.UpdateOrCreate(ctx, "EveStation", 60003760, LoadOptions{})
	require.NoError(t, err)
	station = models.EveStation{}
	require.NoError(t,
		eng.db.Preload("Services").First(&station, "id = ?", 60003760).Error)
	require.Len(t, station.Services, 1)
	assert.Equal(t, "market", station.Services[0].Name)
	var serviceRows int64
	eng.db.Model(&models.EveStationService{}).Count(&serviceRows)
	assert.Equal(t, int64(3), serviceRows)
}

func TestPurgeAll(t *testing.T) {
	ctx := context.Background()

	fake := newFakeESI()
	seedMapFixtures(fake)
	eng := newTestEngine(t, fake)

	_, _, err := eng.GetOrCreate(ctx, "EveSolarSystem", 30000142, LoadOptions{})
	require.NoError(t, err)

	require.NoError(t, eng.PurgeAll(ctx))
	for _, model := range []any{&models.EveSolarSystem{}, &models.EveConstellation{}, &models.EveRegion{}} {
		var count int64
		eng.db.Model(model).Count(&count)
		assert.Zero(t, count)
	}
}
