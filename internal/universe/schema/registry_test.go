package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eveuniverse/internal/shared/errors"
	"eveuniverse/internal/universe/models"
)

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	t.Run("indexes every built-in type", func(t *testing.T) {
		assert.Len(t, r.Names(), len(builtin))
	})

	t.Run("orders types so FK targets load first", func(t *testing.T) {
		pos := make(map[string]int)
		for i, m := range r.All() {
			pos[m.Name] = i
		}
		assert.Less(t, pos["EveCategory"], pos["EveGroup"])
		assert.Less(t, pos["EveGroup"], pos["EveType"])
		assert.Less(t, pos["EveRegion"], pos["EveConstellation"])
		assert.Less(t, pos["EveConstellation"], pos["EveSolarSystem"])
		assert.Less(t, pos["EveUnit"], pos["EveDogmaAttribute"])
	})

	t.Run("unknown type is invalid input", func(t *testing.T) {
		_, err := r.Get("EveWormhole")
		assert.True(t, errors.IsInvalidInputError(err))
	})
}

func TestRegistryValidation(t *testing.T) {
	valid := func() *EntityMeta {
		return &EntityMeta{
			Name:       "EveThing",
			ESIPK:      "thing_id",
			PathObject: "Universe.get_universe_types_type_id",
			Fields: []FieldDef{
				{Column: "name", Type: TypeString, Text: true},
			},
			LoadOrder: 1,
			NewModel:  func() any { return &models.EveType{} },
			GetID:     func(m any) int64 { return m.(*models.EveType).ID },
		}
	}
	tests := []struct {
		name   string
		mutate func(*EntityMeta)
	}{
		{"unknown operation", func(m *EntityMeta) {
			m.PathObject = "Universe.get_universe_wormholes"
		}},
		{"missing ESI primary key", func(m *EntityMeta) {
			m.ESIPK = ""
		}},
		{"FK to unknown type", func(m *EntityMeta) {
			m.Fields = append(m.Fields, FieldDef{
				Column: "eve_widget_id", Type: TypeInt, Related: "EveWidget",
			})
		}},
		{"child of unknown type", func(m *EntityMeta) {
			m.Children = []ChildDef{{PayloadKey: "widgets", Entity: "EveWidget"}}
		}},
		{"field gated by undeclared section", func(m *EntityMeta) {
			m.Fields = append(m.Fields, FieldDef{
				Column: "icon_id", Type: TypeInt, Optional: true, Section: SectionDogmas,
			})
		}},
		{"optional text field", func(m *EntityMeta) {
			m.Fields[0].Optional = true
		}},
		{"functional PK on non-inline type", func(m *EntityMeta) {
			m.Fields[0].PK = true
		}},
		{"inline type with an endpoint", func(m *EntityMeta) {
			m.FunctionalPK = []string{"a", "b"}
			m.ParentFK = "a"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(m)
			_, err := newRegistry([]*EntityMeta{m})
			require.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
		})
	}
}

func TestEntityMetaSections(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	eveType, err := r.Get("EveType")
	require.NoError(t, err)

	t.Run("mask follows declaration order", func(t *testing.T) {
		assert.Equal(t, models.SectionFlags(0b0001), eveType.SectionMask(NewSectionSet(SectionDogmas)))
		assert.Equal(t, models.SectionFlags(0b0100), eveType.SectionMask(NewSectionSet(SectionMarketGroups)))
		assert.Equal(t, models.SectionFlags(0b1010),
			eveType.SectionMask(NewSectionSet(SectionGraphics, SectionTypeMaterials)))
	})

	t.Run("mask ignores undeclared sections", func(t *testing.T) {
		assert.Zero(t, eveType.SectionMask(NewSectionSet(SectionMoons)))
	})

	t.Run("disabled section drops gated fields", func(t *testing.T) {
		var columns []string
		for _, f := range eveType.EffectiveFields(NewSectionSet()) {
			columns = append(columns, f.Column)
		}
		assert.NotContains(t, columns, "eve_graphic_id")
		assert.NotContains(t, columns, "eve_market_group_id")
		assert.Contains(t, columns, "eve_group_id")
	})

	t.Run("enabled section keeps gated fields", func(t *testing.T) {
		var columns []string
		for _, f := range eveType.EffectiveFields(NewSectionSet(SectionGraphics)) {
			columns = append(columns, f.Column)
		}
		assert.Contains(t, columns, "eve_graphic_id")
		assert.NotContains(t, columns, "eve_market_group_id")
	})

	t.Run("inlines gated as a group", func(t *testing.T) {
		assert.Empty(t, eveType.EffectiveInlines(NewSectionSet()))
		assert.Len(t, eveType.EffectiveInlines(NewSectionSet(SectionDogmas)), 2)
	})

	t.Run("children gated per child", func(t *testing.T) {
		system, err := r.Get("EveSolarSystem")
		require.NoError(t, err)
		assert.Empty(t, system.EffectiveChildren(NewSectionSet()))
		children := system.EffectiveChildren(NewSectionSet(SectionPlanets, SectionStations))
		require.Len(t, children, 2)
		assert.Equal(t, "EvePlanet", children[0].Entity)
		assert.Equal(t, "EveStation", children[1].Entity)
	})
}

func TestEntityMetaInline(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	modifier, err := r.Get("EveDogmaEffectModifier")
	require.NoError(t, err)

	assert.True(t, modifier.IsInline())

	parent, err := modifier.ParentField()
	require.NoError(t, err)
	assert.Equal(t, "eve_dogma_effect_id", parent.Column)

	key, err := modifier.KeyField()
	require.NoError(t, err)
	assert.Equal(t, "func", key.Column)
	assert.True(t, key.Text)
}

func TestFieldDefRemotePath(t *testing.T) {
	implicit := FieldDef{Column: "name"}
	assert.Equal(t, []string{"name"}, implicit.RemotePath())

	nested := FieldDef{Column: "position_x", Remote: []string{"position", "x"}}
	assert.Equal(t, []string{"position", "x"}, nested.RemotePath())
}
