package schema

import (
	"eveuniverse/internal/universe/models"
)

// builtin declares the ingestion metadata for every supported entity type.
// Column names follow the GORM naming of the corresponding model fields and
// remote paths follow the ESI payload layout. The registry validates these
// at construction.
//
// Load order sorts types so that every FK target type loads before its
// referrers when mirroring the full catalogue.
var builtin = []*EntityMeta{
	{
		Name:  "EveUnit",
		ESIPK: "unit_id",
		// units have no ESI endpoint; rows come from the embedded static table
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "display_name", Type: TypeString, Text: true},
			{Column: "description", Type: TypeString, Text: true},
		},
		LoadOrder: 100,
		NewModel:  func() any { return &models.EveUnit{} },
		GetID:     func(m any) int64 { return m.(*models.EveUnit).ID },
	},
	{
		Name:       "EveEntity",
		ESIPK:      "ids",
		PathObject: "Universe.post_universe_names",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "category", Type: TypeString, Optional: true},
		},
		LoadOrder: 110,
		NewModel:  func() any { return &models.EveEntity{} },
		GetID:     func(m any) int64 { return m.(*models.EveEntity).ID },
	},
	{
		Name:       "EveGraphic",
		ESIPK:      "graphic_id",
		PathObject: "Universe.get_universe_graphics_graphic_id",
		PathList:   "Universe.get_universe_graphics",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "collision_file", Type: TypeString, Text: true},
			{Column: "graphic_file", Type: TypeString, Text: true},
			{Column: "icon_folder", Type: TypeString, Text: true},
			{Column: "sof_dna", Type: TypeString, Text: true},
			{Column: "sof_fation_name", Type: TypeString, Text: true},
			{Column: "sof_hull_name", Type: TypeString, Text: true},
			{Column: "sof_race_name", Type: TypeString, Text: true},
		},
		LoadOrder: 120,
		NewModel:  func() any { return &models.EveGraphic{} },
		GetID:     func(m any) int64 { return m.(*models.EveGraphic).ID },
	},
	{
		Name:       "EveCategory",
		ESIPK:      "category_id",
		PathObject: "Universe.get_universe_categories_category_id",
		PathList:   "Universe.get_universe_categories",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "published", Type: TypeBool},
		},
		Children: []ChildDef{
			{PayloadKey: "groups", Entity: "EveGroup"},
		},
		LoadOrder: 130,
		NewModel:  func() any { return &models.EveCategory{} },
		GetID:     func(m any) int64 { return m.(*models.EveCategory).ID },
	},
	{
		Name:       "EveGroup",
		ESIPK:      "group_id",
		PathObject: "Universe.get_universe_groups_group_id",
		PathList:   "Universe.get_universe_groups",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "eve_category_id", Remote: []string{"category_id"}, Type: TypeInt, Related: "EveCategory"},
			{Column: "published", Type: TypeBool},
		},
		Children: []ChildDef{
			{PayloadKey: "types", Entity: "EveType"},
		},
		LoadOrder: 132,
		NewModel:  func() any { return &models.EveGroup{} },
		GetID:     func(m any) int64 { return m.(*models.EveGroup).ID },
	},
	{
		Name:       "EveType",
		ESIPK:      "type_id",
		PathObject: "Universe.get_universe_types_type_id",
		PathList:   "Universe.get_universe_types",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "capacity", Type: TypeFloat, Optional: true},
			{Column: "eve_group_id", Remote: []string{"group_id"}, Type: TypeInt, Related: "EveGroup"},
			{Column: "eve_graphic_id", Remote: []string{"graphic_id"}, Type: TypeInt, Related: "EveGraphic", Optional: true, Section: SectionGraphics},
			{Column: "icon_id", Type: TypeInt, Optional: true},
			{Column: "eve_market_group_id", Remote: []string{"market_group_id"}, Type: TypeInt, Related: "EveMarketGroup", Optional: true, Section: SectionMarketGroups},
			{Column: "mass", Type: TypeFloat, Optional: true},
			{Column: "packaged_volume", Type: TypeFloat, Optional: true},
			{Column: "portion_size", Type: TypeInt, Optional: true},
			{Column: "radius", Type: TypeFloat, Optional: true},
			{Column: "published", Type: TypeBool},
			{Column: "volume", Type: TypeFloat, Optional: true},
		},
		Inlines: []InlineDef{
			{PayloadKey: "dogma_attributes", Entity: "EveTypeDogmaAttribute"},
			{PayloadKey: "dogma_effects", Entity: "EveTypeDogmaEffect"},
		},
		InlineSection: SectionDogmas,
		Sections: []Section{
			SectionDogmas,
			SectionGraphics,
			SectionMarketGroups,
			SectionTypeMaterials,
		},
		LoadOrder: 134,
		NewModel:  func() any { return &models.EveType{} },
		GetID:     func(m any) int64 { return m.(*models.EveType).ID },
		GetFlags:  func(m any) models.SectionFlags { return m.(*models.EveType).EnabledSections },
	},
	{
		Name: "EveTypeMaterial",
		// sourced from the static-data export, not ESI
		Fields: []FieldDef{
			{Column: "eve_type_id", Type: TypeInt, Related: "EveType", PK: true, ParentFK: true},
			{Column: "material_eve_type_id", Remote: []string{"materialTypeID"}, Type: TypeInt, Related: "EveType", PK: true},
			{Column: "quantity", Type: TypeInt},
		},
		FunctionalPK: []string{"eve_type_id", "material_eve_type_id"},
		ParentFK:     "eve_type_id",
		LoadOrder:    137,
		NewModel:     func() any { return &models.EveTypeMaterial{} },
	},
	{
		Name:       "EveDogmaAttribute",
		ESIPK:      "attribute_id",
		PathObject: "Dogma.get_dogma_attributes_attribute_id",
		PathList:   "Dogma.get_dogma_attributes",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "eve_unit_id", Remote: []string{"unit_id"}, Type: TypeInt, Related: "EveUnit", Optional: true, SkipCreate: true},
			{Column: "default_value", Type: TypeFloat, Optional: true},
			{Column: "description", Type: TypeString, Text: true},
			{Column: "display_name", Type: TypeString, Text: true},
			{Column: "high_is_good", Type: TypeBool, Optional: true},
			{Column: "icon_id", Type: TypeInt, Optional: true},
			{Column: "published", Type: TypeBool, Optional: true},
			{Column: "stackable", Type: TypeBool, Optional: true},
		},
		LoadOrder: 140,
		NewModel:  func() any { return &models.EveDogmaAttribute{} },
		GetID:     func(m any) int64 { return m.(*models.EveDogmaAttribute).ID },
	},
	{
		Name:       "EveDogmaEffect",
		ESIPK:      "effect_id",
		PathObject: "Dogma.get_dogma_effects_effect_id",
		PathList:   "Dogma.get_dogma_effects",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "description", Type: TypeString, Text: true},
			{Column: "disallow_auto_repeat", Type: TypeBool, Optional: true},
			{Column: "discharge_attribute_id", Type: TypeInt, Related: "EveDogmaAttribute", Optional: true},
			{Column: "display_name", Type: TypeString, Text: true},
			{Column: "duration_attribute_id", Type: TypeInt, Related: "EveDogmaAttribute", Optional: true},
			{Column: "effect_category", Type: TypeInt, Optional: true},
			{Column: "electronic_chance", Type: TypeBool, Optional: true},
			{Column: "falloff_attribute_id", Type: TypeInt, Related: "EveDogmaAttribute", Optional: true},
			{Column: "icon_id", Type: TypeInt, Optional: true},
			{Column: "is_assistance", Type: TypeBool, Optional: true},
			{Column: "is_offensive", Type: TypeBool, Optional: true},
			{Column: "is_warp_safe", Type: TypeBool, Optional: true},
			{Column: "post_expression", Type: TypeInt, Optional: true},
			{Column: "pre_expression", Type: TypeInt, Optional: true},
			{Column: "published", Type: TypeBool, Optional: true},
			{Column: "range_attribute_id", Type: TypeInt, Related: "EveDogmaAttribute", Optional: true},
			{Column: "range_chance", Type: TypeBool, Optional: true},
			{Column: "tracking_speed_attribute_id", Type: TypeInt, Related: "EveDogmaAttribute", Optional: true},
		},
		Inlines: []InlineDef{
			{PayloadKey: "modifiers", Entity: "EveDogmaEffectModifier"},
		},
		LoadOrder: 142,
		NewModel:  func() any { return &models.EveDogmaEffect{} },
		GetID:     func(m any) int64 { return m.(*models.EveDogmaEffect).ID },
	},
	{
		Name: "EveDogmaEffectModifier",
		Fields: []FieldDef{
			{Column: "eve_dogma_effect_id", Type: TypeInt, Related: "EveDogmaEffect", PK: true, ParentFK: true},
			{Column: "func", Type: TypeString, Text: true, PK: true},
			{Column: "domain", Type: TypeString, Text: true},
			{Column: "modified_attribute_id", Type: TypeInt, Related: "EveDogmaAttribute", Optional: true},
			{Column: "modifying_attribute_id", Type: TypeInt, Related: "EveDogmaAttribute", Optional: true},
			{Column: "modifying_effect_id", Remote: []string{"effect_id"}, Type: TypeInt, Related: "EveDogmaEffect", Optional: true},
			{Column: "operator", Type: TypeInt, Optional: true},
		},
		FunctionalPK: []string{"eve_dogma_effect_id", "func"},
		ParentFK:     "eve_dogma_effect_id",
		LoadOrder:    144,
		NewModel:     func() any { return &models.EveDogmaEffectModifier{} },
	},
	{
		Name: "EveTypeDogmaEffect",
		Fields: []FieldDef{
			{Column: "eve_type_id", Type: TypeInt, Related: "EveType", PK: true, ParentFK: true},
			{Column: "eve_dogma_effect_id", Remote: []string{"effect_id"}, Type: TypeInt, Related: "EveDogmaEffect", PK: true},
			{Column: "is_default", Type: TypeBool},
		},
		FunctionalPK: []string{"eve_type_id", "eve_dogma_effect_id"},
		ParentFK:     "eve_type_id",
		LoadOrder:    146,
		NewModel:     func() any { return &models.EveTypeDogmaEffect{} },
	},
	{
		Name: "EveTypeDogmaAttribute",
		Fields: []FieldDef{
			{Column: "eve_type_id", Type: TypeInt, Related: "EveType", PK: true, ParentFK: true},
			{Column: "eve_dogma_attribute_id", Remote: []string{"attribute_id"}, Type: TypeInt, Related: "EveDogmaAttribute", PK: true},
			{Column: "value", Type: TypeFloat},
		},
		FunctionalPK: []string{"eve_type_id", "eve_dogma_attribute_id"},
		ParentFK:     "eve_type_id",
		LoadOrder:    148,
		NewModel:     func() any { return &models.EveTypeDogmaAttribute{} },
	},
	{
		Name:     "EveRace",
		ESIPK:    "race_id",
		PathList: "Universe.get_universe_races",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "alliance_id", Type: TypeInt},
			{Column: "description", Type: TypeString, Text: true},
		},
		LoadOrder: 150,
		NewModel:  func() any { return &models.EveRace{} },
		GetID:     func(m any) int64 { return m.(*models.EveRace).ID },
	},
	{
		Name:     "EveBloodline",
		ESIPK:    "bloodline_id",
		PathList: "Universe.get_universe_bloodlines",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "eve_race_id", Remote: []string{"race_id"}, Type: TypeInt, Related: "EveRace", Optional: true},
			{Column: "eve_ship_type_id", Remote: []string{"ship_type_id"}, Type: TypeInt, Related: "EveType"},
			{Column: "charisma", Type: TypeInt},
			{Column: "corporation_id", Type: TypeInt},
			{Column: "description", Type: TypeString, Text: true},
			{Column: "intelligence", Type: TypeInt},
			{Column: "memory", Type: TypeInt},
			{Column: "perception", Type: TypeInt},
			{Column: "willpower", Type: TypeInt},
		},
		LoadOrder: 170,
		NewModel:  func() any { return &models.EveBloodline{} },
		GetID:     func(m any) int64 { return m.(*models.EveBloodline).ID },
	},
	{
		Name:     "EveAncestry",
		ESIPK:    "id",
		PathList: "Universe.get_universe_ancestries",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "eve_bloodline_id", Remote: []string{"bloodline_id"}, Type: TypeInt, Related: "EveBloodline"},
			{Column: "description", Type: TypeString, Text: true},
			{Column: "icon_id", Type: TypeInt, Optional: true},
			{Column: "short_description", Type: TypeString, Text: true},
		},
		LoadOrder: 180,
		NewModel:  func() any { return &models.EveAncestry{} },
		GetID:     func(m any) int64 { return m.(*models.EveAncestry).ID },
	},
	{
		Name:       "EveRegion",
		ESIPK:      "region_id",
		PathObject: "Universe.get_universe_regions_region_id",
		PathList:   "Universe.get_universe_regions",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "description", Type: TypeString, Text: true},
		},
		Children: []ChildDef{
			{PayloadKey: "constellations", Entity: "EveConstellation"},
		},
		LoadOrder: 190,
		NewModel:  func() any { return &models.EveRegion{} },
		GetID:     func(m any) int64 { return m.(*models.EveRegion).ID },
	},
	{
		Name:       "EveConstellation",
		ESIPK:      "constellation_id",
		PathObject: "Universe.get_universe_constellations_constellation_id",
		PathList:   "Universe.get_universe_constellations",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "eve_region_id", Remote: []string{"region_id"}, Type: TypeInt, Related: "EveRegion"},
			{Column: "position_x", Remote: []string{"position", "x"}, Type: TypeFloat, Optional: true},
			{Column: "position_y", Remote: []string{"position", "y"}, Type: TypeFloat, Optional: true},
			{Column: "position_z", Remote: []string{"position", "z"}, Type: TypeFloat, Optional: true},
		},
		Children: []ChildDef{
			{PayloadKey: "systems", Entity: "EveSolarSystem"},
		},
		LoadOrder: 192,
		NewModel:  func() any { return &models.EveConstellation{} },
		GetID:     func(m any) int64 { return m.(*models.EveConstellation).ID },
	},
	{
		Name:       "EveSolarSystem",
		ESIPK:      "system_id",
		PathObject: "Universe.get_universe_systems_system_id",
		PathList:   "Universe.get_universe_systems",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "eve_constellation_id", Remote: []string{"constellation_id"}, Type: TypeInt, Related: "EveConstellation"},
			{Column: "eve_star_id", Remote: []string{"star_id"}, Type: TypeInt, Related: "EveStar", Optional: true, Section: SectionStars},
			{Column: "position_x", Remote: []string{"position", "x"}, Type: TypeFloat, Optional: true},
			{Column: "position_y", Remote: []string{"position", "y"}, Type: TypeFloat, Optional: true},
			{Column: "position_z", Remote: []string{"position", "z"}, Type: TypeFloat, Optional: true},
			{Column: "security_status", Type: TypeFloat},
		},
		Children: []ChildDef{
			{PayloadKey: "planets", Entity: "EvePlanet", Section: SectionPlanets},
			{PayloadKey: "stargates", Entity: "EveStargate", Section: SectionStargates},
			{PayloadKey: "stations", Entity: "EveStation", Section: SectionStations},
		},
		Sections: []Section{
			SectionPlanets,
			SectionStargates,
			SectionStars,
			SectionStations,
		},
		LoadOrder: 194,
		NewModel:  func() any { return &models.EveSolarSystem{} },
		GetID:     func(m any) int64 { return m.(*models.EveSolarSystem).ID },
		GetFlags:  func(m any) models.SectionFlags { return m.(*models.EveSolarSystem).EnabledSections },
	},
	{
		Name:       "EveAsteroidBelt",
		ESIPK:      "asteroid_belt_id",
		PathObject: "Universe.get_universe_asteroid_belts_asteroid_belt_id",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "eve_planet_id", Remote: []string{"planet_id"}, Type: TypeInt, Related: "EvePlanet"},
			{Column: "position_x", Remote: []string{"position", "x"}, Type: TypeFloat, Optional: true},
			{Column: "position_y", Remote: []string{"position", "y"}, Type: TypeFloat, Optional: true},
			{Column: "position_z", Remote: []string{"position", "z"}, Type: TypeFloat, Optional: true},
		},
		LoadOrder: 200,
		NewModel:  func() any { return &models.EveAsteroidBelt{} },
		GetID:     func(m any) int64 { return m.(*models.EveAsteroidBelt).ID },
	},
	{
		Name:       "EvePlanet",
		ESIPK:      "planet_id",
		PathObject: "Universe.get_universe_planets_planet_id",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "eve_solar_system_id", Remote: []string{"system_id"}, Type: TypeInt, Related: "EveSolarSystem"},
			{Column: "eve_type_id", Remote: []string{"type_id"}, Type: TypeInt, Related: "EveType"},
			{Column: "position_x", Remote: []string{"position", "x"}, Type: TypeFloat, Optional: true},
			{Column: "position_y", Remote: []string{"position", "y"}, Type: TypeFloat, Optional: true},
			{Column: "position_z", Remote: []string{"position", "z"}, Type: TypeFloat, Optional: true},
		},
		// the moon and asteroid belt IDs come from the owning solar
		// system's planets array, merged in by the planet fetch override
		Children: []ChildDef{
			{PayloadKey: "asteroid_belts", Entity: "EveAsteroidBelt", Section: SectionAsteroidBelts},
			{PayloadKey: "moons", Entity: "EveMoon", Section: SectionMoons},
		},
		Sections: []Section{
			SectionAsteroidBelts,
			SectionMoons,
		},
		LoadOrder: 205,
		NewModel:  func() any { return &models.EvePlanet{} },
		GetID:     func(m any) int64 { return m.(*models.EvePlanet).ID },
		GetFlags:  func(m any) models.SectionFlags { return m.(*models.EvePlanet).EnabledSections },
	},
	{
		Name:       "EveStation",
		ESIPK:      "station_id",
		PathObject: "Universe.get_universe_stations_station_id",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "eve_race_id", Remote: []string{"race_id"}, Type: TypeInt, Related: "EveRace", Optional: true},
			{Column: "eve_solar_system_id", Remote: []string{"system_id"}, Type: TypeInt, Related: "EveSolarSystem"},
			{Column: "eve_type_id", Remote: []string{"type_id"}, Type: TypeInt, Related: "EveType"},
			{Column: "max_dockable_ship_volume", Type: TypeFloat},
			{Column: "office_rental_cost", Type: TypeFloat},
			{Column: "owner_id", Remote: []string{"owner"}, Type: TypeInt, Optional: true},
			{Column: "position_x", Remote: []string{"position", "x"}, Type: TypeFloat, Optional: true},
			{Column: "position_y", Remote: []string{"position", "y"}, Type: TypeFloat, Optional: true},
			{Column: "position_z", Remote: []string{"position", "z"}, Type: TypeFloat, Optional: true},
			{Column: "reprocessing_efficiency", Type: TypeFloat},
			{Column: "reprocessing_stations_take", Type: TypeFloat},
		},
		// the services payload array maps to the station services join
		// table, handled by a dedicated engine pass
		LoadOrder: 207,
		NewModel:  func() any { return &models.EveStation{} },
		GetID:     func(m any) int64 { return m.(*models.EveStation).ID },
	},
	{
		Name:     "EveFaction",
		ESIPK:    "faction_id",
		PathList: "Universe.get_universe_factions",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "corporation_id", Type: TypeInt, Optional: true},
			{Column: "description", Type: TypeString, Text: true},
			{Column: "eve_solar_system_id", Remote: []string{"solar_system_id"}, Type: TypeInt, Related: "EveSolarSystem", Optional: true},
			{Column: "is_unique", Type: TypeBool},
			{Column: "militia_corporation_id", Type: TypeInt, Optional: true},
			{Column: "size_factor", Type: TypeFloat},
			{Column: "station_count", Type: TypeInt},
			{Column: "station_system_count", Type: TypeInt},
		},
		LoadOrder: 210,
		NewModel:  func() any { return &models.EveFaction{} },
		GetID:     func(m any) int64 { return m.(*models.EveFaction).ID },
	},
	{
		Name:       "EveMoon",
		ESIPK:      "moon_id",
		PathObject: "Universe.get_universe_moons_moon_id",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "eve_planet_id", Remote: []string{"planet_id"}, Type: TypeInt, Related: "EvePlanet"},
			{Column: "position_x", Remote: []string{"position", "x"}, Type: TypeFloat, Optional: true},
			{Column: "position_y", Remote: []string{"position", "y"}, Type: TypeFloat, Optional: true},
			{Column: "position_z", Remote: []string{"position", "z"}, Type: TypeFloat, Optional: true},
		},
		LoadOrder: 220,
		NewModel:  func() any { return &models.EveMoon{} },
		GetID:     func(m any) int64 { return m.(*models.EveMoon).ID },
	},
	{
		Name:       "EveStar",
		ESIPK:      "star_id",
		PathObject: "Universe.get_universe_stars_star_id",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "age", Type: TypeInt},
			{Column: "eve_type_id", Remote: []string{"type_id"}, Type: TypeInt, Related: "EveType"},
			{Column: "luminosity", Type: TypeFloat},
			{Column: "radius", Type: TypeInt},
			{Column: "spectral_class", Type: TypeString, Text: true},
			{Column: "temperature", Type: TypeInt},
		},
		LoadOrder: 222,
		NewModel:  func() any { return &models.EveStar{} },
		GetID:     func(m any) int64 { return m.(*models.EveStar).ID },
	},
	{
		Name:       "EveStargate",
		ESIPK:      "stargate_id",
		PathObject: "Universe.get_universe_stargates_stargate_id",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "destination_eve_stargate_id", Remote: []string{"destination", "stargate_id"}, Type: TypeInt, Related: "EveStargate", Optional: true, SkipCreate: true},
			{Column: "destination_eve_solar_system_id", Remote: []string{"destination", "system_id"}, Type: TypeInt, Related: "EveSolarSystem", Optional: true, SkipCreate: true},
			{Column: "eve_solar_system_id", Remote: []string{"system_id"}, Type: TypeInt, Related: "EveSolarSystem"},
			{Column: "eve_type_id", Remote: []string{"type_id"}, Type: TypeInt, Related: "EveType"},
			{Column: "position_x", Remote: []string{"position", "x"}, Type: TypeFloat, Optional: true},
			{Column: "position_y", Remote: []string{"position", "y"}, Type: TypeFloat, Optional: true},
			{Column: "position_z", Remote: []string{"position", "z"}, Type: TypeFloat, Optional: true},
		},
		LoadOrder: 224,
		NewModel:  func() any { return &models.EveStargate{} },
		GetID:     func(m any) int64 { return m.(*models.EveStargate).ID },
	},
	{
		Name:       "EveMarketGroup",
		ESIPK:      "market_group_id",
		PathObject: "Market.get_markets_groups_market_group_id",
		PathList:   "Market.get_markets_groups",
		Fields: []FieldDef{
			{Column: "name", Type: TypeString, Text: true},
			{Column: "description", Type: TypeString, Text: true},
			{Column: "parent_market_group_id", Remote: []string{"parent_group_id"}, Type: TypeInt, Related: "EveMarketGroup", Optional: true},
		},
		Children: []ChildDef{
			{PayloadKey: "types", Entity: "EveType"},
		},
		LoadOrder: 230,
		NewModel:  func() any { return &models.EveMarketGroup{} },
		GetID:     func(m any) int64 { return m.(*models.EveMarketGroup).ID },
	},
}
