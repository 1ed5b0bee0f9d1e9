package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP headers
	HeaderContentType = "Content-Type"
	HeaderUserAgent   = "User-Agent"
	HeaderPages       = "X-Pages"

	// Content types
	ContentTypeJSON = "application/json"

	// Database table names
	TableAncestries          = "eve_ancestries"
	TableAsteroidBelts       = "eve_asteroid_belts"
	TableBloodlines          = "eve_bloodlines"
	TableCategories          = "eve_categories"
	TableConstellations      = "eve_constellations"
	TableDogmaAttributes     = "eve_dogma_attributes"
	TableDogmaEffects        = "eve_dogma_effects"
	TableDogmaEffectModifier = "eve_dogma_effect_modifiers"
	TableEntities            = "eve_entities"
	TableFactions            = "eve_factions"
	TableGraphics            = "eve_graphics"
	TableGroups              = "eve_groups"
	TableMarketGroups        = "eve_market_groups"
	TableMarketPrices        = "eve_market_prices"
	TableMoons               = "eve_moons"
	TablePlanets             = "eve_planets"
	TableRaces               = "eve_races"
	TableRegions             = "eve_regions"
	TableSolarSystems        = "eve_solar_systems"
	TableStars               = "eve_stars"
	TableStargates           = "eve_stargates"
	TableStations            = "eve_stations"
	TableStationServices     = "eve_station_services"
	TableStationServiceLinks = "eve_station_service_links"
	TableTypes               = "eve_types"
	TableTypeDogmaAttributes = "eve_type_dogma_attributes"
	TableTypeDogmaEffects    = "eve_type_dogma_effects"
	TableTypeMaterials       = "eve_type_materials"
	TableUnits               = "eve_units"
)

// Well-known Eve Online IDs used by the loader commands.
const (
	EveCategoryIDShip      = 6
	EveCategoryIDBlueprint = 9
	EveCategoryIDStructure = 65
	EveCategoryIDSkin      = 91

	EveGroupIDPlanet       = 7
	EveGroupIDMoon         = 8
	EveGroupIDAsteroidBelt = 9
	EveGroupIDStargate     = 10
	EveGroupIDStation      = 15
)
