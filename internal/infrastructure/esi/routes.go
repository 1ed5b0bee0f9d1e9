package esi

import (
	"net/http"
	"strings"
)

// Operation names an ESI method as "<Category>.<method>", e.g.
// "Universe.get_universe_types_type_id". The closed set of operations the
// engine may call is declared in the routes table below.
type Operation string

// Category returns the category part of the operation name.
func (op Operation) Category() string {
	parts := strings.SplitN(string(op), ".", 2)
	return parts[0]
}

// Method returns the method part of the operation name.
func (op Operation) Method() string {
	parts := strings.SplitN(string(op), ".", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// IsValid reports whether the operation is declared in the routes table.
func (op Operation) IsValid() bool {
	_, ok := routes[op]
	return ok
}

type route struct {
	method string
	path   string // path template with {param} placeholders
	paged  bool   // list endpoint honoring the X-Pages header
}

// routes maps each supported operation to its HTTP route. Path parameters are
// filled from call params by name; the remainder become query parameters.
var routes = map[Operation]route{
	"Universe.get_universe_ancestries":                      {method: http.MethodGet, path: "/universe/ancestries/"},
	"Universe.get_universe_asteroid_belts_asteroid_belt_id": {method: http.MethodGet, path: "/universe/asteroid_belts/{asteroid_belt_id}/"},
	"Universe.get_universe_bloodlines":                      {method: http.MethodGet, path: "/universe/bloodlines/"},
	"Universe.get_universe_categories":                      {method: http.MethodGet, path: "/universe/categories/"},
	"Universe.get_universe_categories_category_id":          {method: http.MethodGet, path: "/universe/categories/{category_id}/"},
	"Universe.get_universe_constellations":                  {method: http.MethodGet, path: "/universe/constellations/"},
	"Universe.get_universe_constellations_constellation_id": {method: http.MethodGet, path: "/universe/constellations/{constellation_id}/"},
	"Universe.get_universe_factions":                        {method: http.MethodGet, path: "/universe/factions/"},
	"Universe.get_universe_graphics":                        {method: http.MethodGet, path: "/universe/graphics/"},
	"Universe.get_universe_graphics_graphic_id":             {method: http.MethodGet, path: "/universe/graphics/{graphic_id}/"},
	"Universe.get_universe_groups":                          {method: http.MethodGet, path: "/universe/groups/", paged: true},
	"Universe.get_universe_groups_group_id":                 {method: http.MethodGet, path: "/universe/groups/{group_id}/"},
	"Universe.get_universe_moons_moon_id":                   {method: http.MethodGet, path: "/universe/moons/{moon_id}/"},
	"Universe.get_universe_planets_planet_id":               {method: http.MethodGet, path: "/universe/planets/{planet_id}/"},
	"Universe.get_universe_races":                           {method: http.MethodGet, path: "/universe/races/"},
	"Universe.get_universe_regions":                         {method: http.MethodGet, path: "/universe/regions/"},
	"Universe.get_universe_regions_region_id":               {method: http.MethodGet, path: "/universe/regions/{region_id}/"},
	"Universe.get_universe_stargates_stargate_id":           {method: http.MethodGet, path: "/universe/stargates/{stargate_id}/"},
	"Universe.get_universe_stars_star_id":                   {method: http.MethodGet, path: "/universe/stars/{star_id}/"},
	"Universe.get_universe_stations_station_id":             {method: http.MethodGet, path: "/universe/stations/{station_id}/"},
	"Universe.get_universe_systems":                         {method: http.MethodGet, path: "/universe/systems/"},
	"Universe.get_universe_systems_system_id":               {method: http.MethodGet, path: "/universe/systems/{system_id}/"},
	"Universe.get_universe_types":                           {method: http.MethodGet, path: "/universe/types/", paged: true},
	"Universe.get_universe_types_type_id":                   {method: http.MethodGet, path: "/universe/types/{type_id}/"},
	"Universe.post_universe_names":                          {method: http.MethodPost, path: "/universe/names/"},
	"Dogma.get_dogma_attributes":                            {method: http.MethodGet, path: "/dogma/attributes/"},
	"Dogma.get_dogma_attributes_attribute_id":               {method: http.MethodGet, path: "/dogma/attributes/{attribute_id}/"},
	"Dogma.get_dogma_effects":                               {method: http.MethodGet, path: "/dogma/effects/"},
	"Dogma.get_dogma_effects_effect_id":                     {method: http.MethodGet, path: "/dogma/effects/{effect_id}/"},
	"Market.get_markets_groups":                             {method: http.MethodGet, path: "/markets/groups/"},
	"Market.get_markets_groups_market_group_id":             {method: http.MethodGet, path: "/markets/groups/{market_group_id}/"},
	"Market.get_markets_prices":                             {method: http.MethodGet, path: "/markets/prices/"},
}
