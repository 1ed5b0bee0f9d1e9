package schema

import (
	"sort"
	"strings"

	"eveuniverse/internal/shared/config"
)

// Section names an optional attribute group of an entity type. Sections are
// tracked per row as one bit in the enabled_sections bitfield, in the order
// they are declared on the entity metadata.
type Section string

const (
	// EveType sections
	SectionDogmas        Section = "dogmas"
	SectionGraphics      Section = "graphics"
	SectionMarketGroups  Section = "market_groups"
	SectionTypeMaterials Section = "type_materials"

	// EveSolarSystem sections
	SectionPlanets   Section = "planets"
	SectionStargates Section = "stargates"
	SectionStars     Section = "stars"
	SectionStations  Section = "stations"

	// EvePlanet sections
	SectionAsteroidBelts Section = "asteroid_belts"
	SectionMoons         Section = "moons"
)

func (s Section) String() string {
	return string(s)
}

// ParseSection returns the section for the given name.
func ParseSection(name string) (Section, bool) {
	switch Section(strings.ToLower(name)) {
	case SectionDogmas, SectionGraphics, SectionMarketGroups, SectionTypeMaterials,
		SectionPlanets, SectionStargates, SectionStars, SectionStations,
		SectionAsteroidBelts, SectionMoons:
		return Section(strings.ToLower(name)), true
	}
	return "", false
}

// SectionSet is an unordered set of sections.
type SectionSet map[Section]struct{}

// NewSectionSet builds a set from the given sections.
func NewSectionSet(sections ...Section) SectionSet {
	set := make(SectionSet, len(sections))
	for _, s := range sections {
		set[s] = struct{}{}
	}
	return set
}

// Has reports whether the section is in the set.
func (s SectionSet) Has(section Section) bool {
	_, ok := s[section]
	return ok
}

// Union returns a new set holding the members of both sets.
func (s SectionSet) Union(other SectionSet) SectionSet {
	merged := make(SectionSet, len(s)+len(other))
	for section := range s {
		merged[section] = struct{}{}
	}
	for section := range other {
		merged[section] = struct{}{}
	}
	return merged
}

// Slice returns the members sorted by name, for stable logging.
func (s SectionSet) Slice() []Section {
	out := make([]Section, 0, len(s))
	for section := range s {
		out = append(out, section)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GlobalSections derives the process-wide enabled sections from config.
// Per-call sections are unioned with these by the engine.
func GlobalSections(cfg *config.UniverseConfig) SectionSet {
	set := make(SectionSet)
	if cfg == nil {
		return set
	}
	flags := []struct {
		enabled bool
		section Section
	}{
		{cfg.LoadAsteroidBelts, SectionAsteroidBelts},
		{cfg.LoadDogmas, SectionDogmas},
		{cfg.LoadGraphics, SectionGraphics},
		{cfg.LoadMarketGroups, SectionMarketGroups},
		{cfg.LoadMoons, SectionMoons},
		{cfg.LoadPlanets, SectionPlanets},
		{cfg.LoadStargates, SectionStargates},
		{cfg.LoadStars, SectionStars},
		{cfg.LoadStations, SectionStations},
		{cfg.LoadTypeMaterials, SectionTypeMaterials},
	}
	for _, f := range flags {
		if f.enabled {
			set[f.section] = struct{}{}
		}
	}
	return set
}
