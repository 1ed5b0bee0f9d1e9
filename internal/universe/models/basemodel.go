// Package models holds the database persistence models for the mirrored
// Eve Online universe data. Entity models carry a remote-sourced integer ID,
// a name and a last_updated timestamp; inline models are sub-records keyed
// by a functional composite key and carry neither.
package models

// All returns every persistence model, used for schema migration.
func All() []any {
	return []any{
		&EveUnit{},
		&EveEntity{},
		&EveGraphic{},
		&EveCategory{},
		&EveGroup{},
		&EveType{},
		&EveTypeMaterial{},
		&EveDogmaAttribute{},
		&EveDogmaEffect{},
		&EveDogmaEffectModifier{},
		&EveTypeDogmaEffect{},
		&EveTypeDogmaAttribute{},
		&EveRace{},
		&EveBloodline{},
		&EveAncestry{},
		&EveRegion{},
		&EveConstellation{},
		&EveSolarSystem{},
		&EvePlanet{},
		&EveStationService{},
		&EveStation{},
		&EveMoon{},
		&EveStar{},
		&EveStargate{},
		&EveFaction{},
		&EveMarketGroup{},
		&EveMarketPrice{},
	}
}

// SectionFlags is the per-row bitfield recording which optional sections an
// entity was loaded with. One bit per declared section, in declaration order.
// Monotonically growing: bits are only ever added.
type SectionFlags uint32

// Has reports whether every bit of mask is set.
func (f SectionFlags) Has(mask SectionFlags) bool {
	return f&mask == mask
}

// With returns the union with mask.
func (f SectionFlags) With(mask SectionFlags) SectionFlags {
	return f | mask
}
