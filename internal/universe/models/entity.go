package models

import (
	"fmt"
	"time"

	"eveuniverse/internal/shared/constants"
	"eveuniverse/internal/universe/images"
)

// EveEntity categories supported by ESI's /universe/names/ endpoint.
const (
	CategoryAlliance      = "alliance"
	CategoryCharacter     = "character"
	CategoryConstellation = "constellation"
	CategoryCorporation   = "corporation"
	CategoryFaction       = "faction"
	CategoryInventoryType = "inventory_type"
	CategoryRegion        = "region"
	CategorySolarSystem   = "solar_system"
	CategoryStation       = "station"
)

// NPC ID windows.
const (
	NPCCorporationIDBegin = 1_000_000
	NPCCorporationIDEnd   = 2_000_000
	NPCCharacterIDBegin   = 3_000_000
	NPCCharacterIDEnd     = 4_000_000
)

var entityCategories = map[string]bool{
	CategoryAlliance:      true,
	CategoryCharacter:     true,
	CategoryConstellation: true,
	CategoryCorporation:   true,
	CategoryFaction:       true,
	CategoryInventoryType: true,
	CategoryRegion:        true,
	CategorySolarSystem:   true,
	CategoryStation:       true,
}

// IsValidCategory reports whether the given category is one ESI can resolve.
func IsValidCategory(category string) bool {
	return entityCategories[category]
}

// EveEntity is a generic Eve object used for quick resolution of IDs to
// names and categories. Rows may exist with empty name as placeholders
// inserted during bulk requests; the batched resolver fills them lazily.
type EveEntity struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null;default:'';index"`
	Category    *string   `gorm:"size:16"`
	LastUpdated time.Time `gorm:"autoUpdateTime;index"`
}

func (EveEntity) TableName() string {
	return constants.TableEntities
}

func (e *EveEntity) String() string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("ID:%d", e.ID)
}

func (e *EveEntity) isCategory(category string) bool {
	return e.Category != nil && *e.Category == category
}

// IsAlliance reports whether the entity is an alliance.
func (e *EveEntity) IsAlliance() bool { return e.isCategory(CategoryAlliance) }

// IsCharacter reports whether the entity is a character.
func (e *EveEntity) IsCharacter() bool { return e.isCategory(CategoryCharacter) }

// IsConstellation reports whether the entity is a constellation.
func (e *EveEntity) IsConstellation() bool { return e.isCategory(CategoryConstellation) }

// IsCorporation reports whether the entity is a corporation.
func (e *EveEntity) IsCorporation() bool { return e.isCategory(CategoryCorporation) }

// IsFaction reports whether the entity is a faction.
func (e *EveEntity) IsFaction() bool { return e.isCategory(CategoryFaction) }

// IsType reports whether the entity is an inventory type.
func (e *EveEntity) IsType() bool { return e.isCategory(CategoryInventoryType) }

// IsRegion reports whether the entity is a region.
func (e *EveEntity) IsRegion() bool { return e.isCategory(CategoryRegion) }

// IsSolarSystem reports whether the entity is a solar system.
func (e *EveEntity) IsSolarSystem() bool { return e.isCategory(CategorySolarSystem) }

// IsStation reports whether the entity is a station.
func (e *EveEntity) IsStation() bool { return e.isCategory(CategoryStation) }

// IsNPC reports whether the entity is an NPC character or NPC corporation.
func (e *EveEntity) IsNPC() bool {
	if e.IsCorporation() && e.ID >= NPCCorporationIDBegin && e.ID < NPCCorporationIDEnd {
		return true
	}
	if e.IsCharacter() && e.ID >= NPCCharacterIDBegin && e.ID < NPCCharacterIDEnd {
		return true
	}
	return false
}

// IconURL returns an image URL for this entity's icon, or an empty string
// for categories without icons.
func (e *EveEntity) IconURL(size int) (string, error) {
	if e.Category == nil {
		return "", nil
	}
	switch *e.Category {
	case CategoryAlliance:
		return images.AllianceLogoURL(e.ID, size)
	case CategoryCharacter:
		return images.CharacterPortraitURL(e.ID, size)
	case CategoryCorporation:
		return images.CorporationLogoURL(e.ID, size)
	case CategoryFaction:
		return images.FactionLogoURL(e.ID, size)
	case CategoryInventoryType:
		return images.TypeIconURL(e.ID, size)
	default:
		return "", nil
	}
}
