package models

import (
	"time"

	"eveuniverse/internal/shared/constants"
)

// EveUnit is a unit of measure used by dogma attributes. Units have no ESI
// endpoint; rows come from an embedded static table.
type EveUnit struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null;default:'';index"`
	DisplayName string    `gorm:"size:50;not null;default:''"`
	Description string    `gorm:"type:text;not null;default:''"`
	LastUpdated time.Time `gorm:"autoUpdateTime;index"`
}

func (EveUnit) TableName() string {
	return constants.TableUnits
}

// EveDogmaAttribute is a dogma attribute in Eve Online.
type EveDogmaAttribute struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null;default:'';index"`
	EveUnitID    *int64 `gorm:"index"`
	DefaultValue *float64
	Description  string `gorm:"type:text;not null;default:''"`
	DisplayName  string `gorm:"size:100;not null;default:''"`
	HighIsGood   *bool
	IconID       *int64 `gorm:"index"`
	Published    *bool
	Stackable    *bool
	LastUpdated  time.Time `gorm:"autoUpdateTime;index"`
}

func (EveDogmaAttribute) TableName() string {
	return constants.TableDogmaAttributes
}

// EveDogmaEffect is a dogma effect in Eve Online.
// Effect names can be very long, hence the wider name column.
type EveDogmaEffect struct {
	ID                       int64  `gorm:"primaryKey"`
	Name                     string `gorm:"size:400;not null;default:'';index"`
	Description              string `gorm:"type:text;not null;default:''"`
	DisallowAutoRepeat       *bool
	DischargeAttributeID     *int64 `gorm:"index"`
	DisplayName              string `gorm:"size:100;not null;default:''"`
	DurationAttributeID      *int64 `gorm:"index"`
	EffectCategory           *int64
	ElectronicChance         *bool
	FalloffAttributeID       *int64 `gorm:"index"`
	IconID                   *int64 `gorm:"index"`
	IsAssistance             *bool
	IsOffensive              *bool
	IsWarpSafe               *bool
	PostExpression           *int64
	PreExpression            *int64
	Published                *bool
	RangeAttributeID         *int64 `gorm:"index"`
	RangeChance              *bool
	TrackingSpeedAttributeID *int64    `gorm:"index"`
	LastUpdated              time.Time `gorm:"autoUpdateTime;index"`
}

func (EveDogmaEffect) TableName() string {
	return constants.TableDogmaEffects
}

// EveDogmaEffectModifier is a modifier of a dogma effect.
type EveDogmaEffectModifier struct {
	ID                   int64  `gorm:"primaryKey;autoIncrement"`
	EveDogmaEffectID     int64  `gorm:"not null;uniqueIndex:fpk_eve_dogma_effect_modifier"`
	Func                 string `gorm:"size:100;not null;uniqueIndex:fpk_eve_dogma_effect_modifier"`
	Domain               string `gorm:"size:100;not null;default:''"`
	ModifiedAttributeID  *int64 `gorm:"index"`
	ModifyingAttributeID *int64 `gorm:"index"`
	ModifyingEffectID    *int64 `gorm:"index"`
	Operator             *int64
}

func (EveDogmaEffectModifier) TableName() string {
	return constants.TableDogmaEffectModifier
}
