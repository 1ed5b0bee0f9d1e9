package models

import (
	"time"

	"eveuniverse/internal/shared/constants"
	"eveuniverse/internal/universe/images"
)

// EveRace is a race in Eve Online.
type EveRace struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null;default:'';index"`
	AllianceID  int64     `gorm:"not null;index"`
	Description string    `gorm:"type:text;not null;default:''"`
	LastUpdated time.Time `gorm:"autoUpdateTime;index"`
}

func (EveRace) TableName() string {
	return constants.TableRaces
}

// EveBloodline is a bloodline in Eve Online.
type EveBloodline struct {
	ID            int64     `gorm:"primaryKey"`
	Name          string    `gorm:"size:100;not null;default:'';index"`
	EveRaceID     *int64    `gorm:"index"`
	EveShipTypeID int64     `gorm:"not null;index"`
	Charisma      int64     `gorm:"not null;default:0"`
	CorporationID int64     `gorm:"not null;default:0"`
	Description   string    `gorm:"type:text;not null;default:''"`
	Intelligence  int64     `gorm:"not null;default:0"`
	Memory        int64     `gorm:"not null;default:0"`
	Perception    int64     `gorm:"not null;default:0"`
	Willpower     int64     `gorm:"not null;default:0"`
	LastUpdated   time.Time `gorm:"autoUpdateTime;index"`
}

func (EveBloodline) TableName() string {
	return constants.TableBloodlines
}

// EveAncestry is an ancestry in Eve Online.
type EveAncestry struct {
	ID               int64     `gorm:"primaryKey"`
	Name             string    `gorm:"size:100;not null;default:'';index"`
	EveBloodlineID   int64     `gorm:"not null;index"`
	Description      string    `gorm:"type:text;not null;default:''"`
	IconID           *int64    `gorm:"index"`
	ShortDescription string    `gorm:"type:text;not null;default:''"`
	LastUpdated      time.Time `gorm:"autoUpdateTime;index"`
}

func (EveAncestry) TableName() string {
	return constants.TableAncestries
}

// EveFaction is a faction in Eve Online.
type EveFaction struct {
	ID                   int64     `gorm:"primaryKey"`
	Name                 string    `gorm:"size:100;not null;default:'';index"`
	CorporationID        *int64    `gorm:"index"`
	Description          string    `gorm:"type:text;not null;default:''"`
	EveSolarSystemID     *int64    `gorm:"index"`
	IsUnique             bool      `gorm:"not null;default:false"`
	MilitiaCorporationID *int64    `gorm:"index"`
	SizeFactor           float64   `gorm:"not null;default:0"`
	StationCount         int64     `gorm:"not null;default:0"`
	StationSystemCount   int64     `gorm:"not null;default:0"`
	LastUpdated          time.Time `gorm:"autoUpdateTime;index"`
}

func (EveFaction) TableName() string {
	return constants.TableFactions
}

// LogoURL returns an image URL for this faction.
func (f *EveFaction) LogoURL(size int) (string, error) {
	return images.FactionLogoURL(f.ID, size)
}
