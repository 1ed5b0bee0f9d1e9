package models

import (
	"math"
	"time"

	"eveuniverse/internal/shared/constants"
)

// EveRegion is a star region in Eve Online.
type EveRegion struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null;default:'';index"`
	Description string    `gorm:"type:text;not null;default:''"`
	LastUpdated time.Time `gorm:"autoUpdateTime;index"`
}

func (EveRegion) TableName() string {
	return constants.TableRegions
}

// EveConstellation is a star constellation in Eve Online.
type EveConstellation struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null;default:'';index"`
	EveRegionID int64  `gorm:"not null;index"`
	PositionX   *float64
	PositionY   *float64
	PositionZ   *float64
	LastUpdated time.Time `gorm:"autoUpdateTime;index"`
}

func (EveConstellation) TableName() string {
	return constants.TableConstellations
}

// EveSolarSystem is a solar system in Eve Online.
type EveSolarSystem struct {
	ID                 int64  `gorm:"primaryKey"`
	Name               string `gorm:"size:100;not null;default:'';index"`
	EveConstellationID int64  `gorm:"not null;index"`
	EveStarID          *int64 `gorm:"index"`
	PositionX          *float64
	PositionY          *float64
	PositionZ          *float64
	SecurityStatus     float64      `gorm:"not null;default:0"`
	EnabledSections    SectionFlags `gorm:"not null;default:0"`
	LastUpdated        time.Time    `gorm:"autoUpdateTime;index"`
}

func (EveSolarSystem) TableName() string {
	return constants.TableSolarSystems
}

// IsHighSec reports whether this solar system is in high sec.
func (s *EveSolarSystem) IsHighSec() bool {
	return roundSec(s.SecurityStatus) >= 0.5
}

// IsLowSec reports whether this solar system is in low sec.
func (s *EveSolarSystem) IsLowSec() bool {
	sec := roundSec(s.SecurityStatus)
	return sec > 0 && sec < 0.5
}

// IsNullSec reports whether this solar system is in null sec.
func (s *EveSolarSystem) IsNullSec() bool {
	return roundSec(s.SecurityStatus) <= 0 && !s.IsWSpace()
}

// IsWSpace reports whether this solar system is in wormhole space.
func (s *EveSolarSystem) IsWSpace() bool {
	return s.ID >= 31000000 && s.ID < 32000000
}

// DistanceTo calculates the distance in meters to the given solar system.
// Returns false when either system is in wormhole space or lacks a position.
func (s *EveSolarSystem) DistanceTo(destination *EveSolarSystem) (float64, bool) {
	if s.IsWSpace() || destination.IsWSpace() {
		return 0, false
	}
	if s.PositionX == nil || s.PositionY == nil || s.PositionZ == nil ||
		destination.PositionX == nil || destination.PositionY == nil || destination.PositionZ == nil {
		return 0, false
	}
	return math.Sqrt(
		math.Pow(*destination.PositionX-*s.PositionX, 2) +
			math.Pow(*destination.PositionY-*s.PositionY, 2) +
			math.Pow(*destination.PositionZ-*s.PositionZ, 2),
	), true
}

// security status is conventionally compared at one decimal
func roundSec(sec float64) float64 {
	return math.Round(sec*10) / 10
}

// EvePlanet is a planet in Eve Online.
type EvePlanet struct {
	ID               int64  `gorm:"primaryKey"`
	Name             string `gorm:"size:100;not null;default:'';index"`
	EveSolarSystemID int64  `gorm:"not null;index"`
	EveTypeID        int64  `gorm:"not null;index"`
	PositionX        *float64
	PositionY        *float64
	PositionZ        *float64
	EnabledSections  SectionFlags `gorm:"not null;default:0"`
	LastUpdated      time.Time    `gorm:"autoUpdateTime;index"`
}

func (EvePlanet) TableName() string {
	return constants.TablePlanets
}

// EveMoon is a moon in Eve Online.
type EveMoon struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null;default:'';index"`
	EvePlanetID int64  `gorm:"not null;index"`
	PositionX   *float64
	PositionY   *float64
	PositionZ   *float64
	LastUpdated time.Time `gorm:"autoUpdateTime;index"`
}

func (EveMoon) TableName() string {
	return constants.TableMoons
}

// EveAsteroidBelt is an asteroid belt in Eve Online.
type EveAsteroidBelt struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null;default:'';index"`
	EvePlanetID int64  `gorm:"not null;index"`
	PositionX   *float64
	PositionY   *float64
	PositionZ   *float64
	LastUpdated time.Time `gorm:"autoUpdateTime;index"`
}

func (EveAsteroidBelt) TableName() string {
	return constants.TableAsteroidBelts
}

// EveStar is a star in Eve Online.
type EveStar struct {
	ID            int64     `gorm:"primaryKey"`
	Name          string    `gorm:"size:100;not null;default:'';index"`
	Age           int64     `gorm:"not null;default:0"`
	EveTypeID     int64     `gorm:"not null;index"`
	Luminosity    float64   `gorm:"not null;default:0"`
	Radius        int64     `gorm:"not null;default:0"`
	SpectralClass string    `gorm:"size:16;not null;default:''"`
	Temperature   int64     `gorm:"not null;default:0"`
	LastUpdated   time.Time `gorm:"autoUpdateTime;index"`
}

func (EveStar) TableName() string {
	return constants.TableStars
}

// EveStargate is a stargate in Eve Online. The destination columns form a
// cyclic reference between the two endpoints of a gate pair; they are left
// null on first ingestion and closed by a post-link pass once the
// destination row exists.
type EveStargate struct {
	ID                          int64  `gorm:"primaryKey"`
	Name                        string `gorm:"size:100;not null;default:'';index"`
	DestinationEveStargateID    *int64 `gorm:"index"`
	DestinationEveSolarSystemID *int64 `gorm:"index"`
	EveSolarSystemID            int64  `gorm:"not null;index"`
	EveTypeID                   int64  `gorm:"not null;index"`
	PositionX                   *float64
	PositionY                   *float64
	PositionZ                   *float64
	LastUpdated                 time.Time `gorm:"autoUpdateTime;index"`
}

func (EveStargate) TableName() string {
	return constants.TableStargates
}

// EveStation is a space station in Eve Online.
type EveStation struct {
	ID                       int64   `gorm:"primaryKey"`
	Name                     string  `gorm:"size:100;not null;default:'';index"`
	EveRaceID                *int64  `gorm:"index"`
	EveSolarSystemID         int64   `gorm:"not null;index"`
	EveTypeID                int64   `gorm:"not null;index"`
	MaxDockableShipVolume    float64 `gorm:"not null;default:0"`
	OfficeRentalCost         float64 `gorm:"not null;default:0"`
	OwnerID                  *int64  `gorm:"index"`
	PositionX                *float64
	PositionY                *float64
	PositionZ                *float64
	ReprocessingEfficiency   float64             `gorm:"not null;default:0"`
	ReprocessingStationsTake float64             `gorm:"not null;default:0"`
	Services                 []EveStationService `gorm:"many2many:eve_station_service_links"`
	LastUpdated              time.Time           `gorm:"autoUpdateTime;index"`
}

func (EveStation) TableName() string {
	return constants.TableStations
}

// EveStationService is a service offered in a space station.
type EveStationService struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:50;uniqueIndex;not null"`
}

func (EveStationService) TableName() string {
	return constants.TableStationServices
}
