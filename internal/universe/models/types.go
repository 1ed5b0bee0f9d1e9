package models

import (
	"time"

	"eveuniverse/internal/shared/constants"
	"eveuniverse/internal/universe/images"
)

// EveCategory is an inventory category in Eve Online.
type EveCategory struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null;default:'';index"`
	Published   bool      `gorm:"not null;default:false"`
	LastUpdated time.Time `gorm:"autoUpdateTime;index"`
}

func (EveCategory) TableName() string {
	return constants.TableCategories
}

// EveGroup is an inventory group in Eve Online.
type EveGroup struct {
	ID            int64     `gorm:"primaryKey"`
	Name          string    `gorm:"size:100;not null;default:'';index"`
	EveCategoryID int64     `gorm:"not null;index"`
	Published     bool      `gorm:"not null;default:false"`
	LastUpdated   time.Time `gorm:"autoUpdateTime;index"`
}

func (EveGroup) TableName() string {
	return constants.TableGroups
}

// EveType is an inventory type in Eve Online.
type EveType struct {
	ID               int64  `gorm:"primaryKey"`
	Name             string `gorm:"size:100;not null;default:'';index"`
	Capacity         *float64
	EveGroupID       int64  `gorm:"not null;index"`
	EveGraphicID     *int64 `gorm:"index"`
	IconID           *int64 `gorm:"index"`
	EveMarketGroupID *int64 `gorm:"index"`
	Mass             *float64
	PackagedVolume   *float64
	PortionSize      *int64
	Radius           *float64
	Published        bool `gorm:"not null;default:false"`
	Volume           *float64
	EnabledSections  SectionFlags `gorm:"not null;default:0"`
	LastUpdated      time.Time    `gorm:"autoUpdateTime;index"`
}

func (EveType) TableName() string {
	return constants.TableTypes
}

// IconURL returns an icon URL for this type.
func (t *EveType) IconURL(size int) (string, error) {
	return images.TypeIconURL(t.ID, size)
}

// RenderURL returns a render image URL for this type.
func (t *EveType) RenderURL(size int) (string, error) {
	return images.TypeRenderURL(t.ID, size)
}

// EveMarketGroup is a market group in Eve Online.
type EveMarketGroup struct {
	ID                  int64     `gorm:"primaryKey"`
	Name                string    `gorm:"size:100;not null;default:'';index"`
	Description         string    `gorm:"type:text;not null;default:''"`
	ParentMarketGroupID *int64    `gorm:"index"`
	LastUpdated         time.Time `gorm:"autoUpdateTime;index"`
}

func (EveMarketGroup) TableName() string {
	return constants.TableMarketGroups
}

// EveGraphic is a graphic in Eve Online.
type EveGraphic struct {
	ID            int64     `gorm:"primaryKey"`
	Name          string    `gorm:"size:100;not null;default:'';index"`
	CollisionFile string    `gorm:"size:255;not null;default:''"`
	GraphicFile   string    `gorm:"size:255;not null;default:''"`
	IconFolder    string    `gorm:"size:255;not null;default:''"`
	SofDNA        string    `gorm:"size:255;not null;default:''"`
	SofFationName string    `gorm:"size:255;not null;default:''"` // sic, matches the ESI field name
	SofHullName   string    `gorm:"size:255;not null;default:''"`
	SofRaceName   string    `gorm:"size:255;not null;default:''"`
	LastUpdated   time.Time `gorm:"autoUpdateTime;index"`
}

func (EveGraphic) TableName() string {
	return constants.TableGraphics
}

// EveTypeDogmaAttribute is a dogma attribute value of an inventory type.
type EveTypeDogmaAttribute struct {
	ID                  int64   `gorm:"primaryKey;autoIncrement"`
	EveTypeID           int64   `gorm:"not null;uniqueIndex:fpk_eve_type_dogma_attribute"`
	EveDogmaAttributeID int64   `gorm:"not null;uniqueIndex:fpk_eve_type_dogma_attribute"`
	Value               float64 `gorm:"not null;default:0"`
}

func (EveTypeDogmaAttribute) TableName() string {
	return constants.TableTypeDogmaAttributes
}

// EveTypeDogmaEffect is a dogma effect of an inventory type.
type EveTypeDogmaEffect struct {
	ID               int64 `gorm:"primaryKey;autoIncrement"`
	EveTypeID        int64 `gorm:"not null;uniqueIndex:fpk_eve_type_dogma_effect"`
	EveDogmaEffectID int64 `gorm:"not null;uniqueIndex:fpk_eve_type_dogma_effect"`
	IsDefault        bool  `gorm:"not null;default:false"`
}

func (EveTypeDogmaEffect) TableName() string {
	return constants.TableTypeDogmaEffects
}

// EveTypeMaterial is a bill-of-materials row for an inventory type,
// sourced from the static-data export rather than ESI.
type EveTypeMaterial struct {
	ID                int64 `gorm:"primaryKey;autoIncrement"`
	EveTypeID         int64 `gorm:"not null;uniqueIndex:fpk_eve_type_material"`
	MaterialEveTypeID int64 `gorm:"not null;uniqueIndex:fpk_eve_type_material"`
	Quantity          int64 `gorm:"not null;default:0"`
}

func (EveTypeMaterial) TableName() string {
	return constants.TableTypeMaterials
}

// EveMarketPrice is the market price of an inventory type.
type EveMarketPrice struct {
	EveTypeID     int64 `gorm:"primaryKey"`
	AdjustedPrice *float64
	AveragePrice  *float64
	UpdatedAt     time.Time `gorm:"autoUpdateTime;index"`
}

func (EveMarketPrice) TableName() string {
	return constants.TableMarketPrices
}

// DefaultMarketPriceStaleMinutes is the default staleness window for
// market price refreshes.
const DefaultMarketPriceStaleMinutes = 60
