package engine

import (
	"context"

	"gorm.io/gorm/clause"

	"eveuniverse/internal/shared/errors"
	"eveuniverse/internal/universe/models"
)

// LoadUnits stores the dogma units table. Units have no ESI endpoint; the
// rows below come from the static data export and change only with game
// patches. Returns the number of rows written.
func (e *Engine) LoadUnits(ctx context.Context) (int, error) {
	rows := make([]models.EveUnit, 0, len(eveUnits))
	for _, unit := range eveUnits {
		rows = append(rows, models.EveUnit{
			ID:          unit.id,
			Name:        unit.name,
			DisplayName: unit.displayName,
			Description: unit.description,
		})
	}
	err := e.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(rows, e.batchSize).
		Error
	if err != nil {
		return 0, errors.NewDataIntegrityError("database insert failed", err.Error())
	}
	e.log.Infow("loaded dogma units", "count", len(rows))
	return len(rows), nil
}

var eveUnits = []struct {
	id          int64
	name        string
	displayName string
	description string
}{
	{1, "Length", "m", "Meter"},
	{2, "Mass", "kg", "Kilogram"},
	{3, "Time", "sec", "Second"},
	{4, "Electric Current", "A", "Ampere"},
	{5, "Temperature", "K", "Kelvin"},
	{6, "Amount Of Substance", "mol", "Mole"},
	{7, "Luminous Intensity", "cd", "Candela"},
	{8, "Area", "m2", "Square meter"},
	{9, "Volume", "m3", "Cubic meter"},
	{10, "Speed", "m/sec", "Meter per second"},
	{11, "Acceleration", "m/sec2", "Meter per second squared"},
	{12, "Wave Number", "m-1", "Reciprocal meter"},
	{13, "Mass Density", "kg/m3", "Kilogram per cubic meter"},
	{14, "Specific Volume", "m3/kg", "Cubic meter per kilogram"},
	{15, "Current Density", "A/m2", "Ampere per square meter"},
	{16, "Magnetic Field Strength", "A/m", "Ampere per meter"},
	{17, "Amount-Of-Substance Concentration", "mol/m3", "Mole per cubic meter"},
	{18, "Luminance", "cd/m2", "Candela per square meter"},
	{19, "Mass Fraction", "kg/kg", "Kilogram per kilogram, which may be represented by the number 1"},
	{101, "Milliseconds", "s", "Duration in milliseconds"},
	{102, "Millimeters", "mm", "Length in millimeters"},
	{103, "MegaPascals", "", "Pressure"},
	{104, "Multiplier", "x", "Multiplier"},
	{105, "Percentage", "%", "Percentage"},
	{106, "Teraflops", "tf", "Processing power"},
	{107, "MegaWatts", "MW", "Power"},
	{108, "Inverse Absolute Percent", "%", "Used for resistance. 0.0 = 100% 1.0 = 0%"},
	{109, "Modifier Percent", "%", "Used for multipliers displayed as %. 1.1 = +10% 0.9 = -10%"},
	{111, "Inversed Modifier Percent", "%", "Used to modify damage resistance. 0.1 = 90% 0.9 = 10%"},
	{112, "Radians/Second", "rad/sec", "Rotation speed"},
	{113, "Hitpoints", "HP", "Hitpoints"},
	{114, "capacitor units", "GJ", "Giga Joule"},
	{115, "groupID", "groupID", "Group ID"},
	{116, "typeID", "typeID", "Type ID"},
	{117, "Sizeclass", "1=small 2=medium 3=l", "Size class"},
	{118, "Ore units", "Ore units", "Ore units"},
	{119, "attributeID", "attributeID", "Attribute ID"},
	{120, "attributePoints", "points", "Attribute points"},
	{121, "realPercent", "%", "Used for real percentages. 0 = 0% 100 = 100%"},
	{122, "Fitting slots", "", "Fitting slots"},
	{123, "trueTime", "sec", "Shows seconds directly"},
	{124, "Modifier Relative Percent", "%", "Used for relative percentages displayed as %"},
	{125, "Newton", "N", "Force"},
	{126, "Light Year", "ly", "Light year"},
	{127, "Absolute Percent", "%", "0.0 = 0% 1.0 = 100%"},
	{128, "Drone bandwidth", "Mbit/sec", "Mega bits per second"},
	{129, "Hours", "", "Duration in hours"},
	{133, "Money", "ISK", "ISK"},
	{134, "Logistical Capacity", "m3/hour", "Fluid transfer rate"},
	{135, "Astronomical Unit", "AU", "Astronomical unit"},
	{136, "Slot", "Slot", "Slot number prefix"},
	{137, "Boolean", "1=True 0=False", "For flags and boolean values"},
	{138, "Units", "units", "Units of something, for example fuel"},
	{139, "Bonus", "+", "Forces a plus sign for positive values"},
	{140, "Level", "Level", "For skill levels"},
	{141, "Hardpoints", "hardpoints", "For turret and launcher hardpoints"},
	{142, "Sex", "1=Male 2=Unisex 3=Female", "Gender"},
	{143, "Datetime", "", "Date and time"},
}
