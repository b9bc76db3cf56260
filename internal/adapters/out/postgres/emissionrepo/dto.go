// Package emissionrepo provides persistence for emission factors used by the
// carbon footprint calculator.
package emissionrepo

// EmissionFactorDTO represents the database structure for persisting emission
// factors. Factors are keyed by (type, name, region); material factors exist
// per region with a Global fallback row, packaging factors only globally.
type EmissionFactorDTO struct {
	ID         uint    `gorm:"primaryKey;autoIncrement"`
	FactorType string  `gorm:"type:varchar(32);not null;uniqueIndex:idx_factor_key"`
	Name       string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_factor_key"`
	Region     string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_factor_key"`
	Value      float64 `gorm:"type:double precision;not null"`
}

// TableName specifies the database table name for emission factor entities.
// Overrides GORM's default naming convention to use "emission_factors".
func (EmissionFactorDTO) TableName() string {
	return "emission_factors"
}
