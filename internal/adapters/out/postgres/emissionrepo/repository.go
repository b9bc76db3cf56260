package emissionrepo

import (
	"context"
	"fmt"

	"ecobazaar/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEmissionFactorRepository implements EmissionFactorRepository using GORM.
type GormEmissionFactorRepository struct {
	db *gorm.DB
}

// NewGormEmissionFactorRepository creates a new GORM emission factor repository.
func NewGormEmissionFactorRepository(db *gorm.DB) *GormEmissionFactorRepository {
	return &GormEmissionFactorRepository{db: db}
}

// GetValue returns the factor value for the given type, name and region.
func (r *GormEmissionFactorRepository) GetValue(
	ctx context.Context,
	factorType string,
	name string,
	region string,
) (float64, error) {
	var value float64
	result := r.db.WithContext(ctx).Raw(`
		SELECT value
		FROM emission_factors
		WHERE factor_type = ? AND name = ? AND region = ?
	`, factorType, name, region).Scan(&value)
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		return 0, errs.NewObjectNotFoundError(
			"emission factor", fmt.Sprintf("%s/%s/%s", factorType, name, region))
	}

	return value, nil
}
