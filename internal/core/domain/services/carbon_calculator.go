package services

import (
	"context"
	"errors"
	"math"

	"ecobazaar/internal/pkg/errs"
)

const (
	// FactorTypeMaterial selects per-material emission factors.
	FactorTypeMaterial = "MATERIAL"

	// FactorTypePackaging selects per-packaging emission factors.
	FactorTypePackaging = "PACKAGING"

	// GlobalRegion is the fallback region used when a material factor is not
	// published for the requested region.
	GlobalRegion = "Global"
)

// ErrEmissionFactorProviderIsRequired is returned when constructing a
// CarbonCalculator without a factor provider.
var ErrEmissionFactorProviderIsRequired = errs.NewValueIsRequiredError("emissionFactorProvider is required")

// EmissionFactorProvider resolves emission factors (kg CO2e per kg) by
// factor type, name and region.
type EmissionFactorProvider interface {
	GetValue(ctx context.Context, factorType string, name string, region string) (float64, error)
}

// CarbonCalculator is a domain service that estimates the carbon footprint
// of a product from its material, packaging and weight.
//
// The estimate is (materialFactor + packagingFactor) * weightKg, rounded to
// two decimals. Material factors are region-specific with a Global fallback;
// packaging factors are global.
type CarbonCalculator struct {
	factors EmissionFactorProvider
}

// NewCarbonCalculator creates a CarbonCalculator over the given factor
// provider.
func NewCarbonCalculator(factors EmissionFactorProvider) (CarbonCalculator, error) {
	if factors == nil {
		return CarbonCalculator{}, ErrEmissionFactorProviderIsRequired
	}

	return CarbonCalculator{factors: factors}, nil
}

// Calculate estimates the footprint in kg CO2e for weightGrams of material
// wrapped in packaging, for the given region.
func (c CarbonCalculator) Calculate(
	ctx context.Context,
	material string,
	packaging string,
	weightGrams float64,
	region string,
) (float64, error) {
	if material == "" {
		return 0, errs.NewValueIsRequiredError("material is required")
	}
	if packaging == "" {
		return 0, errs.NewValueIsRequiredError("packaging is required")
	}
	if weightGrams <= 0 {
		return 0, errs.NewValueIsInvalidError("weightGrams must be greater than 0")
	}
	if region == "" {
		region = GlobalRegion
	}

	materialFactor, err := c.lookupMaterialFactor(ctx, material, region)
	if err != nil {
		return 0, err
	}

	packagingFactor, err := c.factors.GetValue(ctx, FactorTypePackaging, packaging, GlobalRegion)
	if err != nil {
		return 0, err
	}

	footprint := (materialFactor + packagingFactor) * (weightGrams / 1000)
	return math.Round(footprint*100) / 100, nil
}

// lookupMaterialFactor resolves the material factor for the region, falling
// back to the Global factor when the region has none.
func (c CarbonCalculator) lookupMaterialFactor(ctx context.Context, material string, region string) (float64, error) {
	factor, err := c.factors.GetValue(ctx, FactorTypeMaterial, material, region)
	if err == nil {
		return factor, nil
	}

	if region != GlobalRegion && errors.Is(err, errs.ErrObjectNotFound) {
		return c.factors.GetValue(ctx, FactorTypeMaterial, material, GlobalRegion)
	}

	return 0, err
}
