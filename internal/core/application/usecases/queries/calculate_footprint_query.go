package queries

import (
	"errors"

	"ecobazaar/internal/pkg/errs"
	"ecobazaar/internal/pkg/guard"
)

var ErrCalculateFootprintQueryIsNotConstructed = errors.New(
	"CalculateFootprintQuery must be created via NewCalculateFootprintQuery constructor",
)

// CalculateFootprintQuery estimates the carbon footprint of a product from
// its material, packaging, weight and origin region. Region may be empty; the
// calculator then uses global emission factors.
//
// Example:
//
//	query, _ := NewCalculateFootprintQuery("cotton", "cardboard", 250, "EU")
//	handler := NewCalculateFootprintQueryHandler(calculator)
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to calculate footprint: %w", err)
//	}
type CalculateFootprintQuery struct {
	material    string
	packaging   string
	weightGrams float64
	region      string

	guard guard.ConstructorGuard
}

// NewCalculateFootprintQuery creates a footprint calculation query.
func NewCalculateFootprintQuery(
	material string,
	packaging string,
	weightGrams float64,
	region string,
) (CalculateFootprintQuery, error) {
	if material == "" {
		return CalculateFootprintQuery{}, errs.NewValueIsRequiredError("material is required")
	}
	if packaging == "" {
		return CalculateFootprintQuery{}, errs.NewValueIsRequiredError("packaging is required")
	}
	if weightGrams <= 0 {
		return CalculateFootprintQuery{}, errs.NewValueIsInvalidError(
			"weightGrams must be greater than 0")
	}

	return CalculateFootprintQuery{
		material:    material,
		packaging:   packaging,
		weightGrams: weightGrams,
		region:      region,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculateFootprintQuery) Validate() error {
	return q.guard.Validate(ErrCalculateFootprintQueryIsNotConstructed)
}

// Material returns the product's primary material.
func (q CalculateFootprintQuery) Material() string {
	return q.material
}

// Packaging returns the packaging type.
func (q CalculateFootprintQuery) Packaging() string {
	return q.packaging
}

// WeightGrams returns the product weight in grams.
func (q CalculateFootprintQuery) WeightGrams() float64 {
	return q.weightGrams
}

// Region returns the origin region, possibly empty.
func (q CalculateFootprintQuery) Region() string {
	return q.region
}

// CalculateFootprintQueryResponse carries the estimated footprint in kg CO2e.
type CalculateFootprintQueryResponse struct {
	FootprintKg float64
}
