package queries

import (
	"context"

	"ecobazaar/internal/core/domain/services"
)

// CalculateFootprintQueryHandler runs footprint estimation through the domain
// carbon calculator. Unlike the order view handlers it does not touch the
// database directly; factor lookups go through the calculator's provider.
type CalculateFootprintQueryHandler struct {
	calculator services.CarbonCalculator
}

// NewCalculateFootprintQueryHandler creates a handler for footprint queries.
func NewCalculateFootprintQueryHandler(
	calculator services.CarbonCalculator,
) CalculateFootprintQueryHandler {
	return CalculateFootprintQueryHandler{calculator: calculator}
}

// Handle estimates the footprint for the queried product attributes.
func (h CalculateFootprintQueryHandler) Handle(
	ctx context.Context,
	query CalculateFootprintQuery,
) (CalculateFootprintQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculateFootprintQueryResponse{}, err
	}

	footprint, err := h.calculator.Calculate(
		ctx,
		query.Material(),
		query.Packaging(),
		query.WeightGrams(),
		query.Region(),
	)
	if err != nil {
		return CalculateFootprintQueryResponse{}, err
	}

	return CalculateFootprintQueryResponse{FootprintKg: footprint}, nil
}
