package ports

import (
	"context"
)

// EmissionFactorRepository resolves emission factors (kg CO2e per kg) by
// factor type, name and region. It satisfies the domain's
// services.EmissionFactorProvider contract.
type EmissionFactorRepository interface {
	// GetValue returns the factor value for the given type, name and region.
	GetValue(ctx context.Context, factorType string, name string, region string) (float64, error)
}
