package services_test

import (
	"context"
	"errors"
	"testing"

	"ecobazaar/internal/core/domain/services"
	"ecobazaar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEmissionFactorProvider struct{ mock.Mock }

func (m *MockEmissionFactorProvider) GetValue(
	ctx context.Context, factorType string, name string, region string,
) (float64, error) {
	args := m.Called(ctx, factorType, name, region)
	return args.Get(0).(float64), args.Error(1)
}

func TestNewCarbonCalculator(t *testing.T) {
	t.Run("should require a factor provider", func(t *testing.T) {
		_, err := services.NewCarbonCalculator(nil)

		require.ErrorIs(t, err, services.ErrEmissionFactorProviderIsRequired)
	})
}

func TestCarbonCalculator_Calculate(t *testing.T) {
	newCalculator := func(t *testing.T) (services.CarbonCalculator, *MockEmissionFactorProvider) {
		t.Helper()
		provider := &MockEmissionFactorProvider{}
		calculator, err := services.NewCarbonCalculator(provider)
		require.NoError(t, err)
		return calculator, provider
	}

	t.Run("should combine material and packaging factors over the weight", func(t *testing.T) {
		calculator, provider := newCalculator(t)
		provider.On("GetValue", mock.Anything, services.FactorTypeMaterial, "cotton", "EU").
			Return(5.2, nil).Once()
		provider.On("GetValue", mock.Anything, services.FactorTypePackaging, "cardboard", services.GlobalRegion).
			Return(0.8, nil).Once()

		// (5.2 + 0.8) * 0.25 = 1.5
		got, err := calculator.Calculate(context.Background(), "cotton", "cardboard", 250, "EU")

		require.NoError(t, err)
		assert.InDelta(t, 1.5, got, 0.0001)
		provider.AssertExpectations(t)
	})

	t.Run("should round to two decimals", func(t *testing.T) {
		calculator, provider := newCalculator(t)
		provider.On("GetValue", mock.Anything, services.FactorTypeMaterial, "steel", services.GlobalRegion).
			Return(1.9, nil).Once()
		provider.On("GetValue", mock.Anything, services.FactorTypePackaging, "plastic", services.GlobalRegion).
			Return(1.433, nil).Once()

		// (1.9 + 1.433) * 0.333 = 1.109889 -> 1.11
		got, err := calculator.Calculate(context.Background(), "steel", "plastic", 333, "")

		require.NoError(t, err)
		assert.InDelta(t, 1.11, got, 0.0001)
	})

	t.Run("should fall back to the global material factor", func(t *testing.T) {
		calculator, provider := newCalculator(t)
		provider.On("GetValue", mock.Anything, services.FactorTypeMaterial, "bamboo", "APAC").
			Return(0.0, errs.NewObjectNotFoundError("factor", "bamboo")).Once()
		provider.On("GetValue", mock.Anything, services.FactorTypeMaterial, "bamboo", services.GlobalRegion).
			Return(2.0, nil).Once()
		provider.On("GetValue", mock.Anything, services.FactorTypePackaging, "paper", services.GlobalRegion).
			Return(1.0, nil).Once()

		got, err := calculator.Calculate(context.Background(), "bamboo", "paper", 1000, "APAC")

		require.NoError(t, err)
		assert.InDelta(t, 3.0, got, 0.0001)
		provider.AssertExpectations(t)
	})

	t.Run("should not fall back when the global factor itself is missing", func(t *testing.T) {
		calculator, provider := newCalculator(t)
		provider.On("GetValue", mock.Anything, services.FactorTypeMaterial, "unobtainium", services.GlobalRegion).
			Return(0.0, errs.NewObjectNotFoundError("factor", "unobtainium")).Once()

		_, err := calculator.Calculate(context.Background(), "unobtainium", "paper", 100, "")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should propagate unexpected provider failures", func(t *testing.T) {
		calculator, provider := newCalculator(t)
		dbErr := errors.New("connection reset")
		provider.On("GetValue", mock.Anything, services.FactorTypeMaterial, "cotton", "EU").
			Return(0.0, dbErr).Once()

		_, err := calculator.Calculate(context.Background(), "cotton", "cardboard", 100, "EU")

		require.ErrorIs(t, err, dbErr)
	})

	t.Run("should validate inputs", func(t *testing.T) {
		calculator, _ := newCalculator(t)

		testCases := []struct {
			name                string
			material, packaging string
			weight              float64
		}{
			{"empty material", "", "paper", 100},
			{"empty packaging", "cotton", "", 100},
			{"zero weight", "cotton", "paper", 0},
			{"negative weight", "cotton", "paper", -5},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := calculator.Calculate(context.Background(), tc.material, tc.packaging, tc.weight, "EU")
				require.Error(t, err)
			})
		}
	})
}
