package queries_test

import (
	"testing"

	"ecobazaar/internal/core/application/usecases/queries"
	"ecobazaar/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetBuyerOrderQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetBuyerOrderQuery(orderID)
	require.NoError(t, err)

	require.NoError(t, query.Validate())
	assert.True(t, orderID.IsEqual(query.OrderID()))
}

func TestNewGetBuyerOrderQuery_ZeroID(t *testing.T) {
	_, err := queries.NewGetBuyerOrderQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetBuyerOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetBuyerOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetBuyerOrderQueryIsNotConstructed)
}
