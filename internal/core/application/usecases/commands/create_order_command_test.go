package commands_test

import (
	"testing"

	"ecobazaar/internal/core/application/usecases/commands"
	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	item, err := commands.NewOrderItem(kernel.NewUUID(), 2)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(id, "jane@example.com", testShippingAddress(t), []commands.OrderItem{item})
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "jane@example.com", cmd.BuyerEmail())
	assert.Len(t, cmd.Items(), 1)
	assert.Equal(t, 2, cmd.Items()[0].Quantity())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	item, _ := commands.NewOrderItem(kernel.NewUUID(), 1)
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "jane@example.com", testShippingAddress(t), []commands.OrderItem{item})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyBuyerEmail(t *testing.T) {
	item, _ := commands.NewOrderItem(kernel.NewUUID(), 1)
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", testShippingAddress(t), []commands.OrderItem{item})
	require.Error(t, err)
}

func TestNewCreateOrderCommand_UnconstructedAddress(t *testing.T) {
	item, _ := commands.NewOrderItem(kernel.NewUUID(), 1)
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "jane@example.com", order.Address{}, []commands.OrderItem{item})
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrAddressIsNotConstructed)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "jane@example.com", testShippingAddress(t), nil)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_UnconstructedItem(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "jane@example.com", testShippingAddress(t), []commands.OrderItem{{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderItemIsNotConstructed)
}

func TestNewOrderItem_InvalidQuantity(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		_, err := commands.NewOrderItem(kernel.NewUUID(), quantity)
		require.Error(t, err)
	}
}
