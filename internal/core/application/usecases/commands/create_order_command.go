package commands

import (
	"errors"
	"fmt"

	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/core/domain/model/order"
	"ecobazaar/internal/pkg/errs"
	"ecobazaar/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemIsNotConstructed = errors.New(
		"OrderItem must be created via NewOrderItem constructor",
	)
)

// OrderItem is one requested (product, quantity) pair of an order placement.
// Prices are not part of the request; they are snapshotted from the catalog
// when the order is placed.
type OrderItem struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewOrderItem creates an order item. Quantity must be positive.
func NewOrderItem(productID kernel.UUID, quantity int) (OrderItem, error) {
	item := OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return OrderItem{}, err
	}

	return item, nil
}

// ProductID returns the requested product.
func (i OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the requested number of units.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// Validate ensures the item was created through the constructor.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

func (i *OrderItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	i.productID = productID
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	i.quantity = quantity
	return nil
}

// CreateOrderCommand represents a buyer's request to place an order.
// The buyer is identified explicitly by email; the handler resolves the
// account and rejects unknown buyers.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	item, _ := NewOrderItem(productID, 2)
//	cmd, err := NewCreateOrderCommand(orderID, "buyer@example.com", address, []OrderItem{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	buyerEmail      string
	shippingAddress order.Address
	items           []OrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID and address are valid, the buyer email is not
// empty and at least one item is requested.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	buyerEmail string,
	shippingAddress order.Address,
	items []OrderItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setBuyerEmail(buyerEmail),
		orderCommand.setShippingAddress(shippingAddress),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerEmail returns the email identifying the buyer placing the order.
func (c CreateOrderCommand) BuyerEmail() string {
	return c.buyerEmail
}

// ShippingAddress returns the delivery address.
func (c CreateOrderCommand) ShippingAddress() order.Address {
	return c.shippingAddress
}

// Items returns the requested items.
func (c CreateOrderCommand) Items() []OrderItem {
	items := make([]OrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyerEmail(buyerEmail string) error {
	if buyerEmail == "" {
		return errs.NewValueIsRequiredError("buyerEmail is required")
	}

	c.buyerEmail = buyerEmail
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress order.Address) error {
	if err := shippingAddress.Validate(); err != nil {
		return err
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items are required")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]OrderItem, len(items))
	copy(c.items, items)
	return nil
}
