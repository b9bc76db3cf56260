// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lines live in their own table and are loaded with the order; the shipping
// address is embedded into the orders table.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BuyerID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Address    AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Lines      []LineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalPrice int64      `gorm:"type:bigint;not null"`
	Status     int        `gorm:"index"`
	CreatedAt  time.Time  `gorm:"not null;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping address within the order table.
type AddressDTO struct {
	FirstName string `gorm:"type:varchar(255);not null"`
	LastName  string `gorm:"type:varchar(255);not null"`
	Address1  string `gorm:"type:varchar(255);not null"`
	Address2  string `gorm:"type:varchar(255)"`
	City      string `gorm:"type:varchar(255);not null"`
	State     string `gorm:"type:varchar(255)"`
	Zip       string `gorm:"type:varchar(32);not null"`
	Country   string `gorm:"type:varchar(255);not null"`
}

// LineDTO represents the database structure for persisting order lines.
// Each line carries the unit price snapshot taken at placement time.
type LineDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"type:int;not null"`
	UnitPrice int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			OrderID:   orderID,
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().AmountMinor(),
		})
	}

	address := aggregate.ShippingAddress()

	return OrderDTO{
		ID:      orderID,
		BuyerID: aggregate.BuyerID().Bytes(),
		Address: AddressDTO{
			FirstName: address.FirstName(),
			LastName:  address.LastName(),
			Address1:  address.Address1(),
			Address2:  address.Address2(),
			City:      address.City(),
			State:     address.State(),
			Zip:       address.Zip(),
			Country:   address.Country(),
		},
		Lines:      lines,
		TotalPrice: aggregate.TotalPrice().AmountMinor(),
		Status:     int(aggregate.Status()),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(
		dto.Address.FirstName,
		dto.Address.LastName,
		dto.Address.Address1,
		dto.Address.Address2,
		dto.Address.City,
		dto.Address.State,
		dto.Address.Zip,
		dto.Address.Country,
	)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		unitPrice, lineErr := kernel.NewMoneyFromMinor(lineDTO.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(productID, lineDTO.Quantity, unitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	totalPrice, err := kernel.NewMoneyFromMinor(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, buyerID, address, lines, totalPrice, order.Status(dto.Status), dto.CreatedAt)
}
