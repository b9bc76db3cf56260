// Package productrepo provides data transfer objects and mapping functions for
// product persistence, plus the GORM-backed inventory ledger.
package productrepo

import (
	"time"

	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product aggregates.
type ProductDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	Category       string    `gorm:"type:varchar(255);index"`
	Price          int64     `gorm:"type:bigint;not null"`
	Stock          int       `gorm:"type:int;not null"`
	CarbonEmission float64   `gorm:"type:double precision"`
	ZeroWaste      bool
	Active         bool      `gorm:"index"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:             aggregate.ID().Bytes(),
		SellerID:       aggregate.SellerID().Bytes(),
		Name:           aggregate.Name(),
		Description:    aggregate.Description(),
		Category:       aggregate.Category(),
		Price:          aggregate.Price().AmountMinor(),
		Stock:          aggregate.Stock(),
		CarbonEmission: aggregate.CarbonEmission(),
		ZeroWaste:      aggregate.IsZeroWaste(),
		Active:         aggregate.IsActive(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a product domain aggregate using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromMinor(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		sellerID,
		dto.Name,
		dto.Description,
		dto.Category,
		price,
		dto.Stock,
		dto.CarbonEmission,
		dto.ZeroWaste,
		dto.Active,
		dto.CreatedAt,
	)
}
