package product

import (
	"errors"
	"fmt"
	"time"

	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/pkg/errs"
	"ecobazaar/internal/pkg/guard"
)

var (
	// ErrInsufficientStock indicates that a reservation asked for more units
	// than the product currently has on hand.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrProductIsNotConstructed indicates that the Product was not properly
	// initialized through the NewProduct or RestoreProduct constructor.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// InsufficientStockError reports a failed stock reservation. It carries the
// product and the quantities involved so callers can surface a precise
// conflict message without reloading the product.
type InsufficientStockError struct {
	ProductID kernel.UUID
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for the given
// product and quantities.
func NewInsufficientStockError(productID kernel.UUID, requested int, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID: productID,
		Requested: requested,
		Available: available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s has %d units, %d requested",
		ErrInsufficientStock, e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Product is the catalog aggregate. It owns the stock counter and enforces
// the non-negative stock invariant through Reserve and Release.
type Product struct {
	id             kernel.UUID
	sellerID       kernel.UUID
	name           string
	description    string
	category       string
	price          kernel.Money
	stock          int
	carbonEmission float64
	zeroWaste      bool
	active         bool
	createdAt      time.Time

	guard guard.ConstructorGuard
}

// NewProduct creates a new active Product with the given attributes. Stock
// must not be negative.
func NewProduct(
	id kernel.UUID,
	sellerID kernel.UUID,
	name string,
	description string,
	category string,
	price kernel.Money,
	stock int,
	carbonEmission float64,
	zeroWaste bool,
) (*Product, error) {
	product := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setSellerID(sellerID),
		product.setName(name),
		product.setPrice(price),
		product.setStock(stock),
	); err != nil {
		return nil, err
	}

	product.description = description
	product.category = category
	product.carbonEmission = carbonEmission
	product.zeroWaste = zeroWaste
	product.active = true
	product.createdAt = time.Now().UTC()

	return product, nil
}

// RestoreProduct reconstructs a Product from persistent storage.
func RestoreProduct(
	id kernel.UUID,
	sellerID kernel.UUID,
	name string,
	description string,
	category string,
	price kernel.Money,
	stock int,
	carbonEmission float64,
	zeroWaste bool,
	active bool,
	createdAt time.Time,
) (*Product, error) {
	product := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setSellerID(sellerID),
		product.setName(name),
		product.setPrice(price),
		product.setStock(stock),
	); err != nil {
		return nil, err
	}

	product.description = description
	product.category = category
	product.carbonEmission = carbonEmission
	product.zeroWaste = zeroWaste
	product.active = active
	product.createdAt = createdAt

	return product, nil
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the unique identifier of the product.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// SellerID returns the identifier of the seller who owns the product.
func (p *Product) SellerID() kernel.UUID {
	return p.sellerID
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Category returns the product category.
func (p *Product) Category() string {
	return p.category
}

// Price returns the current list price. Orders snapshot this value into
// their lines at creation time.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the number of units currently on hand.
func (p *Product) Stock() int {
	return p.stock
}

// CarbonEmission returns the per-unit carbon emission in kg CO2e.
func (p *Product) CarbonEmission() float64 {
	return p.carbonEmission
}

// IsZeroWaste reports whether the product carries the zero-waste label.
func (p *Product) IsZeroWaste() bool {
	return p.zeroWaste
}

// IsActive reports whether the product is available for purchase.
func (p *Product) IsActive() bool {
	return p.active
}

// CreatedAt returns the creation timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// Reserve removes quantity units from stock. It fails with
// InsufficientStockError when fewer units are available, leaving the stock
// unchanged.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if p.stock < quantity {
		return NewInsufficientStockError(p.id, quantity, p.stock)
	}

	p.stock -= quantity
	return nil
}

// Release returns quantity units to stock. Releases are not reconciled
// against prior reservations; callers are responsible for releasing only
// what they reserved.
func (p *Product) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	p.stock += quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Product) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	p.sellerID = sellerID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}

	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock is invalid",
			fmt.Errorf("%d is negative", stock),
		)
	}

	p.stock = stock
	return nil
}

// Validate checks that the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}
