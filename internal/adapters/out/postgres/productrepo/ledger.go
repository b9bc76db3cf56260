package productrepo

import (
	"context"

	"ecobazaar/internal/core/domain/model/product"
	"ecobazaar/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryLedger implements InventoryLedger using guarded UPDATE
// statements. Each reservation decrements stock only when enough units are
// on hand, so the check and the decrement are a single atomic statement and
// concurrent reservations cannot oversell.
type GormInventoryLedger struct {
	db *gorm.DB
}

// NewGormInventoryLedger creates a new GORM inventory ledger.
func NewGormInventoryLedger(db *gorm.DB) *GormInventoryLedger {
	return &GormInventoryLedger{db: db}
}

// Reserve removes the delta quantities from stock. The first product with
// insufficient stock fails the batch with product.InsufficientStockError;
// the surrounding transaction is expected to roll back decrements already
// applied for earlier deltas.
func (l *GormInventoryLedger) Reserve(ctx context.Context, deltas []product.StockDelta) error {
	for _, delta := range deltas {
		if err := delta.Validate(); err != nil {
			return err
		}

		result := l.db.WithContext(ctx).Exec(`
			UPDATE products
			SET stock = stock - ?
			WHERE id = ? AND stock >= ?
		`, delta.Quantity(), delta.ProductID().Bytes(), delta.Quantity())
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return l.reservationFailure(ctx, delta)
		}
	}

	return nil
}

// Release returns the delta quantities to stock. Releases are not reconciled
// against prior reservations; an unknown product is still an error.
func (l *GormInventoryLedger) Release(ctx context.Context, deltas []product.StockDelta) error {
	for _, delta := range deltas {
		if err := delta.Validate(); err != nil {
			return err
		}

		result := l.db.WithContext(ctx).Exec(`
			UPDATE products
			SET stock = stock + ?
			WHERE id = ?
		`, delta.Quantity(), delta.ProductID().Bytes())
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("product", delta.ProductID().String())
		}
	}

	return nil
}

// reservationFailure distinguishes a missing product from a stock shortfall
// by reloading the row.
func (l *GormInventoryLedger) reservationFailure(ctx context.Context, delta product.StockDelta) error {
	var available int
	result := l.db.WithContext(ctx).Raw(`
		SELECT stock FROM products WHERE id = ?
	`, delta.ProductID().Bytes()).Scan(&available)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", delta.ProductID().String())
	}

	return product.NewInsufficientStockError(delta.ProductID(), delta.Quantity(), available)
}
