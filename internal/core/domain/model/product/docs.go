// Package product contains the Product catalog aggregate and the StockDelta
// value object used for batch inventory movements.
//
// Product owns the stock counter: Reserve and Release are the only domain
// operations that change it, and Reserve enforces that stock never goes
// negative, reporting the shortfall via InsufficientStockError.
package product
