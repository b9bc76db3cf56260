package commands

import (
	"ecobazaar/internal/core/domain/model/order"
	"ecobazaar/internal/core/domain/model/product"
)

// stockDeltasFromLines rebuilds the stock movements an order reserved at
// placement. Cancellation paths release exactly these quantities.
func stockDeltasFromLines(lines []order.Line) ([]product.StockDelta, error) {
	deltas := make([]product.StockDelta, 0, len(lines))
	for _, line := range lines {
		delta, err := product.NewStockDelta(line.ProductID(), line.Quantity())
		if err != nil {
			return nil, err
		}
		deltas = append(deltas, delta)
	}

	return deltas, nil
}
