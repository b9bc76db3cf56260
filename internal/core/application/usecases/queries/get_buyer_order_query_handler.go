package queries

import (
	"context"

	"ecobazaar/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetBuyerOrderQueryHandler retrieves a single order with its lines for the
// buyer detail view.
type GetBuyerOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrderQueryHandler creates a handler for single-order queries.
func NewGetBuyerOrderQueryHandler(db *gorm.DB) GetBuyerOrderQueryHandler {
	return GetBuyerOrderQueryHandler{db: db}
}

// Handle returns the requested order or an ObjectNotFoundError when no order
// with that identifier exists.
func (h GetBuyerOrderQueryHandler) Handle(
	ctx context.Context,
	query GetBuyerOrderQuery,
) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		orderViewSelect+`
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	views, err := scanOrderViews(rows)
	if err != nil {
		return OrderView{}, err
	}

	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	if err = attachLines(ctx, h.db, views); err != nil {
		return OrderView{}, err
	}

	return views[0], nil
}
