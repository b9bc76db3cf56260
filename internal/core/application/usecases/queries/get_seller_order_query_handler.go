package queries

import (
	"context"

	"ecobazaar/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetSellerOrderQueryHandler retrieves a single order with its lines for the
// seller detail view.
type GetSellerOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerOrderQueryHandler creates a handler for seller single-order queries.
func NewGetSellerOrderQueryHandler(db *gorm.DB) GetSellerOrderQueryHandler {
	return GetSellerOrderQueryHandler{db: db}
}

// Handle returns the requested order or an ObjectNotFoundError when no order
// with that identifier exists.
func (h GetSellerOrderQueryHandler) Handle(
	ctx context.Context,
	query GetSellerOrderQuery,
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
