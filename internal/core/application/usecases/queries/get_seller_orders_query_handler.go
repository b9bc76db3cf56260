package queries

import (
	"context"
	"database/sql"

	"ecobazaar/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetSellerOrdersQueryHandler retrieves the seller dashboard views. Active
// orders are those not yet delivered or cancelled.
type GetSellerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerOrdersQueryHandler creates a handler for seller dashboard queries.
func NewGetSellerOrdersQueryHandler(db *gorm.DB) GetSellerOrdersQueryHandler {
	return GetSellerOrdersQueryHandler{db: db}
}

// Handle returns either the active work queue (oldest first) or the full
// order history (newest first), with lines.
func (h GetSellerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSellerOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows *sql.Rows
	var err error
	if query.ActiveOnly() {
		rows, err = h.db.WithContext(ctx).Raw(
			orderViewSelect+`
			WHERE o.status IN ?
			ORDER BY o.created_at ASC
		`, []order.Status{order.PendingApproval, order.Approved, order.Shipped}).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(
			orderViewSelect + `
			ORDER BY o.created_at DESC
		`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views, err := scanOrderViews(rows)
	if err != nil {
		return nil, err
	}

	if err = attachLines(ctx, h.db, views); err != nil {
		return nil, err
	}

	return views, nil
}
