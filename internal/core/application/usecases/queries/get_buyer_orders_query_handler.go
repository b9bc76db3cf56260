package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetBuyerOrdersQueryHandler retrieves a buyer's order history from the
// database, newest order first.
//
// Example:
//
//	handler := NewGetBuyerOrdersQueryHandler(db)
//	query, _ := NewGetBuyerOrdersQuery("buyer@example.com")
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get buyer orders: %v", err)
//	    return err
//	}
type GetBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrdersQueryHandler creates a handler for buyer order queries.
func NewGetBuyerOrdersQueryHandler(db *gorm.DB) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{db: db}
}

// Handle returns every order the buyer placed, most recent first, with lines.
// A buyer with no orders gets an empty slice, not an error.
func (h GetBuyerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBuyerOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		orderViewSelect+`
		WHERE u.email = ?
		ORDER BY o.created_at DESC
	`, query.BuyerEmail()).Rows()
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
