// Package queries contains read-only operations that retrieve system state.
// Implements the Query side of the CQRS architecture: each query is a
// validated value object with a handler that reads the database directly,
// bypassing the domain aggregates.
package queries

import (
	"context"
	"database/sql"
	"time"

	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderView is the read model of an order shared by the buyer and seller
// queries. Prices are minor-unit amounts, the same representation the write
// side stores.
type OrderView struct {
	ID         kernel.UUID
	BuyerEmail string
	Status     order.Status
	TotalPrice kernel.Money
	CreatedAt  time.Time
	Address    AddressView
	Lines      []OrderLineView
}

// AddressView is the read model of a shipping address.
type AddressView struct {
	FirstName string
	LastName  string
	Address1  string
	Address2  string
	City      string
	State     string
	Zip       string
	Country   string
}

// OrderLineView is the read model of one order line.
type OrderLineView struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}

// orderViewSelect is the projection shared by every order view query; each
// handler appends its own WHERE and ORDER BY.
const orderViewSelect = `
	SELECT
		o.id,
		u.email,
		o.status,
		o.total_price,
		o.created_at,
		o.address_first_name,
		o.address_last_name,
		o.address_address1,
		o.address_address2,
		o.address_city,
		o.address_state,
		o.address_zip,
		o.address_country
	FROM orders o
	JOIN users u ON u.id = o.buyer_id
`

// scanOrderViews reads order rows into views, without lines.
func scanOrderViews(rows *sql.Rows) ([]OrderView, error) {
	views := make([]OrderView, 0)

	for rows.Next() {
		var (
			view       OrderView
			id         uuid.UUID
			status     int
			totalPrice int64
		)

		err := rows.Scan(
			&id,
			&view.BuyerEmail,
			&status,
			&totalPrice,
			&view.CreatedAt,
			&view.Address.FirstName,
			&view.Address.LastName,
			&view.Address.Address1,
			&view.Address.Address2,
			&view.Address.City,
			&view.Address.State,
			&view.Address.Zip,
			&view.Address.Country,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = orderID

		total, moneyErr := kernel.NewMoneyFromMinor(totalPrice)
		if moneyErr != nil {
			return nil, moneyErr
		}
		view.TotalPrice = total

		view.Status = order.Status(status)
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

// attachLines loads the order lines for every view in one query.
func attachLines(ctx context.Context, db *gorm.DB, views []OrderView) error {
	if len(views) == 0 {
		return nil
	}

	orderIDs := make([]uuid.UUID, 0, len(views))
	indexByID := make(map[kernel.UUID]int, len(views))
	for i, view := range views {
		orderIDs = append(orderIDs, view.ID.Bytes())
		indexByID[view.ID] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT order_id, product_id, quantity, unit_price
		FROM order_lines
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID   uuid.UUID
			productID uuid.UUID
			quantity  int
			unitPrice int64
		)

		if err = rows.Scan(&orderID, &productID, &quantity, &unitPrice); err != nil {
			return err
		}

		oID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}

		pID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return idErr
		}

		price, moneyErr := kernel.NewMoneyFromMinor(unitPrice)
		if moneyErr != nil {
			return moneyErr
		}

		index, ok := indexByID[oID]
		if !ok {
			continue
		}

		views[index].Lines = append(views[index].Lines, OrderLineView{
			ProductID: pID,
			Quantity:  quantity,
			UnitPrice: price,
			Subtotal:  price.MultiplyQty(quantity),
		})
	}

	return rows.Err()
}
