package inventory

import (
	"context"

	"github.com/campuscloset/marketplace/constant"
	"github.com/campuscloset/marketplace/model"
	"github.com/campuscloset/marketplace/utils/errors"
	"github.com/jmoiron/sqlx"
)

// InventoryRepository is the reservation engine: it converts available
// stock into reserved stock atomically, and back again on release.
type InventoryRepository interface {
	ReserveStockTx(ctx context.Context, tx *sqlx.Tx, req *model.ReserveRequest) error
	GetReservationsByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.Reservation, error)
	ReleaseReservationsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

// ReserveStockTx holds quantity for one product with a single conditional
// update: the availability check and the reserved increment happen in the
// same statement, so two callers racing for the last unit cannot both
// succeed. Zero rows affected means the product is inactive, unknown, or
// short on stock.
func (r *SQL) ReserveStockTx(ctx context.Context, tx *sqlx.Tx, req *model.ReserveRequest) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE product SET reserved_quantity = reserved_quantity + ? WHERE id = ? AND active = 1 AND stock_quantity - reserved_quantity >= ?",
		req.Quantity, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO stock_reservation (parent_order_id, user_id, product_id, quantity, expires_at) VALUES (?, ?, ?, ?, ?)",
		req.OrderID, req.UserID, req.ProductID, req.Quantity, req.ExpiresAt)
	return err
}

func (r *SQL) GetReservationsByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.Reservation, error) {
	rows, err := tx.QueryxContext(ctx,
		"SELECT id, parent_order_id, user_id, product_id, quantity, expires_at FROM stock_reservation WHERE parent_order_id = ? FOR UPDATE",
		orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]model.Reservation, 0)
	for rows.Next() {
		var rr model.Reservation
		if err := rows.StructScan(&rr); err != nil {
			return nil, err
		}
		res = append(res, rr)
	}
	return res, rows.Err()
}

// ReleaseReservationsTx returns every hold of an order to available stock.
// The decrement is guarded so reserved_quantity can never go negative even
// if a release races a double cancellation.
func (r *SQL) ReleaseReservationsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error {
	reservations, err := r.GetReservationsByOrderTx(ctx, tx, orderID)
	if err != nil {
		return err
	}
	for _, rr := range reservations {
		if _, err := tx.ExecContext(ctx,
			"UPDATE product SET reserved_quantity = reserved_quantity - ? WHERE id = ? AND reserved_quantity >= ?",
			rr.Quantity, rr.ProductID, rr.Quantity); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM stock_reservation WHERE id = ?", rr.ID); err != nil {
			return err
		}
	}
	return nil
}
