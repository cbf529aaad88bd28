package order

import (
	"context"
	"database/sql"
	"time"

	"github.com/campuscloset/marketplace/constant"
	"github.com/campuscloset/marketplace/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertParentOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertParentOrderTxItem) (uint64, error)
	InsertVendorOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertVendorOrderTxItem) (uint64, error)
	InsertVendorOrderItemsTx(ctx context.Context, tx *sqlx.Tx, items []model.InsertVendorOrderItemTxItem) error
	GetParentOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.ParentOrderDetail, error)
	UpdateParentStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus, riderID *uint64) error
	MarkPaymentCollectedTx(ctx context.Context, tx *sqlx.Tx, orderID, collectedBy uint64, at time.Time) error
	MarkCancelledTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, reason string) error
	GetVendorOrderTx(ctx context.Context, tx *sqlx.Tx, vendorOrderID uint64) (*model.VendorOrderDetail, error)
	UpdateVendorOrderTx(ctx context.Context, tx *sqlx.Tx, vendorOrderID uint64, req *model.VendorOrderUpdateRequest) error
	CancelVendorOrdersTx(ctx context.Context, tx *sqlx.Tx, parentOrderID uint64) error
	GetParentOrder(ctx context.Context, orderID uint64) (*model.ParentOrderDetail, error)
	ListVendorOrders(ctx context.Context, parentOrderID uint64) ([]model.VendorOrderDetail, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertParentOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertParentOrderTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO parent_order
			(order_number, user_id, status, payment_method, payment_status, total_amount,
			 delivery_hostel, delivery_room, phone, campus, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.OrderNumber, req.UserID, req.Status, req.PaymentMethod, req.PaymentStatus, req.TotalAmount,
		req.Address.Hostel, req.Address.Room, req.Address.Phone, req.Address.Campus, req.ExpiresAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertVendorOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertVendorOrderTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO vendor_order (parent_order_id, vendor_id, status, subtotal, shipping_fee) VALUES (?, ?, ?, ?, ?)",
		req.ParentOrderID, req.VendorID, req.Status, req.Subtotal, req.ShippingFee)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertVendorOrderItemsTx(ctx context.Context, tx *sqlx.Tx, items []model.InsertVendorOrderItemTxItem) error {
	q := "INSERT INTO vendor_order_item (vendor_order_id, product_id, quantity, unit_price) VALUES (?, ?, ?, ?)"
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, q, it.VendorOrderID, it.ProductID, it.Quantity, it.UnitPrice); err != nil {
			return err
		}
	}
	return nil
}

const parentOrderColumns = `id, order_number, user_id, status, payment_method, payment_status, total_amount,
	delivery_hostel, delivery_room, phone, campus, rider_id, collected_by, cancellation_reason, expires_at, created_at`

// GetParentOrderTx locks the order row so precondition checks (not yet
// collected, current status) hold until the mutation commits.
func (r *SQL) GetParentOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.ParentOrderDetail, error) {
	var detail model.ParentOrderDetail
	row := tx.QueryRowxContext(ctx, "SELECT "+parentOrderColumns+" FROM parent_order WHERE id = ? FOR UPDATE", orderID)
	if err := row.StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) UpdateParentStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus, riderID *uint64) error {
	if riderID != nil {
		_, err := tx.ExecContext(ctx, "UPDATE parent_order SET status = ?, rider_id = ? WHERE id = ?", status, *riderID, orderID)
		return err
	}
	_, err := tx.ExecContext(ctx, "UPDATE parent_order SET status = ? WHERE id = ?", status, orderID)
	return err
}

func (r *SQL) MarkPaymentCollectedTx(ctx context.Context, tx *sqlx.Tx, orderID, collectedBy uint64, at time.Time) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE parent_order SET status = ?, payment_status = ?, collected_by = ?, collected_at = ? WHERE id = ?",
		constant.OrderStatusPaymentCollected, constant.PaymentStatusCollected, collectedBy, at, orderID)
	return err
}

func (r *SQL) MarkCancelledTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, reason string) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE parent_order SET status = ?, cancellation_reason = ? WHERE id = ?",
		constant.OrderStatusCancelled, reason, orderID)
	return err
}

func (r *SQL) GetVendorOrderTx(ctx context.Context, tx *sqlx.Tx, vendorOrderID uint64) (*model.VendorOrderDetail, error) {
	var detail model.VendorOrderDetail
	row := tx.QueryRowxContext(ctx,
		"SELECT id, parent_order_id, vendor_id, status, subtotal, shipping_fee, tracking_number, tracking_url FROM vendor_order WHERE id = ? FOR UPDATE",
		vendorOrderID)
	if err := row.StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) UpdateVendorOrderTx(ctx context.Context, tx *sqlx.Tx, vendorOrderID uint64, req *model.VendorOrderUpdateRequest) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE vendor_order SET status = ?, tracking_number = COALESCE(?, tracking_number), tracking_url = COALESCE(?, tracking_url) WHERE id = ?",
		req.Status, req.TrackingNumber, req.TrackingURL, vendorOrderID)
	return err
}

func (r *SQL) CancelVendorOrdersTx(ctx context.Context, tx *sqlx.Tx, parentOrderID uint64) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE vendor_order SET status = ? WHERE parent_order_id = ?",
		constant.VendorOrderStatusCancelled, parentOrderID)
	return err
}

func (r *SQL) GetParentOrder(ctx context.Context, orderID uint64) (*model.ParentOrderDetail, error) {
	var detail model.ParentOrderDetail
	row := r.conn.QueryRowxContext(ctx, "SELECT "+parentOrderColumns+" FROM parent_order WHERE id = ?", orderID)
	if err := row.StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) ListVendorOrders(ctx context.Context, parentOrderID uint64) ([]model.VendorOrderDetail, error) {
	rows, err := r.conn.QueryxContext(ctx,
		"SELECT id, parent_order_id, vendor_id, status, subtotal, shipping_fee, tracking_number, tracking_url FROM vendor_order WHERE parent_order_id = ?",
		parentOrderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.VendorOrderDetail, 0)
	for rows.Next() {
		var vo model.VendorOrderDetail
		if err := rows.StructScan(&vo); err != nil {
			return nil, err
		}
		orders = append(orders, vo)
	}
	return orders, rows.Err()
}
