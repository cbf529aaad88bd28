package model

import "time"

type ReserveRequest struct {
	OrderID   uint64
	UserID    uint64
	ProductID uint64
	Quantity  int
	ExpiresAt time.Time
}

// Reservation is the audit/expiry record for one hold. The product's
// reserved_quantity stays authoritative for stock accounting.
type Reservation struct {
	ID        int64     `db:"id"`
	OrderID   uint64    `db:"parent_order_id"`
	UserID    uint64    `db:"user_id"`
	ProductID uint64    `db:"product_id"`
	Quantity  int64     `db:"quantity"`
	ExpiresAt time.Time `db:"expires_at"`
}
