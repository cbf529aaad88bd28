package model

// ProductEntity represents the product table entity. reserved_quantity is
// the authoritative count of stock promised to in-flight orders; available
// stock is always stock_quantity - reserved_quantity.
type ProductEntity struct {
	ID               uint64  `db:"id" json:"id"`
	VendorID         uint64  `db:"vendor_id" json:"vendor_id"`
	Name             string  `db:"name" json:"name"`
	Price            float64 `db:"price" json:"price"`
	StockQuantity    int64   `db:"stock_quantity" json:"stock_quantity"`
	ReservedQuantity int64   `db:"reserved_quantity" json:"reserved_quantity"`
	Active           bool    `db:"active" json:"active"`
}

// CheckoutProduct is the slice of a product the materializer needs inside
// its transaction: identity, owning vendor and the price to freeze.
type CheckoutProduct struct {
	ID       uint64  `db:"id"`
	VendorID uint64  `db:"vendor_id"`
	Name     string  `db:"name"`
	Price    float64 `db:"price"`
	Active   bool    `db:"active"`
}
