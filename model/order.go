package model

import (
	"time"

	"github.com/campuscloset/marketplace/constant"
)

type CheckoutItemRequest struct {
	ProductID uint64 `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1,lte=20"`
}

type CheckoutRequest struct {
	Items          []CheckoutItemRequest  `json:"items" validate:"required,min=1,dive,required"`
	DeliveryHostel string                 `json:"deliveryHostel" validate:"required"`
	DeliveryRoom   string                 `json:"deliveryRoom" validate:"required"`
	Phone          string                 `json:"phone" validate:"required,len=10,numeric"`
	Campus         string                 `json:"campus"`
	PaymentMethod  constant.PaymentMethod `json:"paymentMethod" validate:"required,oneof=cod upi card"`
	CSRF           string                 `json:"csrf" validate:"required"`
}

type CheckoutResponse struct {
	OrderID     uint64  `json:"orderId"`
	OrderNumber string  `json:"orderNumber"`
	TotalAmount float64 `json:"totalAmount"`
}

// AddressSnapshot is captured at order time and never follows later edits
// to the user profile.
type AddressSnapshot struct {
	Hostel string
	Room   string
	Phone  string
	Campus string
}

type InsertParentOrderTxItem struct {
	UserID        uint64
	OrderNumber   string
	Status        constant.OrderStatus
	PaymentMethod constant.PaymentMethod
	PaymentStatus constant.PaymentStatus
	TotalAmount   float64
	Address       AddressSnapshot
	ExpiresAt     time.Time
}

type InsertVendorOrderTxItem struct {
	ParentOrderID uint64
	VendorID      uint64
	Status        constant.VendorOrderStatus
	Subtotal      float64
	ShippingFee   float64
}

type InsertVendorOrderItemTxItem struct {
	VendorOrderID uint64
	ProductID     uint64
	Quantity      int
	// UnitPrice is the catalog price frozen at materialization time.
	UnitPrice float64
}

type ParentOrderDetail struct {
	ID                 uint64                 `db:"id" json:"id"`
	OrderNumber        string                 `db:"order_number" json:"order_number"`
	UserID             uint64                 `db:"user_id" json:"user_id"`
	Status             constant.OrderStatus   `db:"status" json:"status"`
	PaymentMethod      constant.PaymentMethod `db:"payment_method" json:"payment_method"`
	PaymentStatus      constant.PaymentStatus `db:"payment_status" json:"payment_status"`
	TotalAmount        float64                `db:"total_amount" json:"total_amount"`
	DeliveryHostel     string                 `db:"delivery_hostel" json:"delivery_hostel"`
	DeliveryRoom       string                 `db:"delivery_room" json:"delivery_room"`
	Phone              string                 `db:"phone" json:"phone"`
	Campus             string                 `db:"campus" json:"campus"`
	RiderID            *uint64                `db:"rider_id" json:"rider_id,omitempty"`
	CollectedBy        *uint64                `db:"collected_by" json:"collected_by,omitempty"`
	CancellationReason *string                `db:"cancellation_reason" json:"cancellation_reason,omitempty"`
	ExpiresAt          time.Time              `db:"expires_at" json:"expires_at"`
	CreatedAt          time.Time              `db:"created_at" json:"created_at"`
}

type VendorOrderDetail struct {
	ID             uint64                     `db:"id" json:"id"`
	ParentOrderID  uint64                     `db:"parent_order_id" json:"parent_order_id"`
	VendorID       uint64                     `db:"vendor_id" json:"vendor_id"`
	Status         constant.VendorOrderStatus `db:"status" json:"status"`
	Subtotal       float64                    `db:"subtotal" json:"subtotal"`
	ShippingFee    float64                    `db:"shipping_fee" json:"shipping_fee"`
	TrackingNumber *string                    `db:"tracking_number" json:"tracking_number,omitempty"`
	TrackingURL    *string                    `db:"tracking_url" json:"tracking_url,omitempty"`
}

type VendorOrderItemDetail struct {
	ID            uint64  `db:"id" json:"id"`
	VendorOrderID uint64  `db:"vendor_order_id" json:"vendor_order_id"`
	ProductID     uint64  `db:"product_id" json:"product_id"`
	Quantity      int     `db:"quantity" json:"quantity"`
	UnitPrice     float64 `db:"unit_price" json:"unit_price"`
}

// OrderView is the owner/admin read model: the parent order with its vendor
// orders and the display-only summary projection of their statuses.
type OrderView struct {
	Order         *ParentOrderDetail  `json:"order"`
	VendorOrders  []VendorOrderDetail `json:"vendor_orders"`
	SummaryStatus string              `json:"summary_status"`
}

// AdminOrderActionRequest covers the PATCH /admin/orders/{id} body
// variants: a plain status change, collect_payment, or cancel.
type AdminOrderActionRequest struct {
	Action             string               `json:"action" validate:"omitempty,oneof=collect_payment cancel"`
	Status             constant.OrderStatus `json:"status"`
	RiderID            *uint64              `json:"riderId,omitempty"`
	CancellationReason string               `json:"cancellationReason"`
	CSRF               string               `json:"csrf" validate:"required"`
}

type VendorOrderUpdateRequest struct {
	Status         constant.VendorOrderStatus `json:"status" validate:"required"`
	TrackingNumber *string                    `json:"trackingNumber,omitempty"`
	TrackingURL    *string                    `json:"trackingUrl,omitempty"`
	CSRF           string                     `json:"csrf" validate:"required"`
}
