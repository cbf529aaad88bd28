package constant

// OrderStatus tracks the parent order through placement, fulfillment and
// settlement. payment_collected and cancelled are terminal.
type OrderStatus string

const (
	OrderStatusPending          OrderStatus = "pending"
	OrderStatusPlaced           OrderStatus = "placed"
	OrderStatusReserved         OrderStatus = "reserved"
	OrderStatusPacked           OrderStatus = "packed"
	OrderStatusOutForDelivery   OrderStatus = "out_for_delivery"
	OrderStatusDelivered        OrderStatus = "delivered"
	OrderStatusPaymentCollected OrderStatus = "payment_collected"
	OrderStatusCancelled        OrderStatus = "cancelled"
)

// VendorOrderStatus tracks one vendor's slice of a parent order,
// independently per vendor.
type VendorOrderStatus string

const (
	VendorOrderStatusPending        VendorOrderStatus = "pending"
	VendorOrderStatusConfirmed      VendorOrderStatus = "confirmed"
	VendorOrderStatusProcessing     VendorOrderStatus = "processing"
	VendorOrderStatusReadyToShip    VendorOrderStatus = "ready_to_ship"
	VendorOrderStatusShipped        VendorOrderStatus = "shipped"
	VendorOrderStatusOutForDelivery VendorOrderStatus = "out_for_delivery"
	VendorOrderStatusDelivered      VendorOrderStatus = "delivered"
	VendorOrderStatusCancelled      VendorOrderStatus = "cancelled"
	VendorOrderStatusReturned       VendorOrderStatus = "returned"
	VendorOrderStatusRefunded       VendorOrderStatus = "refunded"
)

// orderValidNext enumerates every legal parent-order transition. cancelled
// is reachable from every state strictly before payment_collected; it is
// wired through CancelOrder so the stock release always rides the same
// transaction as the status write.
var orderValidNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending: {
		OrderStatusPlaced:    true,
		OrderStatusCancelled: true,
	},
	OrderStatusPlaced: {
		OrderStatusReserved:  true,
		OrderStatusCancelled: true,
	},
	OrderStatusReserved: {
		OrderStatusPacked:    true,
		OrderStatusCancelled: true,
	},
	OrderStatusPacked: {
		OrderStatusOutForDelivery: true,
		OrderStatusCancelled:      true,
	},
	OrderStatusOutForDelivery: {
		OrderStatusDelivered: true,
		OrderStatusCancelled: true,
	},
	OrderStatusDelivered: {
		OrderStatusPaymentCollected: true,
		OrderStatusCancelled:        true,
	},
	OrderStatusPaymentCollected: {},
	OrderStatusCancelled:        {},
}

// vendorOrderValidNext guards vendor sub-order transitions with the same
// adjacency discipline as the parent order.
var vendorOrderValidNext = map[VendorOrderStatus]map[VendorOrderStatus]bool{
	VendorOrderStatusPending: {
		VendorOrderStatusConfirmed: true,
		VendorOrderStatusCancelled: true,
	},
	VendorOrderStatusConfirmed: {
		VendorOrderStatusProcessing: true,
		VendorOrderStatusCancelled:  true,
	},
	VendorOrderStatusProcessing: {
		VendorOrderStatusReadyToShip: true,
		VendorOrderStatusCancelled:   true,
	},
	VendorOrderStatusReadyToShip: {
		VendorOrderStatusShipped:   true,
		VendorOrderStatusCancelled: true,
	},
	VendorOrderStatusShipped: {
		VendorOrderStatusOutForDelivery: true,
	},
	VendorOrderStatusOutForDelivery: {
		VendorOrderStatusDelivered: true,
	},
	VendorOrderStatusDelivered: {
		VendorOrderStatusReturned: true,
	},
	VendorOrderStatusReturned: {
		VendorOrderStatusRefunded: true,
	},
	VendorOrderStatusCancelled: {},
	VendorOrderStatusRefunded:  {},
}

// CanTransitionOrder reports whether from -> to is a legal parent-order
// transition. A same-state update is an idempotent no-op and always legal.
func CanTransitionOrder(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	return orderValidNext[from][to]
}

// CanTransitionVendorOrder reports whether from -> to is a legal vendor
// sub-order transition, with same-state updates allowed.
func CanTransitionVendorOrder(from, to VendorOrderStatus) bool {
	if from == to {
		return true
	}
	return vendorOrderValidNext[from][to]
}

// IsTerminalOrderStatus reports whether no further transition is possible.
func IsTerminalOrderStatus(s OrderStatus) bool {
	return len(orderValidNext[s]) == 0
}

// Display labels produced by SummaryStatus.
const (
	SummaryPending        = "pending"
	SummaryProcessing     = "processing"
	SummaryOutForDelivery = "out_for_delivery"
	SummaryDelivered      = "delivered"
	SummaryCancelled      = "cancelled"
)

// SummaryStatus projects the set of per-vendor statuses onto one
// parent-level display label. Display only, never authoritative.
func SummaryStatus(statuses []VendorOrderStatus) string {
	if len(statuses) == 0 {
		return SummaryPending
	}

	allDelivered, allCancelled := true, true
	anyMoving, anyPreparing := false, false
	for _, s := range statuses {
		if s != VendorOrderStatusDelivered {
			allDelivered = false
		}
		if s != VendorOrderStatusCancelled {
			allCancelled = false
		}
		switch s {
		case VendorOrderStatusShipped, VendorOrderStatusOutForDelivery:
			anyMoving = true
		case VendorOrderStatusConfirmed, VendorOrderStatusProcessing, VendorOrderStatusReadyToShip:
			anyPreparing = true
		}
	}

	switch {
	case allDelivered:
		return SummaryDelivered
	case allCancelled:
		return SummaryCancelled
	case anyMoving:
		return SummaryOutForDelivery
	case anyPreparing:
		return SummaryProcessing
	default:
		return SummaryPending
	}
}
