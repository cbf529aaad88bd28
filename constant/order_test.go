package constant

import "testing"

func TestCanTransitionOrder(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to placed", OrderStatusPending, OrderStatusPlaced, true},
		{"placed to reserved", OrderStatusPlaced, OrderStatusReserved, true},
		{"reserved to packed", OrderStatusReserved, OrderStatusPacked, true},
		{"packed to out_for_delivery", OrderStatusPacked, OrderStatusOutForDelivery, true},
		{"out_for_delivery to delivered", OrderStatusOutForDelivery, OrderStatusDelivered, true},
		{"delivered to payment_collected", OrderStatusDelivered, OrderStatusPaymentCollected, true},
		{"same state is idempotent", OrderStatusPacked, OrderStatusPacked, true},
		{"cancel before settlement", OrderStatusOutForDelivery, OrderStatusCancelled, true},
		{"skipping a state", OrderStatusPlaced, OrderStatusPacked, false},
		{"moving backwards", OrderStatusDelivered, OrderStatusPacked, false},
		{"cancel after settlement", OrderStatusPaymentCollected, OrderStatusCancelled, false},
		{"leaving payment_collected", OrderStatusPaymentCollected, OrderStatusDelivered, false},
		{"leaving cancelled", OrderStatusCancelled, OrderStatusPlaced, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransitionOrder(tt.from, tt.to); got != tt.want {
				t.Fatalf("CanTransitionOrder(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCanTransitionVendorOrder(t *testing.T) {
	tests := []struct {
		name string
		from VendorOrderStatus
		to   VendorOrderStatus
		want bool
	}{
		{"pending to confirmed", VendorOrderStatusPending, VendorOrderStatusConfirmed, true},
		{"shipped to out_for_delivery", VendorOrderStatusShipped, VendorOrderStatusOutForDelivery, true},
		{"delivered to returned", VendorOrderStatusDelivered, VendorOrderStatusReturned, true},
		{"returned to refunded", VendorOrderStatusReturned, VendorOrderStatusRefunded, true},
		{"same state is idempotent", VendorOrderStatusShipped, VendorOrderStatusShipped, true},
		{"cancel after shipping", VendorOrderStatusShipped, VendorOrderStatusCancelled, false},
		{"skipping confirmation", VendorOrderStatusPending, VendorOrderStatusProcessing, false},
		{"leaving refunded", VendorOrderStatusRefunded, VendorOrderStatusPending, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransitionVendorOrder(tt.from, tt.to); got != tt.want {
				t.Fatalf("CanTransitionVendorOrder(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsTerminalOrderStatus(t *testing.T) {
	if !IsTerminalOrderStatus(OrderStatusPaymentCollected) {
		t.Fatal("payment_collected should be terminal")
	}
	if !IsTerminalOrderStatus(OrderStatusCancelled) {
		t.Fatal("cancelled should be terminal")
	}
	if IsTerminalOrderStatus(OrderStatusDelivered) {
		t.Fatal("delivered should not be terminal")
	}
}

func TestSummaryStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []VendorOrderStatus
		want     string
	}{
		{
			name:     "no vendor orders yet",
			statuses: nil,
			want:     SummaryPending,
		},
		{
			name:     "all delivered",
			statuses: []VendorOrderStatus{VendorOrderStatusDelivered, VendorOrderStatusDelivered},
			want:     SummaryDelivered,
		},
		{
			name:     "all cancelled",
			statuses: []VendorOrderStatus{VendorOrderStatusCancelled, VendorOrderStatusCancelled},
			want:     SummaryCancelled,
		},
		{
			name:     "one delivered one cancelled is not fully delivered",
			statuses: []VendorOrderStatus{VendorOrderStatusDelivered, VendorOrderStatusCancelled},
			want:     SummaryPending,
		},
		{
			name:     "anything moving wins over preparing",
			statuses: []VendorOrderStatus{VendorOrderStatusProcessing, VendorOrderStatusShipped},
			want:     SummaryOutForDelivery,
		},
		{
			name:     "out_for_delivery counts as moving",
			statuses: []VendorOrderStatus{VendorOrderStatusPending, VendorOrderStatusOutForDelivery},
			want:     SummaryOutForDelivery,
		},
		{
			name:     "preparing without movement",
			statuses: []VendorOrderStatus{VendorOrderStatusConfirmed, VendorOrderStatusPending},
			want:     SummaryProcessing,
		},
		{
			name:     "ready_to_ship counts as preparing",
			statuses: []VendorOrderStatus{VendorOrderStatusReadyToShip},
			want:     SummaryProcessing,
		},
		{
			name:     "all still pending",
			statuses: []VendorOrderStatus{VendorOrderStatusPending, VendorOrderStatusPending},
			want:     SummaryPending,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := SummaryStatus(tt.statuses); got != tt.want {
				t.Fatalf("SummaryStatus(%v) = %s, want %s", tt.statuses, got, tt.want)
			}
		})
	}
}
