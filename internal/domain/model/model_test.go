package model

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"processing", OrderStatusProcessing, "Processing"},
		{"shipped", OrderStatusShipped, "Shipped"},
		{"delivered", OrderStatusDelivered, "Delivered"},
		{"cancelled", OrderStatusCancelled, "Cancelled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			parsed, err := ParseOrderStatus(tc.value)
			if err != nil || parsed != tc.got {
				t.Fatalf("expected %s to parse, got %v err=%v", tc.value, parsed, err)
			}
		})
	}

	if _, err := ParseOrderStatus("Pending"); err != ErrUnknownOrderStatus {
		t.Fatalf("expected unknown status error, got %v", err)
	}
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		amount string
		unit   currency.Unit
		want   int64
	}{
		{"2000.00", currency.INR, 200000},
		{"10.005", currency.INR, 1001},
		{"0.1", currency.USD, 10},
		{"1500", currency.JPY, 1500},
	}

	for _, tc := range cases {
		got, err := MinorUnits(decimal.RequireFromString(tc.amount), tc.unit)
		if err != nil {
			t.Fatalf("MinorUnits(%s, %s) unexpected error: %v", tc.amount, tc.unit, err)
		}
		if got != tc.want {
			t.Fatalf("MinorUnits(%s, %s) = %d, want %d", tc.amount, tc.unit, got, tc.want)
		}
	}

	if back := FromMinorUnits(200000, currency.INR); !back.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("expected 2000, got %s", back)
	}
}

func TestMinorUnitsOutOfRange(t *testing.T) {
	cases := []struct {
		amount string
		unit   currency.Unit
	}{
		{"100000000000000000", currency.INR},
		{"-100000000000000000", currency.INR},
		{"9223372036854775808", currency.JPY},
	}
	for _, tc := range cases {
		if _, err := MinorUnits(decimal.RequireFromString(tc.amount), tc.unit); !errors.Is(err, ErrAmountOutOfRange) {
			t.Fatalf("MinorUnits(%s, %s) expected out of range error, got %v", tc.amount, tc.unit, err)
		}
	}

	got, err := MinorUnits(decimal.RequireFromString("92233720368547758.07"), currency.INR)
	if err != nil || got != math.MaxInt64 {
		t.Fatalf("expected max int64 at the boundary, got %d, %v", got, err)
	}
}

func TestFitsMinorUnits(t *testing.T) {
	cases := []struct {
		amount string
		unit   currency.Unit
		want   bool
	}{
		{"1000.50", currency.INR, true},
		{"1000.505", currency.INR, false},
		{"1500", currency.JPY, true},
		{"1500.5", currency.JPY, false},
	}
	for _, c := range cases {
		if got := FitsMinorUnits(decimal.RequireFromString(c.amount), c.unit); got != c.want {
			t.Fatalf("FitsMinorUnits(%s, %s) = %v, want %v", c.amount, c.unit, got, c.want)
		}
	}
}

func TestOrderItemsTotal(t *testing.T) {
	order := Order{Items: []OrderItem{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("1000.00")},
		{Quantity: 1, UnitPrice: decimal.RequireFromString("49.50")},
	}}
	if got := order.ItemsTotal(); !got.Equal(decimal.RequireFromString("2049.50")) {
		t.Fatalf("unexpected total %s", got)
	}
}

func TestOrderMarkPaidStampsOnce(t *testing.T) {
	first := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	second := first.Add(time.Hour)

	var order Order
	order.MarkPaid("pay_1", "buyer@example.com", first)
	order.MarkPaid("pay_1", "buyer@example.com", second)

	if !order.IsPaid {
		t.Fatal("expected order to be paid")
	}
	if order.PaidAt == nil || !order.PaidAt.Equal(first) {
		t.Fatalf("expected paid at to keep first stamp, got %v", order.PaidAt)
	}
	if order.Payment.Status != PaymentStatusCompleted || order.Payment.GatewayPaymentID != "pay_1" {
		t.Fatalf("unexpected payment result %+v", order.Payment)
	}
}

func TestOrderCancel(t *testing.T) {
	order := Order{Status: OrderStatusDelivered}
	if order.Cancel() {
		t.Fatal("delivered order must not be cancelled")
	}
	if order.Status != OrderStatusDelivered {
		t.Fatalf("status changed to %s", order.Status)
	}

	order.Status = OrderStatusShipped
	if !order.Cancel() || order.Status != OrderStatusCancelled {
		t.Fatalf("expected cancelled order, got %s", order.Status)
	}
}

func TestOrderSetStatusDelivered(t *testing.T) {
	at := time.Unix(100, 0)
	order := Order{Status: OrderStatusCancelled}
	order.SetStatus(OrderStatusDelivered, at)
	if !order.IsDelivered || order.DeliveredAt == nil || !order.DeliveredAt.Equal(at) {
		t.Fatalf("expected delivery fields set, got %+v", order)
	}

	order = Order{}
	order.SetStatus(OrderStatusShipped, at)
	if order.IsDelivered || order.DeliveredAt != nil {
		t.Fatal("shipping must not mark delivery")
	}
}

func TestIdentityIsAdmin(t *testing.T) {
	if !(Identity{Role: RoleAdmin}).IsAdmin() {
		t.Fatal("expected admin")
	}
	if (Identity{Role: RoleUser}).IsAdmin() {
		t.Fatal("expected non-admin")
	}
}
