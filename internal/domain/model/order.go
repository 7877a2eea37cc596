package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OrderStatus describes fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

var validOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusProcessing: {},
	OrderStatusShipped:    {},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// ErrUnknownOrderStatus is returned for status values outside the enum.
var ErrUnknownOrderStatus = errors.New("unknown order status")

// ParseOrderStatus converts raw string into a known status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := validOrderStatuses[status]; ok {
		return status, nil
	}
	return "", ErrUnknownOrderStatus
}

// PaymentStatus describes gateway payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// OrderItem is a single purchased line.
type OrderItem struct {
	ProductID string
	Name      string
	ImageURL  string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal returns quantity multiplied by unit price.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShippingAddress is where the machinery is delivered.
type ShippingAddress struct {
	Line1      string
	City       string
	PostalCode string
	Country    string
}

// PaymentResult mirrors gateway side payment state.
type PaymentResult struct {
	GatewayOrderID   string
	Status           PaymentStatus
	GatewayPaymentID string
	CompletedAt      *time.Time
	PayerEmail       string
}

// UserRef is the subset of user data populated into admin listings.
type UserRef struct {
	ID    int64
	Login string
	Email string
}

// Order describes a purchase of manufacturing items.
type Order struct {
	ID              uuid.UUID
	UserID          int64
	User            *UserRef
	Items           []OrderItem
	ShippingAddress ShippingAddress
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Currency        string
	TotalPrice      decimal.Decimal
	TaxPrice        decimal.Decimal
	ShippingPrice   decimal.Decimal
	Payment         PaymentResult
	IsPaid          bool
	PaidAt          *time.Time
	IsDelivered     bool
	DeliveredAt     *time.Time
	Status          OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SumItems adds up line item subtotals.
func SumItems(items []OrderItem) decimal.Decimal {
	return lo.Reduce(items, func(total decimal.Decimal, item OrderItem, _ int) decimal.Decimal {
		return total.Add(item.Subtotal())
	}, decimal.Zero)
}

// ItemsTotal sums line item subtotals.
func (o *Order) ItemsTotal() decimal.Decimal {
	return SumItems(o.Items)
}

// MarkPaid records a verified payment. PaidAt is stamped only on the first call.
func (o *Order) MarkPaid(paymentID, payerEmail string, at time.Time) {
	if !o.IsPaid {
		o.IsPaid = true
		paidAt := at
		o.PaidAt = &paidAt
	}
	completedAt := at
	o.Payment.GatewayPaymentID = paymentID
	o.Payment.Status = PaymentStatusCompleted
	o.Payment.CompletedAt = &completedAt
	o.Payment.PayerEmail = payerEmail
}

// Cancel moves order to cancelled unless it was already delivered.
func (o *Order) Cancel() bool {
	if o.Status == OrderStatusDelivered {
		return false
	}
	o.Status = OrderStatusCancelled
	return true
}

// SetStatus overwrites status; delivery additionally stamps delivery fields.
func (o *Order) SetStatus(status OrderStatus, at time.Time) {
	o.Status = status
	if status == OrderStatusDelivered {
		deliveredAt := at
		o.IsDelivered = true
		o.DeliveredAt = &deliveredAt
	}
}

// OrderDraft carries checkout data submitted by the buyer.
type OrderDraft struct {
	UserID          int64
	Items           []OrderItem
	ShippingAddress ShippingAddress
	TotalPrice      decimal.Decimal
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
}

// PaymentCallback is what checkout returns after the buyer pays.
type PaymentCallback struct {
	OrderID          uuid.UUID
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}
