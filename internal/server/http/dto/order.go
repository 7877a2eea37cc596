package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is a purchased line as exchanged with the storefront.
type OrderItem struct {
	Product  string          `json:"product"`
	Name     string          `json:"name"`
	Image    string          `json:"image,omitempty"`
	Quantity int             `json:"qty"`
	Price    decimal.Decimal `json:"price"`
}

// ShippingAddress is the delivery destination.
type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	OrderItems      []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
}

// VerifyPaymentRequest is what the checkout widget hands back after payment.
type VerifyPaymentRequest struct {
	GatewayOrderID   string `json:"razorpay_order_id" binding:"required"`
	GatewayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature        string `json:"razorpay_signature" binding:"required"`
	OrderID          string `json:"order_id" binding:"required"`
}

// UpdateStatusRequest carries target status for back office transition.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UserRef is the populated owner on admin listings.
type UserRef struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Email string `json:"email,omitempty"`
}

// PaymentResult mirrors gateway side payment state.
type PaymentResult struct {
	ID           string     `json:"id"`
	PaymentID    string     `json:"razorpay_payment_id,omitempty"`
	Status       string     `json:"status"`
	UpdateTime   *time.Time `json:"update_time,omitempty"`
	EmailAddress string     `json:"email_address,omitempty"`
}

// OrderResponse is the order representation returned by every order endpoint.
type OrderResponse struct {
	ID              string          `json:"id"`
	UserID          int64           `json:"userId"`
	User            *UserRef        `json:"user,omitempty"`
	OrderItems      []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	CustomerName    string          `json:"customerName,omitempty"`
	CustomerEmail   string          `json:"customerEmail,omitempty"`
	CustomerPhone   string          `json:"customerPhone,omitempty"`
	PaymentResult   PaymentResult   `json:"paymentResult"`
	Currency        string          `json:"currency"`
	TaxPrice        decimal.Decimal `json:"taxPrice"`
	ShippingPrice   decimal.Decimal `json:"shippingPrice"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	IsPaid          bool            `json:"isPaid"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	IsDelivered     bool            `json:"isDelivered"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// GatewayOrder is the payment gateway order handed to the checkout widget.
type GatewayOrder struct {
	ID       string `json:"id"`
	Entity   string `json:"entity"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrderResponse pairs stored order with its gateway counterpart.
type CreateOrderResponse struct {
	Order         OrderResponse `json:"order"`
	RazorpayOrder GatewayOrder  `json:"razorpayOrder"`
}

// VerifyPaymentResponse acknowledges a verified payment.
type VerifyPaymentResponse struct {
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}
