package test

import (
	"context"
	"sync"

	"github.com/heavybuild/heavybuild-pro/internal/adapter/razorpay"
	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
)

// GatewayStub records gateway order requests.
type GatewayStub struct {
	mu       sync.Mutex
	CreateFn func(context.Context, razorpay.OrderRequest) (*model.GatewayOrder, error)
	Requests []razorpay.OrderRequest
}

// CreateOrder echoes request into a created gateway order.
func (s *GatewayStub) CreateOrder(ctx context.Context, req razorpay.OrderRequest) (*model.GatewayOrder, error) {
	s.mu.Lock()
	s.Requests = append(s.Requests, req)
	s.mu.Unlock()
	if s.CreateFn != nil {
		return s.CreateFn(ctx, req)
	}
	return &model.GatewayOrder{
		ID:        "order_stub",
		Entity:    "order",
		Amount:    req.Amount,
		AmountDue: req.Amount,
		Currency:  req.Currency,
		Receipt:   req.Receipt,
		Status:    "created",
	}, nil
}

// VerifierStub accepts exactly one signature value.
type VerifierStub struct {
	Valid string
}

// Verify compares signature with the configured valid value.
func (s VerifierStub) Verify(_, _, signature string) bool {
	return signature == s.Valid
}

// Notification is a recorded notifier call.
type Notification struct {
	Kind    string
	OrderID string
	Contact model.Contact
}

// NotifierStub records sends and can fail them.
type NotifierStub struct {
	mu   sync.Mutex
	Sent []Notification
	Err  error
}

func (s *NotifierStub) record(kind string, order *model.Order, contact model.Contact) error {
	s.mu.Lock()
	s.Sent = append(s.Sent, Notification{Kind: kind, OrderID: order.ID.String(), Contact: contact})
	s.mu.Unlock()
	return s.Err
}

// SendConfirmation records buyer confirmation.
func (s *NotifierStub) SendConfirmation(_ context.Context, order *model.Order, contact model.Contact) error {
	return s.record("confirmation", order, contact)
}

// SendAdminAlert records admin alert.
func (s *NotifierStub) SendAdminAlert(_ context.Context, order *model.Order, contact model.Contact) error {
	return s.record("admin_alert", order, contact)
}

// SendCancellation records cancellation email.
func (s *NotifierStub) SendCancellation(_ context.Context, order *model.Order, contact model.Contact) error {
	return s.record("cancellation", order, contact)
}

// Count returns number of recorded sends of kind.
func (s *NotifierStub) Count(kind string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, sent := range s.Sent {
		if sent.Kind == kind {
			n++
		}
	}
	return n
}
