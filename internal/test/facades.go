package test

import (
	"context"

	"github.com/google/uuid"

	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn       func(context.Context, model.OrderDraft) (*model.Order, *model.GatewayOrder, error)
	VerifyFn       func(context.Context, model.PaymentCallback) (*model.Order, error)
	MyOrdersFn     func(context.Context, int64) ([]model.Order, error)
	AllOrdersFn    func(context.Context) ([]model.Order, error)
	CancelFn       func(context.Context, model.Identity, uuid.UUID) (*model.Order, error)
	UpdateStatusFn func(context.Context, uuid.UUID, string) (*model.Order, error)
}

// CreateOrder delegates to provided function or echoes the draft.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, *model.GatewayOrder, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, draft)
	}
	order := &model.Order{
		ID:              uuid.New(),
		UserID:          draft.UserID,
		Items:           draft.Items,
		ShippingAddress: draft.ShippingAddress,
		TotalPrice:      draft.TotalPrice,
		Status:          model.OrderStatusProcessing,
		Payment:         model.PaymentResult{GatewayOrderID: "order_stub", Status: model.PaymentStatusPending},
	}
	return order, &model.GatewayOrder{ID: "order_stub", Entity: "order", Status: "created"}, nil
}

// VerifyPayment returns paid order unless overridden.
func (s OrderFacadeStub) VerifyPayment(ctx context.Context, cb model.PaymentCallback) (*model.Order, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, cb)
	}
	return &model.Order{ID: cb.OrderID, IsPaid: true, Payment: model.PaymentResult{
		GatewayOrderID:   cb.GatewayOrderID,
		GatewayPaymentID: cb.GatewayPaymentID,
		Status:           model.PaymentStatusCompleted,
	}}, nil
}

// MyOrders returns predefined orders for given user.
func (s OrderFacadeStub) MyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.MyOrdersFn != nil {
		return s.MyOrdersFn(ctx, userID)
	}
	return []model.Order{{ID: uuid.New(), UserID: userID, Status: model.OrderStatusProcessing}}, nil
}

// AllOrders returns predefined back office listing.
func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return []model.Order{{ID: uuid.New(), UserID: 1, User: &model.UserRef{ID: 1, Login: "buyer"}}}, nil
}

// CancelOrder returns cancelled order unless overridden.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, actor model.Identity, id uuid.UUID) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, actor, id)
	}
	return &model.Order{ID: id, UserID: actor.UserID, Status: model.OrderStatusCancelled}, nil
}

// UpdateOrderStatus returns order with requested status unless overridden.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: model.OrderStatus(status)}, nil
}

// SystemFacadeStub covers configuration and health endpoints.
type SystemFacadeStub struct {
	KeyID    string
	HealthFn func(context.Context) error
}

// GatewayKeyID returns configured public key id.
func (s SystemFacadeStub) GatewayKeyID() string {
	return s.KeyID
}

// Health reports configured readiness.
func (s SystemFacadeStub) Health(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}
