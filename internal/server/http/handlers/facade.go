package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, email, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (model.Identity, error)
}

// OrderFacade encapsulates checkout and order management exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, *model.GatewayOrder, error)
	VerifyPayment(ctx context.Context, cb model.PaymentCallback) (*model.Order, error)
	MyOrders(ctx context.Context, userID int64) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	CancelOrder(ctx context.Context, actor model.Identity, id uuid.UUID) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error)
}

// SystemFacade exposes public configuration and readiness.
type SystemFacade interface {
	GatewayKeyID() string
	Health(ctx context.Context) error
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	OrderFacade
	SystemFacade
}
