package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
	"github.com/heavybuild/heavybuild-pro/internal/usecase"
)

// HealthChecker reports readiness of backing storage.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// StoreFacade adapts use cases to the operations exposed over HTTP.
type StoreFacade struct {
	auth         *usecase.AuthUseCase
	orders       *usecase.OrderUseCase
	payments     *usecase.PaymentUseCase
	health       HealthChecker
	gatewayKeyID string
}

func NewStoreFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	payments *usecase.PaymentUseCase,
	health HealthChecker,
	gatewayKeyID string,
) *StoreFacade {
	return &StoreFacade{
		auth:         auth,
		orders:       orders,
		payments:     payments,
		health:       health,
		gatewayKeyID: gatewayKeyID,
	}
}

func (f *StoreFacade) Register(ctx context.Context, login, email, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, email, password)
	return token, err
}

func (f *StoreFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StoreFacade) ParseToken(token string) (model.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) CreateOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, *model.GatewayOrder, error) {
	return f.orders.Create(ctx, draft)
}

func (f *StoreFacade) VerifyPayment(ctx context.Context, cb model.PaymentCallback) (*model.Order, error) {
	return f.payments.Verify(ctx, cb)
}

func (f *StoreFacade) MyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StoreFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *StoreFacade) CancelOrder(ctx context.Context, actor model.Identity, id uuid.UUID) (*model.Order, error) {
	return f.orders.Cancel(ctx, actor, id)
}

func (f *StoreFacade) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}

// GatewayKeyID returns the public key the checkout widget is opened with.
func (f *StoreFacade) GatewayKeyID() string {
	return f.gatewayKeyID
}

func (f *StoreFacade) Health(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}

// EnsureAdmin seeds the back office account.
func (f *StoreFacade) EnsureAdmin(ctx context.Context, login, email, password string) (bool, error) {
	return f.auth.EnsureAdmin(ctx, login, email, password)
}
