package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/heavybuild/heavybuild-pro/internal/adapter/razorpay"
	domainErrors "github.com/heavybuild/heavybuild-pro/internal/domain/errors"
	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
	"github.com/heavybuild/heavybuild-pro/internal/domain/repository"
	"github.com/heavybuild/heavybuild-pro/internal/notify"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	gateway  razorpay.Client
	notifier notify.Notifier
	currency currency.Unit
	logger   *slog.Logger
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	users repository.UserRepository,
	gateway razorpay.Client,
	notifier notify.Notifier,
	unit currency.Unit,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		users:    users,
		gateway:  gateway,
		notifier: notifier,
		currency: unit,
		logger:   logger,
		now:      time.Now,
	}
}

// Create opens a gateway order for the total and persists a pending order.
// Nothing is persisted when the gateway call fails.
func (u *OrderUseCase) Create(ctx context.Context, in model.OrderDraft) (*model.Order, *model.GatewayOrder, error) {
	if err := validateCreateOrder(in, u.currency); err != nil {
		return nil, nil, err
	}

	amount, err := model.MinorUnits(in.TotalPrice, u.currency)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domainErrors.ErrValidation, err)
	}

	now := u.now()
	gatewayOrder, err := u.gateway.CreateOrder(ctx, razorpay.OrderRequest{
		Amount:   amount,
		Currency: u.currency.String(),
		Receipt:  fmt.Sprintf("receipt_%d", now.UnixMilli()),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create gateway order: %w", err)
	}

	order := &model.Order{
		ID:              uuid.New(),
		UserID:          in.UserID,
		Items:           in.Items,
		ShippingAddress: in.ShippingAddress,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		Currency:        u.currency.String(),
		TotalPrice:      in.TotalPrice,
		TaxPrice:        decimal.Zero,
		ShippingPrice:   decimal.Zero,
		Payment: model.PaymentResult{
			GatewayOrderID: gatewayOrder.ID,
			Status:         model.PaymentStatusPending,
		},
		Status: model.OrderStatusProcessing,
	}
	if err := u.orders.Create(ctx, order); err != nil {
		return nil, nil, err
	}

	u.logger.Info("order created",
		slog.String("order_id", order.ID.String()),
		slog.String("gateway_order_id", gatewayOrder.ID),
		slog.Int64("amount", gatewayOrder.Amount),
	)
	return order, gatewayOrder, nil
}

// ListByUser returns orders of the user, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// ListAll returns every order with owner populated, newest first.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// Cancel cancels an order owned by actor. Admins may cancel any order.
func (u *OrderUseCase) Cancel(ctx context.Context, actor model.Identity, orderID uuid.UUID) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, domainErrors.ErrForbidden
	}
	if !order.Cancel() {
		return nil, domainErrors.ErrOrderDelivered
	}
	if err := u.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	contact := contactFor(ctx, u.users, u.logger, order)
	logNotification(ctx, u.logger, "cancellation", order, u.notifier.SendCancellation(ctx, order, contact))
	return order, nil
}

// UpdateStatus overwrites fulfilment status. Delivered also stamps delivery time.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID uuid.UUID, rawStatus string) (*model.Order, error) {
	status, err := model.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrValidation, err)
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == model.OrderStatusCancelled && status != model.OrderStatusCancelled {
		u.logger.Warn("overwriting status of cancelled order",
			slog.String("order_id", order.ID.String()),
			slog.String("status", string(status)),
		)
	}

	order.SetStatus(status, u.now())
	if err := u.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

