package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heavybuild/heavybuild-pro/internal/adapter/razorpay"
	domainErrors "github.com/heavybuild/heavybuild-pro/internal/domain/errors"
	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
	"github.com/heavybuild/heavybuild-pro/internal/domain/repository"
	"github.com/heavybuild/heavybuild-pro/internal/notify"
)

// PaymentUseCase confirms gateway payments and notifies parties.
type PaymentUseCase struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	verifier razorpay.Verifier
	notifier notify.Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(
	orders repository.OrderRepository,
	users repository.UserRepository,
	verifier razorpay.Verifier,
	notifier notify.Notifier,
	logger *slog.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		orders:   orders,
		users:    users,
		verifier: verifier,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Verify checks the gateway signature and marks the order paid.
// Emails are best-effort and never change the result.
func (u *PaymentUseCase) Verify(ctx context.Context, in model.PaymentCallback) (*model.Order, error) {
	if in.OrderID == uuid.Nil || strings.TrimSpace(in.GatewayOrderID) == "" || strings.TrimSpace(in.GatewayPaymentID) == "" || in.Signature == "" {
		return nil, fmt.Errorf("%w: order, gateway order, payment and signature are required", domainErrors.ErrValidation)
	}
	if !u.verifier.Verify(in.GatewayOrderID, in.GatewayPaymentID, in.Signature) {
		u.logger.Warn("payment signature mismatch",
			slog.String("order_id", in.OrderID.String()),
			slog.String("gateway_order_id", in.GatewayOrderID),
		)
		return nil, domainErrors.ErrSignatureMismatch
	}

	order, err := u.orders.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if order.Payment.GatewayOrderID != in.GatewayOrderID {
		u.logger.WarnContext(ctx, "payment for another gateway order",
			slog.String("order_id", order.ID.String()),
			slog.String("gateway_order_id", in.GatewayOrderID),
			slog.String("expected_gateway_order_id", order.Payment.GatewayOrderID),
		)
		return nil, domainErrors.ErrSignatureMismatch
	}

	contact := contactFor(ctx, u.users, u.logger, order)
	order.MarkPaid(in.GatewayPaymentID, contact.Email, u.now())
	if err := u.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	u.logger.Info("payment verified",
		slog.String("order_id", order.ID.String()),
		slog.String("payment_id", in.GatewayPaymentID),
	)

	logNotification(ctx, u.logger, "confirmation", order, u.notifier.SendConfirmation(ctx, order, contact))
	logNotification(ctx, u.logger, "admin_alert", order, u.notifier.SendAdminAlert(ctx, order, contact))
	return order, nil
}
