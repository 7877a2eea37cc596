package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/heavybuild/heavybuild-pro/internal/adapter/razorpay"
	"github.com/heavybuild/heavybuild-pro/internal/config"
	"github.com/heavybuild/heavybuild-pro/internal/domain/repository"
	"github.com/heavybuild/heavybuild-pro/internal/notify"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	newOrderUseCase,
	NewPaymentUseCase,
)

type orderParams struct {
	fx.In

	Orders   repository.OrderRepository
	Users    repository.UserRepository
	Gateway  razorpay.Client
	Notifier notify.Notifier
	Config   *config.Config
	Logger   *slog.Logger
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Users, p.Gateway, p.Notifier, p.Config.Currency, p.Logger)
}
