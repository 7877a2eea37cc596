package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
	"github.com/heavybuild/heavybuild-pro/internal/domain/repository"
	"github.com/heavybuild/heavybuild-pro/internal/notify"
)

// ResolveContact picks buyer contact details, preferring what was captured on the order.
// Email falls back to the account email and then to the login.
func ResolveContact(order *model.Order, user *model.User) model.Contact {
	contact := model.Contact{
		Name:  order.CustomerName,
		Email: order.CustomerEmail,
		Phone: order.CustomerPhone,
	}
	if user == nil {
		return contact
	}
	if contact.Name == "" {
		contact.Name = user.Login
	}
	if contact.Email == "" {
		contact.Email = user.Email
	}
	if contact.Email == "" {
		contact.Email = user.Login
	}
	return contact
}

// contactFor loads the order owner and resolves contact. A failed lookup degrades to order data.
func contactFor(ctx context.Context, users repository.UserRepository, logger *slog.Logger, order *model.Order) model.Contact {
	user, err := users.GetByID(ctx, order.UserID)
	if err != nil {
		logger.Warn("order owner lookup failed",
			slog.String("order_id", order.ID.String()),
			slog.Int64("user_id", order.UserID),
			slog.String("error", err.Error()),
		)
		user = nil
	}
	return ResolveContact(order, user)
}

// logNotification records the outcome of a best-effort email.
func logNotification(ctx context.Context, logger *slog.Logger, kind string, order *model.Order, err error) {
	if err == nil {
		logger.InfoContext(ctx, "notification sent", slog.String("kind", kind), slog.String("order_id", order.ID.String()))
		return
	}
	level := slog.LevelError
	if errors.Is(err, notify.ErrRecipientSkipped) {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, "notification not delivered",
		slog.String("kind", kind),
		slog.String("order_id", order.ID.String()),
		slog.String("error", err.Error()),
	)
}
