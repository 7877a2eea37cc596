package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/heavybuild/heavybuild-pro/internal/config"
	"github.com/heavybuild/heavybuild-pro/internal/domain/repository"
)

// Module provides the order store and exposes its repositories.
var Module = fx.Options(
	fx.Provide(
		newStorage,
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger.With("component", "postgres"))
}

// registerLifecycle pings the pool before the HTTP server starts and closes it last.
func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := storage.HealthCheck(ctx); err != nil {
				return fmt.Errorf("ping database: %w", err)
			}
			return nil
		},
		OnStop: func(context.Context) error {
			storage.Close()
			if storage.logger != nil {
				storage.logger.Info("database pool closed")
			}
			return nil
		},
	})
}
