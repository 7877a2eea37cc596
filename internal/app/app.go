package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/heavybuild/heavybuild-pro/internal/config"
	"github.com/heavybuild/heavybuild-pro/internal/server/http/handlers"
	"github.com/heavybuild/heavybuild-pro/internal/storage/postgres"
	"github.com/heavybuild/heavybuild-pro/internal/usecase"
)

// Module wires the facade, HTTP server, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		newStoreFacade,
		func(f *StoreFacade) handlers.StoreFacade { return f },
		newHTTPServer,
	),
	fx.Invoke(registerAdminBootstrap, registerLifecycle),
)

type facadeParams struct {
	fx.In

	Auth     *usecase.AuthUseCase
	Orders   *usecase.OrderUseCase
	Payments *usecase.PaymentUseCase
	Storage  *postgres.Storage
	Config   *config.Config
}

func newStoreFacade(p facadeParams) *StoreFacade {
	return NewStoreFacade(p.Auth, p.Orders, p.Payments, p.Storage, p.Config.RazorpayKeyID)
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

// AdminSeeder creates the configured back office account.
type AdminSeeder interface {
	EnsureAdmin(ctx context.Context, login, email, password string) (bool, error)
}

type adminParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Facade    *StoreFacade
	Config    *config.Config
	Logger    *slog.Logger
}

func registerAdminBootstrap(p adminParams) {
	bootstrapAdmin(p.Lifecycle, p.Facade, p.Config, p.Logger)
}

func bootstrapAdmin(lc fx.Lifecycle, seeder AdminSeeder, cfg *config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.AdminLogin == "" || cfg.AdminPassword == "" {
				logger.Info("admin bootstrap skipped: no credentials configured")
				return nil
			}
			created, err := seeder.EnsureAdmin(ctx, cfg.AdminLogin, cfg.AdminEmail, cfg.AdminPassword)
			if err != nil {
				return err
			}
			if created {
				logger.Info("admin account created", slog.String("login", cfg.AdminLogin))
			}
			return nil
		},
	})
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting heavybuild-pro", slog.String("addr", p.Server.Addr))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("heavybuild-pro stopped")
			return nil
		},
	})
}
