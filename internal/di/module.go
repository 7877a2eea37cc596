package di

import (
	"go.uber.org/fx"

	"github.com/heavybuild/heavybuild-pro/internal/adapter/mail"
	"github.com/heavybuild/heavybuild-pro/internal/adapter/razorpay"
	"github.com/heavybuild/heavybuild-pro/internal/app"
	"github.com/heavybuild/heavybuild-pro/internal/config"
	"github.com/heavybuild/heavybuild-pro/internal/logger"
	"github.com/heavybuild/heavybuild-pro/internal/notify"
	"github.com/heavybuild/heavybuild-pro/internal/pkg/auth"
	"github.com/heavybuild/heavybuild-pro/internal/server/http/router"
	"github.com/heavybuild/heavybuild-pro/internal/storage/postgres"
	"github.com/heavybuild/heavybuild-pro/internal/usecase"
)

// Module composes the whole service graph. Extra options are appended last so
// callers can replace any component.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		razorpay.Module,
		mail.Module,
		notify.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
