package notify

import (
	"go.uber.org/fx"

	"github.com/heavybuild/heavybuild-pro/internal/adapter/mail"
	"github.com/heavybuild/heavybuild-pro/internal/config"
)

// Module provides the email notifier.
var Module = fx.Provide(newNotifier)

func newNotifier(mailer mail.Mailer, cfg *config.Config) (Notifier, error) {
	return NewEmailNotifier(mailer, cfg.AdminEmail)
}
