package mail

import (
	"go.uber.org/fx"

	"github.com/heavybuild/heavybuild-pro/internal/config"
)

const senderName = "HeavyBuild Pro"

// Module provides SMTP mailer.
var Module = fx.Provide(newMailer)

func newMailer(cfg *config.Config) Mailer {
	return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom, senderName)
}
