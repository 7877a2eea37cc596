package razorpay

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/heavybuild/heavybuild-pro/internal/config"
)

// Module exposes gateway client and signature verifier to fx graph.
var Module = fx.Provide(newClient, newVerifier)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.RazorpayBaseURL, p.Config.RazorpayKeyID, p.Config.RazorpayKeySecret, p.Logger)
}

func newVerifier(cfg *config.Config) Verifier {
	return NewSignatureVerifier(cfg.RazorpayKeySecret)
}
