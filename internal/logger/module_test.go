package logger

import (
	"log/slog"
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/heavybuild/heavybuild-pro/internal/config"
)

func TestModuleProvidesLogger(t *testing.T) {
	var resolved *slog.Logger
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(&config.Config{LogLevel: slog.LevelDebug}),
		Module,
		fx.Populate(&resolved),
	)
	app.RequireStart()
	defer app.RequireStop()

	if resolved == nil {
		t.Fatal("expected logger to be populated")
	}
	if !resolved.Enabled(t.Context(), slog.LevelDebug) {
		t.Fatal("expected configured debug level")
	}
}
