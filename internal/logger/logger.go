package logger

import (
	"io"
	"log/slog"
	"os"

	"go.uber.org/fx/fxevent"

	"github.com/heavybuild/heavybuild-pro/internal/config"
)

const serviceName = "heavybuild-pro"

// New builds the JSON logger shared by every component.
func New(cfg *config.Config) *slog.Logger {
	return newLogger(os.Stdout, cfg.LogLevel)
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("service", serviceName))
}

// NewFxLogger routes container events through the application logger.
// Successful events are demoted to debug so startup output stays short.
func NewFxLogger(l *slog.Logger) fxevent.Logger {
	fxLogger := &fxevent.SlogLogger{Logger: l}
	fxLogger.UseLogLevel(slog.LevelDebug)
	return fxLogger
}
