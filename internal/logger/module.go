package logger

import "go.uber.org/fx"

// Module provides the application-wide slog logger.
var Module = fx.Provide(New)
