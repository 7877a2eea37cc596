package config

import "go.uber.org/fx"

// Module provides *Config resolved from .env, environment and flags.
var Module = fx.Provide(Load)
