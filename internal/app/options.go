package app

import "log/slog"

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	autosave bool
	logger   *slog.Logger
}

// WithAutosave saves the board after every successful command
func WithAutosave(enabled bool) Option {
	return func(cfg *appConfig) {
		cfg.autosave = enabled
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
