package internal

import "go.uber.org/zap"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	logger *zap.Logger
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithLogger replaces the logger built from the configured level.
func WithLogger(logger *zap.Logger) Option {
	return func(a *application) {
		a.logger = logger
	}
}
