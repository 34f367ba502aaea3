package store

import "go.uber.org/zap"

// Config holds the ambient settings of a store.
type Config struct {
	Logger *zap.Logger // default: zap.NewNop()
}

// NewConfig returns a Config with defaults filled in for zero fields.
func NewConfig(logger *zap.Logger) Config {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Config{
		Logger: logger,
	}
}
