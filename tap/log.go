package tap

import "go.uber.org/zap"

// LogLevel defines the severity a LogCallback writes at.
type LogLevel string

const (
	// LogDebug is used for detailed tracing of selected actions.
	LogDebug LogLevel = "debug"

	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for selections that deserve attention.
	LogWarn LogLevel = "warn"

	// LogError is used for selections that indicate a failure elsewhere.
	LogError LogLevel = "error"
)

// LogCallback returns a callback that writes every selection to logger as
// one structured entry with the fields "selected", "action" and "state".
// Unknown levels are written at info.
func LogCallback[A, S, V any](logger *zap.Logger, level LogLevel, msg string) Callback[A, S, V] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(selected V, action A, state S) {
		fields := []zap.Field{
			zap.Any("selected", selected),
			zap.Any("action", action),
			zap.Any("state", state),
		}

		switch level {
		case LogDebug:
			logger.Debug(msg, fields...)
		case LogInfo:
			logger.Info(msg, fields...)
		case LogWarn:
			logger.Warn(msg, fields...)
		case LogError:
			logger.Error(msg, fields...)
		default:
			logger.Info(msg, fields...)
		}
	}
}
