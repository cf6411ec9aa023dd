package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//nolint:gochecknoglobals // The global logger is initialized once at startup and shared across the application.
var (
	// globalMutex guards access to the global logger instance.
	globalMutex sync.RWMutex
	// globalLogger is the process-wide logger instance.
	globalLogger *zap.Logger
	// globalLevel is the dynamically adjustable log level shared by the global logger.
	globalLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

//nolint:gochecknoinits // The logger must be usable before any explicit configuration happens.
func init() {
	globalLogger = New(globalLevel)
}

// New creates a new zap logger writing human-readable output to stderr.
// If level is nil, the shared dynamic level is used.
func New(level zapcore.LevelEnabler) *zap.Logger {
	if level == nil {
		level = globalLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core)
}

// Logger returns the current global logger instance.
func Logger() *zap.Logger {
	globalMutex.RLock()
	defer globalMutex.RUnlock()

	return globalLogger
}

// SetLogger replaces the global logger instance.
// It is intended to be called once during application startup.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		return
	}

	globalMutex.Lock()
	defer globalMutex.Unlock()

	globalLogger = logger
}

// Level returns the current level of the shared dynamic level.
func Level() zapcore.Level {
	return globalLevel.Level()
}

// SetLevel adjusts the shared dynamic level.
// It is intended to be called once during application startup.
func SetLevel(level zapcore.Level) {
	globalLevel.SetLevel(level)
}

// IsDebugLevel reports whether debug-level messages are currently enabled.
func IsDebugLevel() bool {
	return globalLevel.Enabled(zapcore.DebugLevel)
}

// ParseLogLevel parses a textual log level into a zapcore.Level.
// It is case-insensitive and tolerates surrounding whitespace.
// The second return value reports whether the input was recognized;
// on failure, InfoLevel is returned as a safe default.
func ParseLogLevel(level string) (zapcore.Level, bool) {
	trimmed := strings.TrimSpace(strings.ToLower(level))
	if trimmed == "" {
		return zapcore.InfoLevel, false
	}

	parsed, err := zapcore.ParseLevel(trimmed)
	if err != nil {
		return zapcore.InfoLevel, false
	}

	return parsed, true
}

// fromContext returns the sugared logger to use for the given context.
// The context is currently unused but keeps the call sites ready
// for request-scoped fields.
func fromContext(_ context.Context) *zap.SugaredLogger {
	return Logger().Sugar()
}

// Debug logs a message at debug level.
func Debug(ctx context.Context, msg string) {
	fromContext(ctx).Debug(msg)
}

// Debugf logs a formatted message at debug level.
func Debugf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Debugf(format, args...)
}

// DebugKV logs a message at debug level with structured key-value pairs.
func DebugKV(ctx context.Context, msg string, kvs ...any) {
	fromContext(ctx).Debugw(msg, kvs...)
}

// Info logs a message at info level.
func Info(ctx context.Context, msg string) {
	fromContext(ctx).Info(msg)
}

// Infof logs a formatted message at info level.
func Infof(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Infof(format, args...)
}

// InfoKV logs a message at info level with structured key-value pairs.
func InfoKV(ctx context.Context, msg string, kvs ...any) {
	fromContext(ctx).Infow(msg, kvs...)
}

// Warn logs a message at warn level.
func Warn(ctx context.Context, msg string) {
	fromContext(ctx).Warn(msg)
}

// Warnf logs a formatted message at warn level.
func Warnf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Warnf(format, args...)
}

// WarnKV logs a message at warn level with structured key-value pairs.
func WarnKV(ctx context.Context, msg string, kvs ...any) {
	fromContext(ctx).Warnw(msg, kvs...)
}

// Error logs a message at error level.
func Error(ctx context.Context, msg string) {
	fromContext(ctx).Error(msg)
}

// Errorf logs a formatted message at error level.
func Errorf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Errorf(format, args...)
}

// ErrorKV logs a message at error level with structured key-value pairs.
func ErrorKV(ctx context.Context, msg string, kvs ...any) {
	fromContext(ctx).Errorw(msg, kvs...)
}

// Fatalf logs a formatted message at fatal level and terminates the process.
func Fatalf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Fatalf(format, args...)
}
