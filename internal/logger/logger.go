package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//nolint:gochecknoglobals // The package intentionally maintains a single process-wide logger.
var (
	// globalMu guards access to the global logger instance.
	globalMu sync.RWMutex
	// globalLevel is the dynamically adjustable log level shared by all loggers created without an explicit level.
	globalLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	// globalLogger is the process-wide logger instance.
	globalLogger = New(globalLevel)
)

// New creates a new logger with the specified log level.
// If level is nil, the global dynamic level is used,
// which allows the verbosity to be changed at runtime via SetLevel.
func New(level zapcore.LevelEnabler, options ...zap.Option) *zap.SugaredLogger {
	if level == nil {
		level = globalLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.ConsoleSeparator = " "

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core, options...).Sugar()
}

// Logger returns the current global logger instance.
func Logger() *zap.SugaredLogger {
	globalMu.RLock()
	defer globalMu.RUnlock()

	return globalLogger
}

// SetLogger replaces the global logger instance.
func SetLogger(l *zap.SugaredLogger) {
	globalMu.Lock()
	defer globalMu.Unlock()

	globalLogger = l
}

// Level returns the current global log level.
func Level() zapcore.Level {
	return globalLevel.Level()
}

// SetLevel sets the global log level.
func SetLevel(level zapcore.Level) {
	globalLevel.SetLevel(level)
}

// IsDebugLevel reports whether debug-level logging is currently enabled.
func IsDebugLevel() bool {
	return globalLevel.Enabled(zapcore.DebugLevel)
}

// ParseLogLevel parses a textual log level into a zapcore.Level.
// It is case-insensitive and ignores surrounding whitespace.
// The second return value reports whether the input was recognized;
// unrecognized input yields zapcore.InfoLevel and false.
func ParseLogLevel(level string) (zapcore.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	case "dpanic":
		return zapcore.DPanicLevel, true
	case "panic":
		return zapcore.PanicLevel, true
	case "fatal":
		return zapcore.FatalLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}

// fromContext returns the logger associated with the given context.
// The context is currently used only as an extension point,
// the global logger is returned for all contexts.
func fromContext(_ context.Context) *zap.SugaredLogger {
	return Logger()
}

// Debug logs a message at debug level.
func Debug(ctx context.Context, args ...any) {
	fromContext(ctx).Debug(args...)
}

// Debugf logs a formatted message at debug level.
func Debugf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Debugf(format, args...)
}

// DebugKV logs a message at debug level with additional key-value pairs.
func DebugKV(ctx context.Context, message string, kvs ...any) {
	fromContext(ctx).Debugw(message, kvs...)
}

// Info logs a message at info level.
func Info(ctx context.Context, args ...any) {
	fromContext(ctx).Info(args...)
}

// Infof logs a formatted message at info level.
func Infof(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Infof(format, args...)
}

// InfoKV logs a message at info level with additional key-value pairs.
func InfoKV(ctx context.Context, message string, kvs ...any) {
	fromContext(ctx).Infow(message, kvs...)
}

// Warn logs a message at warn level.
func Warn(ctx context.Context, args ...any) {
	fromContext(ctx).Warn(args...)
}

// Warnf logs a formatted message at warn level.
func Warnf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Warnf(format, args...)
}

// WarnKV logs a message at warn level with additional key-value pairs.
func WarnKV(ctx context.Context, message string, kvs ...any) {
	fromContext(ctx).Warnw(message, kvs...)
}

// Error logs a message at error level.
func Error(ctx context.Context, args ...any) {
	fromContext(ctx).Error(args...)
}

// Errorf logs a formatted message at error level.
func Errorf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Errorf(format, args...)
}

// ErrorKV logs a message at error level with additional key-value pairs.
func ErrorKV(ctx context.Context, message string, kvs ...any) {
	fromContext(ctx).Errorw(message, kvs...)
}

// Fatal logs a message at fatal level and then calls os.Exit(1).
func Fatal(ctx context.Context, args ...any) {
	fromContext(ctx).Fatal(args...)
}

// Fatalf logs a formatted message at fatal level and then calls os.Exit(1).
func Fatalf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Fatalf(format, args...)
}

// FatalKV logs a message at fatal level with additional key-value pairs and then calls os.Exit(1).
func FatalKV(ctx context.Context, message string, kvs ...any) {
	fromContext(ctx).Fatalw(message, kvs...)
}

// Panic logs a message at panic level and then panics.
func Panic(ctx context.Context, args ...any) {
	fromContext(ctx).Panic(args...)
}

// Panicf logs a formatted message at panic level and then panics.
func Panicf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Panicf(format, args...)
}

// PanicKV logs a message at panic level with additional key-value pairs and then panics.
func PanicKV(ctx context.Context, message string, kvs ...any) {
	fromContext(ctx).Panicw(message, kvs...)
}
