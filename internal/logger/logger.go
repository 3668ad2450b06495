package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

var (
	// default logger instance
	defaultLogger *slog.Logger

	// environment the default logger was configured for
	environment string
)

// initializes the logger from the process environment. main reconfigures it
// once .env has been loaded.
func init() {
	Configure(os.Getenv("ENVIRONMENT"))
}

// rebuilds the default logger for env.
// production logs JSON to stdout, everything else text to stderr.
func Configure(env string) {
	var w io.Writer = os.Stderr
	if env == "production" {
		w = os.Stdout
	}

	environment = env
	defaultLogger = New(env, w)
}

// builds a logger for the given environment writing to w.
// production gets JSON at INFO, everything else human-readable text at DEBUG.
func New(env string, w io.Writer) *slog.Logger {
	if env == "production" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// returns the environment the default logger was configured for
func Environment() string {
	return environment
}

// reports whether the default logger runs in production mode
func IsProduction() bool {
	return environment == "production"
}

// returns the default logger instance
func Default() *slog.Logger {
	return defaultLogger
}

// replaces the default logger, returning the previous one
func SetDefault(l *slog.Logger) *slog.Logger {
	prev := defaultLogger
	defaultLogger = l
	return prev
}

// creates a logger with additional context fields
func With(args ...any) *slog.Logger {
	return defaultLogger.With(args...)
}

// returns the request-scoped logger from ctx, or the default one
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}

	return defaultLogger
}

// adds logger to context
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// helper type for context key
type loggerKey struct{}

// logs a debug message
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// logs an info message
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// logs a warning message
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// logs an error message
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// logs an error with context
func ErrorErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
}

// logs a fatal error with error and exits
func FatalErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}
