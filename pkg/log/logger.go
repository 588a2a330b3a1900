package log

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger *slog.Logger
	mu     sync.RWMutex
)

// ParseLevel converts a textual log level to a slog.Level.
// Valid values are "debug", "info", "warn" and "error"; anything else
// falls back to info so a mistyped config value never silences logs.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init configures the process logger with the given level. It may be called
// again (for example after the platform config has been loaded) and replaces
// any previously configured instance.
func Init(level string) {
	mu.Lock()
	defer mu.Unlock()

	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// Get returns the configured *slog.Logger. Logs are JSON formatted on stdout
// so the platform supervisor can capture and ship them without extra parsing.
// When Init has not been called yet a default info-level logger is created.
func Get() *slog.Logger {
	mu.RLock()
	if logger != nil {
		defer mu.RUnlock()
		return logger
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	return logger
}

// Debug logs a message at Debug level.
func Debug(msg string, args ...any) { Get().Debug(msg, args...) }

// Info logs a message at Info level.
func Info(msg string, args ...any) { Get().Info(msg, args...) }

// Warn logs a message at Warn level.
func Warn(msg string, args ...any) { Get().Warn(msg, args...) }

// Error logs a message at Error level.
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// Fatal logs a message at Error level and exits the process. Reserved for
// states the process cannot continue from (unusable platform config,
// unregistered handlers).
func Fatal(msg string, args ...any) {
	Get().Error(msg, args...)
	os.Exit(1)
}

// Fatalf is the formatted variant of Fatal.
func Fatalf(format string, args ...any) {
	Get().Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}

// Errorf logs a formatted message at Error level and returns it as an error,
// so call sites can report and propagate in one statement.
func Errorf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	Get().Error(err.Error())
	return err
}
