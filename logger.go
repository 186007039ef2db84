package centroid

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with centroid-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogLoad logs a dataset load operation.
func (l *Logger) LogLoad(count, dimension int, err error) {
	if err != nil {
		l.Error("load failed",
			"error", err,
		)
	} else {
		l.Debug("load completed",
			"count", count,
			"dimension", dimension,
		)
	}
}

// LogCluster logs a clustering run.
func (l *Logger) LogCluster(k, iterations int, converged bool, err error) {
	if err != nil {
		l.Error("clustering failed",
			"k", k,
			"error", err,
		)
	} else {
		l.Debug("clustering completed",
			"k", k,
			"iterations", iterations,
			"converged", converged,
		)
	}
}

// LogEmptyCluster logs the non-fatal diagnostic for a cluster that ended an
// iteration without members.
func (l *Logger) LogEmptyCluster(cluster, iteration int) {
	l.Warn("empty cluster",
		"cluster", cluster,
		"iteration", iteration,
	)
}
