package kmeans

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with clustering-specific events.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithRun adds a run field to the logger.
func (l *Logger) WithRun(run int) *Logger {
	return &Logger{
		Logger: l.Logger.With("run", run),
	}
}

// LogIteration logs the state of the active runs after an iteration.
// centers and distortion are indexed like runs.
func (l *Logger) LogIteration(ctx context.Context, iteration int, runs []int, centers []int, distortion []float64) {
	l.InfoContext(ctx, "iteration completed",
		"iteration", iteration,
		"runs", runs,
		"centers", centers,
		"distortion", distortion,
	)
}

// LogRunConverged logs that a run stopped moving.
func (l *Logger) LogRunConverged(ctx context.Context, run, iteration int, cost float64) {
	l.InfoContext(ctx, "run converged",
		"run", run,
		"iteration", iteration,
		"cost", cost,
	)
}

// LogClusterDropped logs clusters removed from a run because they attracted no points.
func (l *Logger) LogClusterDropped(ctx context.Context, run, iteration, dropped, remaining int) {
	l.DebugContext(ctx, "empty clusters dropped",
		"run", run,
		"iteration", iteration,
		"dropped", dropped,
		"remaining", remaining,
	)
}

// LogRunDegenerate logs a run that lost all of its centers.
func (l *Logger) LogRunDegenerate(ctx context.Context, run, iteration int) {
	l.WarnContext(ctx, "run lost all centers",
		"run", run,
		"iteration", iteration,
	)
}

// LogResult logs the outcome of a clustering call.
func (l *Logger) LogResult(ctx context.Context, run, k, iterations int, cost float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering failed",
			"iterations", iterations,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "clustering completed",
			"run", run,
			"k", k,
			"iterations", iterations,
			"cost", cost,
		)
	}
}
