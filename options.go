package kmeans

import (
	"log/slog"

	"github.com/hupe1980/kmeans/dataset"
)

// DefaultMaxIterations is the iteration cap used when none is configured.
const DefaultMaxIterations = 20

type options struct {
	maxIterations    int
	runner           dataset.Runner
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Clusterer.
type Option func(*options)

// WithMaxIterations caps the number of data passes. Runs still moving at the
// cap keep their last centers and cost. Zero returns the initial centers
// without touching the data.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithRunner sets the execution substrate for data passes.
// If nil is passed, dataset.Parallel() is used.
//
// Example bounding concurrent partition scans:
//
//	rc := resource.NewController(resource.Config{MaxConcurrentScans: 4})
//	c, _ := kmeans.New(space.NewEuclidean(),
//	    kmeans.WithRunner(dataset.Parallel(dataset.WithScanController(rc))))
func WithRunner(r dataset.Runner) Option {
	return func(o *options) {
		if r == nil {
			r = dataset.Parallel()
		}
		o.runner = r
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kmeans.BasicMetricsCollector{}
//	c, _ := kmeans.New(space.NewEuclidean(), kmeans.WithMetricsCollector(metrics))
//	// ... cluster ...
//	stats := metrics.GetStats()
//	fmt.Printf("Passes: %d, Avg pass: %dns\n", stats.IterationCount, stats.IterationAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging of iterations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kmeans.NewJSONLogger(slog.LevelInfo)
//	c, _ := kmeans.New(space.NewEuclidean(), kmeans.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxIterations:    DefaultMaxIterations,
		runner:           dataset.Parallel(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
