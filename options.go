package centroid

import (
	"log/slog"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	onEmptyCluster   func(cluster, iteration int)
}

// Option configures load and clustering behavior.
//
// Options exist to avoid exploding the API surface; the zero configuration
// (no logging, no metrics) is always valid.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &centroid.BasicMetricsCollector{}
//	result, _ := centroid.Cluster(ds, 3, 100, centroid.WithMetricsCollector(metrics))
//	// ... use result ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.ClusterCount, stats.ClusterAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := centroid.NewJSONLogger(slog.LevelInfo)
//	ds, _ := centroid.ReadDataset(os.Stdin, centroid.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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

// WithEmptyClusterHandler subscribes fn to the non-fatal empty-cluster
// diagnostic. fn is invoked once per cluster that ends an iteration without
// members; the cluster keeps its previous centroid and the run continues
// either way.
func WithEmptyClusterHandler(fn func(cluster, iteration int)) Option {
	return func(o *options) {
		o.onEmptyCluster = fn
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	return o
}
