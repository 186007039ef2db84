package centroid

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    loadCounter      prometheus.Counter
//	    clusterHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordLoad(count, dimension int, duration time.Duration, err error) {
//	    p.loadCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordLoad is called after each dataset load.
	// count and dimension describe the loaded dataset (zero on failure),
	// duration is the total time taken, err is nil if successful.
	RecordLoad(count, dimension int, duration time.Duration, err error)

	// RecordCluster is called after each clustering run.
	// k is the number of clusters requested, iterations is the number of
	// passes performed, duration is the total time taken, err is nil if
	// successful.
	RecordCluster(k, iterations int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordCluster(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount         atomic.Int64
	LoadErrors        atomic.Int64
	LoadTotalNanos    atomic.Int64
	VectorsLoaded     atomic.Int64
	ClusterCount      atomic.Int64
	ClusterErrors     atomic.Int64
	ClusterTotalNanos atomic.Int64
	IterationsTotal   atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(count, dimension int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.VectorsLoaded.Add(int64(count))
}

// RecordCluster implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCluster(k, iterations int, duration time.Duration, err error) {
	b.ClusterCount.Add(1)
	b.ClusterTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ClusterErrors.Add(1)
		return
	}
	b.IterationsTotal.Add(int64(iterations))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:       b.LoadCount.Load(),
		LoadErrors:      b.LoadErrors.Load(),
		LoadAvgNanos:    b.getAvgLoadNanos(),
		VectorsLoaded:   b.VectorsLoaded.Load(),
		ClusterCount:    b.ClusterCount.Load(),
		ClusterErrors:   b.ClusterErrors.Load(),
		ClusterAvgNanos: b.getAvgClusterNanos(),
		IterationsTotal: b.IterationsTotal.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgLoadNanos() int64 {
	count := b.LoadCount.Load()
	if count == 0 {
		return 0
	}
	return b.LoadTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgClusterNanos() int64 {
	count := b.ClusterCount.Load()
	if count == 0 {
		return 0
	}
	return b.ClusterTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount       int64
	LoadErrors      int64
	LoadAvgNanos    int64
	VectorsLoaded   int64
	ClusterCount    int64
	ClusterErrors   int64
	ClusterAvgNanos int64
	IterationsTotal int64
}
