package parsekit

import (
	"sync/atomic"

	"github.com/hupe1980/parsekit/topo"
	"github.com/hupe1980/parsekit/vector"
)

// MetricsCollector receives events from factories and sorters.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	vector.Observer
	topo.Observer
}

var (
	_ MetricsCollector = NoopMetricsCollector{}
	_ MetricsCollector = (*BasicMetricsCollector)(nil)
)

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) VectorAcquired(bool)               {}
func (NoopMetricsCollector) PoolOpened(int)                    {}
func (NoopMetricsCollector) FactoryClosed(vector.FactoryStats) {}
func (NoopMetricsCollector) SortFinished(int, bool)            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use, so one collector can serve several
// factories and sorters owned by different goroutines.
type BasicMetricsCollector struct {
	VectorsCarved   atomic.Int64
	VectorsReused   atomic.Int64
	PoolsOpened     atomic.Int64
	FactoriesClosed atomic.Int64
	SortCount       atomic.Int64
	SortCycles      atomic.Int64
	SortNodes       atomic.Int64
}

// VectorAcquired implements vector.Observer.
func (b *BasicMetricsCollector) VectorAcquired(reused bool) {
	if reused {
		b.VectorsReused.Add(1)
	} else {
		b.VectorsCarved.Add(1)
	}
}

// PoolOpened implements vector.Observer.
func (b *BasicMetricsCollector) PoolOpened(int) {
	b.PoolsOpened.Add(1)
}

// FactoryClosed implements vector.Observer.
func (b *BasicMetricsCollector) FactoryClosed(vector.FactoryStats) {
	b.FactoriesClosed.Add(1)
}

// SortFinished implements topo.Observer.
func (b *BasicMetricsCollector) SortFinished(nodes int, cycle bool) {
	b.SortCount.Add(1)
	b.SortNodes.Add(int64(nodes))
	if cycle {
		b.SortCycles.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		VectorsCarved:   b.VectorsCarved.Load(),
		VectorsReused:   b.VectorsReused.Load(),
		PoolsOpened:     b.PoolsOpened.Load(),
		FactoriesClosed: b.FactoriesClosed.Load(),
		SortCount:       b.SortCount.Load(),
		SortCycles:      b.SortCycles.Load(),
		SortNodes:       b.SortNodes.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	VectorsCarved   int64
	VectorsReused   int64
	PoolsOpened     int64
	FactoriesClosed int64
	SortCount       int64
	SortCycles      int64
	SortNodes       int64
}
