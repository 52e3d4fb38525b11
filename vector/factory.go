package vector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hupe1980/parsekit/internal/container"
)

// PoolSize is the number of vectors carved from each factory pool.
const PoolSize = 256

// Observer receives factory events. BasicMetricsCollector in the root
// package implements it.
type Observer interface {
	// VectorAcquired is called for every NewVector; reused reports whether the
	// vector came from the reuse stack rather than a fresh pool slot.
	VectorAcquired(reused bool)
	// PoolOpened is called when a new pool is opened; pools is the new total.
	PoolOpened(pools int)
	// FactoryClosed is called once from Close.
	FactoryClosed(stats FactoryStats)
}

type noopObserver struct{}

func (noopObserver) VectorAcquired(bool)        {}
func (noopObserver) PoolOpened(int)             {}
func (noopObserver) FactoryClosed(FactoryStats) {}

// FactoryStats describes the pools of a Factory.
type FactoryStats struct {
	Pools     int // pools opened
	Carved    int // vectors carved from pools
	Reused    int // NewVector calls served from the reuse stack
	Returned  int // ReturnVector calls
	Available int // vectors waiting on the reuse stack
}

// Factory is a pooling allocator for short-lived vectors.
type Factory struct {
	pools    *container.Segmented[Vector]
	free     *Vector // reuse stack of *Vector
	maxCap   uint32
	closed   bool
	reused   int
	returned int

	observer Observer
	logger   *slog.Logger
}

// FactoryOption configures a Factory.
type FactoryOption func(*factoryOptions)

type factoryOptions struct {
	poolSize int
	maxPools int
	maxCap   uint32
	observer Observer
	logger   *slog.Logger
}

// WithPoolSize sets the number of vectors per pool. Defaults to PoolSize.
func WithPoolSize(n int) FactoryOption {
	return func(o *factoryOptions) {
		o.poolSize = n
	}
}

// WithMaxPools limits the number of pools. NewVector fails with
// ErrOutOfMemory once the limit is reached and nothing can be reused.
// Zero means unlimited.
func WithMaxPools(n int) FactoryOption {
	return func(o *factoryOptions) {
		o.maxPools = n
	}
}

// WithVectorMaxCapacity bounds the capacity of every vector the factory makes.
func WithVectorMaxCapacity(n uint32) FactoryOption {
	return func(o *factoryOptions) {
		if n > 0 {
			o.maxCap = n
		}
	}
}

// WithObserver sets the observer notified of factory events.
func WithObserver(obs Observer) FactoryOption {
	return func(o *factoryOptions) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithLogger sets the logger for the factory.
func WithLogger(l *slog.Logger) FactoryOption {
	return func(o *factoryOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewFactory creates a factory with no pools opened yet.
func NewFactory(opts ...FactoryOption) *Factory {
	o := factoryOptions{
		poolSize: PoolSize,
		maxCap:   MaxCapacity,
		observer: noopObserver{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Factory{
		pools:    container.NewSegmented[Vector](o.poolSize, o.maxPools),
		free:     New(InlineSize),
		maxCap:   o.maxCap,
		observer: o.observer,
		logger:   o.logger,
	}
}

// NewVector returns an empty factory-owned vector, reusing a returned one
// when available.
func (f *Factory) NewVector() (*Vector, error) {
	if f.closed {
		return nil, ErrClosed
	}

	if n := f.free.Size(); n > 0 {
		x, _ := f.free.Remove(n - 1)
		v := x.(*Vector)
		v.pooled = false
		f.reused++
		f.observer.VectorAcquired(true)
		return v, nil
	}

	v, opened, err := f.pools.Carve()
	if err != nil {
		return nil, fmt.Errorf("vector factory: %w", err)
	}
	if opened {
		pools := f.pools.Segments()
		f.observer.PoolOpened(pools)
		f.logger.Debug("vector pool opened", "pools", pools, "pool_size", f.pools.SegmentSize())
	}

	v.reset(f, f.maxCap)
	f.observer.VectorAcquired(false)
	return v, nil
}

// ReturnVector clears v, running destructors of its live elements, and puts
// it on the reuse stack. Returning a vector twice is a no-op.
func (f *Factory) ReturnVector(v *Vector) error {
	if f.closed {
		return ErrClosed
	}
	if v == nil || v.factory != f {
		return ErrForeignVector
	}
	if v.pooled {
		return nil
	}

	v.Clear()
	if _, err := f.free.Add(v, nil); err != nil {
		return fmt.Errorf("vector factory: %w", err)
	}
	v.pooled = true
	f.returned++
	return nil
}

// Stats returns a snapshot of the factory counters.
func (f *Factory) Stats() FactoryStats {
	return FactoryStats{
		Pools:     f.pools.Segments(),
		Carved:    f.pools.Len(),
		Reused:    f.reused,
		Returned:  f.returned,
		Available: int(f.free.Size()),
	}
}

// Close tears the factory down in two phases: first every carved vector
// runs its element destructors, then every heap-promoted buffer is
// released. The pools and the reuse stack are dropped last. Closing twice
// is a no-op; vectors obtained from the factory must not be used afterwards.
func (f *Factory) Close() {
	if f.closed {
		return
	}
	stats := f.Stats()

	f.pools.Each(func(v *Vector) bool {
		v.Clear()
		return true
	})

	promoted := 0
	f.pools.Each(func(v *Vector) bool {
		if v.heap {
			promoted++
		}
		v.releaseStorage()
		v.factory = nil
		return true
	})

	f.pools.Free()
	f.free.Free()
	f.closed = true

	f.observer.FactoryClosed(stats)
	f.logger.LogAttrs(context.Background(), slog.LevelDebug, "vector factory closed",
		slog.Int("pools", stats.Pools),
		slog.Int("carved", stats.Carved),
		slog.Int("reused", stats.Reused),
		slog.Int("promoted", promoted),
	)
}
