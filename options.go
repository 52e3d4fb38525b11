package parsekit

import (
	"github.com/hupe1980/parsekit/hashtable"
	"github.com/hupe1980/parsekit/inttrie"
	"github.com/hupe1980/parsekit/topo"
	"github.com/hupe1980/parsekit/vector"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	poolSize         int
	maxPools         int
}

// Option configures the constructors of this package, which build the
// container types with a shared logger and metrics collector.
type Option func(*options)

// WithMetricsCollector sets the collector notified by factories and sorters.
// If nil is passed, a NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithPoolSize sets the number of vectors per factory pool.
func WithPoolSize(n int) Option {
	return func(o *options) {
		o.poolSize = n
	}
}

// WithMaxPools limits the number of pools a factory may open. Zero means unlimited.
func WithMaxPools(n int) Option {
	return func(o *options) {
		o.maxPools = n
	}
}

func applyOptions(opts []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		poolSize:         vector.PoolSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewFactory creates a vector factory reporting to the configured logger
// and metrics collector.
func NewFactory(opts ...Option) *vector.Factory {
	o := applyOptions(opts)
	return vector.NewFactory(
		vector.WithPoolSize(o.poolSize),
		vector.WithMaxPools(o.maxPools),
		vector.WithObserver(o.metricsCollector),
		vector.WithLogger(o.logger.Logger),
	)
}

// NewSorter creates a topological sorter reporting to the configured logger
// and metrics collector.
func NewSorter(opts ...Option) *topo.Sorter {
	o := applyOptions(opts)
	return topo.New(
		topo.WithObserver(o.metricsCollector),
		topo.WithLogger(o.logger.Logger),
	)
}

// NewTable creates a hash table logging to the configured logger.
func NewTable(sizeHint uint32, allowDuplicates bool, opts ...Option) *hashtable.Table {
	o := applyOptions(opts)
	return hashtable.New(sizeHint,
		hashtable.WithAllowDuplicates(allowDuplicates),
		hashtable.WithLogger(o.logger.Logger),
	)
}

// NewTrie creates an integer trie logging to the configured logger.
func NewTrie(depth uint32, allowDuplicates bool, opts ...Option) *inttrie.Trie {
	o := applyOptions(opts)
	return inttrie.New(depth,
		inttrie.WithAllowDuplicates(allowDuplicates),
		inttrie.WithLogger(o.logger.Logger),
	)
}
