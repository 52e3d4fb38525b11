package topo

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/parsekit/internal/visited"
	"github.com/hupe1980/parsekit/vector"
)

// Observer receives sort events. BasicMetricsCollector in the root package
// implements it.
type Observer interface {
	// SortFinished is called after every SortToArray that had edges.
	SortFinished(nodes int, cycle bool)
}

type noopObserver struct{}

func (noopObserver) SortFinished(int, bool) {}

// Sorter collects dependency edges and computes a topological order.
// It is not safe for concurrent use.
type Sorter struct {
	edges     []*roaring.Bitmap // edges[n] holds the nodes n depends on; nil if none
	edgeCount int

	visited  *bitset.BitSet
	onPath   *visited.Set
	path     []uint32 // active DFS path; the cycle once one is found
	order    []uint32
	hasCycle bool

	observer Observer
	logger   *slog.Logger
}

// Option configures a Sorter.
type Option func(*Sorter)

// WithObserver sets the observer notified after each sort.
func WithObserver(obs Observer) Option {
	return func(s *Sorter) {
		if obs != nil {
			s.observer = obs
		}
	}
}

// WithLogger sets the logger for the sorter.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sorter) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates an empty sorter.
func New(opts ...Option) *Sorter {
	s := &Sorter{
		observer: noopObserver{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddEdge records that node depends on dependsOn. A self edge only makes
// sure node is part of the graph.
func (s *Sorter) AddEdge(node, dependsOn uint32) {
	limit := max(node, dependsOn)
	if int(limit) >= len(s.edges) {
		s.edges = append(s.edges, make([]*roaring.Bitmap, int(limit)+1-len(s.edges))...)
	}
	if node == dependsOn {
		return
	}

	deps := s.edges[node]
	if deps == nil {
		deps = roaring.New()
		s.edges[node] = deps
	}
	if deps.CheckedAdd(dependsOn) {
		s.edgeCount++
	}
}

// Len returns the number of nodes, which is one more than the highest node
// index passed to AddEdge.
func (s *Sorter) Len() int { return len(s.edges) }

// Edges returns the number of distinct dependency edges.
func (s *Sorter) Edges() int { return s.edgeCount }

// SortToArray returns every node in dependency order. It returns nil and no
// error when no edge was ever added, and a *CycleError when the graph has a
// cycle. Sorting again after adding edges starts from scratch.
func (s *Sorter) SortToArray() ([]uint32, error) {
	if len(s.edges) == 0 {
		return nil, nil
	}

	n := len(s.edges)
	s.reset(n)

	for v := 0; v < n; v++ {
		if !s.visited.Test(uint(v)) {
			s.dfs(uint32(v)) //nolint:gosec // v < len(edges) which is bounded by uint32 node ids
		}
		if s.hasCycle {
			break
		}
	}

	s.observer.SortFinished(n, s.hasCycle)

	if s.hasCycle {
		s.logger.Debug("dependency cycle found", "nodes", n, "cycle", s.path)
		return nil, &CycleError{Cycle: slices.Clone(s.path)}
	}
	return slices.Clone(s.order), nil
}

func (s *Sorter) reset(n int) {
	if s.visited == nil {
		s.visited = bitset.New(uint(n))
	} else {
		s.visited.ClearAll()
	}
	if s.onPath == nil {
		s.onPath = visited.New(n)
	} else {
		s.onPath.Reset()
		s.onPath.EnsureCapacity(n)
	}
	s.path = s.path[:0]
	s.order = make([]uint32, 0, n)
	s.hasCycle = false
}

func (s *Sorter) dfs(node uint32) {
	if s.hasCycle {
		return
	}

	if s.visited.Test(uint(node)) {
		if s.onPath.Visited(node) {
			// Keep only the cyclic tail of the path.
			i := slices.Index(s.path, node)
			s.path = append(s.path[:0], s.path[i:]...)
			s.hasCycle = true
		}
		return
	}

	s.path = append(s.path, node)
	s.onPath.Visit(node)
	s.visited.Set(uint(node))

	if deps := s.edges[node]; deps != nil {
		it := deps.Iterator()
		for it.HasNext() {
			s.dfs(it.Next())
			if s.hasCycle {
				return
			}
		}
	}

	s.order = append(s.order, node)
	s.path = s.path[:len(s.path)-1]
	s.onPath.Leave(node)
}

// HasCycle reports whether the last sort found a cycle.
func (s *Sorter) HasCycle() bool { return s.hasCycle }

// Cycle returns the cycle found by the last sort, or nil.
func (s *Sorter) Cycle() []uint32 {
	if !s.hasCycle {
		return nil
	}
	return slices.Clone(s.path)
}

// Order returns the order computed by the last successful sort, or nil.
func (s *Sorter) Order() []uint32 {
	if s.hasCycle || s.order == nil {
		return nil
	}
	return slices.Clone(s.order)
}

// SortVector reorders the elements of v in place so that element i ends up
// at the position of node i in the dependency order. Only nodes below
// v.Size() take part. On a cycle v is left untouched and the *CycleError is
// returned; without edges SortVector does nothing.
func (s *Sorter) SortVector(v *vector.Vector) error {
	order, err := s.SortToArray()
	if err != nil {
		return err
	}
	if order == nil {
		return nil
	}

	size := v.Size()
	if uint32(len(order)) > size { //nolint:gosec // len(order) fits uint32
		order = slices.DeleteFunc(order, func(n uint32) bool { return n >= size })
	}

	// pos[k] is the slot currently holding original element k; at[j] is the
	// original element currently in slot j.
	pos := make([]uint32, len(order))
	at := make([]uint32, len(order))
	for i := range pos {
		pos[i] = uint32(i) //nolint:gosec // bounded by size
		at[i] = uint32(i)  //nolint:gosec // bounded by size
	}

	for i, k := range order {
		slot := uint32(i) //nolint:gosec // bounded by size
		j := pos[k]
		if j == slot {
			continue
		}
		if !v.Swap(slot, j) {
			return fmt.Errorf("topo: swap %d and %d: %w", slot, j, vector.ErrNotFound)
		}
		displaced := at[slot]
		at[slot], at[j] = k, displaced
		pos[k], pos[displaced] = slot, j
	}
	return nil
}

// Free drops all edges and sort state. The sorter can be reused.
func (s *Sorter) Free() {
	s.edges = nil
	s.edgeCount = 0
	s.visited = nil
	s.onPath = nil
	s.path = nil
	s.order = nil
	s.hasCycle = false
}
