package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// UniqueUint64s returns n distinct values in [0, limit). limit must exceed n.
func (r *RNG) UniqueUint64s(n int, limit uint64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[uint64]struct{}, n)
	out := make([]uint64, 0, n)
	for len(out) < n {
		v := r.rand.Uint64() % limit
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Edge is a dependency: Node depends on DependsOn.
type Edge struct {
	Node      uint32
	DependsOn uint32
}

// RandomDAG returns edges over nodes [0, n) where each pair (i, j) with j < i
// becomes "i depends on j" with probability p. Node labels are then shuffled
// so the order is not trivially ascending.
func (r *RNG) RandomDAG(n int, p float64) []Edge {
	r.mu.Lock()
	defer r.mu.Unlock()

	perm := r.rand.Perm(n)
	var edges []Edge
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if r.rand.Float64() < p {
				edges = append(edges, Edge{Node: uint32(perm[i]), DependsOn: uint32(perm[j])}) //nolint:gosec // n is small
			}
		}
	}
	return edges
}

// RespectsEdges reports whether every edge's dependency appears before its
// node in order. Nodes missing from order fail the check.
func RespectsEdges(order []uint32, edges []Edge) bool {
	pos := make(map[uint32]int, len(order))
	for i, n := range order {
		pos[n] = i
	}
	for _, e := range edges {
		pn, ok1 := pos[e.Node]
		pd, ok2 := pos[e.DependsOn]
		if !ok1 || !ok2 || pd >= pn {
			return false
		}
	}
	return true
}

// Recorder counts destructor invocations per payload.
// Payloads must be comparable.
type Recorder struct {
	mu    sync.Mutex
	calls map[any]int
	order []any
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{calls: make(map[any]int)}
}

// Destructor records a call for v. Pass it wherever a func(any) destructor is expected.
func (r *Recorder) Destructor(v any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[v]++
	r.order = append(r.order, v)
}

// Calls returns how many times v was destroyed.
func (r *Recorder) Calls(v any) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[v]
}

// Total returns the number of destructor invocations.
func (r *Recorder) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Order returns the payloads in destruction order.
func (r *Recorder) Order() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]any(nil), r.order...)
}
