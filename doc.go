// Package parsekit provides the runtime containers of a parser toolchain:
// hash tables, sparse lists, stacks, small-buffer vectors with a pooling
// factory, an integer crit-bit trie and a topological sorter.
//
// The containers live in their own packages:
//
//   - hashtable: chained hash map keyed by string or int64
//   - list: sparse position-keyed sequence over a hash table
//   - vector: dense growable array and its pooling Factory
//   - stack: LIFO over a vector
//   - inttrie: crit-bit trie keyed by uint64
//   - topo: dependency ordering with cycle detection
//
// Every container stores untyped payloads with an optional destructor that
// runs exactly once when the container drops the payload.
//
// This package ties them together: it re-exports the shared error values,
// classifies errors with KindOf, and builds factories and sorters wired to
// a Logger and MetricsCollector.
//
// # Quick Start
//
//	metrics := &parsekit.BasicMetricsCollector{}
//	f := parsekit.NewFactory(parsekit.WithMetricsCollector(metrics))
//	defer f.Close()
//
//	children, _ := f.NewVector()
//	children.Add(node, nil)
//
//	s := parsekit.NewSorter()
//	s.AddEdge(1, 0) // child 1 depends on child 0
//	if err := s.SortVector(children); parsekit.KindOf(err) == parsekit.KindCycle {
//	    // report the cycle
//	}
//
// # Concurrency
//
// Containers are not safe for concurrent use. A MetricsCollector may be
// shared.
package parsekit
