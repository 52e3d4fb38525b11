// Package topo orders numbered nodes so that every node comes after the
// nodes it depends on, and reports the exact cycle when no such order exists.
//
// Nodes are dense uint32 indices, usually positions in a vector.Vector.
// AddEdge(n, d) records that n depends on d; AddEdge(n, n) only registers n.
// Sorting is a depth-first walk in ascending node order that emits nodes in
// postorder, so it runs in O(V+E).
//
//	s := topo.New()
//	s.AddEdge(3, 0) // 3 depends on 0
//	s.AddEdge(0, 1) // 0 depends on 1
//	order, err := s.SortToArray() // [1 0 2 3]
package topo
