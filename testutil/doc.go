// Package testutil provides testing utilities for parsekit.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic RNG, destructor call recorders and random
// dependency graph generation.
//
// # Random Keys
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.UniqueUint64s(100, 1<<40)
//
// # Destructor Accounting
//
//	rec := testutil.NewRecorder()
//	table.Put("k", payload, rec.Destructor)
//	table.Free()
//	rec.Calls(payload) // 1
//
// # Dependency Graphs
//
//	edges := rng.RandomDAG(50, 0.1)
//	ok := testutil.RespectsEdges(order, edges)
package testutil
