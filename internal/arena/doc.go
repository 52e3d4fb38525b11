// Package arena provides a typed slice arena addressed by int32 indices.
//
// Nodes of linked structures (trie branches, graph vertices) are stored
// contiguously and refer to each other by Index rather than by pointer, so
// self-references and back edges are plain integer comparisons and the
// whole structure is released by dropping the arena once.
//
// # Safety
//
// Get returns nil for indices that were never allocated rather than
// panicking. Pointers returned by Get are valid until the next Alloc.
package arena
