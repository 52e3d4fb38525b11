// Package vector provides a dense, order-preserving growable array of
// untyped payloads with a small-buffer optimization, and a pooling Factory
// for large numbers of short-lived vectors.
//
// # Storage
//
// A Vector starts on an inline buffer of InlineSize slots. The first growth
// past it promotes the contents to a heap slice; later growth doubles the
// capacity, or grows to twice a requested index when that is larger.
// Growth is atomic: if the capacity limit would be exceeded the operation
// fails with ErrOutOfMemory and nothing observable changes.
//
// # Destructors
//
// Each slot may carry a destructor. Del, Clear and Free run it; Remove
// hands the payload back to the caller instead.
//
// # Factory
//
// A Factory carves vectors from fixed-size pools and recycles returned
// ones. Closing the factory runs every remaining element destructor across
// all of its vectors first and only then releases their heap buffers, so a
// payload referenced from several factory vectors is never observed after
// the storage that held it was dropped.
//
// Neither Vector nor Factory is safe for concurrent use. A Vector must not
// be copied after first use.
package vector
