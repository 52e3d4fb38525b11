// Package errs holds the error kinds shared by every container package.
//
// Each public package re-exports the sentinels it can return, so callers
// never need to import this package directly. Identity is preserved, which
// keeps errors.Is working across package boundaries.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfMemory is returned when a structure cannot grow any further.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrDuplicateKey is returned when inserting an existing key into a
	// structure that does not accept duplicates.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound is returned by mutating operations addressing an absent key or index.
	ErrNotFound = errors.New("not found")
	// ErrUnsupported is returned by operations that are intentionally not implemented.
	ErrUnsupported = errors.New("unsupported operation")
	// ErrCycle is returned when a dependency graph contains a cycle.
	ErrCycle = errors.New("dependency cycle")
	// ErrKeyOutOfRange is returned when a trie key needs more bits than the trie depth.
	ErrKeyOutOfRange = errors.New("key out of range")
	// ErrClosed is returned when using a factory after Close.
	ErrClosed = errors.New("closed")
	// ErrForeignVector is returned when returning a vector to a factory that did not make it.
	ErrForeignVector = errors.New("vector not owned by factory")
)

// Grow wraps ErrOutOfMemory with the requested and maximum capacity.
func Grow(what string, requested, limit uint64) error {
	return fmt.Errorf("%s: cannot grow to %d (limit %d): %w", what, requested, limit, ErrOutOfMemory)
}
