package vector

import "github.com/hupe1980/parsekit/internal/errs"

var (
	// ErrOutOfMemory is returned when growth would exceed the capacity or pool limit.
	ErrOutOfMemory = errs.ErrOutOfMemory
	// ErrNotFound is returned by Del for an index outside the live range.
	ErrNotFound = errs.ErrNotFound
	// ErrClosed is returned by a Factory after Close.
	ErrClosed = errs.ErrClosed
	// ErrForeignVector is returned when returning a vector to a factory that did not make it.
	ErrForeignVector = errs.ErrForeignVector
)
