package arena

import (
	"math"

	"github.com/hupe1980/parsekit/internal/errs"
)

// Index addresses an element of an Arena.
type Index int32

// Nil is the index that never refers to an element.
const Nil Index = -1

// MaxLen is the largest number of elements an arena can hold.
const MaxLen = math.MaxInt32

// Arena holds values of T packed in one slice. It is not safe for concurrent use.
type Arena[T any] struct {
	items []T
}

// New returns an arena with room for sizeHint elements before it reallocates.
func New[T any](sizeHint int) *Arena[T] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Arena[T]{items: make([]T, 0, sizeHint)}
}

// Alloc appends v and returns its index.
func (a *Arena[T]) Alloc(v T) (Index, error) {
	if len(a.items) >= MaxLen {
		return Nil, errs.Grow("arena", uint64(len(a.items))+1, MaxLen)
	}
	a.items = append(a.items, v)
	return Index(len(a.items) - 1), nil
}

// Get returns a pointer to the element at i, or nil if i is out of range.
func (a *Arena[T]) Get(i Index) *T {
	if i < 0 || int(i) >= len(a.items) {
		return nil
	}
	return &a.items[i]
}

// At returns a pointer to the element at i. It panics if i is out of range;
// use it only with indices produced by Alloc.
func (a *Arena[T]) At(i Index) *T {
	return &a.items[i]
}

// Len returns the number of allocated elements.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// Reset drops every element but keeps the backing storage.
func (a *Arena[T]) Reset() {
	clear(a.items)
	a.items = a.items[:0]
}

// Free drops every element and the backing storage.
func (a *Arena[T]) Free() {
	a.items = nil
}
