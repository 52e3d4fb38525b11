// Package stack implements a LIFO stack on top of vector.Vector.
//
// Pop keeps the contract of the parser runtime it serves: it destroys the
// top element and returns the element that is on top afterwards. Take is
// the classical pop that hands the removed value back to the caller.
package stack

import (
	"fmt"

	"github.com/hupe1980/parsekit/vector"
)

// ErrOutOfMemory is returned by Push when the backing vector cannot grow.
var ErrOutOfMemory = vector.ErrOutOfMemory

// Destructor releases a payload.
type Destructor = vector.Destructor

// Stack is a LIFO of untyped payloads.
type Stack struct {
	vec *vector.Vector
	top any
}

// New creates a stack. The hint and options are passed to the backing vector.
func New(sizeHint uint32, opts ...vector.Option) *Stack {
	return &Stack{vec: vector.New(sizeHint, opts...)}
}

// Push places value on top of the stack.
func (s *Stack) Push(value any, destructor Destructor) error {
	if _, err := s.vec.Add(value, destructor); err != nil {
		return fmt.Errorf("stack push: %w", err)
	}
	s.top = value
	return nil
}

// Pop destroys the top element and returns the new top, or nil once the
// stack is empty.
func (s *Stack) Pop() any {
	n := s.vec.Size()
	if n == 0 {
		return nil
	}
	_ = s.vec.Del(n - 1)
	s.top = s.last()
	return s.top
}

// Take removes the top element without running its destructor and returns it.
func (s *Stack) Take() (any, bool) {
	n := s.vec.Size()
	if n == 0 {
		return nil, false
	}
	value, _ := s.vec.Remove(n - 1)
	s.top = s.last()
	return value, true
}

func (s *Stack) last() any {
	n := s.vec.Size()
	if n == 0 {
		return nil
	}
	v, _ := s.vec.Get(n - 1)
	return v
}

// Peek returns the top element without removing it.
func (s *Stack) Peek() any { return s.top }

// Get returns the element at position i, counted from the bottom.
func (s *Stack) Get(i uint32) (any, bool) { return s.vec.Get(i) }

// Size returns the number of elements.
func (s *Stack) Size() uint32 { return s.vec.Size() }

// Free destroys every element and releases the storage.
func (s *Stack) Free() {
	s.vec.Free()
	s.top = nil
}
