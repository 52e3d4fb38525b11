package vector

import (
	"fmt"
	"iter"
	"math"

	"github.com/hupe1980/parsekit/internal/errs"
)

const (
	// InlineSize is the number of slots held inside the Vector itself.
	InlineSize = 16
	// MaxCapacity is the default upper bound on the number of slots.
	MaxCapacity = math.MaxInt32
)

// Destructor releases a payload.
type Destructor = func(any)

type element struct {
	value      any
	destructor Destructor
}

func (e *element) destroy() {
	if e.destructor != nil {
		e.destructor(e.value)
	}
	*e = element{}
}

// Vector is a growable array of (payload, destructor) slots.
type Vector struct {
	elems  []element // len(elems) is the capacity; views inline or a heap slice
	count  uint32
	heap   bool
	maxCap uint32

	factory *Factory // set when the factory owns this vector
	pooled  bool     // on the factory reuse stack

	inline [InlineSize]element
}

// Option configures a Vector.
type Option func(*Vector)

// WithMaxCapacity bounds the number of slots. Growth past it fails with ErrOutOfMemory.
func WithMaxCapacity(n uint32) Option {
	return func(v *Vector) {
		if n > 0 {
			v.maxCap = n
		}
	}
}

// New creates a vector. A sizeHint above InlineSize preallocates heap storage
// of that size; otherwise the inline buffer is used.
func New(sizeHint uint32, opts ...Option) *Vector {
	v := &Vector{maxCap: MaxCapacity}
	for _, opt := range opts {
		opt(v)
	}

	if sizeHint > v.maxCap {
		sizeHint = v.maxCap
	}
	if sizeHint > InlineSize {
		v.elems = make([]element, sizeHint)
		v.heap = true
	} else {
		v.elems = v.inline[:]
	}
	return v
}

// reset puts v back into its initial inline state, dropping all slots.
func (v *Vector) reset(f *Factory, maxCap uint32) {
	v.inline = [InlineSize]element{}
	v.elems = v.inline[:]
	v.count = 0
	v.heap = false
	v.maxCap = maxCap
	v.factory = f
	v.pooled = false
}

// Size returns the number of live elements.
func (v *Vector) Size() uint32 { return v.count }

// Cap returns the number of slots available before the next growth.
func (v *Vector) Cap() uint32 {
	return min(uint32(len(v.elems)), v.maxCap) //nolint:gosec // len(elems) <= max(InlineSize, maxCap)
}

// IsInline reports whether the vector still uses its inline buffer.
func (v *Vector) IsInline() bool { return !v.heap }

// FactoryOwned reports whether a Factory manages this vector's storage.
func (v *Vector) FactoryOwned() bool { return v.factory != nil }

// grow enlarges the storage. With target == 0 or target below the current
// capacity the capacity doubles; otherwise it becomes 2*target. The result
// is clamped to maxCap as long as it still fits what is needed.
func (v *Vector) grow(target uint32) error {
	capacity := uint64(len(v.elems))

	need := capacity + 1
	if uint64(target)+1 > need {
		need = uint64(target) + 1
	}
	if need > uint64(v.maxCap) {
		return errs.Grow("vector", need, uint64(v.maxCap))
	}

	var newCap uint64
	if target == 0 || uint64(target) < capacity {
		newCap = capacity * 2
	} else {
		newCap = uint64(target) * 2
	}
	if newCap < InlineSize {
		newCap = InlineSize
	}
	if newCap > uint64(v.maxCap) {
		newCap = uint64(v.maxCap)
	}

	buf := make([]element, newCap)
	copy(buf, v.elems)
	if !v.heap {
		v.inline = [InlineSize]element{}
	}
	v.elems = buf
	v.heap = true
	return nil
}

// Add appends value and returns the new count.
func (v *Vector) Add(value any, destructor Destructor) (uint32, error) {
	if v.count >= v.maxCap {
		return v.count, errs.Grow("vector", uint64(v.count)+1, uint64(v.maxCap))
	}
	if v.count == uint32(len(v.elems)) { //nolint:gosec // bounded by maxCap
		if err := v.grow(0); err != nil {
			return v.count, err
		}
	}
	v.elems[v.count] = element{value: value, destructor: destructor}
	v.count++
	return v.count, nil
}

// Get returns the payload at index.
func (v *Vector) Get(index uint32) (any, bool) {
	if index >= v.count {
		return nil, false
	}
	return v.elems[index].value, true
}

// Set stores value at index, growing the storage if index is beyond the
// capacity. When replacing a live element and freeExisting is set, the old
// destructor runs first. Setting past the count extends it to index+1; the
// skipped slots hold nil payloads without destructors.
func (v *Vector) Set(index uint32, value any, destructor Destructor, freeExisting bool) (uint32, error) {
	if index >= v.maxCap {
		return index, errs.Grow("vector", uint64(index)+1, uint64(v.maxCap))
	}
	if uint64(index) >= uint64(len(v.elems)) {
		if err := v.grow(index); err != nil {
			return index, err
		}
	}

	slot := &v.elems[index]
	if index < v.count && freeExisting && slot.destructor != nil {
		slot.destructor(slot.value)
	}
	*slot = element{value: value, destructor: destructor}

	if index >= v.count {
		v.count = index + 1
	}
	return index, nil
}

// Del runs the destructor of the element at index and shifts later
// elements down by one.
func (v *Vector) Del(index uint32) error {
	if index >= v.count {
		return fmt.Errorf("vector: index %d (size %d): %w", index, v.count, ErrNotFound)
	}
	if d := v.elems[index].destructor; d != nil {
		d(v.elems[index].value)
	}
	v.shiftDown(index)
	return nil
}

// Remove removes the element at index without running its destructor and
// returns the payload. Ownership passes to the caller.
func (v *Vector) Remove(index uint32) (any, bool) {
	if index >= v.count {
		return nil, false
	}
	value := v.elems[index].value
	v.shiftDown(index)
	return value, true
}

func (v *Vector) shiftDown(index uint32) {
	copy(v.elems[index:v.count], v.elems[index+1:v.count])
	v.count--
	v.elems[v.count] = element{}
}

// Swap exchanges the slots at i and j. It returns false if either index is
// beyond the capacity.
func (v *Vector) Swap(i, j uint32) bool {
	if c := v.Cap(); i >= c || j >= c {
		return false
	}
	v.elems[i], v.elems[j] = v.elems[j], v.elems[i]
	return true
}

// Clear runs every live destructor and resets the count. Capacity is retained.
func (v *Vector) Clear() {
	for i := uint32(0); i < v.count; i++ {
		v.elems[i].destroy()
	}
	v.count = 0
}

// Free clears the vector and releases its heap storage. Factory-owned
// vectors keep their storage; the factory releases it on Close.
func (v *Vector) Free() {
	v.Clear()
	if v.factory == nil && v.heap {
		v.elems = v.inline[:]
		v.heap = false
	}
}

// releaseStorage drops a heap buffer without running destructors.
func (v *Vector) releaseStorage() {
	if v.heap {
		v.elems = nil
		v.heap = false
	}
}

// All iterates indices and payloads in order.
func (v *Vector) All() iter.Seq2[uint32, any] {
	return func(yield func(uint32, any) bool) {
		for i := uint32(0); i < v.count; i++ {
			if !yield(i, v.elems[i].value) {
				return
			}
		}
	}
}
