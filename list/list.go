// Package list implements a sparse, position-keyed sequence on top of an
// integer-keyed hash table.
//
// Add assigns the key Size()+1. Deleting a key leaves a hole: remaining
// elements keep their keys and nothing is compacted. Use vector.Vector for
// dense, shifting semantics.
package list

import (
	"iter"

	"github.com/hupe1980/parsekit/hashtable"
)

var (
	// ErrDuplicateKey is returned by Add or Put when the key is already used.
	ErrDuplicateKey = hashtable.ErrDuplicateKey
	// ErrNotFound is returned by Delete when the key is absent.
	ErrNotFound = hashtable.ErrNotFound
)

// Destructor releases a payload.
type Destructor = hashtable.Destructor

// List is a sparse sequence keyed by int64 positions starting at 1.
type List struct {
	table *hashtable.Table
}

// New creates a list whose backing table has sizeHint buckets.
func New(sizeHint uint32, opts ...hashtable.Option) *List {
	return &List{table: hashtable.New(sizeHint, opts...)}
}

// Add stores value under key Size()+1 and returns that key.
//
// After a Delete the computed key may already be in use by a later
// element; Add then fails with ErrDuplicateKey.
func (l *List) Add(value any, destructor Destructor) (int64, error) {
	key := int64(l.table.Size()) + 1
	if err := l.table.PutInt(key, value, destructor); err != nil {
		return 0, err
	}
	return key, nil
}

// Put stores value under an explicit key.
func (l *List) Put(key int64, value any, destructor Destructor) error {
	return l.table.PutInt(key, value, destructor)
}

// Get returns the payload stored under key.
func (l *List) Get(key int64) (any, bool) {
	return l.table.GetInt(key)
}

// Delete removes key and runs its destructor. Other keys are not renumbered.
func (l *List) Delete(key int64) error {
	return l.table.DeleteInt(key)
}

// Remove removes key without running its destructor and returns the payload.
func (l *List) Remove(key int64) (any, bool) {
	e, ok := l.table.RemoveInt(key)
	if !ok {
		return nil, false
	}
	return e.Value, true
}

// Size returns the number of live elements, not the highest key.
func (l *List) Size() int {
	return l.table.Size()
}

// All iterates keys and payloads in table order.
func (l *List) All() iter.Seq2[int64, any] {
	return func(yield func(int64, any) bool) {
		for k, v := range l.table.All() {
			if !yield(k.Int, v) {
				return
			}
		}
	}
}

// Free destroys every element.
func (l *List) Free() {
	l.table.Free()
}
