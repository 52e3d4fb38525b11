package hashtable

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultSizeHint is the bucket count used when New is given a zero hint.
const DefaultSizeHint = 31

type bucket struct {
	head *Entry
}

// Table is a chained-bucket hash map.
type Table struct {
	buckets         []bucket
	count           int
	allowDuplicates bool
	copyStringKeys  bool
	logger          *slog.Logger
}

// Option configures a Table.
type Option func(*Table)

// WithAllowDuplicates controls whether Put accepts a key that is already present.
// Duplicates are rejected by default.
func WithAllowDuplicates(allow bool) Option {
	return func(t *Table) {
		t.allowDuplicates = allow
	}
}

// WithCopyStringKeys controls whether string keys are cloned into
// table-owned storage on insert. Enabled by default.
func WithCopyStringKeys(copyKeys bool) Option {
	return func(t *Table) {
		t.copyStringKeys = copyKeys
	}
}

// WithLogger sets the logger used to report rejected duplicates.
func WithLogger(l *slog.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.logger = l
		}
	}
}

// New creates a table with sizeHint buckets.
func New(sizeHint uint32, opts ...Option) *Table {
	if sizeHint == 0 {
		sizeHint = DefaultSizeHint
	}

	t := &Table{
		buckets:        make([]bucket, sizeHint),
		copyStringKeys: true,
		logger:         slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Size returns the number of live entries.
func (t *Table) Size() int {
	return t.count
}

// Buckets returns the bucket count (the modulo).
func (t *Table) Buckets() int {
	return len(t.buckets)
}

// AllowsDuplicates reports whether duplicate keys are accepted.
func (t *Table) AllowsDuplicates() bool {
	return t.allowDuplicates
}

func (t *Table) stringBucket(key string) *bucket {
	return &t.buckets[HashString(key)%uint32(len(t.buckets))]
}

func (t *Table) intBucket(key int64) *bucket {
	return &t.buckets[uint64(key)%uint64(len(t.buckets))]
}

// Put inserts value under a string key.
func (t *Table) Put(key string, value any, destructor Destructor) error {
	if len(t.buckets) == 0 {
		return ErrClosed
	}
	if t.copyStringKeys {
		key = strings.Clone(key)
	}
	return t.insert(t.stringBucket(key), &Entry{
		Key:        StringKey(key),
		Value:      value,
		Destructor: destructor,
	})
}

// PutInt inserts value under an integer key.
func (t *Table) PutInt(key int64, value any, destructor Destructor) error {
	if len(t.buckets) == 0 {
		return ErrClosed
	}
	return t.insert(t.intBucket(key), &Entry{
		Key:        IntKey(key),
		Value:      value,
		Destructor: destructor,
	})
}

// insert appends e at the chain tail, rejecting duplicates unless allowed.
func (t *Table) insert(b *bucket, e *Entry) error {
	link := &b.head
	for *link != nil {
		if !t.allowDuplicates && (*link).Key == e.Key {
			t.logger.Debug("duplicate key rejected", "key", e.Key.String())
			return fmt.Errorf("hashtable: key %q: %w", e.Key.String(), ErrDuplicateKey)
		}
		link = &(*link).next
	}
	*link = e
	t.count++
	return nil
}

// Get returns the payload stored under a string key.
func (t *Table) Get(key string) (any, bool) {
	if len(t.buckets) == 0 {
		return nil, false
	}
	return lookup(t.stringBucket(key), StringKey(key))
}

// GetInt returns the payload stored under an integer key.
func (t *Table) GetInt(key int64) (any, bool) {
	if len(t.buckets) == 0 {
		return nil, false
	}
	return lookup(t.intBucket(key), IntKey(key))
}

func lookup(b *bucket, key Key) (any, bool) {
	for e := b.head; e != nil; e = e.next {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Remove unlinks the first entry stored under a string key and returns it
// without running its destructor. Ownership of the payload passes to the caller.
func (t *Table) Remove(key string) (*Entry, bool) {
	if len(t.buckets) == 0 {
		return nil, false
	}
	return t.unlink(t.stringBucket(key), StringKey(key))
}

// RemoveInt is Remove for integer keys.
func (t *Table) RemoveInt(key int64) (*Entry, bool) {
	if len(t.buckets) == 0 {
		return nil, false
	}
	return t.unlink(t.intBucket(key), IntKey(key))
}

func (t *Table) unlink(b *bucket, key Key) (*Entry, bool) {
	for link := &b.head; *link != nil; link = &(*link).next {
		e := *link
		if e.Key == key {
			*link = e.next
			e.next = nil
			t.count--
			return e, true
		}
	}
	return nil, false
}

// Delete removes the entry stored under a string key and runs its destructor.
// It returns ErrNotFound if the key is absent.
func (t *Table) Delete(key string) error {
	e, ok := t.Remove(key)
	if !ok {
		return fmt.Errorf("hashtable: key %q: %w", key, ErrNotFound)
	}
	e.Destroy()
	return nil
}

// DeleteInt is Delete for integer keys.
func (t *Table) DeleteInt(key int64) error {
	e, ok := t.RemoveInt(key)
	if !ok {
		return fmt.Errorf("hashtable: key %d: %w", key, ErrNotFound)
	}
	e.Destroy()
	return nil
}

// Free destroys every entry, running destructors in enumeration order, and
// releases the buckets. A freed table holds nothing and rejects Put.
func (t *Table) Free() {
	for i := range t.buckets {
		e := t.buckets[i].head
		for e != nil {
			next := e.next
			e.Destroy()
			e.next = nil
			e = next
		}
		t.buckets[i].head = nil
	}
	t.buckets = nil
	t.count = 0
}
