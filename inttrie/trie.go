package inttrie

import (
	"fmt"
	"log/slog"

	"github.com/hupe1980/parsekit/internal/arena"
	"github.com/hupe1980/parsekit/internal/errs"
)

// MaxDepth is the largest bit number a trie can test.
const MaxDepth = 63

var (
	// ErrDuplicateKey is returned by Add when the key exists and duplicates are disallowed.
	ErrDuplicateKey = errs.ErrDuplicateKey
	// ErrKeyOutOfRange is returned by Add for keys that need more bits than the trie depth.
	ErrKeyOutOfRange = errs.ErrKeyOutOfRange
	// ErrUnsupported is returned by Del.
	ErrUnsupported = errs.ErrUnsupported
	// ErrOutOfMemory is returned when the node arena is exhausted.
	ErrOutOfMemory = errs.ErrOutOfMemory
)

// Destructor releases a pointer payload.
type Destructor = func(any)

// EntryType tags the active payload field of an Entry.
type EntryType uint8

const (
	// Pointer marks an entry whose payload is Ptr.
	Pointer EntryType = iota
	// Int marks an entry whose payload is Int.
	Int
)

// Entry is one payload stored under a key.
type Entry struct {
	Type       EntryType
	Ptr        any
	Int        int64
	Destructor Destructor // run on Free for Pointer entries only
}

func (e *Entry) destroy() {
	if e.Type == Pointer && e.Destructor != nil {
		e.Destructor(e.Ptr)
	}
	*e = Entry{}
}

type node struct {
	bitNum  uint32
	key     uint64
	left    arena.Index
	right   arena.Index
	entries []Entry
}

const root arena.Index = 0

// Trie is a crit-bit trie of uint64 keys.
type Trie struct {
	nodes     *arena.Arena[node]
	depth     uint32
	count     int
	allowDups bool
	logger    *slog.Logger
}

// Option configures a Trie.
type Option func(*Trie)

// WithAllowDuplicates controls whether Add appends to an existing key.
// Duplicates are rejected by default.
func WithAllowDuplicates(allow bool) Option {
	return func(t *Trie) {
		t.allowDups = allow
	}
}

// WithLogger sets the logger for the trie.
func WithLogger(l *slog.Logger) Option {
	return func(t *Trie) {
		if l != nil {
			t.logger = l
		}
	}
}

// New creates an empty trie testing bits depth..0. Depth is clamped to MaxDepth.
func New(depth uint32, opts ...Option) *Trie {
	if depth > MaxDepth {
		depth = MaxDepth
	}

	t := &Trie{
		depth:  depth,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.init()
	return t
}

func (t *Trie) init() {
	t.nodes = arena.New[node](int(t.depth) + 1)
	// The root loops back to itself on both sides.
	_, _ = t.nodes.Alloc(node{bitNum: t.depth, left: root, right: root})
	t.count = 0
}

// Depth returns the bit number tested at the root.
func (t *Trie) Depth() uint32 { return t.depth }

// Len returns the number of stored entries, duplicates included.
func (t *Trie) Len() int { return t.count }

func (t *Trie) inRange(key uint64) bool {
	return key>>t.depth == 0
}

// child follows the edge of n selected by the bit of key at n.bitNum.
func child(n *node, key uint64) arena.Index {
	if key&bitMask[n.bitNum] != 0 {
		return n.right
	}
	return n.left
}

// search descends along true edges and returns the node reached through the
// first back pointer: the only node that can hold key.
func (t *Trie) search(key uint64) arena.Index {
	this := t.nodes.At(root)
	next := this.left
	for this.bitNum > t.nodes.At(next).bitNum {
		this = t.nodes.At(next)
		next = child(this, key)
	}
	return next
}

// Get returns the entries stored under key in insertion order. The returned
// slice must not be modified.
func (t *Trie) Get(key uint64) ([]Entry, bool) {
	if t.count == 0 || !t.inRange(key) {
		return nil, false
	}
	n := t.nodes.At(t.search(key))
	if n.key != key || len(n.entries) == 0 {
		return nil, false
	}
	return n.entries[:len(n.entries):len(n.entries)], true
}

// AddPointer stores a pointer payload with an optional destructor.
func (t *Trie) AddPointer(key uint64, value any, destructor Destructor) error {
	return t.Add(key, Entry{Type: Pointer, Ptr: value, Destructor: destructor})
}

// AddInt stores an integer payload.
func (t *Trie) AddInt(key uint64, value int64) error {
	return t.Add(key, Entry{Type: Int, Int: value})
}

// Add stores e under key. An existing key gets e appended to its entries if
// duplicates are allowed and is rejected with ErrDuplicateKey otherwise.
func (t *Trie) Add(key uint64, e Entry) error {
	if !t.inRange(key) {
		return fmt.Errorf("inttrie: key %d exceeds depth %d: %w", key, t.depth, ErrKeyOutOfRange)
	}

	hit := t.nodes.At(t.search(key))
	if hit.key == key {
		// Only the root can match with no entries: key 0 seen for the first time.
		if len(hit.entries) > 0 && !t.allowDups {
			t.logger.Debug("duplicate key rejected", "key", key)
			return fmt.Errorf("inttrie: key %d: %w", key, ErrDuplicateKey)
		}
		hit.entries = append(hit.entries, e)
		t.count++
		return nil
	}

	bit := highestBit(key ^ hit.key)

	// Find the splice point: stop at a back pointer or at the first node that
	// tests a bit at or below the differing one.
	parent := root
	ent := t.nodes.At(root).left
	for {
		p, n := t.nodes.At(parent), t.nodes.At(ent)
		if p.bitNum <= n.bitNum || n.bitNum <= bit {
			break
		}
		parent = ent
		ent = child(n, key)
	}

	idx, err := t.nodes.Alloc(node{bitNum: bit, key: key, entries: []Entry{e}})
	if err != nil {
		return fmt.Errorf("inttrie: %w", err)
	}

	n := t.nodes.At(idx)
	if key&bitMask[bit] != 0 {
		n.left, n.right = ent, idx
	} else {
		n.left, n.right = idx, ent
	}

	p := t.nodes.At(parent)
	if key&bitMask[p.bitNum] != 0 {
		p.right = idx
	} else {
		p.left = idx
	}

	t.count++
	return nil
}

// Del is not supported and always returns ErrUnsupported.
func (t *Trie) Del(key uint64) error {
	return fmt.Errorf("inttrie: delete key %d: %w", key, ErrUnsupported)
}

// Walk calls fn for every stored key with its entries, depth first along
// true edges, until fn returns false.
func (t *Trie) Walk(fn func(key uint64, entries []Entry) bool) {
	if t.count == 0 {
		return
	}
	t.walk(root, fn)
}

func (t *Trie) walk(i arena.Index, fn func(uint64, []Entry) bool) bool {
	n := t.nodes.At(i)
	if len(n.entries) > 0 && !fn(n.key, n.entries[:len(n.entries):len(n.entries)]) {
		return false
	}
	if n.bitNum > t.nodes.At(n.left).bitNum && !t.walk(n.left, fn) {
		return false
	}
	if n.bitNum > t.nodes.At(n.right).bitNum && !t.walk(n.right, fn) {
		return false
	}
	return true
}

// Free releases every node depth first, destroying child subtrees before a
// node's own entries. Destructors run for Pointer entries only. The trie is
// empty afterwards and can be reused.
func (t *Trie) Free() {
	t.free(root)
	t.nodes.Free()
	t.init()
}

func (t *Trie) free(i arena.Index) {
	n := t.nodes.At(i)
	if n.bitNum > t.nodes.At(n.left).bitNum {
		t.free(n.left)
	}
	if n.bitNum > t.nodes.At(n.right).bitNum {
		t.free(n.right)
	}
	for j := range n.entries {
		n.entries[j].destroy()
	}
	n.entries = nil
}
