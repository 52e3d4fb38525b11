package parsekit

import (
	"errors"

	"github.com/hupe1980/parsekit/internal/errs"
)

var (
	// ErrOutOfMemory is returned when a structure cannot grow any further.
	ErrOutOfMemory = errs.ErrOutOfMemory
	// ErrDuplicateKey is returned when inserting an existing key into a structure that rejects duplicates.
	ErrDuplicateKey = errs.ErrDuplicateKey
	// ErrNotFound is returned by mutating operations addressing an absent key or index.
	ErrNotFound = errs.ErrNotFound
	// ErrUnsupported is returned by operations that are not implemented, such as trie deletion.
	ErrUnsupported = errs.ErrUnsupported
	// ErrCycle is returned when a dependency graph has a cycle.
	ErrCycle = errs.ErrCycle
	// ErrKeyOutOfRange is returned when a trie key needs more bits than the trie depth.
	ErrKeyOutOfRange = errs.ErrKeyOutOfRange
	// ErrClosed is returned by a closed factory or freed table.
	ErrClosed = errs.ErrClosed
	// ErrForeignVector is returned when returning a vector to a factory that did not make it.
	ErrForeignVector = errs.ErrForeignVector
)

// Kind classifies errors returned by this module.
type Kind uint8

// Error kinds. KindNone is reported for a nil error.
const (
	KindNone Kind = iota
	KindUnknown
	KindOutOfMemory
	KindDuplicateKey
	KindNotFound
	KindUnsupported
	KindCycle
	KindKeyOutOfRange
	KindClosed
	KindForeignVector
)

var kindNames = [...]string{
	KindNone:          "none",
	KindUnknown:       "unknown",
	KindOutOfMemory:   "out of memory",
	KindDuplicateKey:  "duplicate key",
	KindNotFound:      "not found",
	KindUnsupported:   "unsupported",
	KindCycle:         "cycle",
	KindKeyOutOfRange: "key out of range",
	KindClosed:        "closed",
	KindForeignVector: "foreign vector",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrOutOfMemory, KindOutOfMemory},
	{ErrDuplicateKey, KindDuplicateKey},
	{ErrNotFound, KindNotFound},
	{ErrUnsupported, KindUnsupported},
	{ErrCycle, KindCycle},
	{ErrKeyOutOfRange, KindKeyOutOfRange},
	{ErrClosed, KindClosed},
	{ErrForeignVector, KindForeignVector},
}

// KindOf returns the kind of err. A nil error is KindNone; errors that wrap
// none of the module sentinels are KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}
