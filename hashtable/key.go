package hashtable

import "strconv"

// KeyKind tags the active field of a Key.
type KeyKind uint8

const (
	// KeyString marks a string key.
	KeyString KeyKind = iota
	// KeyInt marks an integer key.
	KeyInt
)

// Key is a tagged string-or-integer key.
type Key struct {
	Kind KeyKind
	Str  string
	Int  int64
}

// StringKey returns a string Key.
func StringKey(s string) Key { return Key{Kind: KeyString, Str: s} }

// IntKey returns an integer Key.
func IntKey(i int64) Key { return Key{Kind: KeyInt, Int: i} }

func (k Key) String() string {
	if k.Kind == KeyInt {
		return strconv.FormatInt(k.Int, 10)
	}
	return k.Str
}

// Destructor releases a payload. It is invoked at most once per entry.
type Destructor = func(any)

// Entry is a single key/payload pair stored in a bucket chain.
type Entry struct {
	Key        Key
	Value      any
	Destructor Destructor

	next *Entry
}

// Destroy runs the entry destructor, if any, and drops the payload.
func (e *Entry) Destroy() {
	if e.Destructor != nil {
		e.Destructor(e.Value)
	}
	e.Value = nil
	e.Destructor = nil
}
