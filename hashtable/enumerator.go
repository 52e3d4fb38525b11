package hashtable

import "iter"

// Enumerator is a forward-only cursor over a Table. It is not restartable
// and is invalidated by mutation of the table.
type Enumerator struct {
	table  *Table
	bucket int
	entry  *Entry
}

// Enumerate returns an enumerator positioned before the first entry.
func (t *Table) Enumerate() *Enumerator {
	en := &Enumerator{table: t, bucket: -1}
	en.advance()
	return en
}

// Next returns the next key and payload. ok is false once the table is exhausted.
func (en *Enumerator) Next() (key Key, value any, ok bool) {
	if en.entry == nil {
		return Key{}, nil, false
	}
	key, value = en.entry.Key, en.entry.Value
	en.advance()
	return key, value, true
}

// advance moves to the next chain entry, or to the head of the next non-empty bucket.
func (en *Enumerator) advance() {
	if en.entry != nil && en.entry.next != nil {
		en.entry = en.entry.next
		return
	}

	buckets := en.table.buckets
	for en.bucket++; en.bucket < len(buckets); en.bucket++ {
		if head := buckets[en.bucket].head; head != nil {
			en.entry = head
			return
		}
	}
	en.entry = nil
}

// All returns an iterator over every key and payload in enumeration order.
// Each range loop uses a fresh Enumerator.
func (t *Table) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		en := t.Enumerate()
		for {
			k, v, ok := en.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}
