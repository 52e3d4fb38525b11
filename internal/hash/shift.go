package hash

import (
	stdhash "hash"
)

const topNibble = 0xF0000000

// Sum32 returns the shift-and-fold hash of data.
func Sum32(data []byte) uint32 {
	var h uint32
	for _, b := range data {
		h = step(h, b)
	}
	return h
}

// SumString hashes the bytes of s without copying them.
func SumString(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = step(h, s[i])
	}
	return h
}

func step(h uint32, b byte) uint32 {
	h = (h << 4) + uint32(b)
	if top := h & topNibble; top != 0 {
		h ^= top >> 24
		h ^= top
	}
	return h
}

// digest is the streaming form of Sum32.
type digest struct {
	h uint32
}

var _ stdhash.Hash32 = (*digest)(nil)

// New returns a streaming hash.Hash32 that produces the same value as Sum32
// over the concatenation of everything written.
func New() stdhash.Hash32 {
	return &digest{}
}

func (d *digest) Write(p []byte) (int, error) {
	for _, b := range p {
		d.h = step(d.h, b)
	}
	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	return append(in, byte(d.h>>24), byte(d.h>>16), byte(d.h>>8), byte(d.h))
}

func (d *digest) Reset()         { d.h = 0 }
func (d *digest) Size() int      { return 4 }
func (d *digest) BlockSize() int { return 1 }
func (d *digest) Sum32() uint32  { return d.h }
