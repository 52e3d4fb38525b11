// Package hash provides the shift-and-fold string hash used for symbol tables.
//
// # Algorithm
//
// Each byte is accumulated as h = (h << 4) + b. Whenever the top nibble of
// the accumulator becomes non-zero it is folded back into the low bits:
//
//	top := h & 0xF0000000
//	h ^= top >> 24
//	h ^= top
//
// The result is deterministic and must stay bit-for-bit stable, since
// bucket placement (and therefore enumeration order) depends on it.
//
// # Usage
//
// For one-shot hashing:
//
//	h := hash.Sum32(key)
//
// For streaming input:
//
//	h := hash.New()
//	h.Write(part1)
//	h.Write(part2)
//	sum := h.Sum32()
package hash
