package hashtable

import "github.com/hupe1980/parsekit/internal/hash"

// Hash returns the shift-and-fold hash of key. Hash([]byte{0x41}) == 65.
func Hash(key []byte) uint32 {
	return hash.Sum32(key)
}

// HashString is Hash over the bytes of key.
func HashString(key string) uint32 {
	return hash.SumString(key)
}
