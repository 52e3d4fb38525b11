// Package visited provides a resettable membership set over dense node ids.
package visited

// Set tracks marked nodes using a bitset and a dirty list for fast reset.
// Marks can also be withdrawn one at a time, which lets the set mirror the
// nodes currently on a depth-first search path.
type Set struct {
	bits  []uint64
	dirty []uint32
}

// New creates a set sized for capacity nodes. It grows on demand.
func New(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}
	return &Set{
		bits:  make([]uint64, (capacity+63)/64),
		dirty: make([]uint32, 0, 64),
	}
}

// Visit marks id. Marking an id twice has no further effect.
func (s *Set) Visit(id uint32) {
	wordIdx := int(id >> 6)
	bitMask := uint64(1) << (id & 63)

	if wordIdx >= len(s.bits) {
		s.grow(wordIdx + 1)
	}

	if s.bits[wordIdx]&bitMask == 0 {
		s.bits[wordIdx] |= bitMask
		s.dirty = append(s.dirty, id)
	}
}

// Leave clears the mark on id. The dirty list is left alone; Reset copes with
// ids that were already cleared.
func (s *Set) Leave(id uint32) {
	wordIdx := int(id >> 6)
	if wordIdx >= len(s.bits) {
		return
	}
	s.bits[wordIdx] &^= uint64(1) << (id & 63)
}

// Visited reports whether id is marked.
func (s *Set) Visited(id uint32) bool {
	wordIdx := int(id >> 6)
	if wordIdx >= len(s.bits) {
		return false
	}
	return s.bits[wordIdx]&(uint64(1)<<(id&63)) != 0
}

// Reset clears every mark made since the last Reset.
func (s *Set) Reset() {
	for _, id := range s.dirty {
		s.bits[id>>6] &^= uint64(1) << (id & 63)
	}
	s.dirty = s.dirty[:0]
}

// EnsureCapacity ensures the set can hold at least capacity nodes without growing.
func (s *Set) EnsureCapacity(capacity int) {
	words := (capacity + 63) / 64
	if words > len(s.bits) {
		s.grow(words)
	}
}

func (s *Set) grow(newLen int) {
	newCap := len(s.bits) * 2
	if newCap < newLen {
		newCap = newLen
	}

	newBits := make([]uint64, newCap)
	copy(newBits, s.bits)
	s.bits = newBits
}
