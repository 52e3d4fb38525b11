// Package container implements container data structures.
package container

import (
	"github.com/hupe1980/parsekit/internal/errs"
)

// DefaultSegmentSize is the number of items per segment when none is given.
const DefaultSegmentSize = 256

// Segmented is an append-only list of fixed-size segments.
// Items are carved from the current segment in order; when it is exhausted a
// new segment is opened. Segments are never shrunk or moved, so pointers
// returned by Carve stay valid until Free.
//
// It is not safe for concurrent use.
type Segmented[T any] struct {
	segments    [][]T
	segmentSize int
	maxSegments int // 0 means unlimited
	next        int // next free slot in the last segment
}

// NewSegmented creates a Segmented with the given segment size and segment limit.
// A non-positive segmentSize uses DefaultSegmentSize; maxSegments <= 0 means unlimited.
func NewSegmented[T any](segmentSize, maxSegments int) *Segmented[T] {
	if segmentSize <= 0 {
		segmentSize = DefaultSegmentSize
	}
	if maxSegments < 0 {
		maxSegments = 0
	}
	return &Segmented[T]{
		segmentSize: segmentSize,
		maxSegments: maxSegments,
	}
}

// Carve returns a pointer to the next unused slot, opening a segment if needed.
// The second return value reports whether a new segment was opened.
func (s *Segmented[T]) Carve() (*T, bool, error) {
	opened := false
	if len(s.segments) == 0 || s.next >= s.segmentSize {
		if s.maxSegments > 0 && len(s.segments) >= s.maxSegments {
			return nil, false, errs.Grow("segments", uint64(len(s.segments))+1, uint64(s.maxSegments))
		}
		s.segments = append(s.segments, make([]T, s.segmentSize))
		s.next = 0
		opened = true
	}
	item := &s.segments[len(s.segments)-1][s.next]
	s.next++
	return item, opened, nil
}

// Len returns the number of carved items.
func (s *Segmented[T]) Len() int {
	if len(s.segments) == 0 {
		return 0
	}
	return (len(s.segments)-1)*s.segmentSize + s.next
}

// Segments returns the number of opened segments.
func (s *Segmented[T]) Segments() int {
	return len(s.segments)
}

// SegmentSize returns the number of items per segment.
func (s *Segmented[T]) SegmentSize() int {
	return s.segmentSize
}

// Each calls fn for every carved item in carve order, stopping early if fn
// returns false.
func (s *Segmented[T]) Each(fn func(item *T) bool) {
	for i, seg := range s.segments {
		limit := s.segmentSize
		if i == len(s.segments)-1 {
			limit = s.next
		}
		for j := 0; j < limit; j++ {
			if !fn(&seg[j]) {
				return
			}
		}
	}
}

// Free drops every segment.
func (s *Segmented[T]) Free() {
	for i := range s.segments {
		s.segments[i] = nil
	}
	s.segments = nil
	s.next = 0
}
