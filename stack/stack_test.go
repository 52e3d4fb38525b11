package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/parsekit/testutil"
	"github.com/hupe1980/parsekit/vector"
)

func TestStack_PopReturnsNewTop(t *testing.T) {
	rec := testutil.NewRecorder()
	s := New(0)

	require.NoError(t, s.Push("a", rec.Destructor))
	require.NoError(t, s.Push("b", rec.Destructor))
	assert.Equal(t, "b", s.Peek())

	assert.Equal(t, "a", s.Pop())
	assert.Equal(t, 1, rec.Calls("b"))
	assert.Equal(t, "a", s.Peek())
	assert.Equal(t, uint32(1), s.Size())

	assert.Nil(t, s.Pop())
	assert.Equal(t, 1, rec.Calls("a"))
	assert.Nil(t, s.Peek())

	// Popping an empty stack is harmless.
	assert.Nil(t, s.Pop())
	assert.Equal(t, 2, rec.Total())
}

func TestStack_Take(t *testing.T) {
	rec := testutil.NewRecorder()
	s := New(0)
	require.NoError(t, s.Push(1, rec.Destructor))
	require.NoError(t, s.Push(2, rec.Destructor))

	v, ok := s.Take()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, s.Peek())
	assert.Zero(t, rec.Total())

	v, ok = s.Take()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = s.Take()
	assert.False(t, ok)
	assert.Nil(t, s.Peek())
}

func TestStack_Get(t *testing.T) {
	s := New(0)
	for i := 0; i < 40; i++ {
		require.NoError(t, s.Push(i, nil))
	}

	v, ok := s.Get(0)
	require.True(t, ok)
	assert.Equal(t, 0, v)

	v, ok = s.Get(39)
	require.True(t, ok)
	assert.Equal(t, 39, v)

	_, ok = s.Get(40)
	assert.False(t, ok)
}

func TestStack_PushOutOfMemory(t *testing.T) {
	s := New(0, vector.WithMaxCapacity(2))
	require.NoError(t, s.Push("a", nil))
	require.NoError(t, s.Push("b", nil))

	err := s.Push("c", nil)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, "b", s.Peek())
	assert.Equal(t, uint32(2), s.Size())
}

func TestStack_Free(t *testing.T) {
	rec := testutil.NewRecorder()
	s := New(0)
	for i := 0; i < 20; i++ {
		require.NoError(t, s.Push(i, rec.Destructor))
	}

	s.Free()
	assert.Equal(t, 20, rec.Total())
	assert.Zero(t, s.Size())
	assert.Nil(t, s.Peek())
}
