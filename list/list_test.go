package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/parsekit/testutil"
)

func TestList_AddAssignsSequentialKeys(t *testing.T) {
	l := New(8)
	for i, v := range []string{"a", "b", "c"} {
		key, err := l.Add(v, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), key)
	}
	assert.Equal(t, 3, l.Size())

	v, ok := l.Get(2)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = l.Get(0)
	assert.False(t, ok)
}

func TestList_DeleteLeavesHole(t *testing.T) {
	rec := testutil.NewRecorder()
	l := New(8)
	for _, v := range []string{"a", "b", "c"} {
		_, err := l.Add(v, rec.Destructor)
		require.NoError(t, err)
	}

	require.NoError(t, l.Delete(2))
	assert.Equal(t, 1, rec.Calls("b"))
	assert.Equal(t, 2, l.Size())

	// No renumbering: key 3 still holds "c", key 2 is a hole.
	_, ok := l.Get(2)
	assert.False(t, ok)
	v, ok := l.Get(3)
	require.True(t, ok)
	assert.Equal(t, "c", v)

	// Size()+1 == 3 is taken by "c".
	_, err := l.Add("d", nil)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	// Filling the hole explicitly works.
	require.NoError(t, l.Put(2, "b2", nil))
	key, err := l.Add("d", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), key)
}

func TestList_Remove(t *testing.T) {
	rec := testutil.NewRecorder()
	l := New(4)
	_, err := l.Add("x", rec.Destructor)
	require.NoError(t, err)

	v, ok := l.Remove(1)
	require.True(t, ok)
	assert.Equal(t, "x", v)
	assert.Zero(t, rec.Total())

	_, ok = l.Remove(1)
	assert.False(t, ok)
	assert.ErrorIs(t, l.Delete(1), ErrNotFound)
}

func TestList_AllAndFree(t *testing.T) {
	rec := testutil.NewRecorder()
	l := New(16)
	for i := 0; i < 5; i++ {
		_, err := l.Add(i, rec.Destructor)
		require.NoError(t, err)
	}

	seen := map[int64]any{}
	for k, v := range l.All() {
		seen[k] = v
	}
	assert.Len(t, seen, 5)
	assert.Equal(t, 0, seen[1])
	assert.Equal(t, 4, seen[5])

	l.Free()
	assert.Equal(t, 5, rec.Total())
	assert.Zero(t, l.Size())
}
