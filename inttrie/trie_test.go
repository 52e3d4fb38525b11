package inttrie

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/parsekit/testutil"
)

func TestTrie_AddGet(t *testing.T) {
	tr := New(MaxDepth)
	for _, k := range []uint64{5, 9, 1000000007} {
		require.NoError(t, tr.AddInt(k, int64(k)*10))
	}
	assert.Equal(t, 3, tr.Len())

	for _, k := range []uint64{5, 9, 1000000007} {
		entries, ok := tr.Get(k)
		require.True(t, ok, "key %d", k)
		require.Len(t, entries, 1)
		assert.Equal(t, Int, entries[0].Type)
		assert.Equal(t, int64(k)*10, entries[0].Int)
	}

	_, ok := tr.Get(42)
	assert.False(t, ok)
	_, ok = tr.Get(0)
	assert.False(t, ok)
}

func TestTrie_EmptyGet(t *testing.T) {
	tr := New(32)
	_, ok := tr.Get(0)
	assert.False(t, ok)
	_, ok = tr.Get(7)
	assert.False(t, ok)
	assert.Zero(t, tr.Len())
}

func TestTrie_DuplicateRejected(t *testing.T) {
	tr := New(MaxDepth)
	require.NoError(t, tr.AddPointer(5, "first", nil))

	err := tr.AddPointer(5, "second", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, 1, tr.Len())

	entries, ok := tr.Get(5)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "first", entries[0].Ptr)
}

func TestTrie_DuplicatesKeepInsertionOrder(t *testing.T) {
	tr := New(MaxDepth, WithAllowDuplicates(true))
	require.NoError(t, tr.AddInt(8, 1))
	require.NoError(t, tr.AddInt(3, 0))
	require.NoError(t, tr.AddInt(8, 2))
	require.NoError(t, tr.AddInt(8, 3))
	assert.Equal(t, 4, tr.Len())

	entries, ok := tr.Get(8)
	require.True(t, ok)
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, int64(i+1), e.Int)
	}
}

func TestTrie_ZeroKey(t *testing.T) {
	tr := New(16)
	require.NoError(t, tr.AddInt(0, 100))

	entries, ok := tr.Get(0)
	require.True(t, ok)
	assert.Equal(t, int64(100), entries[0].Int)

	assert.ErrorIs(t, tr.AddInt(0, 101), ErrDuplicateKey)

	require.NoError(t, tr.AddInt(5, 105))
	require.NoError(t, tr.AddInt(4, 104))

	for k, want := range map[uint64]int64{0: 100, 4: 104, 5: 105} {
		entries, ok := tr.Get(k)
		require.True(t, ok, "key %d", k)
		assert.Equal(t, want, entries[0].Int)
	}
}

func TestTrie_ZeroKeyAfterOthers(t *testing.T) {
	tr := New(16)
	require.NoError(t, tr.AddInt(12, 12))
	_, ok := tr.Get(0)
	assert.False(t, ok)

	require.NoError(t, tr.AddInt(0, 1))
	entries, ok := tr.Get(0)
	require.True(t, ok)
	assert.Equal(t, int64(1), entries[0].Int)
	assert.Equal(t, 2, tr.Len())
}

func TestTrie_SkippedBit(t *testing.T) {
	tr := New(8)

	// 8 and 9 branch on bits 3 and 0; 12 differs from 8 at bit 2 and must be
	// spliced between them.
	for _, k := range []uint64{8, 9, 12} {
		require.NoError(t, tr.AddInt(k, int64(k)))
	}
	for _, k := range []uint64{8, 9, 12} {
		entries, ok := tr.Get(k)
		require.True(t, ok, "key %d", k)
		assert.Equal(t, int64(k), entries[0].Int)
	}
	for _, k := range []uint64{0, 4, 10, 13} {
		_, ok := tr.Get(k)
		assert.False(t, ok, "key %d", k)
	}
}

func TestTrie_KeyOutOfRange(t *testing.T) {
	tr := New(4)
	require.NoError(t, tr.AddInt(15, 1))

	err := tr.AddInt(16, 1)
	assert.ErrorIs(t, err, ErrKeyOutOfRange)
	assert.Equal(t, 1, tr.Len())

	_, ok := tr.Get(16)
	assert.False(t, ok)
}

func TestTrie_DepthClamped(t *testing.T) {
	tr := New(200)
	assert.Equal(t, uint32(MaxDepth), tr.Depth())
	require.NoError(t, tr.AddInt(1<<62, 1))
	assert.ErrorIs(t, tr.AddInt(1<<63, 1), ErrKeyOutOfRange)
}

func TestTrie_DelUnsupported(t *testing.T) {
	tr := New(MaxDepth)
	require.NoError(t, tr.AddInt(1, 1))
	assert.ErrorIs(t, tr.Del(1), ErrUnsupported)
	_, ok := tr.Get(1)
	assert.True(t, ok)
}

func TestTrie_RandomKeys(t *testing.T) {
	rng := testutil.NewRNG(42)
	keys := rng.UniqueUint64s(2000, 1<<40)

	tr := New(40)
	for i, k := range keys {
		require.NoError(t, tr.AddInt(k, int64(i)))
	}
	assert.Equal(t, len(keys), tr.Len())

	for i, k := range keys {
		entries, ok := tr.Get(k)
		require.True(t, ok, "key %d", k)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(i), entries[0].Int)
	}

	present := make(map[uint64]bool, len(keys))
	for _, k := range keys {
		present[k] = true
	}
	for i := 0; i < 2000; i++ {
		k := rng.Uint64() % (1 << 40)
		_, ok := tr.Get(k)
		assert.Equal(t, present[k], ok, "key %d", k)
	}
}

func TestTrie_Walk(t *testing.T) {
	tr := New(MaxDepth)
	want := []uint64{0, 3, 17, 256, 1 << 40}
	for _, k := range want {
		require.NoError(t, tr.AddInt(k, 0))
	}

	var got []uint64
	tr.Walk(func(key uint64, entries []Entry) bool {
		assert.Len(t, entries, 1)
		got = append(got, key)
		return true
	})
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	assert.Equal(t, want, got)

	visits := 0
	tr.Walk(func(uint64, []Entry) bool {
		visits++
		return false
	})
	assert.Equal(t, 1, visits)
}

func TestTrie_FreeDestructors(t *testing.T) {
	rec := testutil.NewRecorder()
	tr := New(MaxDepth, WithAllowDuplicates(true))

	for _, k := range []uint64{0, 1, 2, 3, 100, 1000} {
		require.NoError(t, tr.AddPointer(k, k, rec.Destructor))
	}
	require.NoError(t, tr.AddPointer(3, "dup", rec.Destructor))
	// Integer entries never run their destructor.
	require.NoError(t, tr.Add(7, Entry{Type: Int, Int: 7, Destructor: rec.Destructor}))

	tr.Free()
	assert.Equal(t, 7, rec.Total())
	for _, k := range []uint64{0, 1, 2, 3, 100, 1000} {
		assert.Equal(t, 1, rec.Calls(k))
	}
	assert.Equal(t, 1, rec.Calls("dup"))
	assert.Zero(t, rec.Calls(int64(7)))

	assert.Zero(t, tr.Len())
	_, ok := tr.Get(3)
	assert.False(t, ok)

	// A freed trie can be filled again.
	require.NoError(t, tr.AddInt(3, 3))
	_, ok = tr.Get(3)
	assert.True(t, ok)
}

func BenchmarkTrie_Get(b *testing.B) {
	rng := testutil.NewRNG(1)
	keys := rng.UniqueUint64s(10000, 1<<32)
	tr := New(32)
	for _, k := range keys {
		_ = tr.AddInt(k, 0)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Get(keys[i%len(keys)])
	}
}

func BenchmarkTrie_Add(b *testing.B) {
	rng := testutil.NewRNG(1)
	keys := rng.UniqueUint64s(10000, 1<<32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := New(32)
		for _, k := range keys {
			_ = tr.AddInt(k, 0)
		}
	}
}
