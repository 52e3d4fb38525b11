package parsekit

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector_Factory(t *testing.T) {
	mc := &BasicMetricsCollector{}
	f := NewFactory(WithMetricsCollector(mc), WithPoolSize(2))

	a, err := f.NewVector()
	require.NoError(t, err)
	_, err = f.NewVector()
	require.NoError(t, err)
	_, err = f.NewVector()
	require.NoError(t, err)
	require.NoError(t, f.ReturnVector(a))
	_, err = f.NewVector()
	require.NoError(t, err)
	f.Close()

	stats := mc.GetStats()
	assert.Equal(t, int64(3), stats.VectorsCarved)
	assert.Equal(t, int64(1), stats.VectorsReused)
	assert.Equal(t, int64(2), stats.PoolsOpened)
	assert.Equal(t, int64(1), stats.FactoriesClosed)
}

func TestBasicMetricsCollector_Sorter(t *testing.T) {
	mc := &BasicMetricsCollector{}
	s := NewSorter(WithMetricsCollector(mc))
	s.AddEdge(2, 1)
	_, err := s.SortToArray()
	require.NoError(t, err)

	s.AddEdge(1, 2)
	_, err = s.SortToArray()
	require.ErrorIs(t, err, ErrCycle)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.SortCount)
	assert.Equal(t, int64(1), stats.SortCycles)
	assert.Equal(t, int64(6), stats.SortNodes)
}

func TestNoopMetricsCollector(t *testing.T) {
	f := NewFactory(WithMetricsCollector(nil))
	_, err := f.NewVector()
	require.NoError(t, err)
	f.Close()
}

func TestLogger_LogSort(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.WithSource("g.yaml").LogSort(context.Background(), 3, 2, nil)
	assert.Contains(t, buf.String(), "sort completed")
	assert.Contains(t, buf.String(), "source=g.yaml")

	buf.Reset()
	l.LogSort(context.Background(), 2, 2, ErrCycle)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "dependency cycle")
}

func TestLogger_WiredIntoSorter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := NewSorter(WithLogger(l))
	s.AddEdge(0, 1)
	s.AddEdge(1, 0)
	_, _ = s.SortToArray()
	assert.Contains(t, buf.String(), "dependency cycle found")
}

func TestLogger_WiredIntoTable(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tbl := NewTable(0, false, WithLogger(l))
	require.NoError(t, tbl.Put("x", 1, nil))
	require.ErrorIs(t, tbl.Put("x", 2, nil), ErrDuplicateKey)
	assert.Contains(t, buf.String(), "duplicate key rejected")

	tr := NewTrie(8, false, WithLogger(l))
	require.NoError(t, tr.AddInt(3, 1))
	require.ErrorIs(t, tr.AddInt(3, 2), ErrDuplicateKey)
}

func TestLogger_LogFactoryClose(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	f := NewFactory(WithLogger(l))
	_, err := f.NewVector()
	require.NoError(t, err)
	l.LogFactoryClose(context.Background(), f.Stats())
	f.Close()

	assert.Contains(t, buf.String(), `"carved":1`)
	assert.Contains(t, buf.String(), "vector pool opened")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
