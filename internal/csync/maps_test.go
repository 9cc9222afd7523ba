package csync

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapSetGet(t *testing.T) {
	t.Parallel()

	m := NewMap[string, int]()

	value, ok := m.Get("nonexistent")
	require.False(t, ok)
	require.Equal(t, 0, value)

	m.Set("key1", 42)
	value, ok = m.Get("key1")
	require.True(t, ok)
	require.Equal(t, 42, value)
	require.Equal(t, 1, m.Len())
}

func TestMapDel(t *testing.T) {
	t.Parallel()

	m := NewMap[string, int]()
	m.Set("key1", 42)
	m.Set("key2", 100)

	m.Del("key1")
	_, ok := m.Get("key1")
	require.False(t, ok)
	require.Equal(t, 1, m.Len())

	m.Del("nonexistent")
	require.Equal(t, 1, m.Len())
}

func TestMapGetOrSet(t *testing.T) {
	t.Parallel()

	m := NewMap[string, string]()
	calls := 0
	compute := func() string {
		calls++
		return "value"
	}

	require.Equal(t, "value", m.GetOrSet("key", compute))
	require.Equal(t, "value", m.GetOrSet("key", compute))
	require.Equal(t, 1, calls)
}

func TestMapReset(t *testing.T) {
	t.Parallel()

	m := NewMap[int, int]()
	for i := range 10 {
		m.Set(i, i)
	}
	m.Reset()
	require.Equal(t, 0, m.Len())
}

func TestMapConcurrent(t *testing.T) {
	t.Parallel()

	m := NewMap[int, int]()
	var computed atomic.Int32
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.GetOrSet(i%5, func() int {
				computed.Add(1)
				return i % 5
			})
		}()
	}
	wg.Wait()

	require.Equal(t, 5, m.Len())
	require.GreaterOrEqual(t, int(computed.Load()), 5)
	for i := range 5 {
		v, ok := m.Get(i)
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}
