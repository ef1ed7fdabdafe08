package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheEvictsLeastRead(t *testing.T) {
	var evicted []int
	c := New[int, string](2, func(key int, _ string) {
		evicted = append(evicted, key)
	})

	c.Add(1, "one")
	c.Add(2, "two")
	v, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "one", v)

	c.Add(3, "three")
	assert.Equal(t, []int{2}, evicted)
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get(2)
	assert.False(t, ok)
	v, ok = c.Get(3)
	require.True(t, ok)
	assert.Equal(t, "three", v)
}

func TestCacheTieBreaksOnKey(t *testing.T) {
	var evicted []int
	c := New[int, int](3, func(key int, _ int) {
		evicted = append(evicted, key)
	})

	for _, k := range []int{5, 3, 9} {
		c.Add(k, k)
	}
	c.Add(1, 1)
	c.Add(2, 2)
	assert.Equal(t, []int{3, 1}, evicted)
}

func TestCacheAddKeepsExisting(t *testing.T) {
	c := New[string, int](2, nil)
	c.Add("a", 1)
	c.Add("a", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, c.Len())
}

func TestCacheDisabled(t *testing.T) {
	c := New[int, int](0, nil)
	c.Add(1, 1)
	_, ok := c.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}
