package cache

import (
	"cmp"

	"github.com/emirpasic/gods/maps/treemap"
)

type item[K any, V any] struct {
	hits uint64
	key  K
	val  V
}

// Cache keeps up to size entries, evicting the least frequently read one
// when full. Ties go to the smallest key.
type Cache[K cmp.Ordered, V any] struct {
	size    int
	items   *treemap.Map // K -> item
	byHits  *treemap.Map // item -> struct{}
	onEvict func(key K, val V)
}

func New[K cmp.Ordered, V any](size int, onEvict func(key K, val V)) *Cache[K, V] {
	if onEvict == nil {
		onEvict = func(K, V) {}
	}

	return &Cache[K, V]{
		size:    size,
		onEvict: onEvict,

		items: treemap.NewWith(func(a, b interface{}) int {
			return cmp.Compare(a.(K), b.(K))
		}),
		byHits: treemap.NewWith(func(a, b interface{}) int {
			ai, bi := a.(item[K, V]), b.(item[K, V])
			res := cmp.Compare(ai.hits, bi.hits)
			if res == 0 {
				return cmp.Compare(ai.key, bi.key)
			}
			return res
		}),
	}
}

func (c *Cache[K, V]) Add(key K, val V) {
	if c.size <= 0 {
		return
	} else if _, ok := c.items.Get(key); ok {
		return
	}

	if c.byHits.Size() >= c.size {
		least, _ := c.byHits.Min()
		c.evict(least.(item[K, V]))
	}

	itm := item[K, V]{val: val, key: key, hits: 1}
	c.byHits.Put(itm, struct{}{})
	c.items.Put(key, itm)
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	val, ok := c.items.Get(key)
	if !ok {
		var zero V
		return zero, false
	}

	itm := val.(item[K, V])
	c.byHits.Remove(itm)
	itm.hits++
	c.byHits.Put(itm, struct{}{})
	c.items.Put(itm.key, itm)
	return itm.val, true
}

func (c *Cache[K, V]) Len() int {
	return c.items.Size()
}

func (c *Cache[K, V]) evict(itm item[K, V]) {
	c.byHits.Remove(itm)
	c.items.Remove(itm.key)
	c.onEvict(itm.key, itm.val)
}
