// Package cache provides the shared result caches used by the reporting and
// listing read paths. Every aggregator follows the same policy: a Fresh value
// is served without touching the store, a Stale or Empty value triggers
// recomputation, and a Stale value doubles as the fallback when recomputation
// fails.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// State describes the freshness of a cached value.
type State int

const (
	// Empty means no value has been stored yet.
	Empty State = iota
	// Fresh means the stored value is within its TTL.
	Fresh
	// Stale means the stored value has outlived its TTL but is still usable
	// as a degraded fallback.
	Stale
)

func (s State) String() string {
	switch s {
	case Fresh:
		return "fresh"
	case Stale:
		return "stale"
	default:
		return "empty"
	}
}

// TTL is a single-slot result cache with a fixed time-to-live.
// Writes are last-write-wins; a stored value is never evicted, only
// overwritten, so it remains available as a stale fallback.
type TTL[T any] struct {
	mu         sync.RWMutex
	ttl        time.Duration
	value      T
	computedAt time.Time
	populated  bool
	nowFn      func() time.Time
}

// NewTTL creates a cache whose values stay fresh for ttl.
func NewTTL[T any](ttl time.Duration) *TTL[T] {
	return &TTL[T]{ttl: ttl, nowFn: time.Now}
}

// Get returns the stored value and its freshness state. The value is only
// meaningful when the state is Fresh or Stale.
func (c *TTL[T]) Get() (T, State) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.populated {
		var zero T
		return zero, Empty
	}
	if c.nowFn().Sub(c.computedAt) < c.ttl {
		return c.value, Fresh
	}
	return c.value, Stale
}

// Set stores a value stamped with the current time, replacing any previous
// value unconditionally.
func (c *TTL[T]) Set(value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = value
	c.computedAt = c.nowFn()
	c.populated = true
}

// SetClock overrides the clock. Test hook.
func (c *TTL[T]) SetClock(nowFn func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nowFn = nowFn
}

// KeyedTTL is a bounded, thread-safe LRU cache whose entries each carry their
// own TTL stamp. Used for per-key result families (e.g. one monthly-revenue
// series per window size) where the key space must stay bounded.
type KeyedTTL[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[K]*list.Element
	order    *list.List
	nowFn    func() time.Time
}

type keyedEntry[K comparable, V any] struct {
	key        K
	value      V
	computedAt time.Time
}

// NewKeyedTTL creates a keyed cache holding at most capacity entries.
func NewKeyedTTL[K comparable, V any](capacity int, ttl time.Duration) *KeyedTTL[K, V] {
	return &KeyedTTL[K, V]{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[K]*list.Element),
		order:    list.New(),
		nowFn:    time.Now,
	}
}

// Get returns the value stored under key and its freshness state.
// A hit moves the entry to the front of the LRU order.
func (c *KeyedTTL[K, V]) Get(key K) (V, State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, Empty
	}

	c.order.MoveToFront(elem)
	entry := elem.Value.(*keyedEntry[K, V])
	if c.nowFn().Sub(entry.computedAt) < c.ttl {
		return entry.value, Fresh
	}
	return entry.value, Stale
}

// Set stores value under key, evicting the least recently used entry when the
// cache is full.
func (c *KeyedTTL[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		entry := elem.Value.(*keyedEntry[K, V])
		entry.value = value
		entry.computedAt = c.nowFn()
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			entry := oldest.Value.(*keyedEntry[K, V])
			delete(c.entries, entry.key)
			c.order.Remove(oldest)
		}
	}

	elem := c.order.PushFront(&keyedEntry[K, V]{
		key:        key,
		value:      value,
		computedAt: c.nowFn(),
	})
	c.entries[key] = elem
}

// Len returns the number of stored entries.
func (c *KeyedTTL[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// SetClock overrides the clock. Test hook.
func (c *KeyedTTL[K, V]) SetClock(nowFn func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nowFn = nowFn
}
