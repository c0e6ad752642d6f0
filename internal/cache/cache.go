// Package cache holds finished results for later retrieval by id.
//
// Entries live until their TTL passes or until the cache is full and they
// are the least recently used.
package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Defaults used when New is given non-positive values.
const (
	DefaultCapacity = 256
	DefaultTTL      = time.Hour
)

// Option configures a Cache.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

type entry[V any] struct {
	id      string
	value   V
	expires time.Time
}

// Cache is a size-bounded, expiring store keyed by generated ids. It is
// safe for concurrent use.
type Cache[V any] struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu sync.Mutex
	ll *list.List
	m  map[string]*list.Element
}

// New creates a cache holding at most capacity entries for ttl each.
func New[V any](capacity int, ttl time.Duration, opts ...Option) *Cache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Cache[V]{
		capacity: capacity,
		ttl:      ttl,
		now:      o.now,
		ll:       list.New(),
		m:        make(map[string]*list.Element, capacity),
	}
}

// Put stores v under a new random id and returns the id.
func (c *Cache[V]) Put(v V) string {
	id := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.ll.PushFront(&entry[V]{id: id, value: v, expires: c.now().Add(c.ttl)})
	c.m[id] = e
	if c.ll.Len() > c.capacity {
		c.remove(c.ll.Back())
	}
	return id
}

// Get returns the value stored under id. Expired entries are dropped and
// reported as missing.
func (c *Cache[V]) Get(id string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.m[id]
	if !ok {
		return zero, false
	}
	ent := e.Value.(*entry[V])
	if !c.now().Before(ent.expires) {
		c.remove(e)
		return zero, false
	}
	c.ll.MoveToFront(e)
	return ent.value, true
}

// Delete removes id if present.
func (c *Cache[V]) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.m[id]; ok {
		c.remove(e)
	}
}

// Len returns the number of entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Sweep drops every expired entry and returns how many were dropped.
func (c *Cache[V]) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		if !now.Before(e.Value.(*entry[V]).expires) {
			c.remove(e)
			n++
		}
		e = prev
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (c *Cache[V]) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}

func (c *Cache[V]) remove(e *list.Element) {
	c.ll.Remove(e)
	delete(c.m, e.Value.(*entry[V]).id)
}
