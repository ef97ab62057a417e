package blobstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scankeeper_blob_cache_hits_total",
		Help: "Blob reads served from the read cache.",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scankeeper_blob_cache_misses_total",
		Help: "Blob reads that went to the backend.",
	})
)

// cacheSize bounds the number of cached keys. With the global key scope
// there is only one.
const cacheSize = 1024

// Cached is a read-through cache in front of a Store. Entries expire after
// ttl and are replaced or dropped on every write through this decorator.
// Writes made by other server instances become visible after at most ttl.
type Cached struct {
	next  Store
	cache *expirable.LRU[string, []byte]

	// writes counts writes per key. A read only fills the cache when no
	// write to its key finished while it was reading the backend.
	mu     sync.Mutex
	writes map[string]uint64
}

func NewCached(next Store, ttl time.Duration) *Cached {
	return &Cached{
		next:   next,
		cache:  expirable.NewLRU[string, []byte](cacheSize, nil, ttl),
		writes: make(map[string]uint64),
	}
}

func (c *Cached) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := c.cache.Get(key); ok {
		cacheHitsTotal.Inc()
		return slices.Clone(v), nil
	}
	cacheMissesTotal.Inc()

	c.mu.Lock()
	seen := c.writes[key]
	c.mu.Unlock()

	v, err := c.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.writes[key] == seen {
		c.cache.Add(key, slices.Clone(v))
	}
	c.mu.Unlock()
	return v, nil
}

func (c *Cached) Set(ctx context.Context, key string, value []byte) error {
	err := c.next.Set(ctx, key, value)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes[key]++
	if err != nil {
		c.cache.Remove(key)
		return err
	}
	c.cache.Add(key, slices.Clone(value))
	return nil
}

func (c *Cached) Delete(ctx context.Context, key string) error {
	err := c.next.Delete(ctx, key)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes[key]++
	c.cache.Remove(key)
	return err
}
