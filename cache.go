package sigfmt

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sigfmt/sigfmt/sig"
	"github.com/sigfmt/sigfmt/sink"
)

// DefaultCacheSize is the entry count used by NewCache when size <= 0.
const DefaultCacheSize = 1024

type cacheKey struct {
	t       *sig.Type
	dialect string
	opts    Options
	locale  string
}

type cacheEntry struct {
	tokens    []sink.Token
	truncated bool
}

// Cache memoizes rendered tokens of formatting calls without a live value or
// type info provider. Entries are keyed by type identity, so a type must not be
// mutated after it has been rendered through a cache.
// All operations are thread-safe.
type Cache struct {
	entries *lru.Cache[cacheKey, cacheEntry]

	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits   int64
	Misses int64
	Len    int
}

// NewCache creates a cache holding up to size renderings.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[cacheKey, cacheEntry](size)
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

func (c *Cache) get(k cacheKey) (cacheEntry, bool) {
	e, ok := c.entries.Get(k)
	if !ok {
		c.misses.Add(1)
		return cacheEntry{}, false
	}
	c.hits.Add(1)
	e.tokens = append([]sink.Token(nil), e.tokens...)
	return e, true
}

func (c *Cache) add(k cacheKey, e cacheEntry) {
	e.tokens = append([]sink.Token(nil), e.tokens...)
	c.entries.Add(k, e)
}

// Stats returns hit and miss counters and the current entry count.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.entries.Len(),
	}
}

// Purge removes every entry.
func (c *Cache) Purge() {
	c.entries.Purge()
}
