package goGrant

import (
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// privilegeCache memoizes resolver results keyed by token-set content.
// Reads take a shared lock; misses for the same key collapse into one
// resolver execution via singleflight. Entries are never replaced: the
// first stored value for a key is the value every later caller sees.
// Failed resolutions store nothing, so the next caller re-attempts.
type privilegeCache struct {
	maxEntries int
	resolve    func(names []string) (*Privilege, error)
	metrics    *Metrics

	mu      sync.RWMutex
	entries map[string]*Privilege
	flight  singleflight.Group
}

func newPrivilegeCache(maxEntries int, resolve func([]string) (*Privilege, error), metrics *Metrics) *privilegeCache {
	return &privilegeCache{
		maxEntries: maxEntries,
		resolve:    resolve,
		metrics:    metrics,
		entries:    make(map[string]*Privilege),
	}
}

// cacheKey builds the canonical content key for a deduplicated, sorted
// token set. Each token is length-prefixed so caller-supplied tokens can
// never make two distinct sets collide, whatever bytes they contain.
func cacheKey(names []string) string {
	var b strings.Builder
	for _, name := range names {
		b.WriteString(strconv.Itoa(len(name)))
		b.WriteByte(':')
		b.WriteString(name)
	}
	return b.String()
}

func (c *privilegeCache) get(tokens []string) (*Privilege, error) {
	names := normalizeTokens(tokens)
	key := cacheKey(names)

	c.mu.RLock()
	p, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.metrics.Inc(MetricCacheHit)
		return p, nil
	}

	v, err, _ := c.flight.Do(key, func() (interface{}, error) {
		// A previous flight for this key may have stored the entry after
		// our read above missed.
		c.mu.RLock()
		p, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return p, nil
		}

		c.metrics.Inc(MetricCacheMiss)
		priv, err := c.resolve(names)
		if err != nil {
			return nil, err
		}
		return c.store(key, priv), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Privilege), nil
}

// store inserts the resolved privilege unless the key is already present
// (first value wins) or the cache is at its configured bound, in which case
// the value is returned uncached.
func (c *privilegeCache) store(key string, priv *Privilege) *Privilege {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		return existing
	}
	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.metrics.Inc(MetricCacheFull)
		return priv
	}
	c.entries[key] = priv
	return priv
}

func (c *privilegeCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
